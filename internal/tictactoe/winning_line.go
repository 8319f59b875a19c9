package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

// Lines - every candidate line of a size x size board: rows, columns, then both diagonals.
func Lines(size int) [][]int {
	if size <= 0 {
		return nil
	}

	lines := make([][]int, 0, 2*size+2)

	for row := range size {
		line := make([]int, size)
		for col := range size {
			line[col] = row*size + col
		}
		lines = append(lines, line)
	}

	for col := range size {
		line := make([]int, size)
		for row := range size {
			line[row] = row*size + col
		}
		lines = append(lines, line)
	}

	diagonal := make([]int, size)
	antiDiagonal := make([]int, size)
	for i := range size {
		diagonal[i] = i*size + i
		antiDiagonal[i] = i*size + (size - 1 - i)
	}

	return append(lines, diagonal, antiDiagonal)
}

// WinningLine - positions of the first line owned by winner, wildcards count for both sides.
// It only locates the line to highlight, the server decides whether the game is won.
func WinningLine(board entity.Board, size int, winner entity.Outcome) []int {
	if !winner.IsDecided() {
		return nil
	}

	if size <= 0 || len(board) < size*size {
		return nil
	}

	mark := winner.Cell()
	for _, line := range Lines(size) {
		if isSatisfied(board, line, mark) {
			return line
		}
	}

	return nil
}

func isSatisfied(board entity.Board, line []int, mark entity.Cell) bool {
	for _, position := range line {
		if cell := board[position]; cell != mark && cell != entity.CellWild {
			return false
		}
	}

	return true
}
