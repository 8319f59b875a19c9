package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("action is not allowed in the current game phase")
	ErrMalformedResponse = errors.New("malformed response from game service")
	ErrNoActiveGame      = errors.New("no active game")
)

const (
	genericNetworkMessage = "Unable to reach the game service. Check your connection and try again."
	genericServiceMessage = "The game service rejected the request."
)

// NetworkError - the request never got an answer: unreachable host, timeout or cancelled context.
type NetworkError struct {
	Op  string
	Err error
}

func (that *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", that.Op, that.Err)
}

func (that *NetworkError) Unwrap() error {
	return that.Err
}

// ServiceError - the service answered but rejected the request or sent an unusable body.
type ServiceError struct {
	Status  int
	Message string
	Err     error
}

func (that *ServiceError) Error() string {
	if that.Message == "" {
		return fmt.Sprintf("service error: status %d", that.Status)
	}

	return fmt.Sprintf("service error: status %d: %s", that.Status, that.Message)
}

func (that *ServiceError) Unwrap() error {
	return that.Err
}

// Message - returns the text shown to the player for err.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		if serviceErr.Message != "" {
			return serviceErr.Message
		}
		return genericServiceMessage
	}

	var networkErr *NetworkError
	if errors.As(err, &networkErr) {
		return genericNetworkMessage
	}

	return err.Error()
}

// IsNetwork - reports whether err came from the transport layer.
func IsNetwork(err error) bool {
	var networkErr *NetworkError
	return errors.As(err, &networkErr)
}
