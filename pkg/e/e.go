package e

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEnv  = errors.New("value in .env file has wrong format")
	ErrLoadEnvFile = errors.New("error loading .env file")

	ErrMakeRequest = errors.New("error making request")
	ErrDoRequest   = errors.New("error doing request")
	ErrReadBody    = errors.New("read body error")
	ErrCloseBody   = errors.New("close body error")
	ErrWrite       = errors.New("write error")

	ErrMarshalJSON    = errors.New("error marshaling json")
	ErrDecodeJSONBody = errors.New("error decoding json body")

	ErrAPI           = errors.New("API returned error")
	ErrPasswordReset = errors.New("password reset failed")
	ErrInvalidBotID  = errors.New("invalid bot id")
	ErrScheduler     = errors.New("scheduler error")
	ErrUnknownCmd    = errors.New("unknown command")
)

// Wrap annotates err with msg, keeping it reachable for errors.Is.
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// With returns an error that matches both sentinel and cause under
// errors.Is.
func With(sentinel, cause error) error {
	return fmt.Errorf("%w: %w", sentinel, cause)
}
