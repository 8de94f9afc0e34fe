package gcp

import (
	"errors"

	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/status"
)

var (
	// ErrUnavailable is returned by every adapter whose client failed to initialize.
	ErrUnavailable = errors.New("client not available")
	// ErrNotFound is returned when a named object does not exist in the bucket.
	ErrNotFound = errors.New("object not found")
)

// ErrorMessage extracts the message a client should see for an upstream failure.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Message != "" {
		return gerr.Message
	}
	if st, ok := status.FromError(err); ok && st.Message() != "" {
		return st.Message()
	}
	return err.Error()
}
