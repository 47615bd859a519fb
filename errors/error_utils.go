// Package errors provides the typed error taxonomy used across the codec, with helpers for categorizing errors.
package errors

import (
	"context"
	"errors"
	"io"
)

// IsInputError determines if an error was caused by malformed caller input rather than by the codec itself.
// Host adapters use it to choose between a client error and a server error.
func IsInputError(err error) bool {
	if err == nil {
		return false
	}

	var tErr *Error
	if As(err, &tErr) {
		switch tErr.Code() {
		case ERR_INVALID_ARGUMENT,
			ERR_THRESHOLD_EXCEEDED,
			ERR_TRUNCATED,
			ERR_DECODE,
			ERR_SCRIPT_PARSE,
			ERR_SCRIPT_INVALID,
			ERR_DESERIALIZE,
			ERR_TX_INVALID:
			return true
		}
	}

	return false
}

// IsTruncationError reports whether the input ended before a complete value could be read.
func IsTruncationError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return true
	}

	var tErr *Error
	if As(err, &tErr) && tErr.Code() == ERR_TRUNCATED {
		return true
	}

	return false
}

// IsContextError determines if an error is related to context cancellation or deadline.
func IsContextError(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// GetErrorCategory returns a string representing the category of the error.
// This is useful for logging and metrics.
func GetErrorCategory(err error) string {
	if err == nil {
		return "none"
	}

	if IsContextError(err) {
		return "context"
	}

	var tErr *Error
	if As(err, &tErr) {
		// Group by error code ranges
		code := tErr.Code()
		switch {
		case code >= 20 && code <= 29:
			return "codec"
		case code >= 30 && code <= 49:
			return "transaction"
		case code >= 50 && code <= 59:
			return "service"
		case code < 10:
			return "general"
		}
	}

	return "unknown"
}
