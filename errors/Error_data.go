package errors

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrDataI is typed data attached to an *Error. EncodeErrorData returns its JSON form,
// which host adapters include in error responses.
type ErrDataI interface {
	EncodeErrorData() []byte
	Error() string
}
