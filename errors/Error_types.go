package errors

var (
	ErrUnknown           = New(ERR_UNKNOWN, "unknown error")
	ErrInvalidArgument   = New(ERR_INVALID_ARGUMENT, "invalid argument")
	ErrThresholdExceeded = New(ERR_THRESHOLD_EXCEEDED, "threshold exceeded")
	ErrProcessing        = New(ERR_PROCESSING, "error processing")
	ErrConfiguration     = New(ERR_CONFIGURATION, "configuration error")
	ErrError             = New(ERR_ERROR, "generic error")
	ErrTruncated         = New(ERR_TRUNCATED, "unexpected end of data")
	ErrDecode            = New(ERR_DECODE, "decode error")
	ErrScriptParse       = New(ERR_SCRIPT_PARSE, "script parse error")
	ErrScriptInvalid     = New(ERR_SCRIPT_INVALID, "script invalid")
	ErrDeserialize       = New(ERR_DESERIALIZE, "deserialize error")
	ErrTxInvalid         = New(ERR_TX_INVALID, "tx invalid")
	ErrServiceError      = New(ERR_SERVICE_ERROR, "service error")
)

// errors initialization functions

func NewUnknownError(message string, params ...interface{}) error {
	return New(ERR_UNKNOWN, message, params...)
}
func NewInvalidArgumentError(message string, params ...interface{}) error {
	return New(ERR_INVALID_ARGUMENT, message, params...)
}
func NewThresholdExceededError(message string, params ...interface{}) error {
	return New(ERR_THRESHOLD_EXCEEDED, message, params...)
}
func NewProcessingError(message string, params ...interface{}) error {
	return New(ERR_PROCESSING, message, params...)
}
func NewConfigurationError(message string, params ...interface{}) error {
	return New(ERR_CONFIGURATION, message, params...)
}
func NewError(message string, params ...interface{}) error {
	return New(ERR_ERROR, message, params...)
}
func NewTruncatedError(message string, params ...interface{}) error {
	return New(ERR_TRUNCATED, message, params...)
}
func NewDecodeError(message string, params ...interface{}) error {
	return New(ERR_DECODE, message, params...)
}
func NewScriptParseError(message string, params ...interface{}) error {
	return New(ERR_SCRIPT_PARSE, message, params...)
}
func NewScriptInvalidError(message string, params ...interface{}) error {
	return New(ERR_SCRIPT_INVALID, message, params...)
}
func NewTxInvalidError(message string, params ...interface{}) error {
	return New(ERR_TX_INVALID, message, params...)
}
func NewServiceError(message string, params ...interface{}) error {
	return New(ERR_SERVICE_ERROR, message, params...)
}
