package errors

import "strconv"

// ERR is the numeric error code carried by every *Error.
type ERR int32

const (
	ERR_UNKNOWN            ERR = 0
	ERR_INVALID_ARGUMENT   ERR = 1
	ERR_THRESHOLD_EXCEEDED ERR = 2
	ERR_PROCESSING         ERR = 4
	ERR_CONFIGURATION      ERR = 5
	ERR_ERROR              ERR = 9

	// codec errors
	ERR_TRUNCATED      ERR = 20
	ERR_DECODE         ERR = 21
	ERR_SCRIPT_PARSE   ERR = 22
	ERR_SCRIPT_INVALID ERR = 23
	ERR_DESERIALIZE    ERR = 24

	// transaction errors
	ERR_TX_INVALID ERR = 31

	// service errors
	ERR_SERVICE_ERROR ERR = 52
)

var ERR_name = map[int32]string{
	0:  "UNKNOWN",
	1:  "INVALID_ARGUMENT",
	2:  "THRESHOLD_EXCEEDED",
	4:  "PROCESSING",
	5:  "CONFIGURATION",
	9:  "ERROR",
	20: "TRUNCATED",
	21: "DECODE",
	22: "SCRIPT_PARSE",
	23: "SCRIPT_INVALID",
	24: "DESERIALIZE",
	31: "TX_INVALID",
	52: "SERVICE_ERROR",
}

var ERR_value = func() map[string]int32 {
	m := make(map[string]int32, len(ERR_name))
	for k, v := range ERR_name {
		m[v] = k
	}

	return m
}()

func (x ERR) String() string {
	if name, ok := ERR_name[int32(x)]; ok {
		return name
	}

	return strconv.Itoa(int(x))
}
