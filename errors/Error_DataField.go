package errors

import (
	"fmt"
)

// FieldErrData names the record kind and the field that failed to deserialize.
type FieldErrData struct {
	Record string `json:"record"`
	Field  string `json:"field"`
}

func (e *FieldErrData) Error() string {
	return fmt.Sprintf("%s: failed to read %s", e.Record, e.Field)
}

func (e *FieldErrData) EncodeErrorData() []byte {
	data, err := json.Marshal(e)
	if err != nil {
		return []byte{}
	}

	return data
}

// NewDeserializeError reports a failure to read field of record, keeping cause in the chain.
// Nested record errors are prefixed, so the outermost field reads like "inputs[2].script_sig".
func NewDeserializeError(record, field string, cause error) error {
	var inner *FieldErrData
	if AsData(cause, &inner) {
		field = field + "." + inner.Field
	}

	data := &FieldErrData{
		Record: record,
		Field:  field,
	}

	return NewWithData(ERR_DESERIALIZE, data, data.Error(), cause)
}
