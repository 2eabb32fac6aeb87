package response

import (
	"bytes"
	"encoding/json"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the success body. Fields are declared in lexicographic key
// order so the encoded object keys come out sorted.
type Envelope struct {
	Code    int    `json:"code"`
	Data    any    `json:"data"`
	Message string `json:"message"`
	Status  string `json:"status"`
	Success bool   `json:"success"`
}

// ErrorEnvelope is the error body, same ordering rule as Envelope.
type ErrorEnvelope struct {
	Code    int    `json:"code"`
	Errors  any    `json:"errors"`
	Message string `json:"message"`
	Status  string `json:"status"`
	Success bool   `json:"success"`
}

func NewEnvelope(data any, message string, code int) Envelope {
	return Envelope{
		Code:    code,
		Data:    data,
		Message: message,
		Status:  StatusFor(code),
		Success: !InError(code),
	}
}

func NewErrorEnvelope(errs any, message string, code int) ErrorEnvelope {
	return ErrorEnvelope{
		Code:    code,
		Errors:  errs,
		Message: message,
		Status:  StatusFor(code),
		Success: !InError(code),
	}
}

// InError reports whether code falls in the failing range [300, 1000).
func InError(code int) bool {
	return code >= 300 && code < 1000
}

func StatusFor(code int) string {
	if InError(code) {
		return StatusError
	}
	return StatusSuccess
}

// encodeJSON marshals without HTML escaping and without the trailing newline
// json.Encoder appends.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
