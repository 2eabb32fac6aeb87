package response

import (
	"errors"
	"net/http"
)

const (
	headerAccept      = "Accept"
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"
	contentTypeUTF8   = "application/json;charset=utf-8"
)

// ErrNilWriter is returned by Response.Write when there is nothing to write to.
var ErrNilWriter = errors.New("response writer is nil")

// Response is an encoded envelope ready to be written.
type Response struct {
	// Code is the envelope code. It may fall outside the HTTP status range.
	Code    int
	Body    []byte
	Header  http.Header
	// Failure marks responses built by Normalizer.Error.
	Failure bool
}

// StatusCode is the HTTP status to write: the envelope code when it is a
// final HTTP status, otherwise 500 for failures and 200 for the rest.
// Informational 1xx codes cannot end a response, so they take the fallback.
func (r Response) StatusCode() int {
	if r.Code >= 200 && r.Code <= 999 {
		return r.Code
	}
	if r.Failure {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}

func (r Response) Write(w http.ResponseWriter) error {
	if w == nil {
		return ErrNilWriter
	}
	header := w.Header()
	for key, values := range r.Header {
		header[key] = append([]string(nil), values...)
	}
	w.WriteHeader(r.StatusCode())
	_, err := w.Write(r.Body)
	return err
}

func jsonHeaders() http.Header {
	header := make(http.Header, 2)
	header.Set(headerAccept, contentTypeJSON)
	header.Set(headerContentType, contentTypeUTF8)
	return header
}
