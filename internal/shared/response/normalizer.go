// Package response builds the canonical JSON envelope returned by every API
// endpoint and projects domain records into their public representation.
package response

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"apikit/internal/shared/blank"
)

const (
	defaultSuccessCode = http.StatusOK
	defaultErrorCode   = http.StatusNotFound
)

// MessageCatalog resolves the default message for a status code.
type MessageCatalog interface {
	Message(locale string, code int) string
}

type Normalizer struct {
	registry *Registry
	catalog  MessageCatalog
	logger   *slog.Logger
}

type Option func(*Normalizer)

func WithCatalog(catalog MessageCatalog) Option {
	return func(n *Normalizer) {
		n.catalog = catalog
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(n *Normalizer) {
		n.logger = logger
	}
}

func NewNormalizer(registry *Registry, opts ...Option) *Normalizer {
	if registry == nil {
		registry = NewRegistry()
	}
	n := &Normalizer{registry: registry}
	for _, opt := range opts {
		opt(n)
	}
	if n.logger == nil {
		n.logger = slog.Default()
	}
	return n
}

// Success shapes data into a success envelope.
//
// A nil data, including a nil slice or map, is the empty default and a zero
// code means 200. A string data replaces message. PUT and DELETE requests force 201 and 202 whatever code
// the caller passed.
func (n *Normalizer) Success(r *http.Request, data any, message string, code int) Response {
	if code == 0 {
		code = defaultSuccessCode
	}

	switch value := data.(type) {
	case nil:
		data = []any{}
	case Paginator:
		if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer && rv.IsNil() {
			data = []any{}
			break
		}
		meta := value.PageMeta()
		meta["data"] = n.projectCollection(value.PageRecords())
		data = meta
	default:
		if isNilContainer(data) {
			data = []any{}
			break
		}
		if text, ok := stringValue(data); ok {
			message = text
			data = []any{}
			break
		}
		data = n.projectCollection(data)
	}

	if isContainer(data) && !blank.Is(data) {
		data = n.projectValues(data)
	} else {
		data = n.projectRecord(data)
	}

	if r != nil {
		switch r.Method {
		case http.MethodPut:
			code = http.StatusCreated
		case http.MethodDelete:
			code = http.StatusAccepted
		}
	}

	return n.build(NewEnvelope(data, message, code), code, requestLocale(r))
}

// Error shapes errs into an error envelope. A zero code means 404.
//
// A string (or error) payload with no message becomes the message. When the
// message is still empty, the catalog supplies one for the code.
func (n *Normalizer) Error(r *http.Request, errs any, message string, code int) Response {
	if code == 0 {
		code = defaultErrorCode
	}
	locale := requestLocale(r)

	if err, ok := errs.(error); ok {
		errs = err.Error()
	}
	if text, ok := stringValue(errs); ok && message == "" {
		message = text
		errs = ""
	}
	if message == "" {
		message = n.defaultMessage(locale, code)
	}
	if !blank.Is(errs) {
		errs = n.projectRecord(errs)
	}

	resp := n.build(NewErrorEnvelope(errs, message, code), code, locale)
	resp.Failure = true
	return resp
}

func (n *Normalizer) build(payload any, code int, locale string) Response {
	body, err := encodeJSON(payload)
	if err != nil {
		n.logger.Error("response encoding failed",
			"event", "response_encode_failed",
			"module", "internal/shared/response",
			"layer", "platform",
			"code", code,
			"error", err.Error(),
		)
		code = http.StatusInternalServerError
		body, _ = encodeJSON(NewErrorEnvelope("", n.defaultMessage(locale, code), code))
		return Response{
			Code:    code,
			Body:    body,
			Header:  jsonHeaders(),
			Failure: true,
		}
	}
	return Response{
		Code:   code,
		Body:   body,
		Header: jsonHeaders(),
	}
}

func (n *Normalizer) defaultMessage(locale string, code int) string {
	if n.catalog != nil {
		if message := n.catalog.Message(locale, code); message != "" {
			return message
		}
	}
	return http.StatusText(code)
}

// projectCollection replaces every element of a non-empty Collection with
// the output of the projector registered for the first element's type.
func (n *Normalizer) projectCollection(data any) any {
	items, ok := data.(Collection)
	if !ok || len(items) == 0 {
		return data
	}
	first, ok := items[0].(Record)
	if !ok {
		return data
	}
	projector, ok := n.registry.Lookup(first)
	if !ok {
		return data
	}

	out := make(Collection, len(items))
	for i, item := range items {
		if record, ok := item.(Record); ok {
			if value := reflect.ValueOf(record); value.Kind() == reflect.Pointer && value.IsNil() {
				out[i] = item
				continue
			}
			out[i] = projector(record)
			continue
		}
		out[i] = item
	}
	return out
}

// projectRecord projects a record, or walks an array/mapping projecting
// every value. Anything else is returned unchanged.
func (n *Normalizer) projectRecord(data any) any {
	switch value := data.(type) {
	case nil, Collection, json.RawMessage, []byte, string:
		if isNilContainer(data) {
			return []any{}
		}
		return data
	case Record:
		if projector, ok := n.registry.Lookup(value); ok {
			return projector(value)
		}
		return data
	}
	if isNilContainer(data) {
		return []any{}
	}
	if !isContainer(data) || blank.Is(data) {
		return data
	}
	return n.projectValues(data)
}

// projectValues applies projectRecord to every value of an array or a
// mapping. Typed slices and maps come back as []any and map[string]any.
// Non-string map keys are formatted with fmt.Sprint.
func (n *Normalizer) projectValues(data any) any {
	switch value := data.(type) {
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = n.projectRecord(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(value))
		for key, item := range value {
			out[key] = n.projectRecord(item)
		}
		return out
	}

	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = n.projectRecord(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[mapKey(iter.Key())] = n.projectRecord(iter.Value().Interface())
		}
		return out
	default:
		return data
	}
}

// isContainer reports whether data is an array or a mapping. Collections and
// byte slices are not containers here.
func isContainer(data any) bool {
	switch data.(type) {
	case nil, Collection, json.RawMessage, []byte:
		return false
	case []any, map[string]any:
		return true
	}
	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Type().Elem().Kind() != reflect.Uint8
	case reflect.Map:
		return true
	default:
		return false
	}
}

func mapKey(key reflect.Value) string {
	if key.Kind() == reflect.String {
		return key.String()
	}
	return fmt.Sprint(key.Interface())
}

// isNilContainer reports whether data is a typed nil slice or map.
func isNilContainer(data any) bool {
	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.IsNil()
	default:
		return false
	}
}

// stringValue unwraps strings and named string types. Records keep their
// projection even when their underlying type is a string.
func stringValue(data any) (string, bool) {
	if _, ok := data.(Record); ok {
		return "", false
	}
	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

func requestLocale(r *http.Request) string {
	if r == nil {
		return ""
	}
	return r.Header.Get("Accept-Language")
}
