// Package models contains the admin API data models and the helpers they use
// to convert to and from JSON objects.
//
// Every model has a ToMap method and an XxxFromMap constructor. Keys that no
// declared field consumes are kept in AdditionalProperties and written back on
// encode, so decode followed by encode loses nothing.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/i2y/acapyclient/pkg/types"
)

// Model is a value that flattens to a JSON object.
type Model interface {
	ToMap() map[string]any
}

// Validator is implemented by request models with required fields. The client
// calls Validate before a request is sent.
type Validator interface {
	Validate() error
}

// Object is a free-form JSON object used where no typed model exists.
type Object map[string]any

func (o Object) ToMap() map[string]any { return map[string]any(o) }

// DecodeFunc builds a model from a JSON object.
type DecodeFunc[M any] func(map[string]any) (M, error)

// DecodeObject parses data as a single JSON object. Numbers are kept as
// json.Number so integers survive a round trip unchanged.
func DecodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotObject
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after JSON object")
	}
	return m, nil
}

func marshalModel(m Model) ([]byte, error) {
	return json.Marshal(m.ToMap())
}

func unmarshalModel[M any](data []byte, dst *M, decode DecodeFunc[M]) error {
	m, err := DecodeObject(data)
	if err != nil {
		return err
	}
	v, err := decode(m)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// Reader consumes a shallow copy of a JSON object one key at a time. The first
// failure is kept and reported by Err; later reads still pop their keys.
type Reader struct {
	model string
	m     map[string]any
	err   error
}

// NewReader copies src so the caller's map is never modified.
func NewReader(model string, src map[string]any) *Reader {
	m := make(map[string]any, len(src))
	for k, v := range src {
		m[k] = v
	}
	return &Reader{model: model, m: m}
}

// Err returns the first decode failure.
func (r *Reader) Err() error { return r.err }

// Rest returns the keys left after all declared fields were read.
func (r *Reader) Rest() map[string]any {
	if len(r.m) == 0 {
		return nil
	}
	return r.m
}

func (r *Reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *Reader) pop(key string, required bool) (any, bool) {
	v, ok := r.m[key]
	if !ok {
		if required {
			r.fail(&MissingFieldError{Model: r.model, Key: key})
		}
		return nil, false
	}
	delete(r.m, key)
	return v, true
}

func readRequired[T any](r *Reader, key, want string, conv func(any) (T, bool)) T {
	var zero T
	v, ok := r.pop(key, true)
	if !ok {
		return zero
	}
	out, ok := conv(v)
	if !ok {
		r.fail(&FieldTypeError{Model: r.model, Key: key, Want: want, Got: jsonKind(v)})
		return zero
	}
	return out
}

func readOptional[T any](r *Reader, key, want string, conv func(any) (T, bool)) types.Opt[T] {
	v, ok := r.pop(key, false)
	if !ok {
		return types.Opt[T]{}
	}
	if v == nil {
		return types.Null[T]()
	}
	out, ok := conv(v)
	if !ok {
		r.fail(&FieldTypeError{Model: r.model, Key: key, Want: want, Got: jsonKind(v)})
		return types.Opt[T]{}
	}
	return types.Some(out)
}

func (r *Reader) String(key string) string { return readRequired(r, key, "string", asString) }

func (r *Reader) OptString(key string) types.Opt[string] {
	return readOptional(r, key, "string", asString)
}

func (r *Reader) Bool(key string) bool { return readRequired(r, key, "boolean", asBool) }

func (r *Reader) OptBool(key string) types.Opt[bool] { return readOptional(r, key, "boolean", asBool) }

func (r *Reader) Int(key string) int { return readRequired(r, key, "integer", asInt) }

func (r *Reader) OptInt(key string) types.Opt[int] { return readOptional(r, key, "integer", asInt) }

func (r *Reader) Strings(key string) []string {
	return readRequired(r, key, "array of strings", asStrings)
}

func (r *Reader) OptStrings(key string) types.Opt[[]string] {
	return readOptional(r, key, "array of strings", asStrings)
}

func (r *Reader) Object(key string) map[string]any { return readRequired(r, key, "object", asObject) }

func (r *Reader) OptObject(key string) types.Opt[map[string]any] {
	return readOptional(r, key, "object", asObject)
}

func (r *Reader) OptStringMap(key string) types.Opt[map[string]string] {
	return readOptional(r, key, "object of strings", asStringMap)
}

// OptAny reads a value of any JSON shape.
func (r *Reader) OptAny(key string) types.Opt[any] {
	return readOptional(r, key, "any", func(v any) (any, bool) { return v, true })
}

func enumConv[E ~string](r *Reader, key string, parse func(string) (E, error)) func(any) (E, bool) {
	return func(v any) (E, bool) {
		s, ok := v.(string)
		if !ok {
			return "", false
		}
		e, err := parse(s)
		if err != nil {
			r.fail(fmt.Errorf("%s.%s: %w", r.model, key, err))
		}
		return e, true
	}
}

// Enum reads a required enum field, validating it with parse.
func Enum[E ~string](r *Reader, key string, parse func(string) (E, error)) E {
	return readRequired(r, key, "string", enumConv(r, key, parse))
}

// OptEnum reads an omittable enum field.
func OptEnum[E ~string](r *Reader, key string, parse func(string) (E, error)) types.Opt[E] {
	return readOptional(r, key, "string", enumConv(r, key, parse))
}

func nestedConv[M any](r *Reader, key string, decode DecodeFunc[M]) func(any) (M, bool) {
	return func(v any) (M, bool) {
		var zero M
		obj, ok := v.(map[string]any)
		if !ok {
			return zero, false
		}
		out, err := decode(obj)
		if err != nil {
			r.fail(fmt.Errorf("%s.%s: %w", r.model, key, err))
		}
		return out, true
	}
}

func listConv[M any](r *Reader, key string, decode DecodeFunc[M]) func(any) ([]M, bool) {
	return func(v any) ([]M, bool) {
		items, ok := v.([]any)
		if !ok {
			return nil, false
		}
		out := make([]M, 0, len(items))
		for i, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				r.fail(&FieldTypeError{Model: r.model, Key: fmt.Sprintf("%s[%d]", key, i), Want: "object", Got: jsonKind(item)})
				return out, true
			}
			m, err := decode(obj)
			if err != nil {
				r.fail(fmt.Errorf("%s.%s[%d]: %w", r.model, key, i, err))
				return out, true
			}
			out = append(out, m)
		}
		return out, true
	}
}

// Nested reads a required nested model.
func Nested[M any](r *Reader, key string, decode DecodeFunc[M]) M {
	return readRequired(r, key, "object", nestedConv(r, key, decode))
}

// OptNested reads an omittable nested model.
func OptNested[M any](r *Reader, key string, decode DecodeFunc[M]) types.Opt[M] {
	return readOptional(r, key, "object", nestedConv(r, key, decode))
}

// List reads a required array of nested models.
func List[M any](r *Reader, key string, decode DecodeFunc[M]) []M {
	return readRequired(r, key, "array of objects", listConv(r, key, decode))
}

// OptList reads an omittable array of nested models.
func OptList[M any](r *Reader, key string, decode DecodeFunc[M]) types.Opt[[]M] {
	return readOptional(r, key, "array of objects", listConv(r, key, decode))
}

// Writer builds the JSON object for a model. Extras go in first so declared
// fields written afterwards win on a key clash.
type Writer struct {
	m map[string]any
}

func NewWriter(extras map[string]any) *Writer {
	m := make(map[string]any, len(extras)+8)
	for k, v := range extras {
		m[k] = v
	}
	return &Writer{m: m}
}

// Set writes a required field.
func (w *Writer) Set(key string, v any) { w.m[key] = v }

// SetList writes a required list. A nil list is written as [].
func SetList[T any](w *Writer, key string, v []T) {
	if v == nil {
		v = []T{}
	}
	w.m[key] = v
}

// Map returns the built object.
func (w *Writer) Map() map[string]any { return w.m }

// Put writes an omittable field unless it is not provided.
func Put[T any](w *Writer, key string, o types.Opt[T]) {
	PutFunc(w, key, o, func(v T) any { return v })
}

// PutFunc is Put with a conversion applied to the present value.
func PutFunc[T any](w *Writer, key string, o types.Opt[T], enc func(T) any) {
	if !o.IsSet() {
		return
	}
	if o.IsNull() {
		w.m[key] = nil
		return
	}
	v, _ := o.Get()
	w.m[key] = enc(v)
}

// PutEnum writes an omittable enum as its wire string.
func PutEnum[E ~string](w *Writer, key string, o types.Opt[E]) {
	PutFunc(w, key, o, func(e E) any { return string(e) })
}

// PutModel writes an omittable nested model.
func PutModel[M Model](w *Writer, key string, o types.Opt[M]) {
	PutFunc(w, key, o, func(m M) any { return m.ToMap() })
}

// PutModels writes an omittable list of nested models.
func PutModels[M Model](w *Writer, key string, o types.Opt[[]M]) {
	PutFunc(w, key, o, func(ms []M) any { return Maps(ms) })
}

// Maps flattens a list of models, preserving order.
func Maps[M Model](ms []M) []any {
	out := make([]any, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ToMap())
	}
	return out
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}

func asStrings(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return s, true
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	}
	return nil, false
}

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asStringMap(v any) (map[string]string, bool) {
	switch m := v.(type) {
	case map[string]string:
		return m, true
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, item := range m {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out[k] = s
		}
		return out, true
	}
	return nil, false
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
