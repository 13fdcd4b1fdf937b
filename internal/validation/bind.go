package validation

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/deppfellow/form-demo/internal/errs"
	"github.com/labstack/echo/v4"
)

// BindError wraps the binder failure so it can be logged while the
// client only sees the generic bad_request body.
type BindError struct {
	*errs.HTTPError
	Cause error
}

// Unwrap exposes both the client facing error and the binder cause, so
// errors.As finds either of them.
func (e *BindError) Unwrap() []error {
	return []error{e.HTTPError, e.Cause}
}

func newBindError(payload any, cause error) *BindError {
	return &BindError{
		HTTPError: errs.NewBadRequestError(errs.MessageBadRequest),
		Cause:     fmt.Errorf("bind %T: %w", payload, cause),
	}
}

// Bind decodes a JSON object body into payload, field by field.
//
// Flow:
//  1. An empty body binds nothing; every field stays absent.
//  2. A body that is not a JSON object (malformed JSON, an array, a
//     non-JSON content type) becomes a 400 "bad_request".
//  3. Each struct field is looked up by its json tag and converted with
//     the lax rules of fieldValue. A value that cannot be converted
//     leaves the field absent, so the form rules or forceCode decide
//     the answer instead of the decoder.
//
// payload must be a non-nil pointer to a flat struct of string, integer
// and bool fields (or pointers to them).
func Bind(c echo.Context, payload any) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return nil
	}

	if ctype := req.Header.Get(echo.HeaderContentType); !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		return newBindError(payload, echo.ErrUnsupportedMediaType)
	}

	var fields map[string]any
	if err := c.Echo().JSONSerializer.Deserialize(c, &fields); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return newBindError(payload, err)
	}

	return assignFields(payload, fields)
}

func assignFields(payload any, fields map[string]any) error {
	rv := reflect.ValueOf(payload)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("bind: payload must be a non-nil struct pointer, got %T", payload)
	}

	target := rv.Elem()
	rt := target.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}

		raw, ok := fields[name]
		if !ok || raw == nil {
			continue
		}

		ft := field.Type
		isPtr := ft.Kind() == reflect.Pointer
		if isPtr {
			ft = ft.Elem()
		}

		v, ok := fieldValue(raw, ft)
		if !ok {
			continue
		}

		if isPtr {
			p := reflect.New(ft)
			p.Elem().Set(v)
			v = p
		}
		target.Field(i).Set(v)
	}

	return nil
}
