package validation

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/form-demo/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name    *string `json:"name"`
	Count   *int    `json:"count"`
	Agree   *bool   `json:"agree"`
	Plain   int     `json:"plain"`
	Ignored string  `json:"-"`
}

func ptr[T any](v T) *T { return &v }

func newContext(body, contentType string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBind(t *testing.T) {
	tests := []struct {
		name string
		body string
		want payload
	}{
		{
			name: "exact types",
			body: `{"name":"x","count":3,"agree":true,"plain":7}`,
			want: payload{Name: ptr("x"), Count: ptr(3), Agree: ptr(true), Plain: 7},
		},
		{
			name: "unknown fields are ignored",
			body: `{"name":"x","extra":true}`,
			want: payload{Name: ptr("x")},
		},
		{
			name: "null is absent",
			body: `{"name":null,"count":null}`,
		},
		{
			name: "numeric strings and integral floats",
			body: `{"count":" 2 ","plain":2.0}`,
			want: payload{Count: ptr(2), Plain: 2},
		},
		{
			name: "bool spellings",
			body: `{"agree":"Yes"}`,
			want: payload{Agree: ptr(true)},
		},
		{
			name: "bool from zero",
			body: `{"agree":0}`,
			want: payload{Agree: ptr(false)},
		},
		{
			name: "unconvertible values stay absent",
			body: `{"name":42,"count":"three","agree":"maybe","plain":2.5}`,
		},
		{
			name: "integer overflow stays absent",
			body: `{"count":1e300}`,
		},
		{
			name: "json dash tag is skipped",
			body: `{"-":"x","Ignored":"y"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			require.NoError(t, Bind(newContext(tt.body, echo.MIMEApplicationJSON), &p))
			assert.Equal(t, tt.want, p)
		})
	}

	t.Run("empty body leaves everything absent", func(t *testing.T) {
		var p payload
		require.NoError(t, Bind(newContext(``, ""), &p))
		assert.Equal(t, payload{}, p)
	})

	t.Run("non pointer payload", func(t *testing.T) {
		err := Bind(newContext(`{}`, echo.MIMEApplicationJSON), payload{})
		require.Error(t, err)

		var httpErr *errs.HTTPError
		assert.False(t, errors.As(err, &httpErr))
	})
}

func TestBind_BadRequest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		cause       func(t *testing.T, err error)
	}{
		{
			name:        "malformed json",
			body:        `{"name":`,
			contentType: echo.MIMEApplicationJSON,
			cause: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
			},
		},
		{
			name:        "not an object",
			body:        `[1,2]`,
			contentType: echo.MIMEApplicationJSON,
			cause: func(t *testing.T, err error) {
				var echoErr *echo.HTTPError
				assert.ErrorAs(t, err, &echoErr)
			},
		},
		{
			name:        "unsupported content type",
			body:        `name=x`,
			contentType: echo.MIMEApplicationForm,
			cause: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, echo.ErrUnsupportedMediaType)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			err := Bind(newContext(tt.body, tt.contentType), &p)
			require.Error(t, err)

			var httpErr *errs.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
			assert.Equal(t, errs.MessageBadRequest, httpErr.Message)

			tt.cause(t, err)
		})
	}
}
