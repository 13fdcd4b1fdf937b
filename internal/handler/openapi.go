package handler

import (
	"embed"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/deppfellow/form-demo/internal/config"
	"github.com/deppfellow/form-demo/internal/form"
	"github.com/deppfellow/form-demo/internal/server"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

//go:embed static/openapi.html
var staticFiles embed.FS

const (
	// FormRoutePrefix is the path prefix of every form endpoint.
	FormRoutePrefix = "/api/demo"

	apiVersion     = "0.1.0"
	schemaRefBase  = "#/components/schemas/"
	responseSchema = "APIResponse"
)

// OpenAPIHandler serves the generated OpenAPI document and the docs UI
// that loads it.
type OpenAPIHandler struct {
	Handler

	once sync.Once
	doc  *openapi3.T
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeSpec writes the OpenAPI document as JSON. The document only
// depends on the request types, so it is built once.
func (h *OpenAPIHandler) ServeSpec(c echo.Context) error {
	h.once.Do(func() {
		h.doc = NewOpenAPIDocument()
	})

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.JSON(http.StatusOK, h.doc)
}

// ServeOpenAPIUI serves the embedded docs page.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := staticFiles.ReadFile("static/openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	// Prevent caching of the docs UI page.
	c.Response().Header().Set("Cache-Control", "no-cache")

	if err := c.HTMLBlob(http.StatusOK, page); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}

// NewOpenAPIDocument describes the form endpoints and /health.
func NewOpenAPIDocument() *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       config.ServiceName,
			Description: "Form validation demo backend",
			Version:     apiVersion,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{},
		},
	}

	respSchema := openapi3.NewObjectSchema().
		WithProperty("message", openapi3.NewStringSchema()).
		WithProperty("code", openapi3.NewIntegerSchema())
	respSchema.Required = []string{"message", "code"}
	doc.Components.Schemas[responseSchema] = openapi3.NewSchemaRef("", respSchema)
	respRef := openapi3.NewSchemaRef(schemaRefBase+responseSchema, respSchema)

	for _, kind := range form.Kinds {
		req, err := form.NewRequest(kind)
		if err != nil {
			continue
		}

		name := schemaName(req)
		schema := requestSchema(req)
		doc.Components.Schemas[name] = openapi3.NewSchemaRef("", schema)

		op := &openapi3.Operation{
			OperationID: "submit" + strings.TrimSuffix(name, "Request"),
			Summary:     fmt.Sprintf("Validate the %s form", kind),
			Tags:        []string{"forms"},
			RequestBody: &openapi3.RequestBodyRef{
				Value: openapi3.NewRequestBody().
					WithRequired(true).
					WithJSONSchemaRef(openapi3.NewSchemaRef(schemaRefBase+name, schema)),
			},
			Responses: formResponses(respRef),
		}

		doc.Paths.Set(FormRoutePrefix+"/"+kind.String(), &openapi3.PathItem{Post: op})
	}

	health := openapi3.NewObjectSchema().
		WithProperty("status", openapi3.NewStringSchema().WithEnum("ok"))
	healthResponses := &openapi3.Responses{}
	healthResponses.Set("200", &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription("Service is alive").
			WithJSONSchema(health),
	})
	doc.Paths.Set("/health", &openapi3.PathItem{
		Get: &openapi3.Operation{
			OperationID: "health",
			Summary:     "Liveness check",
			Tags:        []string{"system"},
			Responses:   healthResponses,
		},
	})

	return doc
}

func formResponses(ref *openapi3.SchemaRef) *openapi3.Responses {
	responses := &openapi3.Responses{}
	for _, r := range []struct {
		status      string
		description string
	}{
		{"200", "All rules passed, or forceCode 200"},
		{"400", "A field rule failed, or a forced 400"},
		{"500", "Forced server error"},
	} {
		responses.Set(r.status, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription(r.description).
				WithJSONSchemaRef(ref),
		})
	}
	return responses
}

func schemaName(req form.Request) string {
	return reflect.TypeOf(req).Elem().Name()
}

// requestSchema reflects a request struct into an object schema. Every
// field is optional on the wire; presence rules are enforced by the
// form rules, not by the schema.
func requestSchema(req form.Request) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()

	t := reflect.TypeOf(req).Elem()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}

		prop := fieldSchema(field.Type)
		if prop == nil {
			continue
		}
		if name == "forceCode" {
			prop.WithEnum(200, 400, 500)
			prop.Description = "Overrides validation when 200, 400 or 500"
		}

		schema.WithProperty(name, prop)
	}

	return schema
}

func fieldSchema(t reflect.Type) *openapi3.Schema {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return openapi3.NewStringSchema()
	case reflect.Int, reflect.Int32, reflect.Int64:
		return openapi3.NewIntegerSchema()
	case reflect.Bool:
		return openapi3.NewBoolSchema()
	}
	return nil
}
