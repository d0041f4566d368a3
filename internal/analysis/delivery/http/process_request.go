package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"smart-task-analyzer/internal/analysis"
	pkgErrors "smart-task-analyzer/pkg/errors"
)

const (
	typeMissing        = "missing"
	typeStringTooShort = "string_too_short"
	typeStringType     = "string_type"
	typeJSONInvalid    = "json_invalid"
	typeValueError     = "value_error"
)

// processAnalyzeReq binds and validates the analyze request body.
// Any problem becomes a 422 carrying field-level detail.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPErrorWithDetail(
			http.StatusUnprocessableEntity,
			"invalid request body",
			bindingFieldErrors(err),
		)
	}
	return req, nil
}

func bindingFieldErrors(err error) []analysis.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]analysis.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, toFieldError(fe))
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []analysis.FieldError{{
			Field:   typeErr.Field,
			Type:    typeStringType,
			Message: "Input should be a valid string",
		}}
	}

	return []analysis.FieldError{{
		Field:   "body",
		Type:    typeJSONInvalid,
		Message: "JSON decode error: " + err.Error(),
	}}
}

func toFieldError(fe validator.FieldError) analysis.FieldError {
	out := analysis.FieldError{Field: jsonFieldName(reflect.TypeOf(analyzeReq{}), fe.StructField())}
	switch fe.Tag() {
	case "required":
		out.Type = typeMissing
		out.Message = "Field required"
	case "min":
		out.Type = typeStringTooShort
		out.Message = "String should have at least " + fe.Param() + " character"
	default:
		out.Type = typeValueError
		out.Message = fe.Error()
	}
	return out
}

// jsonFieldName resolves a struct field to its json key.
func jsonFieldName(t reflect.Type, structField string) string {
	f, ok := t.FieldByName(structField)
	if !ok {
		return structField
	}
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return structField
	}
	return name
}
