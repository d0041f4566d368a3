package http

import (
	"errors"
	"fmt"
	"net/http"

	"smart-task-analyzer/internal/analysis"
	pkgErrors "smart-task-analyzer/pkg/errors"
)

const misconfiguredMessage = "LLM API key is not set. Configure OPENAI_API_KEY or llm.api_key to call the model API."

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors are returned unchanged and end up as a 500.
func (h *handler) mapError(err error) error {
	var (
		gatewayErr *analysis.GatewayError
		schemaErr  *analysis.SchemaError
		dueDateErr *analysis.DueDateError
	)

	switch {
	case errors.Is(err, analysis.ErrEmptyText):
		return pkgErrors.NewHTTPErrorWithDetail(http.StatusUnprocessableEntity, err.Error(), []analysis.FieldError{{
			Field:   "text",
			Type:    typeStringTooShort,
			Message: "String should have at least 1 character",
		}})
	case errors.Is(err, analysis.ErrMisconfigured):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, misconfiguredMessage)
	case errors.As(err, &gatewayErr):
		if errors.Is(gatewayErr.Kind, analysis.ErrInvalidJSON) {
			return pkgErrors.NewHTTPError(http.StatusBadGateway, fmt.Sprintf("Invalid JSON from model: %v", gatewayErr.Err))
		}
		return pkgErrors.NewHTTPError(http.StatusBadGateway, fmt.Sprintf("LLM API error: %v", gatewayErr.Err))
	case errors.As(err, &schemaErr):
		return pkgErrors.NewHTTPErrorWithDetail(http.StatusUnprocessableEntity, schemaErr.Error(), schemaErr.Fields)
	case errors.As(err, &dueDateErr):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, fmt.Sprintf("Invalid due_date: %v", dueDateErr.Err))
	default:
		return err
	}
}
