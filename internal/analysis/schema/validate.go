package schema

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"smart-task-analyzer/internal/analysis"
)

// Field error types.
const (
	TypeMissing        = "missing"
	TypeStringType     = "string_type"
	TypeStringTooShort = "string_too_short"
	TypeEnum           = "enum"
	TypeInvalid        = "value_error"
)

// taskAnalysisSchema is the strongly-typed target of the second parse phase.
type taskAnalysisSchema struct {
	Description string  `json:"description" validate:"required"`
	Priority    string  `json:"priority"    validate:"oneof=low medium high"`
	DueDate     *string `json:"due_date"`
	Category    string  `json:"category"    validate:"required"`
}

// fieldOrder fixes the order in which violations are reported.
var fieldOrder = []string{
	analysis.FieldDescription,
	analysis.FieldPriority,
	analysis.FieldDueDate,
	analysis.FieldCategory,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate is the second parse phase: it checks a defaulted object against
// the TaskAnalysis shape and returns the typed result. All violations are
// reported together in a *analysis.SchemaError. Keys other than the four
// TaskAnalysis fields are ignored.
func Validate(raw map[string]any) (analysis.TaskAnalysis, error) {
	var s taskAnalysisSchema
	violations := make(map[string]analysis.FieldError)

	assignString := func(field string, dst *string) {
		switch v := raw[field].(type) {
		case nil:
			// An explicit null is a type error; absence is left to "required".
			if _, present := raw[field]; present {
				violations[field] = stringTypeError(field)
			}
		case string:
			*dst = v
		default:
			violations[field] = stringTypeError(field)
		}
	}
	assignString(analysis.FieldDescription, &s.Description)
	assignString(analysis.FieldPriority, &s.Priority)
	assignString(analysis.FieldCategory, &s.Category)

	switch v := raw[analysis.FieldDueDate].(type) {
	case nil:
	case string:
		s.DueDate = &v
	default:
		violations[analysis.FieldDueDate] = stringTypeError(analysis.FieldDueDate)
	}

	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return analysis.TaskAnalysis{}, err
		}
		for _, fe := range verrs {
			if _, seen := violations[fe.Field()]; seen {
				continue
			}
			_, present := raw[fe.Field()]
			violations[fe.Field()] = toFieldError(fe, present)
		}
	}

	if len(violations) > 0 {
		fields := make([]analysis.FieldError, 0, len(violations))
		for _, name := range fieldOrder {
			if fe, ok := violations[name]; ok {
				fields = append(fields, fe)
			}
		}
		return analysis.TaskAnalysis{}, &analysis.SchemaError{Fields: fields}
	}

	return analysis.TaskAnalysis{
		Description: s.Description,
		Priority:    analysis.Priority(s.Priority),
		DueDate:     s.DueDate,
		Category:    s.Category,
	}, nil
}

func stringTypeError(field string) analysis.FieldError {
	return analysis.FieldError{Field: field, Type: TypeStringType, Message: "Input should be a valid string"}
}

func toFieldError(fe validator.FieldError, present bool) analysis.FieldError {
	out := analysis.FieldError{Field: fe.Field()}
	switch fe.Tag() {
	case "required":
		if present {
			out.Type = TypeStringTooShort
			out.Message = "String should have at least 1 character"
		} else {
			out.Type = TypeMissing
			out.Message = "Field required"
		}
	case "oneof":
		out.Type = TypeEnum
		out.Message = "Input should be " + quoteList(strings.Fields(fe.Param()))
	default:
		out.Type = TypeInvalid
		out.Message = fe.Error()
	}
	return out
}

// quoteList renders ["a","b","c"] as 'a', 'b' or 'c'.
func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = "'" + it + "'"
	}
	if len(quoted) <= 1 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
