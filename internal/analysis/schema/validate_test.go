package schema_test

import (
	"errors"
	"reflect"
	"testing"

	"smart-task-analyzer/internal/analysis"
	"smart-task-analyzer/internal/analysis/schema"
)

func strPtr(s string) *string { return &s }

func TestValidate_Success(t *testing.T) {
	raw := map[string]any{
		"description": "Finish the report",
		"priority":    "high",
		"due_date":    "2026-02-11T15:00:00",
		"category":    "work",
		"confidence":  0.9,
	}

	got, err := schema.Validate(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := analysis.TaskAnalysis{
		Description: "Finish the report",
		Priority:    analysis.PriorityHigh,
		DueDate:     strPtr("2026-02-11T15:00:00"),
		Category:    "work",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Validate() = %+v, want %+v", got, want)
	}
}

func TestValidate_NullDueDate(t *testing.T) {
	got, err := schema.Validate(schema.ApplyDefaults(map[string]any{"description": "Call mom"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DueDate != nil {
		t.Errorf("expected nil due date, got %q", *got.DueDate)
	}
	if got.Priority != analysis.PriorityMedium || got.Category != "general" {
		t.Errorf("defaults not carried through: %+v", got)
	}
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want []analysis.FieldError
	}{
		{
			name: "Missing description",
			raw:  map[string]any{"priority": "low", "category": "x", "due_date": nil},
			want: []analysis.FieldError{
				{Field: "description", Type: schema.TypeMissing, Message: "Field required"},
			},
		},
		{
			name: "Empty description",
			raw:  map[string]any{"description": "", "priority": "low", "category": "x", "due_date": nil},
			want: []analysis.FieldError{
				{Field: "description", Type: schema.TypeStringTooShort, Message: "String should have at least 1 character"},
			},
		},
		{
			name: "Null description",
			raw:  map[string]any{"description": nil, "priority": "low", "category": "x", "due_date": nil},
			want: []analysis.FieldError{
				{Field: "description", Type: schema.TypeStringType, Message: "Input should be a valid string"},
			},
		},
		{
			name: "Priority outside enum",
			raw:  map[string]any{"description": "a", "priority": "urgent", "category": "x", "due_date": nil},
			want: []analysis.FieldError{
				{Field: "priority", Type: schema.TypeEnum, Message: "Input should be 'low', 'medium' or 'high'"},
			},
		},
		{
			name: "Wrong types everywhere",
			raw:  map[string]any{"description": 42.0, "priority": true, "category": []any{"a"}, "due_date": 20260211.0},
			want: []analysis.FieldError{
				{Field: "description", Type: schema.TypeStringType, Message: "Input should be a valid string"},
				{Field: "priority", Type: schema.TypeStringType, Message: "Input should be a valid string"},
				{Field: "due_date", Type: schema.TypeStringType, Message: "Input should be a valid string"},
				{Field: "category", Type: schema.TypeStringType, Message: "Input should be a valid string"},
			},
		},
		{
			name: "Mixed enum and missing",
			raw:  map[string]any{"priority": "HIGH", "category": "x", "due_date": nil},
			want: []analysis.FieldError{
				{Field: "description", Type: schema.TypeMissing, Message: "Field required"},
				{Field: "priority", Type: schema.TypeEnum, Message: "Input should be 'low', 'medium' or 'high'"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.Validate(tt.raw)
			var schemaErr *analysis.SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("expected SchemaError, got %v", err)
			}
			if !reflect.DeepEqual(schemaErr.Fields, tt.want) {
				t.Errorf("fields = %+v, want %+v", schemaErr.Fields, tt.want)
			}
		})
	}
}
