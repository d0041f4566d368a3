package schema_test

import (
	"testing"

	"smart-task-analyzer/internal/analysis/schema"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantDesc any
		wantErr  bool
	}{
		{name: "Plain object", in: `{"description":"Buy milk"}`, wantDesc: "Buy milk"},
		{name: "Surrounding whitespace", in: "\n  {\"description\":\"x\"}  \n", wantDesc: "x"},
		{name: "Json fence", in: "```json\n{\"description\":\"fenced\"}\n```", wantErr: true},
		{name: "Bare fence", in: "```\n{\"description\":\"bare\"}\n```", wantErr: true},
		{name: "Prose", in: "Sorry, I can't help", wantErr: true},
		{name: "Prose around object", in: `Here you go: {"description":"x"}`, wantErr: true},
		{name: "Array", in: `[{"description":"x"}]`, wantErr: true},
		{name: "Bare string", in: `"hello"`, wantErr: true},
		{name: "Null", in: `null`, wantErr: true},
		{name: "Trailing data", in: `{"description":"x"} {}`, wantErr: true},
		{name: "Empty", in: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schema.Decode(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got["description"] != tt.wantDesc {
				t.Errorf("description = %v, want %v", got["description"], tt.wantDesc)
			}
		})
	}
}
