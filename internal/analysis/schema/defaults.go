package schema

import "smart-task-analyzer/internal/analysis"

// ApplyDefaults returns a copy of raw with defaults filled in:
//   - priority absent or null        -> "medium"
//   - category absent, null or ""    -> "general"
//   - due_date absent                -> null
//
// No key is removed and raw itself is left untouched.
func ApplyDefaults(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw)+3)
	for k, v := range raw {
		out[k] = v
	}

	if out[analysis.FieldPriority] == nil {
		out[analysis.FieldPriority] = string(analysis.DefaultPriority)
	}

	switch v := out[analysis.FieldCategory].(type) {
	case nil:
		out[analysis.FieldCategory] = analysis.DefaultCategory
	case string:
		if v == "" {
			out[analysis.FieldCategory] = analysis.DefaultCategory
		}
	}

	if _, ok := out[analysis.FieldDueDate]; !ok {
		out[analysis.FieldDueDate] = nil
	}

	return out
}
