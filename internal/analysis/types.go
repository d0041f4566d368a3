package analysis

// Priority is the urgency level assigned to a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Default values applied to fields the collaborator left out.
const (
	DefaultPriority = PriorityMedium
	DefaultCategory = "general"
)

// Keys of the collaborator's JSON object.
const (
	FieldDescription = "description"
	FieldPriority    = "priority"
	FieldDueDate     = "due_date"
	FieldCategory    = "category"
)

// TaskAnalysis is the structured record extracted from free text.
// DueDate is nil when the task has no deadline.
type TaskAnalysis struct {
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	DueDate     *string  `json:"due_date"`
	Category    string   `json:"category"`
}

// --- UseCase Inputs ---

type AnalyzeInput struct {
	Text string
}

// --- UseCase Outputs ---

type AnalyzeOutput struct {
	Analysis TaskAnalysis
}

// FieldError describes one violated field constraint.
type FieldError struct {
	Field   string `json:"field"`
	Type    string `json:"type"`
	Message string `json:"message"`
}
