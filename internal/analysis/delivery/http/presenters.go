package http

import (
	"smart-task-analyzer/internal/analysis"
)

// --- Request DTOs ---

type analyzeReq struct {
	Text *string `json:"text" binding:"required,min=1"`
}

func (r analyzeReq) toInput() analysis.AnalyzeInput {
	return analysis.AnalyzeInput{Text: *r.Text}
}

// --- Response DTOs ---

type analyzeResp struct {
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
	Category    string  `json:"category"`
}

func (h *handler) newAnalyzeResp(out analysis.AnalyzeOutput) analyzeResp {
	a := out.Analysis
	return analyzeResp{
		Description: a.Description,
		Priority:    string(a.Priority),
		DueDate:     a.DueDate,
		Category:    a.Category,
	}
}
