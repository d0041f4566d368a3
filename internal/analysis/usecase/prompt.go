package usecase

import (
	"fmt"
	"time"
)

// systemPrompt is the instruction sent ahead of every task text.
const systemPrompt = `You are a task parsing assistant. Extract structured fields from the user input.

Return ONLY valid JSON with the following fields:
- description: short task summary
- priority: one of low/medium/high
- due_date: ISO-8601 datetime (e.g., 2026-02-10T15:00:00). If not provided, use null.
- category: short category label (e.g., work, personal, study). If not provided, use "general".

Rules & Defaults:
- If priority is missing, set it to "medium".
- If due_date is missing, set it to null.
- If category is missing, set it to "general".
- Use the user's locale context if time is relative (e.g., "tomorrow at 3pm").
- Do not include any extra keys.
- No markdown, no code blocks, no explanation text.`

const dateFormatISO = "2006-01-02"

// timeContextTemplate gives the model fixed anchors for relative phrases.
const timeContextTemplate = `

CURRENT DATE-TIME (USE FOR RELATIVE DATE/TIME RESOLUTION): %s
- Today: %s (%s)
- Tomorrow: %s
- This week: %s to %s (Monday to Sunday)`

// buildSystemPrompt appends the time context used to resolve relative dates.
// The instruction text itself never changes.
func buildSystemPrompt(now time.Time) string {
	return systemPrompt + buildTimeContext(now)
}

func buildTimeContext(now time.Time) string {
	weekday := int(now.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)
	tomorrow := now.AddDate(0, 0, 1)

	return fmt.Sprintf(
		timeContextTemplate,
		now.Format(time.RFC3339),
		now.Format(dateFormatISO),
		now.Weekday().String(),
		tomorrow.Format(dateFormatISO),
		weekStart.Format(dateFormatISO),
		weekEnd.Format(dateFormatISO),
	)
}
