package tools

import "encoding/json"

type ApproveSummaryInput struct{}

var ApproveSummaryDefinition = ToolDefinition{
	Name: "approve_summary",
	Description: `Signal that the user has approved the current standup draft as complete.

Only use when the reply's dominant intent is agreement or completeness
("looks good", "that's everything", a thumbs-up). Never infer approval from
silence or from a content update.
`,
	InputSchema: ApproveSummaryInputSchema,
	Function:    ApproveSummary,
}

var ApproveSummaryInputSchema = GenerateSchema[ApproveSummaryInput]()

func ApproveSummary(json.RawMessage) (string, error) {
	return "approved", nil
}
