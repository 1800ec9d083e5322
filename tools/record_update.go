package tools

import (
	"encoding/json"
	"fmt"
	"strings"
)

type RecordUpdateInput struct {
	Section string `json:"section" jsonschema_description:"Target section: accomplishments, blockers, or plans."`
	Text    string `json:"text" jsonschema_description:"The cleaned bullet content, without meta phrasing like 'add a blocker:'."`
}

var RecordUpdateDefinition = ToolDefinition{
	Name: "record_update",
	Description: `Record one content update to the standup draft.

Use when the user's reply adds or corrects information. Strip imperative meta
phrasing ("add a blocker:", "note that", "also") before filling in text.
`,
	InputSchema: RecordUpdateInputSchema,
	Function:    RecordUpdate,
}

var RecordUpdateInputSchema = GenerateSchema[RecordUpdateInput]()

var validSections = map[string]bool{
	"accomplishments": true,
	"blockers":        true,
	"plans":           true,
}

// RecordUpdate validates a record_update invocation and echoes the
// normalized input. The caller applies the update to the draft; this
// handler only guards the contract.
func RecordUpdate(input json.RawMessage) (string, error) {
	var in RecordUpdateInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	in.Section = strings.ToLower(strings.TrimSpace(in.Section))
	in.Text = strings.TrimSpace(in.Text)
	if !validSections[in.Section] {
		return "", fmt.Errorf("record_update: unknown section %q", in.Section)
	}
	if in.Text == "" {
		return "", fmt.Errorf("record_update: empty text")
	}
	b, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
