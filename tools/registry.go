package tools

// Registry returns all tool definitions wired for the classifier
func Registry() []ToolDefinition {
	return []ToolDefinition{RecordUpdateDefinition, ApproveSummaryDefinition}
}
