// Package tools defines the tool contracts the LLM classifier exposes to the
// model.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Standup tools: record_update (one draft change), approve_summary
//     (explicit finalization signal).
//   - Invariant: exactly one of the two tools is invoked per utterance; a
//     reply with neither is treated as a no-op by the classifier.
package tools
