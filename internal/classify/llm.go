package classify

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/tidwall/gjson"

	"github.com/petasbytes/standup-agent/internal/draft"
	"github.com/petasbytes/standup-agent/internal/telemetry"
	"github.com/petasbytes/standup-agent/internal/windowing"
	"github.com/petasbytes/standup-agent/tools"
)

const llmMaxTokens = 512

const systemPrompt = `You classify one reply from a user who is reviewing their standup draft.
Call record_update when the reply adds or corrects content, choosing the section the reply
is about. Call approve_summary only when the reply's dominant intent is agreement or
completeness. Never invent content the user did not state.`

// LLM classifies via the Anthropic API, keeping a transcript of the
// reconciliation so far and windowing it to Budget tokens per call. Approval
// and explicit section cues are still decided by the rule layer; the model
// is consulted only for cue-less content updates. Any API failure degrades
// to the rule fallback, never to a lost utterance.
type LLM struct {
	Client *anthropic.Client
	Model  anthropic.Model
	Budget int
	Tools  []tools.ToolDefinition

	transcript []anthropic.MessageParam
	rules      Rules
}

func NewLLM(client *anthropic.Client, model anthropic.Model, budget int) *LLM {
	return &LLM{Client: client, Model: model, Budget: budget, Tools: tools.Registry()}
}

func (l *LLM) Classify(ctx context.Context, utterance string, d draft.Draft) (Update, bool, error) {
	ruleUpd, ok, err := l.rules.Classify(ctx, utterance, d)
	if err != nil || !ok {
		return ruleUpd, ok, err
	}
	// Deterministic outcomes stay with the rules: approvals always, content
	// updates whenever the utterance carries a section cue.
	if ruleUpd.Kind == KindApproval || SectionIsExplicit(utterance) {
		return ruleUpd, true, nil
	}

	upd, ok := l.consult(ctx, utterance, d)
	if !ok {
		return ruleUpd, true, nil // fall back to the rules' default
	}
	return upd, true, nil
}

// consult sends the windowed transcript plus the new utterance and reads the
// model's tool call. ok=false on any failure or unusable response.
func (l *LLM) consult(ctx context.Context, utterance string, d draft.Draft) (Update, bool) {
	cycleID, okID := telemetry.CycleIDFromContext(ctx)
	if !okID {
		cycleID = fmt.Sprintf("cycle-%d", time.Now().UnixNano())
	}

	user := anthropic.NewUserMessage(anthropic.NewTextBlock(
		"Current draft:\n" + draft.Render(d) + "\nUser reply:\n" + utterance,
	))
	conv := append(append([]anthropic.MessageParam(nil), l.transcript...), user)

	window, stats := windowing.PrepareSendWindow(conv, l.Budget, windowing.HeuristicCounter{})
	telemetry.Emit("window_prepared", map[string]any{
		"cycle_id":           cycleID,
		"model":              string(l.Model),
		"budget":             stats.Budget,
		"total_estimated":    stats.Total,
		"included_messages":  stats.Included,
		"skipped_messages":   stats.Skipped,
		"over_budget_newest": stats.OverBudgetNewest,
	})
	if stats.OverBudgetNewest {
		return Update{}, false
	}

	params := anthropic.MessageNewParams{
		Model:     l.Model,
		MaxTokens: int64(llmMaxTokens),
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:  window,
		Tools:     l.anthropicTools(),
	}
	msg, err := l.Client.Messages.New(ctx, params)
	if err != nil {
		telemetry.Emit("classifier_llm_error", map[string]any{"cycle_id": cycleID, "error": err.Error()})
		return Update{}, false
	}

	l.transcript = append(l.transcript, user, msg.ToParam())

	for _, block := range msg.Content {
		tu, isTool := block.AsAny().(anthropic.ToolUseBlock)
		if !isTool {
			continue
		}
		switch tu.Name {
		case "approve_summary":
			return Update{Kind: KindApproval}, true
		case "record_update":
			raw := tu.JSON.Input.Raw()
			// Validate and normalize through the tool handler before
			// trusting the payload.
			normalized, verr := tools.RecordUpdate([]byte(raw))
			if verr != nil {
				telemetry.Emit("classifier_llm_error", map[string]any{"cycle_id": cycleID, "error": verr.Error()})
				return Update{}, false
			}
			return Update{
				Kind:    KindContentUpdate,
				Section: draft.Section(gjson.Get(normalized, "section").String()),
				Text:    gjson.Get(normalized, "text").String(),
			}, true
		}
	}
	// Plain-text reply with no tool call: unusable, let the rules decide.
	return Update{}, false
}

func (l *LLM) anthropicTools() []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(l.Tools))
	for _, t := range l.Tools {
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: t.InputSchema,
		}})
	}
	return out
}
