package windowing

import "github.com/anthropics/anthropic-sdk-go"

// Stats summarizes the result of window preparation.
//
// Fields:
// - Total: estimated tokens for included messages only.
// - Budget: the input token budget used.
// - Included: number of messages included.
// - Skipped: total messages minus Included.
// - OverBudgetNewest: true when the newest message alone exceeds Budget.
type Stats struct {
	Total            int
	Budget           int
	Included         int
	Skipped          int
	OverBudgetNewest bool
}

// PrepareSendWindow returns a subslice of msgs (oldest to newest) that fits
// within budget using the TokenCounter.
//
// Rules:
// - Include whole messages scanning newest to oldest while total <= budget.
// - If the newest message alone exceeds budget, return an empty window and
//   set OverBudgetNewest.
// - If budget <= 0, return an empty window (OverBudgetNewest set when any
//   messages exist).
func PrepareSendWindow(msgs []anthropic.MessageParam, budget int, c TokenCounter) ([]anthropic.MessageParam, Stats) {
	if len(msgs) == 0 {
		return nil, Stats{Budget: budget}
	}
	if budget <= 0 {
		return nil, Stats{Budget: budget, Skipped: len(msgs), OverBudgetNewest: true}
	}

	total := 0
	start := len(msgs) // exclusive sentinel; lowered as messages are included
	for i := len(msgs) - 1; i >= 0; i-- {
		cost := c.CountMessage(msgs[i])
		if total+cost > budget {
			break
		}
		total += cost
		start = i
	}

	stats := Stats{
		Total:    total,
		Budget:   budget,
		Included: len(msgs) - start,
		Skipped:  start,
	}
	if stats.Included == 0 {
		stats.OverBudgetNewest = true
		return nil, stats
	}
	return msgs[start:], stats
}
