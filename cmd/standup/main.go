package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/petasbytes/standup-agent/internal/activity"
	"github.com/petasbytes/standup-agent/internal/carryover"
	"github.com/petasbytes/standup-agent/internal/classify"
	"github.com/petasbytes/standup-agent/internal/config"
	"github.com/petasbytes/standup-agent/internal/draft"
	"github.com/petasbytes/standup-agent/internal/loop"
	"github.com/petasbytes/standup-agent/internal/provider"
	"github.com/petasbytes/standup-agent/internal/source"
	"github.com/petasbytes/standup-agent/internal/telemetry"
	"github.com/petasbytes/standup-agent/memory"
)

const defaultConfigPath = "standup.yaml"

func main() {
	configPath := os.Getenv("STANDUP_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Classifier.Mode == "llm" && os.Getenv("ANTHROPIC_API_KEY") == "" {
		fmt.Println("Missing ANTHROPIC_API_KEY; export it or set classifier mode to \"rules\".")
		os.Exit(1)
	}

	// Set up graceful shutdown on Ctrl-C (SIGINT) / SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nAborting standup...")
		cancel()
	}()

	cycleID := fmt.Sprintf("cycle-%d", time.Now().UnixNano())
	ctx = telemetry.WithCycleID(ctx, cycleID)
	telemetry.Emit("cycle_started", map[string]any{"cycle_id": cycleID, "user": cfg.User})

	records := fetchRecords(ctx, cfg)

	prev, err := memory.LoadSnapshot(cfg.SnapshotPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load previous standup: %v\n", err)
	}
	carried := carryover.Resolve(prev, records)

	d := draft.Synthesize(draft.Draft{}, append(records, carried...))
	telemetry.Emit("draft_synthesized", map[string]any{
		"cycle_id":        cycleID,
		"fresh_records":   len(records),
		"carried_records": len(carried),
	})

	l := &loop.Loop{
		Classifier: newClassifier(cfg),
		Conv:       newConsoleConv(),
		MaxRounds:  cfg.MaxRounds,
	}
	res, err := l.Run(ctx, d)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	switch res.Status {
	case loop.StatusFinalized:
		fmt.Println()
		fmt.Print(draft.RenderFinal(res.Draft))
		if err := saveSnapshot(cfg.SnapshotPath, res.Draft); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save standup snapshot: %v\n", err)
		}
	case loop.StatusIncomplete:
		fmt.Printf("Standup left incomplete after %d rounds; nothing was saved. Run again to restart.\n", res.Rounds)
	case loop.StatusAborted:
		fmt.Println("Standup aborted; nothing was saved.")
	}
}

// fetchRecords pulls from every enabled source. A source failure is logged
// and skipped; the cycle continues on whatever did arrive.
func fetchRecords(ctx context.Context, cfg config.Config) []activity.Record {
	since := time.Now().AddDate(0, 0, -cfg.LookbackDays)

	var sources []source.Source
	if cfg.Sources.Mock {
		sources = append(sources, source.Mock{})
	}
	if cfg.Sources.GitHub.Enabled {
		sources = append(sources, source.NewGitHub(
			cfg.Sources.GitHub.APIBase,
			os.Getenv(cfg.Sources.GitHub.TokenEnvVar),
			http.DefaultClient,
		))
	}
	if cfg.Sources.Tracker.Enabled {
		sources = append(sources, source.NewTracker(
			cfg.Sources.Tracker.Endpoint,
			os.Getenv(cfg.Sources.Tracker.TokenEnvVar),
			http.DefaultClient,
		))
	}

	var entries []activity.RawEntry
	for _, s := range sources {
		got, err := s.Fetch(ctx, cfg.User, since)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s fetch failed: %v\n", s.Name(), err)
			telemetry.Emit("source_fetch", map[string]any{"source": s.Name(), "error": err.Error()})
			continue
		}
		telemetry.Emit("source_fetch", map[string]any{"source": s.Name(), "entries": len(got)})
		entries = append(entries, got...)
	}
	return activity.Normalize(entries)
}

func newClassifier(cfg config.Config) classify.Classifier {
	if cfg.Classifier.Mode == "llm" {
		return classify.NewLLM(provider.NewAnthropicClient(), provider.DefaultModel, cfg.Classifier.TokenBudget)
	}
	return classify.Rules{}
}

// consoleConv presents drafts on stdout and reads utterances line by line
// from stdin. A reader goroutine feeds a channel so Prompt can observe
// context cancellation while blocked.
type consoleConv struct {
	lines <-chan string
}

func newConsoleConv() *consoleConv {
	ch := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			ch <- scanner.Text()
		}
		close(ch)
	}()
	return &consoleConv{lines: ch}
}

func (c *consoleConv) Prompt(ctx context.Context, presentation string) (string, error) {
	fmt.Println()
	fmt.Println(presentation)
	fmt.Print("\u001b[94mYou\u001b[0m: ")
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

// saveSnapshot records the finalized draft for the next cycle's carry-over.
// Open blockers and plans persist as unresolved; accomplishments as resolved.
func saveSnapshot(path string, d draft.Draft) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	s := &memory.Snapshot{
		Date:            time.Now().Format("2006-01-02"),
		Accomplishments: snapshotItems(d.Accomplishments, memory.StatusResolved),
		Blockers:        snapshotItems(d.Blockers, memory.StatusUnresolved),
		Plans:           snapshotItems(d.Plans, memory.StatusUnresolved),
	}
	return memory.SaveSnapshot(path, s)
}

func snapshotItems(bullets []string, status memory.Status) []memory.Item {
	items := make([]memory.Item, 0, len(bullets))
	for _, b := range bullets {
		title, url, _ := draft.ParseBullet(b)
		items = append(items, memory.Item{Title: title, URL: url, Status: status})
	}
	return items
}
