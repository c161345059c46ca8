// Command demo runs one sample session per assessment tool through the
// engine and prints the rendered reports, without starting the service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	service "github.com/selfcraft/atlas/internal/app"
	"github.com/selfcraft/atlas/internal/adapters/repository"
	"github.com/selfcraft/atlas/internal/domain/model"
	"github.com/selfcraft/atlas/internal/loadtest"
	"github.com/selfcraft/atlas/pkg/logger"
	"github.com/selfcraft/atlas/pkg/random"
	"github.com/selfcraft/atlas/pkg/render"
)

func main() {
	var (
		seed     = flag.Int64("seed", time.Now().UnixNano(), "Seed for report line selection")
		markdown = flag.Bool("markdown", false, "Render reports as markdown instead of plain text")
	)
	flag.Parse()

	if err := run(*seed, *markdown); err != nil {
		os.Stderr.WriteString("Demo failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run(seed int64, markdown bool) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	history := repository.NewHistoryStore(ctx)
	defer history.Close()

	engine := service.NewEngine(history, random.New(seed))

	// One session per tool, all for the same user so that the history
	// dependent tools see the earlier snapshots.
	subs := loadtest.Generate(ctx, &loadtest.Config{
		NumSessions: len(model.Tools),
		NumUsers:    1,
	})

	for _, sub := range subs {
		snap, err := engine.Process(ctx, sub)
		if err != nil {
			return fmt.Errorf("process %s session: %w", sub.Tool, err)
		}
		if err := history.Append(ctx, snap); err != nil {
			return fmt.Errorf("append %s snapshot: %w", sub.Tool, err)
		}

		out := snap.ReportText
		if markdown {
			out = render.Markdown(snap.Document)
		}

		fmt.Printf("===== %s =====\n\n%s\n\n", sub.Tool, out)
	}

	return nil
}
