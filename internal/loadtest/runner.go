package loadtest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/selfcraft/atlas/internal/domain/model"
	"github.com/selfcraft/atlas/pkg/logger"
)

// processingDelay is how long the runner waits for queued sessions to
// drain through the worker pool before verification.
const processingDelay = 2 * time.Second

const percentageMultiplier = 100

// Run executes the complete session load test.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting atlas session load test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("sessions", config.NumSessions),
		logger.Int("users", config.NumUsers),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.String("logFile", config.LogFile),
		logger.Any("verbose", config.Verbose))

	client := newHTTPClient(config.Timeout)

	// Step 1: Check service health
	logger.Get().Info(ctx, "checking service health")
	if err := client.checkServiceHealth(ctx, config.BaseURL); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}
	logger.Get().Info(ctx, "service is healthy")

	// Step 2: Generate submissions
	subs := Generate(ctx, config)
	logger.Get().Info(ctx, "submissions generated", logger.Int("count", len(subs)))

	// Step 3: Submit concurrently
	if err := submitSessions(ctx, config, client, subs, stats); err != nil {
		return fmt.Errorf("session submission failed: %w", err)
	}

	// Step 4: Wait for processing
	logger.Get().Info(ctx, "waiting for sessions to be processed")
	time.Sleep(processingDelay)

	// Step 5: Verify results
	if err := verifyResults(ctx, config, client, subs, stats); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "load test completed")
	return nil
}

// submitSessions posts the generated submissions with a bounded worker pool.
func submitSessions(ctx context.Context, config *Config, client *HTTPClient, subs []model.Submission, stats *Stats) error {
	jobs := make(chan model.Submission, len(subs))
	for _, sub := range subs {
		jobs <- sub
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sub := range jobs {
				if ctx.Err() != nil {
					return
				}
				accepted, duplicate, err := client.postSession(ctx, config.BaseURL, sub)
				switch {
				case err != nil:
					stats.Failed.Add(1)
					if config.Verbose {
						logger.Get().Warn(ctx, "submission failed",
							logger.String("submissionID", sub.SubmissionID),
							logger.Error(err))
					}
				case accepted:
					stats.Submitted.Add(1)
				case duplicate:
					stats.Duplicates.Add(1)
				default:
					stats.Rejected.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	logger.Get().Info(ctx, "submission phase complete",
		logger.Int("submitted", int(stats.Submitted.Load())),
		logger.Int("duplicates", int(stats.Duplicates.Load())),
		logger.Int("rejected", int(stats.Rejected.Load())),
		logger.Int("failed", int(stats.Failed.Load())))
	return ctx.Err()
}

// verifyResults reads back history for each user/tool pair that was
// submitted and counts pairs with at least one stored snapshot.
func verifyResults(ctx context.Context, config *Config, client *HTTPClient, subs []model.Submission, stats *Stats) error {
	type pair struct {
		userID string
		tool   model.Tool
	}
	seen := make(map[pair]struct{}, len(subs))
	var pairs []pair
	for _, sub := range subs {
		p := pair{userID: sub.User.UserID, tool: sub.Tool}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		pairs = append(pairs, p)
	}

	jobs := make(chan pair, len(pairs))
	for _, p := range pairs {
		jobs <- p
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				if ctx.Err() != nil {
					return
				}
				snaps, err := client.getResults(ctx, config.BaseURL, p.userID, p.tool, 1)
				if err != nil {
					if config.Verbose {
						logger.Get().Warn(ctx, "verification read failed",
							logger.String("userID", p.userID),
							logger.String("tool", string(p.tool)),
							logger.Error(err))
					}
					continue
				}
				if len(snaps) > 0 {
					stats.Verified.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	logger.Get().Info(ctx, "verification phase complete",
		logger.Int("pairs", len(pairs)),
		logger.Int("verified", int(stats.Verified.Load())))
	return ctx.Err()
}

// displayFinalStats prints the final load test statistics.
func displayFinalStats(stats *Stats) {
	var successRate, sessionsPerSecond float64

	submitted := stats.Submitted.Load()
	total := submitted + stats.Duplicates.Load() + stats.Rejected.Load() + stats.Failed.Load()

	if total > 0 {
		successRate = float64(submitted) / float64(total) * percentageMultiplier
	}

	if stats.Duration > 0 {
		sessionsPerSecond = float64(total) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("sessionsSubmitted", int(submitted)),
		logger.Int("sessionsDuplicate", int(stats.Duplicates.Load())),
		logger.Int("sessionsRejected", int(stats.Rejected.Load())),
		logger.Int("sessionsFailed", int(stats.Failed.Load())),
		logger.Int("pairsVerified", int(stats.Verified.Load())),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("sessionsPerSecond", sessionsPerSecond))
}
