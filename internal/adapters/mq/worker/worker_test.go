package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/selfcraft/atlas/internal/adapters/mq/queue"
	"github.com/selfcraft/atlas/internal/adapters/mq/worker"
	"github.com/selfcraft/atlas/internal/domain/model"
)

type chanQueue struct {
	ch chan worker.Submission
}

func (q *chanQueue) Dequeue(ctx context.Context) <-chan worker.Submission {
	return q.ch
}

type stubEngine struct {
	mu   sync.Mutex
	err  error
	seen int
}

func (e *stubEngine) Process(ctx context.Context, s worker.Submission) (model.Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.seen++
	if e.err != nil {
		return model.Snapshot{}, e.err
	}

	return model.Snapshot{
		ID:     "snap-" + s.SubmissionID,
		UserID: s.User.UserID,
		Tool:   s.Tool,
	}, nil
}

func (e *stubEngine) processed() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.seen
}

type stubRecorder struct {
	mu    sync.Mutex
	err   error
	snaps []model.Snapshot
}

func (r *stubRecorder) Append(ctx context.Context, snap model.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	r.snaps = append(r.snaps, snap)

	return nil
}

func (r *stubRecorder) recorded() []model.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Snapshot, len(r.snaps))
	copy(out, r.snaps)

	return out
}

func waitUntil(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}

	return cond()
}

func testSubmission(id string, tool model.Tool) worker.Submission {
	return model.Submission{
		SubmissionID: id,
		User:         model.UserContext{UserID: "user-1", DisplayName: "Dana"},
		Tool:         tool,
		SubmittedAt:  time.Now(),
	}
}

func TestWorkerProcess(t *testing.T) {
	t.Parallel()

	Convey("Given a worker draining a queue", t, func() {
		q := &chanQueue{ch: make(chan worker.Submission, 8)}
		engine := &stubEngine{}
		recorder := &stubRecorder{}
		w := worker.NewInMemoryWorker(q, engine, recorder, worker.WithName("test-worker"))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go w.Run(ctx)

		Convey("When a submission is dequeued", func() {
			q.ch <- testSubmission("sub-1", model.ToolPsych)

			Convey("Then the engine result is recorded", func() {
				ok := waitUntil(time.Second, func() bool { return len(recorder.recorded()) == 1 })
				So(ok, ShouldBeTrue)

				snaps := recorder.recorded()
				So(snaps[0].ID, ShouldEqual, "snap-sub-1")
				So(snaps[0].UserID, ShouldEqual, "user-1")
				So(snaps[0].Tool, ShouldEqual, model.ToolPsych)
			})
		})

		Convey("When the engine fails", func() {
			engine.err = errors.New("engine exploded")
			q.ch <- testSubmission("sub-2", model.ToolIncome)

			Convey("Then nothing is recorded and the worker keeps running", func() {
				ok := waitUntil(time.Second, func() bool { return engine.processed() == 1 })
				So(ok, ShouldBeTrue)
				So(recorder.recorded(), ShouldBeEmpty)

				engine.err = nil
				q.ch <- testSubmission("sub-3", model.ToolIncome)
				ok = waitUntil(time.Second, func() bool { return len(recorder.recorded()) == 1 })
				So(ok, ShouldBeTrue)
			})
		})

		Convey("When the recorder fails", func() {
			recorder.err = errors.New("store unavailable")
			q.ch <- testSubmission("sub-4", model.ToolJournal)

			Convey("Then the submission is processed but not persisted", func() {
				ok := waitUntil(time.Second, func() bool { return engine.processed() == 1 })
				So(ok, ShouldBeTrue)
				So(recorder.recorded(), ShouldBeEmpty)
			})
		})

		Convey("When the queue channel closes", func() {
			close(q.ch)

			Convey("Then shutdown completes promptly", func() {
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
				defer shutdownCancel()

				So(w.Shutdown(shutdownCtx), ShouldBeNil)
			})
		})
	})
}

func TestPool(t *testing.T) {
	t.Parallel()

	Convey("Given a pool over an in-memory queue", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(64))
		engine := &stubEngine{}
		recorder := &stubRecorder{}
		pool := worker.NewPool(3, q, engine, recorder)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		Convey("When submissions are enqueued and the pool starts", func() {
			for i := 0; i < 5; i++ {
				sub := testSubmission("sub-"+string(rune('a'+i)), model.ToolProgress)
				So(q.Enqueue(ctx, sub), ShouldBeTrue)
			}
			pool.Start(ctx)

			Convey("Then every submission is drained and recorded", func() {
				ok := waitUntil(2*time.Second, func() bool { return len(recorder.recorded()) == 5 })
				So(ok, ShouldBeTrue)

				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer shutdownCancel()
				So(pool.Shutdown(shutdownCtx), ShouldBeNil)
				So(q.IsClosed(), ShouldBeTrue)
			})
		})
	})
}
