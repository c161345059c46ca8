package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/selfcraft/atlas/internal/adapters/http/api"
	"github.com/selfcraft/atlas/internal/domain/model"
)

type fakeDeps struct {
	mu     sync.Mutex
	seen   map[string]struct{}
	accept bool

	queued []model.Submission
	recent []model.Snapshot
}

func newFakeDeps() *fakeDeps {
	return &fakeDeps{seen: make(map[string]struct{}), accept: true}
}

func (f *fakeDeps) SeenAndRecord(ctx context.Context, id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.seen[id]; ok {
		return true
	}
	f.seen[id] = struct{}{}

	return false
}

func (f *fakeDeps) Unrecord(ctx context.Context, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.seen, id)
}

func (f *fakeDeps) Size() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return int64(len(f.seen))
}

func (f *fakeDeps) Enqueue(ctx context.Context, s model.Submission) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.accept {
		return false
	}
	f.queued = append(f.queued, s)

	return true
}

func (f *fakeDeps) Recent(ctx context.Context, userID string, tool model.Tool, limit int) ([]model.Snapshot, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}

	return f.recent, nil
}

type fakeStats struct{}

func (fakeStats) GetStats() map[string]interface{} {
	return map[string]interface{}{"queue_size": 0}
}

func newTestServer(deps *fakeDeps) *httptest.Server {
	mux := http.NewServeMux()
	api.NewServer(deps, fakeStats{}, 100).Register(context.Background(), mux)

	return httptest.NewServer(mux)
}

func incomeBody(submissionID string) string {
	sub := model.Submission{
		SubmissionID: submissionID,
		User:         model.UserContext{UserID: "user-1", DisplayName: "Dana"},
		Tool:         model.ToolIncome,
		SubmittedAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Income: &model.IncomeInput{
			Answers: map[string]string{
				"goal":   "самореализация",
				"energy": "высокий",
			},
		},
	}
	raw, _ := json.Marshal(sub)

	return string(raw)
}

func TestPostSession(t *testing.T) {
	t.Parallel()

	Convey("Given a running API server", t, func() {
		deps := newFakeDeps()
		srv := newTestServer(deps)
		defer srv.Close()

		post := func(path, body string) *http.Response {
			resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
			So(err, ShouldBeNil)

			return resp
		}

		Convey("When a valid submission is posted", func() {
			resp := post("/sessions/income", incomeBody("sub-1"))
			defer resp.Body.Close()

			Convey("Then it is accepted and enqueued", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusAccepted)

				var ack struct {
					Status    string `json:"status"`
					Duplicate bool   `json:"duplicate"`
				}
				So(json.NewDecoder(resp.Body).Decode(&ack), ShouldBeNil)
				So(ack.Status, ShouldEqual, "accepted")
				So(ack.Duplicate, ShouldBeFalse)
				So(len(deps.queued), ShouldEqual, 1)
				So(deps.queued[0].SubmissionID, ShouldEqual, "sub-1")
			})
		})

		Convey("When the same submission is posted twice", func() {
			first := post("/sessions/income", incomeBody("sub-2"))
			first.Body.Close()
			second := post("/sessions/income", incomeBody("sub-2"))
			defer second.Body.Close()

			Convey("Then the repeat is flagged as a duplicate", func() {
				So(second.StatusCode, ShouldEqual, http.StatusOK)

				var ack struct {
					Status    string `json:"status"`
					Duplicate bool   `json:"duplicate"`
				}
				So(json.NewDecoder(second.Body).Decode(&ack), ShouldBeNil)
				So(ack.Duplicate, ShouldBeTrue)
				So(len(deps.queued), ShouldEqual, 1)
			})
		})

		Convey("When the queue refuses the submission", func() {
			deps.accept = false
			resp := post("/sessions/income", incomeBody("sub-3"))
			defer resp.Body.Close()

			Convey("Then the client gets backpressure and the id is released", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusTooManyRequests)
				So(deps.Size(), ShouldEqual, 0)

				deps.accept = true
				retry := post("/sessions/income", incomeBody("sub-3"))
				defer retry.Body.Close()
				So(retry.StatusCode, ShouldEqual, http.StatusAccepted)
			})
		})

		Convey("When the tool segment is unknown", func() {
			resp := post("/sessions/astrology", incomeBody("sub-4"))
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the body tool disagrees with the path", func() {
			resp := post("/sessions/psych", incomeBody("sub-5"))
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the body is not JSON", func() {
			resp := post("/sessions/income", "{not json")
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the method is GET", func() {
			resp, err := http.Get(srv.URL + "/sessions/income")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestGetResults(t *testing.T) {
	t.Parallel()

	Convey("Given a server with stored snapshots", t, func() {
		deps := newFakeDeps()
		deps.recent = []model.Snapshot{
			{ID: "snap-2", UserID: "user-1", Tool: model.ToolPsych},
			{ID: "snap-1", UserID: "user-1", Tool: model.ToolPsych},
		}
		srv := newTestServer(deps)
		defer srv.Close()

		get := func(path string) *http.Response {
			resp, err := http.Get(srv.URL + path)
			So(err, ShouldBeNil)

			return resp
		}

		Convey("When results are requested for a user", func() {
			resp := get("/results/psych?user_id=user-1")
			defer resp.Body.Close()

			Convey("Then snapshots come back newest first", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)

				var snaps []model.Snapshot
				So(json.NewDecoder(resp.Body).Decode(&snaps), ShouldBeNil)
				So(len(snaps), ShouldEqual, 2)
				So(snaps[0].ID, ShouldEqual, "snap-2")
			})
		})

		Convey("When the limit query narrows the page", func() {
			resp := get("/results/psych?user_id=user-1&limit=1")
			defer resp.Body.Close()

			var snaps []model.Snapshot
			So(json.NewDecoder(resp.Body).Decode(&snaps), ShouldBeNil)
			So(len(snaps), ShouldEqual, 1)
		})

		Convey("When user_id is missing", func() {
			resp := get("/results/psych")
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the limit is not a number", func() {
			resp := get("/results/psych?user_id=user-1&limit=abc")
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the limit exceeds the maximum", func() {
			resp := get("/results/psych?user_id=user-1&limit=1000")
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the tool is unknown", func() {
			resp := get("/results/tarot?user_id=user-1")
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestStatsAndHealth(t *testing.T) {
	t.Parallel()

	Convey("Given a running API server", t, func() {
		srv := newTestServer(newFakeDeps())
		defer srv.Close()

		Convey("When /stats is requested", func() {
			resp, err := http.Get(srv.URL + "/stats")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var stats map[string]interface{}
			So(json.NewDecoder(resp.Body).Decode(&stats), ShouldBeNil)
			So(stats, ShouldContainKey, "queue_size")
		})

		Convey("When /healthz is requested", func() {
			resp, err := http.Get(srv.URL + "/healthz")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})
	})
}
