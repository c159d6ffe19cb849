package poller_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/labelbot/pkg/controller/poller"
	"github.com/secmon-lab/labelbot/pkg/domain/mock"
	"github.com/secmon-lab/labelbot/pkg/domain/model"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestRegister(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	uc := &mock.UseCaseMock{
		LabelRepoIssuesFunc: func(ctx context.Context, input *model.LabelRepoInput) (*model.CycleResult, error) {
			return &model.CycleResult{RepoFullName: input.RepoFullName, Checked: 2, Updated: 1}, nil
		},
	}
	p := poller.New(uc)

	t.Run("invalid interval is rejected", func(t *testing.T) {
		gt.Error(t, p.Register(ctx, "owner/repo", 0, true))
		gt.Error(t, p.Register(ctx, "owner/repo", -time.Second, true))
	})

	t.Run("empty repo name is rejected", func(t *testing.T) {
		gt.Error(t, p.Register(ctx, "", time.Minute, true))
	})

	t.Run("first cycle fires immediately", func(t *testing.T) {
		gt.NoError(t, p.Register(ctx, "owner/repo", time.Hour, true))

		waitFor(t, func() bool {
			return len(uc.LabelRepoIssuesCalls()) >= 1
		})

		calls := uc.LabelRepoIssuesCalls()
		gt.V(t, calls[0].Input.RepoFullName).Equal("owner/repo")
		gt.True(t, calls[0].Input.Recheck)
	})

	t.Run("duplicate registration is a no-op", func(t *testing.T) {
		gt.NoError(t, p.Register(ctx, "owner/repo", time.Hour, true))
		gt.V(t, len(p.Status())).Equal(1)
	})
}

func TestPollingCycles(t *testing.T) {
	t.Run("cycles repeat with the configured interval", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var calls atomic.Int64
		uc := &mock.UseCaseMock{
			LabelRepoIssuesFunc: func(ctx context.Context, input *model.LabelRepoInput) (*model.CycleResult, error) {
				calls.Add(1)
				return &model.CycleResult{RepoFullName: input.RepoFullName}, nil
			},
		}

		p := poller.New(uc)
		gt.NoError(t, p.Register(ctx, "owner/repo", 20*time.Millisecond, true))

		waitFor(t, func() bool { return calls.Load() >= 3 })
	})

	t.Run("a failing repo does not stop another repo's cycles", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var healthyUpdates atomic.Int64
		uc := &mock.UseCaseMock{
			LabelRepoIssuesFunc: func(ctx context.Context, input *model.LabelRepoInput) (*model.CycleResult, error) {
				if input.RepoFullName == "owner/broken" {
					return nil, goerr.New("fetch failed")
				}
				healthyUpdates.Add(1)
				return &model.CycleResult{RepoFullName: input.RepoFullName, Updated: 1}, nil
			},
		}

		p := poller.New(uc)
		gt.NoError(t, p.Register(ctx, "owner/broken", 20*time.Millisecond, true))
		gt.NoError(t, p.Register(ctx, "owner/healthy", 20*time.Millisecond, true))

		waitFor(t, func() bool { return healthyUpdates.Load() >= 2 })

		for _, status := range p.Status() {
			switch status.RepoFullName {
			case "owner/broken":
				gt.S(t, status.LastError).Contains("fetch failed")
			case "owner/healthy":
				gt.V(t, status.LastError).Equal("")
				gt.True(t, status.Updated >= 2)
			}
		}
	})

	t.Run("failing repo keeps retrying on later ticks", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var attempts atomic.Int64
		uc := &mock.UseCaseMock{
			LabelRepoIssuesFunc: func(ctx context.Context, input *model.LabelRepoInput) (*model.CycleResult, error) {
				attempts.Add(1)
				return nil, goerr.New("still broken")
			},
		}

		p := poller.New(uc)
		gt.NoError(t, p.Register(ctx, "owner/broken", 20*time.Millisecond, true))

		waitFor(t, func() bool { return attempts.Load() >= 3 })
	})
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	uc := &mock.UseCaseMock{
		LabelRepoIssuesFunc: func(ctx context.Context, input *model.LabelRepoInput) (*model.CycleResult, error) {
			return &model.CycleResult{RepoFullName: input.RepoFullName}, nil
		},
	}

	p := poller.New(uc)
	gt.NoError(t, p.Register(ctx, "owner/repo", 20*time.Millisecond, true))

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("poller did not stop after cancel")
	}
}

func TestStatus(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	uc := &mock.UseCaseMock{
		LabelRepoIssuesFunc: func(ctx context.Context, input *model.LabelRepoInput) (*model.CycleResult, error) {
			return &model.CycleResult{RepoFullName: input.RepoFullName, Checked: 3, Skipped: 1, Updated: 2}, nil
		},
	}

	p := poller.New(uc)
	gt.NoError(t, p.Register(ctx, "owner/zebra", time.Hour, false))
	gt.NoError(t, p.Register(ctx, "owner/aardvark", time.Hour, false))

	waitFor(t, func() bool {
		for _, status := range p.Status() {
			if status.Cycles == 0 {
				return false
			}
		}
		return len(p.Status()) == 2
	})

	statuses := p.Status()
	gt.V(t, len(statuses)).Equal(2)
	// sorted by repo full name
	gt.V(t, statuses[0].RepoFullName).Equal("owner/aardvark")
	gt.V(t, statuses[1].RepoFullName).Equal("owner/zebra")
	gt.V(t, statuses[0].Checked).Equal(3)
	gt.V(t, statuses[0].Skipped).Equal(1)
	gt.V(t, statuses[0].Updated).Equal(2)
	gt.V(t, statuses[0].Interval).Equal("1h0m0s")
	gt.False(t, statuses[0].LastRun.IsZero())
}
