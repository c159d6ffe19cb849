package poller

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/labelbot/pkg/domain/interfaces"
	"github.com/secmon-lab/labelbot/pkg/domain/model"
	"github.com/secmon-lab/labelbot/pkg/domain/types"
	"github.com/secmon-lab/labelbot/pkg/utils/errutil"
	"github.com/secmon-lab/labelbot/pkg/utils/logging"
)

// Poller drives one repeating labeling cycle per registered repository. Each
// repository runs on its own goroutine, so repositories poll independently,
// while cycles within one repository never overlap: the next timer is armed
// only after the current cycle has finished. The interval is measured from
// cycle end, so an overrunning cycle does not cause catch-up bursts.
type Poller struct {
	uc    interfaces.UseCase
	mu    sync.RWMutex
	repos map[string]*repoState
	wg    sync.WaitGroup
}

type repoState struct {
	mu       sync.Mutex
	fullName string
	interval time.Duration
	recheck  bool

	cycles    int
	lastRun   time.Time
	nextRun   time.Time
	lastError string
	checked   int
	skipped   int
	updated   int
	failed    int
}

func New(uc interfaces.UseCase) *Poller {
	return &Poller{
		uc:    uc,
		repos: make(map[string]*repoState),
	}
}

// Register adds a repository to the timer table and arms an immediate first
// cycle. Registering an already tracked repository is a no-op. There is no
// unregister: a repository is polled until ctx is cancelled.
func (x *Poller) Register(ctx context.Context, repoFullName string, interval time.Duration, recheck bool) error {
	if repoFullName == "" {
		return goerr.Wrap(types.ErrInvalidOption, "repo full name is empty")
	}
	if interval <= 0 {
		return goerr.Wrap(types.ErrInvalidOption, "polling interval must be positive",
			goerr.V("interval", interval),
		)
	}

	x.mu.Lock()
	if _, exists := x.repos[repoFullName]; exists {
		x.mu.Unlock()
		return nil
	}
	st := &repoState{
		fullName: repoFullName,
		interval: interval,
		recheck:  recheck,
		nextRun:  time.Now(),
	}
	x.repos[repoFullName] = st
	x.mu.Unlock()

	logging.From(ctx).Info("tracking repository",
		"repo", repoFullName,
		"interval", interval,
		"recheck", recheck,
	)

	x.wg.Add(1)
	go x.loop(ctx, st)

	return nil
}

// Run blocks until ctx is cancelled, then waits for in-flight cycles to finish
func (x *Poller) Run(ctx context.Context) {
	<-ctx.Done()
	x.wg.Wait()
}

// Status returns a snapshot of every tracked repository, sorted by full name
// for stable output.
func (x *Poller) Status() []*model.RepoStatus {
	x.mu.RLock()
	defer x.mu.RUnlock()

	statuses := make([]*model.RepoStatus, 0, len(x.repos))
	for _, st := range x.repos {
		st.mu.Lock()
		statuses = append(statuses, &model.RepoStatus{
			RepoFullName: st.fullName,
			Interval:     st.interval.String(),
			Cycles:       st.cycles,
			LastRun:      st.lastRun,
			NextRun:      st.nextRun,
			Checked:      st.checked,
			Skipped:      st.skipped,
			Updated:      st.updated,
			Failed:       st.failed,
			LastError:    st.lastError,
		})
		st.mu.Unlock()
	}

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].RepoFullName < statuses[j].RepoFullName
	})

	return statuses
}

func (x *Poller) loop(ctx context.Context, st *repoState) {
	defer x.wg.Done()

	// zero delay arms the immediate first cycle
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		x.runCycle(ctx, st)

		timer.Reset(st.interval)
		st.mu.Lock()
		st.nextRun = time.Now().Add(st.interval)
		st.mu.Unlock()
	}
}

func (x *Poller) runCycle(ctx context.Context, st *repoState) {
	cycleID := types.NewRequestID()
	logger := logging.From(ctx).With("repo", st.fullName, "cycle_id", cycleID)
	ctx = logging.With(ctx, logger)

	logger.Info("labeling issues")
	result, err := x.uc.LabelRepoIssues(ctx, &model.LabelRepoInput{
		RepoFullName: st.fullName,
		Recheck:      st.recheck,
	})
	if err != nil {
		errutil.HandleError(ctx, "labeling cycle failed", err)
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.cycles++
	st.lastRun = time.Now()
	if err != nil {
		st.lastError = err.Error()
		return
	}
	st.lastError = ""
	st.checked += result.Checked
	st.skipped += result.Skipped
	st.updated += result.Updated
	st.failed += result.Failed
}
