package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/labelbot/pkg/repository"
)

type seenRepository struct {
	mu   sync.RWMutex
	seen map[string]map[int]struct{}
}

func (r *seenRepository) IsSeen(ctx context.Context, repoFullName string, number int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	issues, exists := r.seen[repoFullName]
	if !exists {
		return false, nil
	}
	_, seen := issues[number]
	return seen, nil
}

func (r *seenRepository) MarkSeen(ctx context.Context, repoFullName string, number int) error {
	if repoFullName == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "repo full name is empty")
	}
	if number <= 0 {
		return goerr.Wrap(repository.ErrInvalidInput, "issue number must be positive",
			goerr.V("number", number),
		)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.seen[repoFullName]; !exists {
		r.seen[repoFullName] = make(map[int]struct{})
	}
	r.seen[repoFullName][number] = struct{}{}

	return nil
}
