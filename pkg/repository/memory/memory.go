package memory

import "github.com/secmon-lab/labelbot/pkg/domain/interfaces"

// New creates a new in-memory seen-issue store. State lives for the process
// lifetime only.
func New() interfaces.SeenRepository {
	return &seenRepository{
		seen: make(map[string]map[int]struct{}),
	}
}
