package interfaces

import "context"

// SeenRepository records which issues have already been evaluated. It backs the
// recheck=false mode where only issues not previously seen are re-evaluated.
type SeenRepository interface {
	IsSeen(ctx context.Context, repoFullName string, number int) (bool, error)
	MarkSeen(ctx context.Context, repoFullName string, number int) error
}
