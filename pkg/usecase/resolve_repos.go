package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/labelbot/pkg/domain/model"
	"github.com/secmon-lab/labelbot/pkg/utils/logging"
)

// ResolveRepos maps user-supplied repository references (URLs or owner/name)
// to full names via the accessible repository listing. An unresolvable
// reference is reported and dropped; resolution continues with the rest.
func (x *UseCase) ResolveRepos(ctx context.Context, refs []string) ([]string, error) {
	repos, err := x.clients.GitHub().ListAccessibleRepos(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list accessible repositories")
	}
	index := model.NewRepoIndex(repos)

	var resolved []string
	for _, ref := range refs {
		fullName, ok := index.Resolve(ref)
		if !ok {
			logging.From(ctx).Warn("repository is not valid or not accessible, skipping", "ref", ref)
			continue
		}
		resolved = append(resolved, fullName)
	}

	return resolved, nil
}
