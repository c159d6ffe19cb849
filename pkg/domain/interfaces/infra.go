package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubClient

import (
	"context"

	"github.com/secmon-lab/labelbot/pkg/domain/model"
)

// GitHubClient is the GitHub API surface consumed by the labeling core
type GitHubClient interface {
	// Validate checks that the configured credential is accepted by GitHub
	Validate(ctx context.Context) error
	ListAccessibleRepos(ctx context.Context) ([]*model.Repo, error)
	ListIssues(ctx context.Context, repoFullName string) ([]*model.Issue, error)
	ListComments(ctx context.Context, repoFullName string, number int) ([]*model.Comment, error)
	UpdateIssueLabels(ctx context.Context, repoFullName string, number int, labels []string) error
}
