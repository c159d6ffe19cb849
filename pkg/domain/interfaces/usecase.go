package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/secmon-lab/labelbot/pkg/domain/model"
)

type UseCase interface {
	ResolveRepos(ctx context.Context, refs []string) ([]string, error)
	LabelRepoIssues(ctx context.Context, input *model.LabelRepoInput) (*model.CycleResult, error)
}
