package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/labelbot/pkg/domain/model"
)

func TestRepoIndex(t *testing.T) {
	index := model.NewRepoIndex([]*model.Repo{
		{URL: "https://github.com/owner/repo-a", FullName: "owner/repo-a"},
		{URL: "https://github.com/owner/repo-b", FullName: "owner/repo-b"},
	})

	t.Run("resolves by URL", func(t *testing.T) {
		fullName, ok := index.Resolve("https://github.com/owner/repo-a")
		gt.True(t, ok)
		gt.V(t, fullName).Equal("owner/repo-a")
	})

	t.Run("trailing slash is ignored", func(t *testing.T) {
		fullName, ok := index.Resolve("https://github.com/owner/repo-b/")
		gt.True(t, ok)
		gt.V(t, fullName).Equal("owner/repo-b")
	})

	t.Run("resolves by full name", func(t *testing.T) {
		fullName, ok := index.Resolve("owner/repo-a")
		gt.True(t, ok)
		gt.V(t, fullName).Equal("owner/repo-a")
	})

	t.Run("unknown reference is not resolved", func(t *testing.T) {
		_, ok := index.Resolve("https://github.com/other/repo")
		gt.False(t, ok)
	})
}

func TestLabelRepoInputValidate(t *testing.T) {
	t.Run("valid input passes validation", func(t *testing.T) {
		input := &model.LabelRepoInput{RepoFullName: "owner/repo"}
		gt.NoError(t, input.Validate())
	})

	t.Run("missing repo full name fails validation", func(t *testing.T) {
		input := &model.LabelRepoInput{}
		gt.Error(t, input.Validate())
	})

	t.Run("name without owner fails validation", func(t *testing.T) {
		input := &model.LabelRepoInput{RepoFullName: "repo"}
		gt.Error(t, input.Validate())
	})
}
