package githubapi_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/labelbot/pkg/domain/types"
	"github.com/secmon-lab/labelbot/pkg/infra/githubapi"
	"github.com/secmon-lab/labelbot/pkg/utils/testutil"
)

func TestNew(t *testing.T) {
	t.Run("empty token is rejected", func(t *testing.T) {
		_, err := githubapi.New(context.Background(), "")
		gt.Error(t, err)
	})

	t.Run("client is built with a token", func(t *testing.T) {
		client, err := githubapi.New(context.Background(), "dummy-token")
		gt.NoError(t, err)
		gt.True(t, client != nil)
	})
}

func TestListIssues_InvalidFullName(t *testing.T) {
	client, err := githubapi.New(context.Background(), "dummy-token")
	gt.NoError(t, err)

	_, err = client.ListIssues(context.Background(), "not-a-full-name")
	gt.Error(t, err)
}

func TestGitHubAPI(t *testing.T) {
	token := testutil.GetEnvOrSkip(t, "TEST_GITHUB_TOKEN")
	repo := testutil.GetEnvOrSkip(t, "TEST_GITHUB_REPO")

	ctx := context.Background()
	client := gt.R1(githubapi.New(ctx, types.GitHubToken(token))).NoError(t)

	gt.NoError(t, client.Validate(ctx))

	repos := gt.R1(client.ListAccessibleRepos(ctx)).NoError(t)
	gt.A(t, repos).Longer(0)

	issues := gt.R1(client.ListIssues(ctx, repo)).NoError(t)
	for _, issue := range issues {
		gt.True(t, issue.Number > 0)
	}
}
