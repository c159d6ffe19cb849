package infra_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/labelbot/pkg/domain/mock"
	"github.com/secmon-lab/labelbot/pkg/infra"
)

func TestClients(t *testing.T) {
	t.Run("seen repository defaults to memory store", func(t *testing.T) {
		clients := infra.New()
		gt.True(t, clients.SeenRepo() != nil)
		gt.NoError(t, clients.SeenRepo().MarkSeen(context.Background(), "owner/repo", 1))
	})

	t.Run("github client defaults to nil until configured", func(t *testing.T) {
		clients := infra.New()
		gt.True(t, clients.GitHub() == nil)

		ghClient := &mock.GitHubClientMock{}
		clients = infra.New(infra.WithGitHub(ghClient))
		gt.True(t, clients.GitHub() != nil)
	})
}
