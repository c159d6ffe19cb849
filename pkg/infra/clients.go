package infra

import (
	"github.com/secmon-lab/labelbot/pkg/domain/interfaces"
	"github.com/secmon-lab/labelbot/pkg/repository/memory"
)

type Clients struct {
	githubClient interfaces.GitHubClient
	seenRepo     interfaces.SeenRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		seenRepo: memory.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHubClient {
	return x.githubClient
}
func (x *Clients) SeenRepo() interfaces.SeenRepository {
	return x.seenRepo
}

func WithGitHub(client interfaces.GitHubClient) Option {
	return func(x *Clients) {
		x.githubClient = client
	}
}

func WithSeenRepo(repo interfaces.SeenRepository) Option {
	return func(x *Clients) {
		x.seenRepo = repo
	}
}
