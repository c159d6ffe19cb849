package usecase

import (
	"github.com/secmon-lab/labelbot/pkg/domain/interfaces"
	"github.com/secmon-lab/labelbot/pkg/domain/model"
	"github.com/secmon-lab/labelbot/pkg/infra"
)

type UseCase struct {
	clients       *infra.Clients
	rules         *model.RuleSet
	defaultLabel  string
	checkComments bool
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

func New(clients *infra.Clients, rules *model.RuleSet, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
		rules:   rules,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

// WithDefaultLabel sets the label applied when no rule matches an issue
func WithDefaultLabel(label string) Option {
	return func(x *UseCase) {
		x.defaultLabel = label
	}
}

// WithCheckComments enables matching rules against issue comment bodies
func WithCheckComments(enable bool) Option {
	return func(x *UseCase) {
		x.checkComments = enable
	}
}
