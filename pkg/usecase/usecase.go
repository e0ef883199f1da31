package usecase

import (
	"github.com/m-mizutani/commit-timeline/pkg/domain/interfaces"
	"github.com/m-mizutani/commit-timeline/pkg/infra"
)

const DefaultMaxConcurrency = 10

type UseCase struct {
	clients        *infra.Clients
	sampleData     bool
	maxConcurrency int
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithSampleData makes ListCommits return the fixed sample dataset instead of calling GitHub
func WithSampleData(enabled bool) Option {
	return func(x *UseCase) {
		x.sampleData = enabled
	}
}

// WithMaxConcurrency bounds the number of repositories fetched at once. Zero or negative means unbounded.
func WithMaxConcurrency(n int) Option {
	return func(x *UseCase) {
		x.maxConcurrency = n
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:        clients,
		maxConcurrency: DefaultMaxConcurrency,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
