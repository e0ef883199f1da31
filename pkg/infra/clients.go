package infra

import (
	"github.com/m-mizutani/commit-timeline/pkg/domain/interfaces"
)

type Clients struct {
	github      interfaces.GitHub
	githubOAuth interfaces.GitHubOAuth
	commitCache interfaces.CommitCache
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) GitHubOAuth() interfaces.GitHubOAuth {
	return x.githubOAuth
}

// CommitCache returns nil when caching is disabled
func (x *Clients) CommitCache() interfaces.CommitCache {
	return x.commitCache
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithGitHubOAuth(client interfaces.GitHubOAuth) Option {
	return func(x *Clients) {
		x.githubOAuth = client
	}
}

func WithCommitCache(cache interfaces.CommitCache) Option {
	return func(x *Clients) {
		x.commitCache = cache
	}
}
