package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/commit-timeline/pkg/domain/model"
	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
)

type UseCase interface {
	ListCommits(ctx context.Context, user *model.User, window model.TimeWindow) ([]*model.Commit, error)
	AuthCodeURL(state string) string
	Authorize(ctx context.Context, code string) (*model.User, error)
	LookupUser(ctx context.Context, token types.GitHubAccessToken) (*model.User, error)
}
