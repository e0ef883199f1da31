package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/commit-timeline/pkg/domain/model"
	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
	"github.com/m-mizutani/commit-timeline/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

func (x *UseCase) AuthCodeURL(state string) string {
	return x.clients.GitHubOAuth().AuthCodeURL(state)
}

// Authorize exchanges an OAuth code for an access token and builds the session user
func (x *UseCase) Authorize(ctx context.Context, code string) (*model.User, error) {
	if code == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "OAuth code is empty")
	}

	token, err := x.clients.GitHubOAuth().Exchange(ctx, code)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to exchange OAuth code")
	}

	user, err := x.LookupUser(ctx, token)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("User authorized", slog.Any("user", user))
	return user, nil
}

// LookupUser fetches the profile and primary email of the token owner
func (x *UseCase) LookupUser(ctx context.Context, token types.GitHubAccessToken) (*model.User, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrUnauthenticated, "access token is empty")
	}

	oauth := x.clients.GitHubOAuth()
	ghUser, err := oauth.GetUser(ctx, token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get GitHub user")
	}

	email, err := oauth.GetPrimaryEmail(ctx, token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get primary email", goerr.V("login", ghUser.Login))
	}

	return &model.User{
		AccessToken: token,
		AvatarURL:   ghUser.AvatarURL,
		Name:        ghUser.Login,
		URL:         ghUser.URL,
		Email:       email,
	}, nil
}
