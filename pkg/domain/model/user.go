package model

import (
	"log/slog"

	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
)

// GitHubUser is the subset of the GitHub /user response we keep
type GitHubUser struct {
	Login     string
	URL       string
	AvatarURL string
}

// User is the authenticated user held in the session
type User struct {
	AccessToken types.GitHubAccessToken `json:"accessToken" masq:"secret"`
	AvatarURL   string                  `json:"avatarUrl"`
	Name        string                  `json:"name"`
	URL         string                  `json:"url"`
	Email       string                  `json:"email,omitempty"`
}

func (x *User) LogValue() slog.Value {
	if x == nil {
		return slog.StringValue("<nil>")
	}
	return slog.GroupValue(
		slog.String("name", x.Name),
		slog.String("email", x.Email),
		slog.Int("accessToken.len", len(x.AccessToken)),
	)
}

// Profile is the public part of User returned by the check-login API
type Profile struct {
	AvatarURL string `json:"avatarUrl"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Email     string `json:"email,omitempty"`
}

func (x *User) Profile() *Profile {
	return &Profile{
		AvatarURL: x.AvatarURL,
		Name:      x.Name,
		URL:       x.URL,
		Email:     x.Email,
	}
}
