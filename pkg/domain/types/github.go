package types

import "log/slog"

type (
	GitHubClientID     string
	GitHubClientSecret string
	GitHubAccessToken  string
	CookiePassword     string
	CommitSHA          string
	BranchName         string
)

func (x GitHubClientSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubClientSecret) String() string {
	return "***********"
}

func (x GitHubAccessToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAccessToken) String() string {
	return "***********"
}

func (x CookiePassword) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x CookiePassword) String() string {
	return "***********"
}

// Short returns the first 7 characters of the SHA, the length GitHub uses in its UI.
func (x CommitSHA) Short() string {
	if len(x) <= 7 {
		return string(x)
	}
	return string(x[:7])
}
