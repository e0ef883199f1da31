package model

import "github.com/m-mizutani/goerr/v2"

// Repository is a reference to a GitHub repository the user contributed to
type Repository struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Owner Owner  `json:"owner"`
}

type Owner struct {
	Login string `json:"login"`
}

// FullName returns "owner/name"
func (x Repository) FullName() string {
	return x.Owner.Login + "/" + x.Name
}

func (x Repository) Validate() error {
	if x.Owner.Login == "" {
		return goerr.New("repository owner is empty", goerr.V("repo", x))
	}
	if x.Name == "" {
		return goerr.New("repository name is empty", goerr.V("repo", x))
	}
	return nil
}
