package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrValidationFailed  = goerr.New("validation failed")
	ErrUnauthenticated   = goerr.New("unauthenticated")
	ErrUpstream          = goerr.New("upstream failure")
	ErrInvalidGitHubData = goerr.New("invalid GitHub data")
)
