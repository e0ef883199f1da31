package server

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
	"github.com/m-mizutani/commit-timeline/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	stateCookieName = "commit-timeline_state"
	stateTTL        = 10 * time.Minute
)

// stateIssuer issues and checks the OAuth state parameter. The state is a
// signed JWT that is also kept in a short lived cookie, so the callback must
// come back to the browser that started the login.
type stateIssuer struct {
	secret []byte
	secure bool
}

func newStateIssuer(pw types.CookiePassword, secure bool) *stateIssuer {
	return &stateIssuer{
		secret: deriveKey("state", pw),
		secure: secure,
	}
}

func (x *stateIssuer) issue(ctx context.Context, w http.ResponseWriter) (string, error) {
	now := logging.CtxTime(ctx)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(stateTTL)),
	}

	state, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(x.secret)
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign OAuth state")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/api/auth",
		MaxAge:   int(stateTTL.Seconds()),
		HttpOnly: true,
		Secure:   x.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return state, nil
}

func (x *stateIssuer) verify(ctx context.Context, r *http.Request, state string) error {
	if state == "" {
		return goerr.Wrap(types.ErrValidationFailed, "OAuth state is missing")
	}

	cookie, err := r.Cookie(stateCookieName)
	if err != nil || cookie.Value != state {
		return goerr.Wrap(types.ErrValidationFailed, "OAuth state does not match")
	}

	_, err = jwt.ParseWithClaims(state, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			return x.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return logging.CtxTime(ctx) }),
	)
	if err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "invalid OAuth state", goerr.V("error", err.Error()))
	}
	return nil
}

func (x *stateIssuer) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     "/api/auth",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   x.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
