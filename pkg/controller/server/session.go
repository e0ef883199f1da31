package server

import (
	"crypto/sha256"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/m-mizutani/commit-timeline/pkg/domain/model"
	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	sessionCookieName = "commit-timeline_id"
	sessionTTL        = 30 * 24 * time.Hour
)

// sessionStore keeps the user in an encrypted and signed cookie
type sessionStore struct {
	codec  *securecookie.SecureCookie
	secure bool
}

func deriveKey(purpose string, pw types.CookiePassword) []byte {
	if pw == "" {
		return securecookie.GenerateRandomKey(32)
	}
	sum := sha256.Sum256([]byte(purpose + ":" + string(pw)))
	return sum[:]
}

func newSessionStore(pw types.CookiePassword, secure bool) *sessionStore {
	codec := securecookie.New(deriveKey("signing", pw), deriveKey("encryption", pw))
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(int(sessionTTL.Seconds()))

	return &sessionStore{
		codec:  codec,
		secure: secure,
	}
}

// load returns nil if the request has no valid session
func (x *sessionStore) load(r *http.Request) *model.User {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}

	var user model.User
	if err := x.codec.Decode(sessionCookieName, cookie.Value, &user); err != nil {
		return nil
	}
	if user.AccessToken == "" {
		return nil
	}
	return &user
}

func (x *sessionStore) save(w http.ResponseWriter, user *model.User) error {
	value, err := x.codec.Encode(sessionCookieName, user)
	if err != nil {
		return goerr.Wrap(err, "failed to encode session")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   x.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (x *sessionStore) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   x.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
