package server

import (
	"net/http"
	"net/http/httptest"

	"github.com/m-mizutani/commit-timeline/pkg/domain/model"
	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
)

const (
	SessionCookieNameForTest = sessionCookieName
	StateCookieNameForTest   = stateCookieName
)

// NewSessionCookieForTest returns a session cookie for user encoded with keys derived from pw
func NewSessionCookieForTest(pw types.CookiePassword, user *model.User) *http.Cookie {
	rec := httptest.NewRecorder()
	if err := newSessionStore(pw, false).save(rec, user); err != nil {
		panic(err)
	}
	return rec.Result().Cookies()[0]
}

var RenderPatternForTest = renderPattern
