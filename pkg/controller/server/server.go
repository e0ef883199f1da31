package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/commit-timeline/pkg/domain/interfaces"
	"github.com/m-mizutani/commit-timeline/pkg/domain/model"
	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
	"github.com/m-mizutani/commit-timeline/pkg/utils/errutil"
	"github.com/m-mizutani/commit-timeline/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

// writeError maps an error to a status code. Authentication failures get an
// empty 401 and validation failures a 400; anything else is reported and
// answered with 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, types.ErrUnauthenticated):
		logging.From(r.Context()).Info("unauthenticated request", slog.Any("error", err))
		w.WriteHeader(http.StatusUnauthorized)

	case errors.Is(err, types.ErrValidationFailed):
		logging.From(r.Context()).Info("invalid request", slog.Any("error", err))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})

	default:
		errutil.HandleError(r.Context(), "request failed", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

type config struct {
	cookiePassword types.CookiePassword
	secureCookie   bool
	pattern        model.HashPattern
}

type Option func(*config)

// WithCookiePassword sets the secret that session and OAuth state keys are
// derived from. Without it, random keys are used and sessions do not survive a restart.
func WithCookiePassword(pw types.CookiePassword) Option {
	return func(cfg *config) {
		cfg.cookiePassword = pw
	}
}

// WithSecureCookie sets the Secure attribute of cookies, for deployments served over HTTPS
func WithSecureCookie(secure bool) Option {
	return func(cfg *config) {
		cfg.secureCookie = secure
	}
}

func WithHashPattern(pattern model.HashPattern) Option {
	return func(cfg *config) {
		cfg.pattern = pattern
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		pattern: model.DefaultHashPattern,
	}
	for _, opt := range options {
		opt(cfg)
	}

	sessions := newSessionStore(cfg.cookiePassword, cfg.secureCookie)
	states := newStateIssuer(cfg.cookiePassword, cfg.secureCookie)

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/login", handleLogin(uc, states))
			r.Get("/authorize", handleAuthorize(uc, sessions, states))
			r.Get("/check-login", handleCheckLogin(sessions))
			r.Post("/logout", handleLogout(sessions))
		})
		r.Route("/commit", func(r chi.Router) {
			r.Post("/list", handleListCommits(uc, sessions))
			r.Get("/{sha}/pattern.png", handlePattern(cfg.pattern))
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
