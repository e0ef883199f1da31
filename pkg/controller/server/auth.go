package server

import (
	"net/http"

	"github.com/m-mizutani/commit-timeline/pkg/domain/interfaces"
	"github.com/m-mizutani/commit-timeline/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

func handleLogin(uc interfaces.UseCase, states *stateIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := states.issue(r.Context(), w)
		if err != nil {
			writeError(w, r, err)
			return
		}

		http.Redirect(w, r, uc.AuthCodeURL(state), http.StatusFound)
	}
}

// handleAuthorize is the OAuth callback. Whatever happens the user is sent
// back to the top page; failures are only logged and reported.
func handleAuthorize(uc interfaces.UseCase, sessions *sessionStore, states *stateIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()

		err := func() error {
			if err := states.verify(ctx, r, q.Get("state")); err != nil {
				return err
			}

			user, err := uc.Authorize(ctx, q.Get("code"))
			if err != nil {
				return err
			}

			if err := sessions.save(w, user); err != nil {
				return goerr.Wrap(err, "failed to save session")
			}
			return nil
		}()
		if err != nil {
			errutil.HandleError(ctx, "failed to authorize GitHub user", err)
		}

		states.clear(w)
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

func handleCheckLogin(sessions *sessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := sessions.load(r)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		writeJSON(w, http.StatusOK, user.Profile())
	}
}

func handleLogout(sessions *sessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions.load(r) == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		sessions.clear(w)
		w.WriteHeader(http.StatusOK)
	}
}
