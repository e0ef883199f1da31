package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/commit-timeline/pkg/domain/interfaces"
	"github.com/m-mizutani/commit-timeline/pkg/domain/model"
	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
	"github.com/m-mizutani/commit-timeline/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

type listCommitsRequest struct {
	Since    model.TimeWindow `json:"since"`
	GroupBy  model.GroupBy    `json:"groupBy,omitempty"`
	Timezone string           `json:"timezone,omitempty"`
}

type listCommitsResponse struct {
	Commits []*model.Commit      `json:"commits"`
	Groups  []*model.CommitGroup `json:"groups,omitempty"`
}

func handleListCommits(uc interfaces.UseCase, sessions *sessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := sessions.load(r)
		if user == nil || user.Email == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		// A body that cannot be decoded leaves an empty window; ListCommits
		// rejects it unless sample data is served.
		var req listCommitsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logging.From(r.Context()).Debug("failed to decode commit list request", slog.Any("error", err))
		}

		loc := time.UTC
		if req.GroupBy != "" {
			if err := req.GroupBy.Validate(); err != nil {
				writeError(w, r, err)
				return
			}
		}
		if req.Timezone != "" {
			l, err := time.LoadLocation(req.Timezone)
			if err != nil {
				writeError(w, r, goerr.Wrap(types.ErrValidationFailed, "unknown timezone", goerr.V("timezone", req.Timezone)))
				return
			}
			loc = l
		}

		commits, err := uc.ListCommits(r.Context(), user, req.Since)
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp := listCommitsResponse{Commits: commits}
		if req.GroupBy != "" {
			resp.Groups = model.GroupCommits(commits, req.GroupBy, loc)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

var patternColor = color.RGBA{R: 0x07, G: 0x59, B: 0x85, A: 0xff}

// renderPattern draws the cells of the hash onto a transparent canvas
func renderPattern(pattern model.HashPattern, hash string) ([]byte, error) {
	cells, err := pattern.Cells(hash)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, pattern.Width, pattern.Height))
	fill := image.NewUniform(patternColor)
	for _, cell := range cells {
		draw.Draw(img, cell, fill, image.Point{}, draw.Src)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, goerr.Wrap(err, "failed to encode pattern")
	}
	return buf.Bytes(), nil
}

func handlePattern(pattern model.HashPattern) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sha := chi.URLParam(r, "sha")

		body, err := renderPattern(pattern, sha)
		if err != nil {
			writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		safeWrite(w, http.StatusOK, body)
	}
}
