package httpapi

import (
	"net/http"

	"github.com/orgball2608/socialhub/internal/feed"
	"github.com/orgball2608/socialhub/pkg/errors"
)

type composeRequest struct {
	AuthorID int    `json:"authorId"`
	Content  string `json:"content"`
	Location string `json:"location"`
}

func queryFilter(r *http.Request) (feed.Filter, error) {
	raw := r.URL.Query().Get("filter")
	f, ok := feed.ParseFilter(raw)
	if !ok {
		return "", errors.Invalid("unknown filter " + raw)
	}
	return f, nil
}

func (h *Handler) homeFeed(w http.ResponseWriter, r *http.Request) {
	items, err := h.feed.Home(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, items)
}

func (h *Handler) exploreFeed(w http.ResponseWriter, r *http.Request) {
	f, err := queryFilter(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	items, err := h.feed.Explore(r.Context(), f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, items)
}

func (h *Handler) storiesFeed(w http.ResponseWriter, r *http.Request) {
	items, err := h.feed.Stories(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, items)
}

func (h *Handler) profileFeed(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	f, err := queryFilter(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	profile, err := h.feed.Profile(r.Context(), id, f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	result, err := h.feed.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) compose(w http.ResponseWriter, r *http.Request) {
	var req composeRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.feed.Publish(r.Context(), req.AuthorID, req.Content, req.Location)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, p)
}
