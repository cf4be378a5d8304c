package httpapi

import (
	"context"
	"net/http"

	"github.com/orgball2608/socialhub/internal/domain"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, users)
}

func (h *Handler) suggestedUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.GetSuggested(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, users)
}

func (h *Handler) onlineUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.GetOnlineUsers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, users)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var draft domain.UserDraft
	if err := decode(r, &draft); err != nil {
		h.writeError(w, r, err)
		return
	}
	u, err := h.users.Create(r.Context(), draft)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, u)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var patch domain.UserPatch
	if err := decode(r, &patch); err != nil {
		h.writeError(w, r, err)
		return
	}
	u, err := h.users.Update(r.Context(), id, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, u)
}

func (h *Handler) getUser(ctx context.Context, id int) (any, error) {
	return h.users.GetByID(ctx, id)
}

func (h *Handler) deleteUser(ctx context.Context, id int) (any, error) {
	return h.users.Delete(ctx, id)
}

func (h *Handler) followUser(ctx context.Context, id int) (any, error) {
	return h.users.Follow(ctx, id)
}

func (h *Handler) unfollowUser(ctx context.Context, id int) (any, error) {
	return h.users.Unfollow(ctx, id)
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, posts)
}

func (h *Handler) trendingPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.GetTrending(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, posts)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var draft domain.PostDraft
	if err := decode(r, &draft); err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.posts.Create(r.Context(), draft)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var patch domain.PostPatch
	if err := decode(r, &patch); err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.posts.Update(r.Context(), id, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

func (h *Handler) getPost(ctx context.Context, id int) (any, error) {
	return h.posts.GetByID(ctx, id)
}

func (h *Handler) deletePost(ctx context.Context, id int) (any, error) {
	return h.posts.Delete(ctx, id)
}

func (h *Handler) likePost(ctx context.Context, id int) (any, error) {
	return h.posts.Like(ctx, id)
}

func (h *Handler) unlikePost(ctx context.Context, id int) (any, error) {
	return h.posts.Unlike(ctx, id)
}

func (h *Handler) listStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.stories.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stories)
}

func (h *Handler) createStory(w http.ResponseWriter, r *http.Request) {
	var draft domain.StoryDraft
	if err := decode(r, &draft); err != nil {
		h.writeError(w, r, err)
		return
	}
	s, err := h.stories.Create(r.Context(), draft)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, s)
}

func (h *Handler) updateStory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var patch domain.StoryPatch
	if err := decode(r, &patch); err != nil {
		h.writeError(w, r, err)
		return
	}
	s, err := h.stories.Update(r.Context(), id, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, s)
}

func (h *Handler) getStory(ctx context.Context, id int) (any, error) {
	return h.stories.GetByID(ctx, id)
}

func (h *Handler) deleteStory(ctx context.Context, id int) (any, error) {
	return h.stories.Delete(ctx, id)
}

func (h *Handler) viewStory(ctx context.Context, id int) (any, error) {
	return h.stories.View(ctx, id)
}
