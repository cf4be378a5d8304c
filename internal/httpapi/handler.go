package httpapi

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/orgball2608/socialhub/internal/feed"
	"github.com/orgball2608/socialhub/internal/message"
	"github.com/orgball2608/socialhub/internal/notification"
	"github.com/orgball2608/socialhub/internal/post"
	"github.com/orgball2608/socialhub/internal/ratelimit"
	"github.com/orgball2608/socialhub/internal/story"
	"github.com/orgball2608/socialhub/internal/user"
	"github.com/orgball2608/socialhub/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Users         user.Service
	Posts         post.Service
	Stories       story.Service
	Feed          feed.Service
	Notifications notification.Service
	Messages      message.Service
	Limiter       ratelimit.Limiter
	Metrics       *Metrics
	Logger        logger.Logger
}

type Handler struct {
	users         user.Service
	posts         post.Service
	stories       story.Service
	feed          feed.Service
	notifications notification.Service
	messages      message.Service
	limiter       ratelimit.Limiter
	metrics       *Metrics
	logger        logger.Logger
}

// NewRouter registers every route. Literal paths are registered before the
// {id} routes sharing their prefix so they win the match.
func NewRouter(opts Opts) *mux.Router {
	h := &Handler{
		users:         opts.Users,
		posts:         opts.Posts,
		stories:       opts.Stories,
		feed:          opts.Feed,
		notifications: opts.Notifications,
		messages:      opts.Messages,
		limiter:       opts.Limiter,
		metrics:       opts.Metrics,
		logger:        opts.Logger.WithComponent("HTTP"),
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(opts.Metrics.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(h.withRequestID, h.withAccessLog, h.withMetrics, h.withRateLimit)

	api.HandleFunc("/users", h.listUsers).Methods(http.MethodGet)
	api.HandleFunc("/users", h.createUser).Methods(http.MethodPost)
	api.HandleFunc("/users/suggested", h.suggestedUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/online", h.onlineUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", h.byID(h.getUser)).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", h.updateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", h.byID(h.deleteUser)).Methods(http.MethodDelete)
	api.HandleFunc("/users/{id}/follow", h.byID(h.followUser)).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}/unfollow", h.byID(h.unfollowUser)).Methods(http.MethodPost)

	api.HandleFunc("/posts", h.listPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts", h.createPost).Methods(http.MethodPost)
	api.HandleFunc("/posts/trending", h.trendingPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", h.byID(h.getPost)).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", h.updatePost).Methods(http.MethodPut)
	api.HandleFunc("/posts/{id}", h.byID(h.deletePost)).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{id}/like", h.byID(h.likePost)).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}/unlike", h.byID(h.unlikePost)).Methods(http.MethodPost)

	api.HandleFunc("/stories", h.listStories).Methods(http.MethodGet)
	api.HandleFunc("/stories", h.createStory).Methods(http.MethodPost)
	api.HandleFunc("/stories/{id}", h.byID(h.getStory)).Methods(http.MethodGet)
	api.HandleFunc("/stories/{id}", h.updateStory).Methods(http.MethodPut)
	api.HandleFunc("/stories/{id}", h.byID(h.deleteStory)).Methods(http.MethodDelete)
	api.HandleFunc("/stories/{id}/view", h.byID(h.viewStory)).Methods(http.MethodPost)

	api.HandleFunc("/feed/home", h.homeFeed).Methods(http.MethodGet)
	api.HandleFunc("/feed/explore", h.exploreFeed).Methods(http.MethodGet)
	api.HandleFunc("/feed/stories", h.storiesFeed).Methods(http.MethodGet)
	api.HandleFunc("/feed/profile/{id}", h.profileFeed).Methods(http.MethodGet)
	api.HandleFunc("/feed/search", h.search).Methods(http.MethodGet)
	api.HandleFunc("/feed/compose", h.compose).Methods(http.MethodPost)

	api.HandleFunc("/notifications", h.listNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notifications/unread-count", h.unreadNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notifications/read-all", h.readAllNotifications).Methods(http.MethodPost)
	api.HandleFunc("/notifications/{id}/read", h.byID(h.readNotification)).Methods(http.MethodPost)

	api.HandleFunc("/conversations", h.listConversations).Methods(http.MethodGet)
	api.HandleFunc("/conversations/{id}/messages", h.byID(h.conversationMessages)).Methods(http.MethodGet)
	api.HandleFunc("/conversations/{id}/messages", h.sendMessage).Methods(http.MethodPost)

	return r
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		h.logger.Error("Failed to write response", "error", err)
	}
}

// byID adapts an operation addressed by the {id} path variable.
func (h *Handler) byID(op func(ctx context.Context, id int) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		out, err := op(r.Context(), id)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, out)
	}
}
