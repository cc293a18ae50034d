// Package router wires handlers and middleware into the HTTP mux.
package router

import (
	"net/http"

	"github.com/mediatone/mediatone-server/internal/api/http/handler"
	"github.com/mediatone/mediatone-server/internal/api/http/middleware"
	"github.com/mediatone/mediatone-server/internal/logger"
	"github.com/mediatone/mediatone-server/internal/model"
	"github.com/mediatone/mediatone-server/internal/service"
)

// Router assembles the HTTP surface: public auth and listing routes,
// token-gated profile and media routes, and the upload route gated to
// publishing roles.
type Router struct {
	authService    *service.Auth
	userService    *service.User
	videoService   *service.Video
	pinger         handler.Pinger
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	userService *service.User,
	videoService *service.Video,
	pinger handler.Pinger,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		userService:    userService,
		videoService:   videoService,
		pinger:         pinger,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the mux with all routes and middleware. Every request
// passes the logging middleware; protected routes additionally pass
// authentication, and uploads pass the role guard.
func (r *Router) Register() http.Handler {
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)
	uploadRole := middleware.NewRequireRole(r.contextManager, r.logger, model.RoleMusician, model.RoleAdmin)
	logging := middleware.NewLogging(r.logger)

	authHandler := handler.NewAuth(r.authService, r.logger)
	userHandler := handler.NewUser(r.userService, r.contextManager, r.logger)
	videoHandler := handler.NewVideo(r.videoService, r.contextManager, r.logger)
	healthHandler := handler.NewHealth(r.pinger, r.logger)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", healthHandler.Check)

	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	mux.Handle("GET /api/users/profile", authenticate.Wrap(http.HandlerFunc(userHandler.Profile)))
	mux.Handle("PUT /api/users/profile", authenticate.Wrap(http.HandlerFunc(userHandler.UpdateProfile)))
	mux.HandleFunc("GET /api/users/{id}", userHandler.PublicProfile)

	mux.Handle("POST /api/videos/upload", authenticate.Wrap(uploadRole.Wrap(http.HandlerFunc(videoHandler.Upload))))
	mux.HandleFunc("GET /api/videos", videoHandler.List)
	mux.HandleFunc("GET /api/videos/{id}", videoHandler.Get)
	mux.HandleFunc("GET /api/videos/user/{userId}", videoHandler.ListByUser)
	mux.Handle("DELETE /api/videos/{id}", authenticate.Wrap(http.HandlerFunc(videoHandler.Delete)))

	return logging.Wrap(mux)
}
