package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dtroode/socialfeed-server/internal/api/http/cookie"
	"github.com/dtroode/socialfeed-server/internal/api/http/handler"
	"github.com/dtroode/socialfeed-server/internal/api/http/middleware"
	"github.com/dtroode/socialfeed-server/internal/api/http/response"
	"github.com/dtroode/socialfeed-server/internal/logger"
	"github.com/dtroode/socialfeed-server/internal/model"
)

// Services groups the domain services the public API is built on.
type Services struct {
	Auth   handler.AuthService
	Tokens middleware.Authenticator
	Users  handler.UserService
	Follow handler.FollowService
	Posts  handler.PostService
	Feed   handler.FeedService
}

// Options carries transport level settings for the router.
type Options struct {
	CORSOrigins    []string
	MetricsHandler http.Handler

	// ExposeInternalErrors adds the cause of 500 responses to their body.
	ExposeInternalErrors bool
	// TrustProxy takes the client address from X-Real-IP and X-Forwarded-For.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxy bool
}

// Router represents the HTTP router of the public API.
type Router struct {
	services       Services
	options        Options
	cookies        *cookie.Manager
	contextManager model.ContextManager
	pinger         model.Pinger
	metrics        middleware.HTTPRecorder
	authLimiter    *middleware.RateLimiter
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	services Services,
	options Options,
	cookies *cookie.Manager,
	contextManager model.ContextManager,
	pinger model.Pinger,
	metrics middleware.HTTPRecorder,
	authLimiter *middleware.RateLimiter,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		options:        options,
		cookies:        cookies,
		contextManager: contextManager,
		pinger:         pinger,
		metrics:        metrics,
		authLimiter:    authLimiter,
		logger:         logger,
	}
}

// Register builds the route tree with its middleware chain.
func (r *Router) Register() http.Handler {
	system := handler.NewSystem(r.pinger, r.logger)
	authenticate := middleware.NewAuthenticate(r.services.Tokens, r.cookies, r.contextManager, r.logger)

	mux := chi.NewRouter()
	if r.options.TrustProxy {
		mux.Use(chiMiddleware.RealIP)
	}
	if r.options.ExposeInternalErrors {
		mux.Use(response.Diagnostics)
	}
	mux.Use(middleware.NewRecovery(r.logger).Handle)
	mux.Use(middleware.NewLogging(r.logger).Handle)
	mux.Use(middleware.NewMetrics(r.metrics).Handle)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.options.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Cookie"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	mux.NotFound(system.NotFound)
	mux.MethodNotAllowed(system.NotFound)

	mux.Get("/", system.Index)
	mux.Get("/health", system.Health)
	if r.options.MetricsHandler != nil {
		mux.Method(http.MethodGet, "/metrics", r.options.MetricsHandler)
	}

	r.registerAuthRoutes(mux)
	r.registerUserRoutes(mux)
	r.registerFollowRoutes(mux, authenticate)
	r.registerPostRoutes(mux, authenticate)

	return mux
}

func (r *Router) registerAuthRoutes(mux chi.Router) {
	h := handler.NewAuth(r.services.Auth, r.cookies, r.logger)

	mux.Route("/auth", func(sub chi.Router) {
		sub.With(r.authLimiter.Handle).Post("/register", h.Register)
		sub.With(r.authLimiter.Handle).Post("/login", h.Login)
		sub.Post("/logout", h.Logout)
	})
}

func (r *Router) registerUserRoutes(mux chi.Router) {
	h := handler.NewUser(r.services.Users, r.logger)

	mux.Route("/users", func(sub chi.Router) {
		sub.Get("/search/username", h.SearchByUsername)
		sub.Get("/search/email", h.SearchByEmail)
	})
}

func (r *Router) registerFollowRoutes(mux chi.Router, authenticate *middleware.Authenticate) {
	h := handler.NewFollow(r.services.Follow, r.contextManager, r.logger)

	mux.Route("/follow", func(sub chi.Router) {
		sub.Use(authenticate.Handle)
		sub.Get("/followers/{userId}", h.Followers)
		sub.Get("/following/{userId}", h.Following)
		sub.Post("/{userId}", h.Follow)
		sub.Delete("/{userId}", h.Unfollow)
	})
}

func (r *Router) registerPostRoutes(mux chi.Router, authenticate *middleware.Authenticate) {
	h := handler.NewPost(r.services.Posts, r.services.Feed, r.contextManager, r.logger)

	mux.Get("/posts/{userId}", h.ListByUser)
	mux.With(authenticate.Handle).Post("/posts", h.Create)
	mux.With(authenticate.Handle).Get("/feed", h.Feed)
}
