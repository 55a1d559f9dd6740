package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/projectveo/backend/auth"
	"github.com/projectveo/backend/config"
	"github.com/projectveo/backend/database"
	"github.com/projectveo/backend/services"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database, opts ...Option) (Server, error) {
	startupTime := time.Now()
	opts = append([]Option{withStartupTime(startupTime)}, opts...)

	router, deps, err := newRouter(database, opts...)
	if err != nil {
		return Server{}, err
	}

	port := config.GetString(deps.config, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	readTimeout := time.Duration(config.GetInt(deps.config, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(deps.config, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(deps.config, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

// routerDeps are the collaborators injected into the router
type routerDeps struct {
	config         map[string]string
	startupTime    time.Time
	tokens         *auth.TokenIssuer
	accounts       *services.Accounts
	blobSink       services.BlobSink
	notifier       services.BookingNotifier
	maxUploadBytes int64
}

type Option func(*routerDeps)

func WithConfig(c map[string]string) Option {
	return func(d *routerDeps) {
		d.config = c
	}
}

func withStartupTime(startupTime time.Time) Option {
	return func(d *routerDeps) {
		d.startupTime = startupTime
	}
}

// WithTokenIssuer sets the issuer used to sign and verify access tokens
func WithTokenIssuer(tokens *auth.TokenIssuer) Option {
	return func(d *routerDeps) {
		d.tokens = tokens
	}
}

// WithBlobSink enables file and SRS uploads
func WithBlobSink(sink services.BlobSink) Option {
	return func(d *routerDeps) {
		d.blobSink = sink
	}
}

// WithNotifier is told about every new booking
func WithNotifier(notifier services.BookingNotifier) Option {
	return func(d *routerDeps) {
		d.notifier = notifier
	}
}

func newRouter(database database.Database, opts ...Option) (*chi.Mux, routerDeps, error) {
	var deps routerDeps
	for _, opt := range opts {
		opt(&deps)
	}
	if deps.config == nil {
		deps.config = config.New()
	}
	if deps.startupTime.IsZero() {
		deps.startupTime = time.Now()
	}
	if deps.tokens == nil {
		deps.tokens = auth.NewTokenIssuer(config.GetString(deps.config, "JWT_SECRET_KEY", ""))
	}
	deps.maxUploadBytes = int64(config.GetInt(deps.config, "MAX_UPLOAD_MB", 25)) << 20
	deps.accounts = services.NewAccounts(
		database.UserRepo(),
		auth.NewBcryptHasher(config.GetInt(deps.config, "BCRYPT_COST", 0)),
		deps.tokens,
		config.GetBool(deps.config, "ALLOW_ADMIN_SIGNUP", false),
	)

	bookingLimit, err := newIPRateLimiter(config.GetString(deps.config, "BOOKING_RATE_LIMIT", "10-H"))
	if err != nil {
		return nil, deps, fmt.Errorf("invalid BOOKING_RATE_LIMIT: %w", err)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(chimid.RequestID)
	chiRouter.Use(chimid.RealIP)
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(PrometheusMiddleware)
	chiRouter.Use(secureHeaders(config.GetString(deps.config, "APP_ENV", "development") != "production"))

	acceptedOrigins := config.GetList(deps.config, "CORS_ORIGINS")
	if len(acceptedOrigins) == 0 {
		acceptedOrigins = []string{"*"}
	}
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(corsMiddleware(acceptedOrigins))

	handlers := initializeHandlers(database, deps)
	authMiddleware := newAuthMiddleware(auth.NewIdentityResolver(deps.tokens, database.UserRepo()))

	setupOpsRoutes(chiRouter, handlers)
	chiRouter.Route("/api", func(r chi.Router) {
		setupAPIRoutes(r, handlers, authMiddleware, bookingLimit)
	})

	return chiRouter, deps, nil
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
