package bootstrap

import (
	"net/http"

	"github.com/staffdeck/directory-service/internal/application/auth"
	"github.com/staffdeck/directory-service/internal/application/directory"
	"github.com/staffdeck/directory-service/internal/config"
	"github.com/staffdeck/directory-service/internal/infrastructure/memory"
	"github.com/staffdeck/directory-service/internal/infrastructure/security"
	"github.com/staffdeck/directory-service/internal/logger"
	http_handlers "github.com/staffdeck/directory-service/internal/transport/http/handlers"
	"github.com/staffdeck/directory-service/internal/transport/http/middleware"
	"github.com/staffdeck/directory-service/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing.
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)
	NewRouter  func(router.Deps) (http.Handler, error)
}

/*
========================
 Core bootstrap logic
========================

The object graph is built exactly once, top of the process, with plain
constructor injection: store -> directory service -> auth service ->
handlers -> router. The store is the only process-wide shared singleton.
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) store
	store := memory.NewUserStore()
	if cfg.Env == "test" && cfg.FixturesPath != "" {
		n := store.LoadFixtures(cfg.FixturesPath)
		logger.Logger.Info().Int("count", n).Str("path", cfg.FixturesPath).Msg("user fixtures loaded")
	}

	// 2) security
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)

	// 3) services
	directorySvc := directory.NewService(store)
	authSvc := auth.NewService(store, hasher, signer, cfg.TokenTTL)

	// 4) handlers + middleware
	authH := http_handlers.NewAuthHandler(authSvc)
	usersH := http_handlers.NewUsersHandler(directorySvc, hasher)
	healthH := http_handlers.NewHealthHandler()

	sessionMW := middleware.Session(authSvc)

	// 5) router
	mux, err := deps.NewRouter(router.Deps{
		Health:      healthH,
		Auth:        authH,
		Users:       usersH,
		RequestIDMW: middleware.RequestID,
		SessionMW:   sessionMW,
		MetricsMW:   middleware.Metrics,
	})
	if err != nil {
		return nil, nil, err
	}

	// 6) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewRouter: func(d router.Deps) (http.Handler, error) {
			return router.New(d)
		},
	}
}
