package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/cinegestor/cinema-admin-console/internal/backend"
	"github.com/cinegestor/cinema-admin-console/internal/domain"
	appvalidator "github.com/cinegestor/cinema-admin-console/internal/validator"
	"github.com/cinegestor/cinema-admin-console/internal/vcs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
)

var (
	version = vcs.Version()
)

type Config struct {
	Port             int
	Env              string
	BackendURL       string
	RedisURL         string
	OtelCollectorURL string
}

type Application struct {
	config         Config
	logger         *slog.Logger
	templates      map[string]*template.Template
	validator      *validator.Validate
	sessionManager *scs.SessionManager

	movies    domain.MovieService
	rooms     domain.RoomService
	showtimes domain.ShowtimeService
	pricings  domain.TicketPricingService
	combos    domain.SnackComboService
	orders    domain.OrderService
}

func Run() error {
	godotenv.Load()

	var cfg Config

	flag.IntVar(&cfg.Port, "port", envInt("PORT", 4000), "server port")
	flag.StringVar(&cfg.Env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.BackendURL, "backend-url", envString("BACKEND_URL", "http://localhost:8080"), "Cinema backend base URL")
	flag.StringVar(&cfg.RedisURL, "redis-url", envString("REDIS_URL", ""), "Redis URL for the session store (in-memory store when empty)")
	flag.StringVar(&cfg.OtelCollectorURL, "otel-collector-url", envString("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	templates, err := newTemplateCache()
	if err != nil {
		logger.Error("failed to build template cache", "error", err)
		return err
	}

	sessionManager, err := newSessionManager(cfg)
	if err != nil {
		logger.Error("failed to set up session store", "error", err)
		return err
	}

	client := backend.NewClient(cfg.BackendURL, logger)

	app := &Application{
		config:         cfg,
		logger:         logger,
		templates:      templates,
		validator:      appvalidator.New(),
		sessionManager: sessionManager,
		movies:         backend.NewMovieClient(client),
		rooms:          backend.NewRoomClient(client),
		showtimes:      backend.NewShowtimeClient(client),
		pricings:       backend.NewTicketPricingClient(client),
		combos:         backend.NewSnackComboClient(client),
		orders:         backend.NewOrderClient(client),
	}

	shutdownTelemetry, err := app.initTelemetry()
	if err != nil {
		logger.Error("failed to initialize telemetry", "error", err)
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.run()
}

func newSessionManager(cfg Config) (*scs.SessionManager, error) {
	sessionManager := scs.New()
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	if cfg.RedisURL != "" {
		client, err := newRedisClient(cfg)
		if err != nil {
			return nil, err
		}

		sessionManager.Store = goredisstore.New(client)
	}

	return sessionManager, nil
}

func newRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(app.recoverPanic)
	r.Use(otelchi.Middleware("cinema-admin-console", otelchi.WithChiRoutes(r)))
	r.Use(app.sessionManager.LoadAndSave)

	r.NotFound(app.notFound)

	r.Get("/", app.home)
	r.Get("/health", app.healthcheck)

	r.Route("/filmes", func(r chi.Router) {
		r.Get("/", app.movieList)
		r.Get("/novo", app.movieForm)
		r.Post("/novo", app.movieCreate)
		r.Get("/{id}", app.movieDetails)
		r.Get("/{id}/editar", app.movieForm)
		r.Post("/{id}/editar", app.movieUpdate)
		r.Get("/{id}/excluir", app.movieConfirmDelete)
		r.Post("/{id}/excluir", app.movieDelete)
	})

	r.Route("/salas", func(r chi.Router) {
		r.Get("/", app.roomList)
		r.Get("/novo", app.roomForm)
		r.Post("/novo", app.roomCreate)
		r.Get("/{id}/editar", app.roomForm)
		r.Post("/{id}/editar", app.roomUpdate)
		r.Get("/{id}/excluir", app.roomConfirmDelete)
		r.Post("/{id}/excluir", app.roomDelete)
	})

	r.Route("/sessoes", func(r chi.Router) {
		r.Get("/", app.showtimeList)
		r.Get("/novo", app.showtimeForm)
		r.Post("/novo", app.showtimeCreate)
		r.Get("/{id}/editar", app.showtimeForm)
		r.Post("/{id}/editar", app.showtimeUpdate)
		r.Get("/{id}/excluir", app.showtimeConfirmDelete)
		r.Post("/{id}/excluir", app.showtimeDelete)
		r.Get("/{id}/venda", app.ticketSaleForm)
		r.Post("/{id}/venda", app.ticketSaleSubmit)
	})

	r.Route("/lanche-combos", func(r chi.Router) {
		r.Get("/", app.comboList)
		r.Get("/novo", app.comboForm)
		r.Post("/novo", app.comboCreate)
		r.Get("/{id}/editar", app.comboForm)
		r.Post("/{id}/editar", app.comboUpdate)
		r.Get("/{id}/excluir", app.comboConfirmDelete)
		r.Post("/{id}/excluir", app.comboDelete)
	})

	r.Route("/pedidos", func(r chi.Router) {
		r.Get("/", app.orderList)
		r.Get("/{id}/excluir", app.orderConfirmDelete)
		r.Post("/{id}/excluir", app.orderDelete)
	})

	return r
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return fallback
	}

	return n
}
