package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/wsgate/internal/gate"
	"github.com/shandysiswandi/wsgate/internal/incident"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkgmetric"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkguid"
)

func (a *App) initConfig() {
	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	a.config = cfg
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(100)
	a.uuid = pkguid.NewUUID()
	a.metrics = pkgmetric.NewPrometheus()
}

func (a *App) initIncidents() {
	a.incidents = incident.NewBus(int(a.config.GetInt("incident.buffer")))
	a.consumer = incident.NewConsumer(
		a.incidents,
		incident.NewLogHandler(slog.Default()),
		a.goroutine,
		incident.ConsumerConfig{
			Workers:      int(a.config.GetInt("incident.workers")),
			DedupeWindow: int(a.config.GetInt("incident.dedupe_window")),
		},
	)
	a.consumer.Start(a.ctx)
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(pkgrouter.Dependency{
		ID:       a.uuid,
		Reporter: incident.NewReporter(a.incidents, a.metrics),
		Observer: a.metrics,
	})

	a.router.Handle(http.MethodGet, "/metrics", a.metrics.Handler())
	a.router.GET("/errors", listErrors)

	// Everything registered from here on goes through the gate.
	a.router.Use(gate.New(gate.LoadPolicy(a.config)).Middleware(a.router.WriteError))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// initClosers fixes the shutdown order: stop accepting requests, stop the
// incident workers, wait for background goroutines, then release modules and
// config.
func (a *App) initClosers() {
	a.closers = append(a.closers,
		closer{name: "HTTP Server", fn: a.httpServer.Shutdown},
		closer{name: "Incident Consumer", fn: a.consumer.Stop},
		closer{name: "Goroutines", fn: a.waitGoroutines},
	)
	a.closers = append(a.closers, a.moduleClosers...)
	a.closers = append(a.closers, closer{name: "Config", fn: func(context.Context) error {
		return a.config.Close()
	}})
}

func (a *App) waitGoroutines(ctx context.Context) error {
	if a.cancel != nil {
		a.cancel()
	}

	slog.InfoContext(ctx, "waiting for all goroutine to finish")
	return a.goroutine.Wait()
}

var _ incident.DropObserver = (*pkgmetric.Prometheus)(nil)
