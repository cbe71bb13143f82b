package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/wsgate/internal/incident"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkglog"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkgmetric"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	goroutine *pkgroutine.Manager
	metrics   *pkgmetric.Prometheus

	// resources
	incidents *incident.Bus
	consumer  *incident.Consumer

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	// closers run in order on Stop; modules register theirs in moduleClosers
	closers       []closer
	moduleClosers []closer
}

type closer struct {
	name string
	fn   func(context.Context) error
}

func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	pkglog.InitLogging(pkglog.ParseLevel(app.config.GetString("log.level")))

	app.initLibraries()
	app.initIncidents()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
