package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/wsgate/internal/orders"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.orders.enabled") {
		closeFn, err := orders.New(orders.Dependency{
			Config: a.config,
			Router: a.router,
		})
		if err != nil {
			slog.Error("failed to init module orders", "error", err)
			os.Exit(1)
		}
		if closeFn != nil {
			a.moduleClosers = append(a.moduleClosers, closer{name: "Orders", fn: closeFn})
		}
	}
}
