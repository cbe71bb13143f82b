package orders

import (
	"context"

	"github.com/shandysiswandi/wsgate/internal/orders/inbound"
	"github.com/shandysiswandi/wsgate/internal/orders/store"
	"github.com/shandysiswandi/wsgate/internal/orders/usecase"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkguid"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
	ID     pkguid.NumberID
}

func New(dep Dependency) (func(context.Context) error, error) {
	if dep.ID == nil {
		nodeID := int64(-1)
		if dep.Config != nil && dep.Config.GetString("modules.orders.node_id") != "" {
			nodeID = dep.Config.GetInt("modules.orders.node_id")
		}

		sf, err := pkguid.NewSnowflake(nodeID)
		if err != nil {
			return nil, err
		}
		dep.ID = sf
	}

	uc := usecase.New(usecase.Dependency{
		Store: store.NewInMemoryStore(),
		ID:    dep.ID,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil, nil
}
