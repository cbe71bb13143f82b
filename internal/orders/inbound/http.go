package inbound

import (
	"context"

	"github.com/shandysiswandi/wsgate/internal/orders/entity"
	"github.com/shandysiswandi/wsgate/internal/orders/usecase"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkgrouter"
)

type uc interface {
	Create(ctx context.Context, in usecase.CreateInput) (entity.Order, error)
	Get(ctx context.Context, id int64) (entity.Order, error)
	Close(ctx context.Context, id int64) (entity.Order, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/orders", end.Create)
	r.GET("/orders/:id", end.Get)
	r.POST("/orders/:id/close", end.Close)
}
