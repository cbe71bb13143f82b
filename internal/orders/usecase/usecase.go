package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shandysiswandi/wsgate/internal/orders/entity"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkgerror"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkguid"
)

var errAlreadyClosed = errors.New("order already closed")

type Store interface {
	Create(ctx context.Context, order entity.Order) error
	Get(ctx context.Context, id int64) (entity.Order, error)
	Update(ctx context.Context, id int64, fn func(order *entity.Order) error) (entity.Order, error)
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store Store
	ID    pkguid.NumberID
	Clock Clock
}

type Usecase struct {
	store Store
	id    pkguid.NumberID
	clock Clock
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	return &Usecase{
		store: dep.Store,
		id:    dep.ID,
		clock: clock,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (entity.Order, error) {
	customer := strings.TrimSpace(in.Customer)
	if customer == "" {
		return entity.Order{}, pkgerror.NewCatalogued(pkgerror.RequiredParameter, "customer")
	}
	if in.Amount <= 0 {
		return entity.Order{}, pkgerror.NewCatalogued(pkgerror.InvalidParameter, "amount")
	}
	if u.store == nil || u.id == nil {
		return entity.Order{}, errMissingDependency()
	}

	order := entity.Order{
		ID:        u.id.Generate(),
		Customer:  customer,
		Amount:    in.Amount,
		Status:    entity.OrderStatusOpen,
		CreatedAt: u.clock.Now().Unix(),
	}

	if err := u.store.Create(ctx, order); err != nil {
		return entity.Order{}, mapStoreErr(err, order.ID)
	}

	return order, nil
}

func (u *Usecase) Get(ctx context.Context, id int64) (entity.Order, error) {
	if id <= 0 {
		return entity.Order{}, pkgerror.NewCatalogued(pkgerror.InvalidParameter, "id")
	}

	if u.store == nil {
		return entity.Order{}, errMissingDependency()
	}

	order, err := u.store.Get(ctx, id)
	if err != nil {
		return entity.Order{}, mapStoreErr(err, id)
	}

	return order, nil
}

func (u *Usecase) Close(ctx context.Context, id int64) (entity.Order, error) {
	if id <= 0 {
		return entity.Order{}, pkgerror.NewCatalogued(pkgerror.InvalidParameter, "id")
	}

	if u.store == nil {
		return entity.Order{}, errMissingDependency()
	}

	closedAt := u.clock.Now().Unix()
	order, err := u.store.Update(ctx, id, func(order *entity.Order) error {
		if order.Status == entity.OrderStatusClosed {
			return errAlreadyClosed
		}
		order.Status = entity.OrderStatusClosed
		order.ClosedAt = closedAt
		return nil
	})
	if err != nil {
		return entity.Order{}, mapStoreErr(err, id)
	}

	return order, nil
}

func errMissingDependency() error {
	return pkgerror.WrapInternal(pkgerror.InternalEngineError, errors.New("orders: missing dependency"))
}

func mapStoreErr(err error, id int64) error {
	code := pkgerror.UnprocessableEntity.Code()

	switch {
	case errors.Is(err, pkgerror.ErrNotFound):
		return pkgerror.NewBusinessError(code, "Order {0} not found", id)
	case errors.Is(err, errAlreadyClosed):
		return pkgerror.NewBusinessError(code, "Order {0} already closed", id)
	case errors.Is(err, pkgerror.ErrConflict):
		return pkgerror.NewBusinessError(code, "Order {0} already exists", id)
	}

	if serr, ok := pkgerror.As(err); ok {
		return serr
	}
	return pkgerror.WrapInternal(pkgerror.InternalEngineError, err)
}
