package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/shandysiswandi/wsgate/internal/orders/entity"
	"github.com/shandysiswandi/wsgate/internal/orders/usecase"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkgerror"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkgrouter"
)

const maxBodyBytes = 1 << 20

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Create(ctx context.Context, r *http.Request) (any, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, pkgerror.NewCatalogued(pkgerror.RequiredParameter, "body")
	}

	var req CreateOrderRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, pkgerror.NewCatalogued(pkgerror.RequiredParameter, "body")
		}
		return nil, pkgerror.NewCatalogued(pkgerror.InvalidParameter, "body")
	}

	order, err := h.uc.Create(ctx, usecase.CreateInput{
		Customer: req.Customer,
		Amount:   req.Amount,
	})
	if err != nil {
		return nil, err
	}

	return CreateOrderResponse{Order: toHTTPOrder(order)}, nil
}

func (h *HTTPEndpoint) Get(ctx context.Context, r *http.Request) (any, error) {
	id, err := parseID(pkgrouter.GetParam(ctx, "id"))
	if err != nil {
		return nil, err
	}

	order, err := h.uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return toHTTPOrder(order), nil
}

func (h *HTTPEndpoint) Close(ctx context.Context, r *http.Request) (any, error) {
	id, err := parseID(pkgrouter.GetParam(ctx, "id"))
	if err != nil {
		return nil, err
	}

	order, err := h.uc.Close(ctx, id)
	if err != nil {
		return nil, err
	}

	return CloseOrderResponse{Order: toHTTPOrder(order)}, nil
}

func parseID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, pkgerror.NewCatalogued(pkgerror.RequiredParameter, "id")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerror.NewCatalogued(pkgerror.InvalidParameter, "id")
	}

	return id, nil
}

func toHTTPOrder(o entity.Order) Order {
	return Order{
		ID:        strconv.FormatInt(o.ID, 10),
		Customer:  o.Customer,
		Amount:    o.Amount,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		ClosedAt:  o.ClosedAt,
	}
}
