package inbound

import (
	"net/http"

	"github.com/shandysiswandi/wsgate/internal/orders/entity"
)

type CreateOrderRequest struct {
	Customer string `json:"customer"`
	Amount   int64  `json:"amount"`
}

// Order is the wire form of an order. IDs are strings so JavaScript clients
// keep all 64 bits.
type Order struct {
	ID        string             `json:"id"`
	Customer  string             `json:"customer"`
	Amount    int64              `json:"amount"`
	Status    entity.OrderStatus `json:"status"`
	CreatedAt int64              `json:"created_at"`
	ClosedAt  int64              `json:"closed_at,omitempty"`
}

type CreateOrderResponse struct {
	Order
}

func (CreateOrderResponse) StatusCode() int {
	return http.StatusCreated
}

func (CreateOrderResponse) Message() string {
	return "order created"
}

type CloseOrderResponse struct {
	Order
}

func (CloseOrderResponse) Message() string {
	return "order closed"
}
