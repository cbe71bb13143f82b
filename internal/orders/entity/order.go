package entity

type OrderStatus string

const (
	OrderStatusOpen   OrderStatus = "OPEN"
	OrderStatusClosed OrderStatus = "CLOSED"
)

type Order struct {
	ID        int64
	Customer  string
	Amount    int64
	Status    OrderStatus
	CreatedAt int64
	ClosedAt  int64
}
