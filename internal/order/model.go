package order

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusShipped   OrderStatus = "Shipped"
	StatusDelivered OrderStatus = "Delivered"
	StatusCanceled  OrderStatus = "Canceled"
)

// CustomerInfo is the shipping form snapshot taken at submit time.
type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// OrderItem is a cart line frozen at submit time. It copies the fields
// it needs rather than referencing the live catalog or cart.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// Order is immutable once written.
type Order struct {
	ID           string       `json:"id"`
	Date         time.Time    `json:"date"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	Items        []OrderItem  `json:"items"`
	Subtotal     float64      `json:"subtotal"`
	Shipping     float64      `json:"shipping"`
	Total        float64      `json:"total"`
	Status       OrderStatus  `json:"status"`
}
