package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// OrderStatus represents the lifecycle of an order
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusInTransit OrderStatus = "in_transit"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusDisputed  OrderStatus = "disputed"
)

// OrderItem is one line of an order
type OrderItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Order represents a delivery order
type Order struct {
	ID              string      `json:"id"`
	CustomerID      string      `json:"customerId"`
	MerchantID      string      `json:"merchantId"`
	DriverID        string      `json:"driverId"`
	Description     string      `json:"description"`
	Items           []OrderItem `json:"items"`
	OrderedAt       time.Time   `json:"orderedAt"`
	Status          OrderStatus `json:"status"`
	PaymentMethod   string      `json:"paymentMethod"`
	DeliveryAddress string      `json:"deliveryAddress"`
	ComplaintID     null.String `json:"complaintId,omitempty"`
	TotalAmount     float64     `json:"totalAmount"`
	DeliveryCharge  float64     `json:"deliveryCharge"`
	FinalAmount     float64     `json:"finalAmount"`
}

// ItemsTotal sums quantity * unit price over the order lines
func (o *Order) ItemsTotal() float64 {
	var total float64
	for _, it := range o.Items {
		total += float64(it.Quantity) * it.UnitPrice
	}
	return total
}
