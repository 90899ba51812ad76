package entity

import "time"

// OrderStatus is the closed set of order states.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusShipped   OrderStatus = "Shipped"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID         int         `json:"id"`
	CustomerID int         `json:"customer_id"`
	ProductID  int         `json:"product_id"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}

// CreatedAtString renders the timestamp the way the API exposes it.
func (o *Order) CreatedAtString() string {
	if o.CreatedAt.IsZero() {
		return "Not Available"
	}
	return o.CreatedAt.Format("2006-01-02 15:04:05")
}

/*
Mysql Schema:

CREATE TABLE orders (
	id INT AUTO_INCREMENT PRIMARY KEY,
	customer_id INT NOT NULL,
	product_id INT NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'Pending',
	created_at DATETIME NOT NULL
);
*/
