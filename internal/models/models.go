package models

import (
	"time"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCancelled = "cancelled"
)

const (
	PaymentStatusPending    = "pending"
	PaymentStatusSuccessful = "successful"
	PaymentStatusFailed     = "failed"
)

const (
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodPayPal     = "paypal"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCancelled:
		return true
	}
	return false
}

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null;default:user"    json:"role"`
}

type RefreshToken struct {
	ID        uint      `gorm:"primaryKey"          json:"id"`
	Token     string    `gorm:"unique;not null"     json:"token"`
	UserID    uint      `gorm:"index;not null"      json:"user_id"`
	ExpiresAt time.Time `gorm:"not null"            json:"expires_at"`
	Revoked   bool      `gorm:"default:false"       json:"revoked"`
}

type Order struct {
	ID              uint    `gorm:"primaryKey"                  json:"id"`
	UserID          uint    `gorm:"index;not null"              json:"user_id"`
	CustomerName    string  `gorm:"size:255;not null"           json:"customer_name"`
	CustomerEmail   string  `gorm:"size:255;not null"           json:"customer_email"`
	CustomerPhone   string  `gorm:"size:20"                     json:"customer_phone,omitempty"`
	ShippingAddress string  `json:"shipping_address,omitempty"`
	Total           float64 `gorm:"not null"                    json:"total"`
	Status          string  `gorm:"not null;default:pending"    json:"status"`
	CreatedAt       int64   `gorm:"autoCreateTime;not null"     json:"created_at"`

	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Payments []Payment   `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
}

type OrderItem struct {
	ID          uint    `gorm:"primaryKey"                  json:"id"`
	OrderID     uint    `gorm:"index;not null"              json:"order_id"`
	ProductName string  `gorm:"size:255;not null"           json:"product_name"`
	Quantity    int     `gorm:"not null;check:quantity>0"   json:"quantity"`
	Price       float64 `gorm:"not null"                    json:"price"`
}

type Payment struct {
	ID              uint    `gorm:"primaryKey"               json:"id"`
	PaymentID       string  `gorm:"size:255;not null"        json:"payment_id"`
	OrderID         uint    `gorm:"index;not null"           json:"order_id"`
	Status          string  `gorm:"not null;default:pending" json:"status"`
	PaymentMethod   string  `gorm:"size:32;not null"         json:"payment_method"`
	Amount          float64 `gorm:"not null"                 json:"amount"`
	GatewayResponse string  `json:"gateway_response,omitempty"`
	CreatedAt       int64   `gorm:"autoCreateTime;not null"  json:"created_at"`
}
