package transport

type OrderItemPayload struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerPhone   string             `json:"customer_phone"`
	ShippingAddress string             `json:"shipping_address"`
	Items           []OrderItemPayload `json:"items"`
}

// UpdateOrderRequest patches single fields; nil means "leave as is". A non-nil
// Items replaces the whole item set and forces a total recompute.
type UpdateOrderRequest struct {
	CustomerName    *string             `json:"customer_name"`
	CustomerEmail   *string             `json:"customer_email"`
	CustomerPhone   *string             `json:"customer_phone"`
	ShippingAddress *string             `json:"shipping_address"`
	Status          *string             `json:"status"`
	Items           *[]OrderItemPayload `json:"items"`
}

type CreatePaymentRequest struct {
	OrderID       uint   `json:"order_id"`
	PaymentMethod string `json:"payment_method"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
