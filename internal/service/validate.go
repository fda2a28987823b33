package service

import (
	"fmt"
	"net/mail"

	"github.com/ecomstack/order_service/internal/models"
	"github.com/ecomstack/order_service/internal/transport"
)

const (
	maxNameLen  = 255
	maxPhoneLen = 20
)

func validEmail(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}

func validateCreateOrder(req transport.CreateOrderRequest) error {
	fe := FieldErrors{}

	if req.CustomerName == "" {
		fe.Add("customer_name", "customer_name is required")
	} else if len(req.CustomerName) > maxNameLen {
		fe.Add("customer_name", "customer_name must not exceed 255 characters")
	}

	if req.CustomerEmail == "" {
		fe.Add("customer_email", "customer_email is required")
	} else if len(req.CustomerEmail) > maxNameLen || !validEmail(req.CustomerEmail) {
		fe.Add("customer_email", "customer_email must be a valid email address")
	}

	if len(req.CustomerPhone) > maxPhoneLen {
		fe.Add("customer_phone", "customer_phone must not exceed 20 characters")
	}

	if len(req.Items) == 0 {
		fe.Add("items", "items must contain at least one entry")
	}
	validateItems(fe, req.Items)

	return fe.OrNil()
}

func validateUpdateOrder(req transport.UpdateOrderRequest) error {
	fe := FieldErrors{}

	if req.CustomerName != nil {
		if *req.CustomerName == "" {
			fe.Add("customer_name", "customer_name must not be empty")
		} else if len(*req.CustomerName) > maxNameLen {
			fe.Add("customer_name", "customer_name must not exceed 255 characters")
		}
	}

	if req.CustomerEmail != nil {
		if *req.CustomerEmail == "" {
			fe.Add("customer_email", "customer_email must not be empty")
		} else if len(*req.CustomerEmail) > maxNameLen || !validEmail(*req.CustomerEmail) {
			fe.Add("customer_email", "customer_email must be a valid email address")
		}
	}

	if req.CustomerPhone != nil && len(*req.CustomerPhone) > maxPhoneLen {
		fe.Add("customer_phone", "customer_phone must not exceed 20 characters")
	}

	if req.Status != nil && !models.ValidOrderStatus(*req.Status) {
		fe.Add("status", "status must be one of pending, confirmed, cancelled")
	}

	if req.Items != nil {
		if len(*req.Items) == 0 {
			fe.Add("items", "items must contain at least one entry")
		}
		validateItems(fe, *req.Items)
	}

	return fe.OrNil()
}

func validateItems(fe FieldErrors, items []transport.OrderItemPayload) {
	for i, it := range items {
		if it.ProductName == "" {
			fe.Add(fmt.Sprintf("items.%d.product_name", i), "product_name is required")
		} else if len(it.ProductName) > maxNameLen {
			fe.Add(fmt.Sprintf("items.%d.product_name", i), "product_name must not exceed 255 characters")
		}
		if it.Quantity < 1 {
			fe.Add(fmt.Sprintf("items.%d.quantity", i), "quantity must be at least 1")
		}
		if it.Price < 0 {
			fe.Add(fmt.Sprintf("items.%d.price", i), "price must be at least 0")
		}
	}
}

func validateCreatePayment(req transport.CreatePaymentRequest) error {
	fe := FieldErrors{}

	if req.OrderID == 0 {
		fe.Add("order_id", "order_id is required")
	}
	if req.PaymentMethod == "" {
		fe.Add("payment_method", "payment_method is required")
	}

	return fe.OrNil()
}
