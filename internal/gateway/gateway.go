package gateway

// Result is what a gateway returns for a processed payment attempt. Both
// outcomes are valid results; a declined payment is not an error.
type Result struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
	Gateway       string `json:"gateway"`
}

type Gateway interface {
	ProcessPayment(amount float64, data map[string]any) Result
	Name() string
}
