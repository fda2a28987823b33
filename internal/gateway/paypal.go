package gateway

import (
	"math/rand"
	"sync"
	"time"
)

// PayPalGateway simulates PayPal: 85% of attempts settle.
type PayPalGateway struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewPayPalGateway(rng *rand.Rand) *PayPalGateway {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PayPalGateway{rng: rng}
}

func (g *PayPalGateway) ProcessPayment(amount float64, data map[string]any) Result {
	success := g.draw() >= 15

	msg := "Payment processed successfully"
	if !success {
		msg = "Payment failed"
	}

	return Result{
		Success:       success,
		TransactionID: "PP_" + newTransactionRef(),
		Message:       msg,
		Gateway:       g.Name(),
	}
}

func (g *PayPalGateway) draw() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(100)
}

func (g *PayPalGateway) Name() string {
	return "paypal"
}
