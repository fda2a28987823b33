package gateway

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CreditCardGateway simulates a card processor: 90% of attempts settle.
// Not production logic, it stands in for a real processor integration.
type CreditCardGateway struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewCreditCardGateway(rng *rand.Rand) *CreditCardGateway {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &CreditCardGateway{rng: rng}
}

func (g *CreditCardGateway) ProcessPayment(amount float64, data map[string]any) Result {
	success := g.draw() >= 10

	msg := "Payment processed successfully"
	if !success {
		msg = "Payment failed"
	}

	return Result{
		Success:       success,
		TransactionID: "CC_" + newTransactionRef(),
		Message:       msg,
		Gateway:       g.Name(),
	}
}

// draw serializes access to the rng; rand.Rand is not safe for the
// concurrent handlers echo runs.
func (g *CreditCardGateway) draw() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(100)
}

func (g *CreditCardGateway) Name() string {
	return "credit_card"
}

func newTransactionRef() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
