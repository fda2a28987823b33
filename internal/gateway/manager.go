package gateway

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
)

var ErrUnknownGateway = errors.New("unknown payment gateway")

// Manager is a registry of named gateway implementations. It is constructed
// once and handed to the payment service explicitly, there is no package-level
// instance. Register and Get are safe to call from concurrent handlers.
type Manager struct {
	mu       sync.RWMutex
	gateways map[string]Gateway
}

// NewManager registers the two default gateways. rng may be nil, in which case
// each gateway seeds its own source; tests pass a seeded one for deterministic
// outcomes. Each default gateway gets a source derived from rng rather than rng
// itself, so the two never draw from shared unsynchronized state.
func NewManager(rng *rand.Rand) *Manager {
	var ccRng, ppRng *rand.Rand
	if rng != nil {
		ccRng = rand.New(rand.NewSource(rng.Int63()))
		ppRng = rand.New(rand.NewSource(rng.Int63()))
	}

	m := &Manager{gateways: make(map[string]Gateway)}
	m.Register(NewCreditCardGateway(ccRng))
	m.Register(NewPayPalGateway(ppRng))
	return m
}

func (m *Manager) Register(g Gateway) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gateways[g.Name()] = g
}

func (m *Manager) Get(name string) (Gateway, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, ok := m.gateways[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGateway, name)
	}
	return g, nil
}

func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.gateways))
	for name := range m.gateways {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
