package flow

import (
	"context"

	evbus "github.com/asaskevich/EventBus"

	"github.com/dmitrijs2005/stockdesk/internal/client/models"
)

// RefreshSignal is the invalidation event of one list. Subscribers are
// called synchronously, in subscription order, on every Invalidate.
type RefreshSignal struct {
	bus   evbus.Bus
	topic string
}

// NewRefreshSignal returns the signal for kind on bus. Signals for the same
// kind on the same bus share subscribers.
func NewRefreshSignal(bus evbus.Bus, kind models.Kind) *RefreshSignal {
	return &RefreshSignal{bus: bus, topic: "invalidate:" + string(kind)}
}

// Subscribe registers fn and returns a function that removes it.
func (s *RefreshSignal) Subscribe(fn func(ctx context.Context)) (func(), error) {
	if err := s.bus.Subscribe(s.topic, fn); err != nil {
		return nil, err
	}
	return func() { _ = s.bus.Unsubscribe(s.topic, fn) }, nil
}

// Invalidate tells every subscriber that its data changed on the API.
func (s *RefreshSignal) Invalidate(ctx context.Context) {
	s.bus.Publish(s.topic, ctx)
}
