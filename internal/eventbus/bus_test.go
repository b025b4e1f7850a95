package eventbus

import (
	"testing"

	"homenotify/internal/domain"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBus_DeliversToRegisteredHandlers(t *testing.T) {
	bus := New(zap.NewNop())

	var received []domain.Event
	bus.Subscribe(domain.EventDoorbell, func(event domain.Event) {
		received = append(received, event)
	})

	event := domain.DoorbellEvent{Action: "pressed", State: true}
	bus.Publish(event)

	assert.Equal(t, []domain.Event{event}, received)
}

func TestBus_RoutesByType(t *testing.T) {
	bus := New(zap.NewNop())

	var doorbell, appliance int
	bus.Subscribe(domain.EventDoorbell, func(domain.Event) { doorbell++ })
	bus.Subscribe(domain.EventApplianceState, func(domain.Event) { appliance++ })

	bus.Publish(domain.DoorbellEvent{State: true})
	bus.Publish(domain.DoorbellEvent{State: false})
	bus.Publish(domain.ApplianceStateEvent{ColorMode: "Mode"})

	assert.Equal(t, 2, doorbell)
	assert.Equal(t, 1, appliance)
}

func TestBus_RegistrationOrder(t *testing.T) {
	bus := New(zap.NewNop())

	var order []string
	bus.Subscribe(domain.EventDoorbell, func(domain.Event) { order = append(order, "first") })
	bus.Subscribe(domain.EventDoorbell, func(domain.Event) { order = append(order, "second") })
	bus.Subscribe(domain.EventDoorbell, func(domain.Event) { order = append(order, "third") })

	bus.Publish(domain.DoorbellEvent{})

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestBus_HandlerPanicIsolated(t *testing.T) {
	bus := New(zap.NewNop())

	var after int
	bus.Subscribe(domain.EventDoorbell, func(domain.Event) { panic("boom") })
	bus.Subscribe(domain.EventDoorbell, func(domain.Event) { after++ })

	assert.NotPanics(t, func() {
		bus.Publish(domain.DoorbellEvent{})
		bus.Publish(domain.DoorbellEvent{})
	})

	assert.Equal(t, 2, after, "handlers after a panicking one still run, for every event")
}

func TestBus_NoHandlers(t *testing.T) {
	bus := New(zap.NewNop())

	assert.NotPanics(t, func() {
		bus.Publish(domain.ApplianceStateEvent{})
	})
}
