package dispatcher

import (
	"sync"

	"homenotify/internal/domain"
	"homenotify/internal/eventbus"
	"homenotify/internal/repository"

	"go.uber.org/zap"
)

// Notification texts, kept verbatim from the household's previous setup.
const (
	msgDoorbell    = "Es hat geklingelt"
	msgDinnerReady = "Essen ist fertig"
)

// Sender delivers one notification message to a chat.
type Sender interface {
	Send(chatID int64, text string) error
}

// Dispatcher fans qualifying events out to every verified user whose
// preference for the event's category is enabled. Each recipient is handled
// in its own goroutine so one hung or failing delivery cannot hold up the
// rest.
type Dispatcher struct {
	repo   repository.UserRepository
	sender Sender
	logger *zap.Logger
	wg     sync.WaitGroup
}

// New creates a dispatcher
func New(repo repository.UserRepository, sender Sender, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		repo:   repo,
		sender: sender,
		logger: logger,
	}
}

// Register subscribes one handler per event type on the internal bus
func (d *Dispatcher) Register(bus *eventbus.Bus) {
	bus.Subscribe(domain.EventDoorbell, d.handleDoorbell)
	bus.Subscribe(domain.EventApplianceState, d.handleApplianceState)
}

func (d *Dispatcher) handleDoorbell(event domain.Event) {
	doorbell, ok := event.(domain.DoorbellEvent)
	if !ok || !doorbell.Triggered() {
		return
	}
	d.fanOut(domain.CategoryDoorbell, msgDoorbell)
}

func (d *Dispatcher) handleApplianceState(event domain.Event) {
	state, ok := event.(domain.ApplianceStateEvent)
	if !ok || !state.Ready() {
		return
	}
	d.fanOut(domain.CategoryDinner, msgDinnerReady)
}

func (d *Dispatcher) fanOut(category domain.Category, text string) {
	users, err := d.repo.All()
	if err != nil {
		d.logger.Error("Failed to snapshot users for dispatch", zap.Error(err))
		return
	}

	for _, user := range users {
		if !user.Verified() || !user.Preference(category) {
			continue
		}

		d.wg.Add(1)
		go func(user domain.User) {
			defer d.wg.Done()
			if err := d.sender.Send(user.ChatID, text); err != nil {
				d.logger.Warn("Failed to deliver notification",
					zap.Int64("user_id", user.UserID),
					zap.String("category", string(category)),
					zap.Error(err),
				)
			}
		}(user)
	}
}

// Wait blocks until all in-flight sends have finished. Used on shutdown.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
