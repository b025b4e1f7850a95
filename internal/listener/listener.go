package listener

import (
	"context"
	"time"

	"homenotify/internal/config"
	"homenotify/internal/decoder"
	"homenotify/internal/eventbus"

	"go.uber.org/zap"
)

const defaultCheckInterval = time.Second

// conn is the slice of the MQTT client the listener needs. The paho-backed
// implementation lives in paho.go.
type conn interface {
	IsConnected() bool
	Connect() error
	Subscribe(topic string, handler func(topic string, payload []byte)) error
	Disconnect()
}

// Listener owns the message-bus connection. It drives a connect/resubscribe
// state machine on a fixed interval, decodes inbound messages and publishes
// the resulting events on the internal bus.
type Listener struct {
	conn     conn
	decoder  *decoder.Decoder
	bus      *eventbus.Bus
	topics   []string
	interval time.Duration
	logger   *zap.Logger

	// subscribed is only touched from the Run goroutine.
	subscribed bool
}

// New creates a listener for the configured broker and topic set
func New(cfg config.MQTTConfig, topics config.Topics, dec *decoder.Decoder, bus *eventbus.Bus, logger *zap.Logger) *Listener {
	return &Listener{
		conn:     newPahoConn(cfg),
		decoder:  dec,
		bus:      bus,
		topics:   topics.All(),
		interval: defaultCheckInterval,
		logger:   logger,
	}
}

// Run drives the liveness loop until ctx is cancelled. Connect and subscribe
// failures are logged and retried on the next tick, never fatal.
func (l *Listener) Run(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.tick()

	for {
		select {
		case <-ctx.Done():
			l.conn.Disconnect()
			l.logger.Info("Bus listener stopped")
			return
		case <-ticker.C:
			l.tick()
		}
	}
}

func (l *Listener) tick() {
	if !l.conn.IsConnected() {
		l.subscribed = false
		if err := l.conn.Connect(); err != nil {
			l.logger.Warn("Failed to connect to MQTT broker", zap.Error(err))
			return
		}
		l.logger.Info("Connected to MQTT broker")
	}

	if l.subscribed {
		return
	}

	for _, topic := range l.topics {
		if err := l.conn.Subscribe(topic, l.handleMessage); err != nil {
			l.logger.Warn("Failed to subscribe",
				zap.String("topic", topic),
				zap.Error(err),
			)
			return
		}
	}
	l.subscribed = true
	l.logger.Info("Subscribed to bus topics", zap.Strings("topics", l.topics))
}

func (l *Listener) handleMessage(topic string, payload []byte) {
	event, err := l.decoder.Decode(topic, payload)
	if err != nil {
		// One bad payload never terminates the listener.
		l.logger.Warn("Discarding undecodable message",
			zap.String("topic", topic),
			zap.Error(err),
		)
		return
	}
	if event == nil {
		return
	}

	l.bus.Publish(event)
}
