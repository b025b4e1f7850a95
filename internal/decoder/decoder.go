package decoder

import (
	"encoding/json"
	"fmt"

	"homenotify/internal/config"
	"homenotify/internal/domain"
)

type parseFunc func(payload []byte) (domain.Event, error)

// Decoder maps exact bus topic names to typed event parsers.
type Decoder struct {
	parsers map[string]parseFunc
}

// New builds the decoder for the configured topic set
func New(topics config.Topics) *Decoder {
	return &Decoder{
		parsers: map[string]parseFunc{
			topics.Doorbell:       parseDoorbell,
			topics.ApplianceState: parseApplianceState,
		},
	}
}

// Decode parses a bus message into a domain event. Unknown topics yield
// (nil, nil); a malformed payload on a known topic yields an error the
// caller logs and discards.
func (d *Decoder) Decode(topic string, payload []byte) (domain.Event, error) {
	parse, ok := d.parsers[topic]
	if !ok {
		return nil, nil
	}

	event, err := parse(payload)
	if err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", topic, err)
	}
	return event, nil
}

func parseDoorbell(payload []byte) (domain.Event, error) {
	var event domain.DoorbellEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, err
	}
	return event, nil
}

func parseApplianceState(payload []byte) (domain.Event, error) {
	var event domain.ApplianceStateEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, err
	}
	return event, nil
}
