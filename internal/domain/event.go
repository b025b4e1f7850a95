package domain

// EventType identifies the concrete variant of a decoded bus message.
type EventType string

const (
	EventDoorbell       EventType = "doorbell"
	EventApplianceState EventType = "appliance_state"
)

// Event is a decoded, typed representation of a message-bus payload.
// Events are immutable value objects constructed once per decoded message.
type Event interface {
	Type() EventType
}

// DoorbellEvent is published when the doorbell device reports a state change.
type DoorbellEvent struct {
	Action string `json:"action"`
	State  bool   `json:"state"`
}

// Type implements Event.
func (DoorbellEvent) Type() EventType { return EventDoorbell }

// Triggered reports whether the doorbell was actually pressed. The boolean
// state field is the canonical signal; the action string varies between
// firmware versions and is kept for logging only.
func (e DoorbellEvent) Triggered() bool { return e.State }

// ColorModeReady is the LED strip mode that signals dinner is ready.
const ColorModeReady = "Mode"

// ApplianceStateEvent mirrors the state object the LED strip firmware
// publishes. Field names follow the firmware's JSON exactly.
type ApplianceStateEvent struct {
	IP                string `json:"iP"`
	FirmwareVersionNr int    `json:"firmwareVersionNr"`
	IsConnected       bool   `json:"isConnected"`
	ColorMode         string `json:"colorMode"`
	Delay             int    `json:"delay"`
	NumberOfLeds      int    `json:"numberOfLeds"`
	Brightness        int    `json:"brightness"`
	Step              int    `json:"step"`
	ColorNumber       int64  `json:"colorNumber"`
	Version           int    `json:"version"`
	Reverse           bool   `json:"reverse"`
	LastReceived      string `json:"lastReceived"`
}

// Type implements Event.
func (ApplianceStateEvent) Type() EventType { return EventApplianceState }

// Ready reports whether the strip entered the mode used as the
// dinner-is-ready signal.
func (e ApplianceStateEvent) Ready() bool { return e.ColorMode == ColorModeReady }
