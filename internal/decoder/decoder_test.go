package decoder

import (
	"testing"

	"homenotify/internal/config"
	"homenotify/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTopics = config.Topics{
	Doorbell:       "doorbell-topic",
	ApplianceState: "appliance-topic",
}

func TestDecoder_Doorbell(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		triggered bool
	}{
		{
			name:      "pressed",
			payload:   `{"action":"pressed","state":true}`,
			triggered: true,
		},
		{
			name:      "released",
			payload:   `{"action":"released","state":false}`,
			triggered: false,
		},
		{
			name:      "state only",
			payload:   `{"state":true}`,
			triggered: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(testTopics)

			event, err := d.Decode(testTopics.Doorbell, []byte(tt.payload))
			require.NoError(t, err)
			require.NotNil(t, event)

			doorbell, ok := event.(domain.DoorbellEvent)
			require.True(t, ok)
			assert.Equal(t, domain.EventDoorbell, event.Type())
			assert.Equal(t, tt.triggered, doorbell.Triggered())
		})
	}
}

func TestDecoder_ApplianceState(t *testing.T) {
	payload := `{
		"iP": "192.168.49.60",
		"firmwareVersionNr": 12,
		"isConnected": true,
		"colorMode": "Mode",
		"delay": 30,
		"numberOfLeds": 150,
		"brightness": 128,
		"step": 2,
		"colorNumber": 16711680,
		"version": 3,
		"reverse": false,
		"lastReceived": "2023-04-01T18:30:00"
	}`

	d := New(testTopics)

	event, err := d.Decode(testTopics.ApplianceState, []byte(payload))
	require.NoError(t, err)
	require.NotNil(t, event)

	state, ok := event.(domain.ApplianceStateEvent)
	require.True(t, ok)
	assert.Equal(t, domain.EventApplianceState, event.Type())
	assert.Equal(t, "192.168.49.60", state.IP)
	assert.Equal(t, 150, state.NumberOfLeds)
	assert.True(t, state.Ready())
}

func TestDecoder_ApplianceStateNotReady(t *testing.T) {
	d := New(testTopics)

	event, err := d.Decode(testTopics.ApplianceState, []byte(`{"colorMode":"Off"}`))
	require.NoError(t, err)
	require.NotNil(t, event)

	state, ok := event.(domain.ApplianceStateEvent)
	require.True(t, ok)
	assert.False(t, state.Ready())
}

func TestDecoder_UnknownTopic(t *testing.T) {
	d := New(testTopics)

	event, err := d.Decode("some/other/topic", []byte(`{"state":true}`))
	assert.NoError(t, err)
	assert.Nil(t, event)
}

func TestDecoder_MalformedPayload(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		payload string
	}{
		{
			name:    "doorbell not json",
			topic:   testTopics.Doorbell,
			payload: `not json at all`,
		},
		{
			name:    "doorbell wrong field type",
			topic:   testTopics.Doorbell,
			payload: `{"state":"yes"}`,
		},
		{
			name:    "appliance truncated",
			topic:   testTopics.ApplianceState,
			payload: `{"colorMode":`,
		},
		{
			name:    "empty payload",
			topic:   testTopics.Doorbell,
			payload: ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(testTopics)

			event, err := d.Decode(tt.topic, []byte(tt.payload))
			assert.Error(t, err)
			assert.Nil(t, event)
		})
	}
}
