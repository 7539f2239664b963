// Package mqtt publishes display events to companion devices. A mosque
// installation typically pairs the schedule controller with one or more
// speaker or screen units that subscribe to the display topics.
package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/masjid-labs/muadhin/internal/model"
)

const (
	connectTimeout = 5 * time.Second
	publishQoS     = 1
)

// StateEvent is the payload published on every display state change.
type StateEvent struct {
	State  model.CycleState `json:"state"`
	Prayer model.PrayerName `json:"prayer,omitempty"`
	At     time.Time        `json:"at"`
}

// AlarmCommand tells subscribed speaker units to play the alarm tone.
type AlarmCommand struct {
	Prayer model.PrayerName `json:"prayer"`
	At     time.Time        `json:"at"`
}

// Publisher fans display events out over an MQTT broker. All publishes
// are best effort; the display must keep cycling even when the broker
// is down.
type Publisher struct {
	client    paho.Client
	displayID string
}

// NewPublisher connects to the broker and returns a publisher scoped to
// one display ID.
func NewPublisher(brokerURL, displayID string) (*Publisher, error) {
	opts := paho.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(fmt.Sprintf("muadhin-%s", displayID))
	opts.SetConnectTimeout(connectTimeout)
	opts.SetAutoReconnect(true)
	opts.OnConnect = func(paho.Client) {
		log.Info().Str("broker", brokerURL).Msg("connected to mqtt broker")
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Warn().Err(err).Msg("mqtt connection lost")
	}

	client := paho.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connecting to mqtt broker %s: %w", brokerURL, token.Error())
	}
	return &Publisher{client: client, displayID: displayID}, nil
}

// PublishState announces a state transition on display/<id>/state.
func (p *Publisher) PublishState(state model.CycleState, prayer model.PrayerName) {
	p.publish("state", StateEvent{State: state, Prayer: prayer, At: time.Now()})
}

// PublishAlarm sends the alarm command on display/<id>/alarm.
func (p *Publisher) PublishAlarm(prayer model.PrayerName) {
	p.publish("alarm", AlarmCommand{Prayer: prayer, At: time.Now()})
}

func (p *Publisher) publish(kind string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("failed to encode mqtt payload")
		return
	}
	topic := fmt.Sprintf("display/%s/%s", p.displayID, kind)
	token := p.client.Publish(topic, publishQoS, false, body)
	go func() {
		if token.Wait(); token.Error() != nil {
			log.Warn().Err(token.Error()).Str("topic", topic).Msg("mqtt publish failed")
		}
	}()
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
