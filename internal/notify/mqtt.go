package notify

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/mawaqit-display/internal/config"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
)

const (
	publishTimeout    = 5 * time.Second
	disconnectQuiesce = 250 // ms
)

// ErrPublishTimeout is returned when the broker does not acknowledge in time.
var ErrPublishTimeout = errors.New("mqtt publish timed out")

// client is the part of mqtt.Client used by MQTT.
type client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
}

// MQTT publishes events under a topic prefix:
//
//	<prefix>/alert/started   {"prayer":"Fajr","index":0,...}
//	<prefix>/alert/stopped   {"at":...}
//	<prefix>/schedule        retained, the six times of the day
type MQTT struct {
	client client
	prefix string
}

var connectHandler mqtt.OnConnectHandler = func(_ mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(_ mqtt.Client, err error) {
	log.Warn().Err(err).Msg("MQTT connection lost")
}

// NewMQTT connects to the configured broker.
func NewMQTT(cfg config.MQTTConfig) (*MQTT, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	c := mqtt.NewClient(opts)
	token := c.Connect()
	if !token.WaitTimeout(publishTimeout) {
		// ConnectRetry keeps trying in the background.
		log.Warn().Str("broker", cfg.Broker).Msg("MQTT broker not reachable yet")
	} else if token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return newMQTT(c, cfg.Topic), nil
}

func newMQTT(c client, prefix string) *MQTT {
	return &MQTT{client: c, prefix: prefix}
}

// Publish implements Sink.
func (m *MQTT) Publish(e Event) error {
	suffix, retained, payload, err := encode(e)
	if err != nil {
		return err
	}
	token := m.client.Publish(m.prefix+"/"+suffix, 1, retained, payload)
	if !token.WaitTimeout(publishTimeout) {
		return ErrPublishTimeout
	}
	return token.Error()
}

// Close implements Sink.
func (m *MQTT) Close() error {
	m.client.Disconnect(disconnectQuiesce)
	return nil
}

type alertPayload struct {
	Prayer string    `json:"prayer"`
	Index  int       `json:"index"`
	Test   bool      `json:"test"`
	Mosque string    `json:"mosque,omitempty"`
	At     time.Time `json:"at"`
}

type schedulePayload struct {
	Mosque string            `json:"mosque"`
	Date   string            `json:"date,omitempty"`
	Hijri  string            `json:"hijri,omitempty"`
	Times  map[string]string `json:"times"`
	At     time.Time         `json:"at"`
}

func encode(e Event) (suffix string, retained bool, payload []byte, err error) {
	var v any
	switch e.Kind {
	case AlertStarted, AlertStopped:
		v = alertPayload{
			Prayer: e.Prayer.String(),
			Index:  int(e.Prayer),
			Test:   e.Kind == AlertStarted && e.Prayer == prayer.None,
			Mosque: e.Label,
			At:     e.At,
		}
	case ScheduleUpdated:
		times := make(map[string]string, prayer.Count)
		for i := range prayer.Count {
			times[prayer.Index(i).String()] = e.Schedule.Times[i]
		}
		v = schedulePayload{
			Mosque: e.Schedule.Label,
			Date:   e.Schedule.Date,
			Hijri:  e.Schedule.Hijri,
			Times:  times,
			At:     e.At,
		}
		retained = true
	default:
		return "", false, nil, fmt.Errorf("unknown event kind %d", e.Kind)
	}
	payload, err = json.Marshal(v)
	return e.Kind.String(), retained, payload, err
}
