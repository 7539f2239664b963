// Package audio triggers the alarm tone played at azan entry and at
// the end of the iqamah countdown.
package audio

import (
	"github.com/rs/zerolog/log"

	"github.com/masjid-labs/muadhin/internal/model"
)

// Player plays the alarm tone. Implementations must not block the
// caller; playback failures are logged, never surfaced.
type Player interface {
	PlayAlarm(prayer model.PrayerName)
}

// AlarmPublisher is the slice of the mqtt publisher the remote player
// needs.
type AlarmPublisher interface {
	PublishAlarm(prayer model.PrayerName)
}

// RemotePlayer forwards alarms to speaker units over MQTT.
type RemotePlayer struct {
	pub AlarmPublisher
}

func NewRemotePlayer(pub AlarmPublisher) *RemotePlayer {
	return &RemotePlayer{pub: pub}
}

func (p *RemotePlayer) PlayAlarm(prayer model.PrayerName) {
	go p.pub.PublishAlarm(prayer)
}

// LogPlayer records alarms without any output device. Used when no
// broker is configured.
type LogPlayer struct{}

func (LogPlayer) PlayAlarm(prayer model.PrayerName) {
	log.Info().Str("prayer", string(prayer)).Msg("alarm")
}
