package xcore

import (
	"time"
)

// EventData is a read-only snapshot of a line that reached a device.
type EventData struct {
	Channel Channel
	Msg     string
	At      time.Time
}

// ConfigChange captures threshold updates of interest to observers.
type ConfigChange struct {
	OldLevel Level
	NewLevel Level
}

// Observer receives notifications for written lines and threshold changes.
// Writers on many goroutines call OnEvent concurrently.
type Observer interface {
	OnEvent(e EventData)
	OnConfig(c ConfigChange)
}

// ObserverFuncs adapts plain functions; nil members are skipped.
type ObserverFuncs struct {
	Event  func(EventData)
	Config func(ConfigChange)
}

func (o ObserverFuncs) OnEvent(e EventData) {
	if o.Event != nil {
		o.Event(e)
	}
}

func (o ObserverFuncs) OnConfig(c ConfigChange) {
	if o.Config != nil {
		o.Config(c)
	}
}
