package xcore

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for unknown channel or level names.
	ErrInvalidArgument = errors.New("xcore: invalid argument")
	// ErrNilDevice is returned by Builder.Build when a channel was bound to nil.
	ErrNilDevice = errors.New("xcore: nil device")
)

// Channel is one of the four fixed output streams of a Sink.
type Channel uint8

const (
	ChannelDebug Channel = iota
	ChannelInfo
	ChannelWarn
	ChannelError

	numChannels = 4
)

// Channels lists every channel in severity order.
var Channels = [numChannels]Channel{ChannelDebug, ChannelInfo, ChannelWarn, ChannelError}

var channelNames = [numChannels]string{"debug", "info", "warn", "error"}

var channelSeverity = [numChannels]Level{LevelDebug, LevelInfo, LevelWarn, LevelError}

func (c Channel) String() string {
	if c < numChannels {
		return channelNames[c]
	}
	return fmt.Sprintf("channel(%d)", uint8(c))
}

// Severity is the fixed level a channel writes at.
func (c Channel) Severity() Level {
	if c < numChannels {
		return channelSeverity[c]
	}
	return LevelDisable
}

// ParseChannel resolves an external stream name. "fatal" is accepted as a
// synonym for "error".
func ParseChannel(name string) (Channel, error) {
	switch name {
	case "debug":
		return ChannelDebug, nil
	case "info":
		return ChannelInfo, nil
	case "warn":
		return ChannelWarn, nil
	case "error", "fatal":
		return ChannelError, nil
	}
	return 0, fmt.Errorf("%w: parameter `stream' must be one of 'debug', 'info', 'warn', 'error' or 'fatal' (synonym for 'error'), not '%s'", ErrInvalidArgument, name)
}

// MarshalText and UnmarshalText let channels be used as YAML map keys.
func (c Channel) MarshalText() ([]byte, error) {
	if c >= numChannels {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, c)
	}
	return []byte(c.String()), nil
}

func (c *Channel) UnmarshalText(b []byte) error {
	v, err := ParseChannel(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
