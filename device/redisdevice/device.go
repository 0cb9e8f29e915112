// Package redisdevice appends sink lines to a Redis list.
package redisdevice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTimeout bounds a single RPUSH.
const DefaultTimeout = 2 * time.Second

// Device pushes each line onto the tail of a list with RPUSH.
type Device struct {
	client  *redis.Client
	key     string
	timeout time.Duration
	owned   bool
}

// Option configures a Device.
type Option func(*Device)

// WithTimeout sets the per-line deadline.
func WithTimeout(d time.Duration) Option {
	return func(dev *Device) {
		if d > 0 {
			dev.timeout = d
		}
	}
}

// New wraps an existing client. The caller keeps ownership of it.
func New(client *redis.Client, key string, opts ...Option) (*Device, error) {
	if client == nil {
		return nil, errors.New("redisdevice: client is required")
	}
	if key == "" {
		return nil, errors.New("redisdevice: key is required")
	}
	d := &Device{client: client, key: key, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Dial parses a redis:// URL, connects and pings. The device owns the client
// and closes it on Close.
func Dial(ctx context.Context, url, key string, opts ...Option) (*Device, error) {
	if url == "" {
		return nil, errors.New("redisdevice: url is required")
	}
	o, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redisdevice: %w", err)
	}
	client := redis.NewClient(o)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redisdevice: ping %s: %w", o.Addr, err)
	}
	d, err := New(client, key, opts...)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	d.owned = true
	return d, nil
}

func (d *Device) WriteLine(msg string) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	if err := d.client.RPush(ctx, d.key, msg).Err(); err != nil {
		return fmt.Errorf("redisdevice: rpush %s: %w", d.key, err)
	}
	return nil
}

// Close closes the client when the device created it.
func (d *Device) Close() error {
	if !d.owned {
		return nil
	}
	return d.client.Close()
}
