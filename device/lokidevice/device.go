// Package lokidevice ships sink lines to Grafana Loki's push API.
package lokidevice

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/trickstertwo/xclock"
)

// PushPath is Loki's JSON ingestion endpoint.
const PushPath = "/loki/api/v1/push"

type (
	pushRequest struct {
		Streams []stream `json:"streams"`
	}
	stream struct {
		Stream map[string]string `json:"stream"`
		Values [][2]string       `json:"values"`
	}
)

// Device posts one push request per line.
type Device struct {
	resty  *resty.Client
	labels map[string]string
	clock  xclock.Clock
}

// Option configures a Device.
type Option func(*Device)

// WithLabels sets the stream labels attached to every line.
func WithLabels(labels map[string]string) Option {
	return func(d *Device) {
		for k, v := range labels {
			d.labels[k] = v
		}
	}
}

// WithClock sets the clock used for entry timestamps.
func WithClock(c xclock.Clock) Option {
	return func(d *Device) {
		if c != nil {
			d.clock = c
		}
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Device) {
		d.resty.SetTimeout(timeout)
	}
}

// WithBasicAuth sets HTTP basic credentials.
func WithBasicAuth(username, password string) Option {
	return func(d *Device) {
		d.resty.SetBasicAuth(username, password)
	}
}

// WithBearerAuth sets a bearer token.
func WithBearerAuth(token string) Option {
	return func(d *Device) {
		d.resty.SetAuthToken(token)
	}
}

// WithHeader sets a request header, e.g. X-Scope-OrgID for multi-tenant Loki.
func WithHeader(key, value string) Option {
	return func(d *Device) {
		d.resty.SetHeader(key, value)
	}
}

// New creates a device for the Loki instance at baseURL.
func New(baseURL string, opts ...Option) (*Device, error) {
	if baseURL == "" {
		return nil, errors.New("lokidevice: url is required")
	}
	d := &Device{
		resty:  resty.New(),
		labels: map[string]string{"job": "xcore"},
		clock:  xclock.Default(),
	}
	d.resty.SetTimeout(30 * time.Second)
	d.resty.SetDisableWarn(true)
	d.resty.SetBaseURL(baseURL)
	d.resty.SetHeader("Content-Type", "application/json")

	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

func (d *Device) WriteLine(msg string) error {
	ts := strconv.FormatInt(d.clock.Now().UnixNano(), 10)
	body := pushRequest{Streams: []stream{{
		Stream: d.labels,
		Values: [][2]string{{ts, msg}},
	}}}

	resp, err := d.resty.R().
		SetBody(body).
		Post(PushPath)
	if err != nil {
		return fmt.Errorf("lokidevice: push: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("lokidevice: push: %s: %s", resp.Status(), resp.String())
	}
	return nil
}
