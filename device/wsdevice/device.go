// Package wsdevice streams sink lines as websocket text messages.
package wsdevice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// DefaultWriteTimeout bounds a single message write.
const DefaultWriteTimeout = 5 * time.Second

// ErrClosed is returned for lines written after Close.
var ErrClosed = errors.New("wsdevice: connection closed")

// Device writes each line as one text frame. gorilla connections allow a
// single concurrent writer, so writes are serialized.
type Device struct {
	mu           sync.Mutex
	conn         *websocket.Conn
	writeTimeout time.Duration
	closed       bool
}

// Dial opens a websocket connection to url.
func Dial(ctx context.Context, url string, header http.Header) (*Device, error) {
	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: 45 * time.Second,
	}
	conn, resp, err := dialer.DialContext(ctx, url, header)
	if err != nil {
		if resp != nil {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return nil, fmt.Errorf("wsdevice: dial %s: %w (status %d: %s)", url, err, resp.StatusCode, body)
		}
		return nil, fmt.Errorf("wsdevice: dial %s: %w", url, err)
	}
	return New(conn), nil
}

// New wraps an established connection. The device takes ownership of conn.
func New(conn *websocket.Conn) *Device {
	return &Device{conn: conn, writeTimeout: DefaultWriteTimeout}
}

func (d *Device) WriteLine(msg string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrClosed
	}
	if err := d.conn.SetWriteDeadline(time.Now().Add(d.writeTimeout)); err != nil {
		return fmt.Errorf("wsdevice: %w", err)
	}
	if err := d.conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
		return fmt.Errorf("wsdevice: write: %w", err)
	}
	return nil
}

// Close sends a normal-closure frame and closes the connection.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	_ = d.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
	return d.conn.Close()
}
