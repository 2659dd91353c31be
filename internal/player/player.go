// Package player drives an external mpv process over its JSON IPC socket.
// The process may be absent, still starting, or mid-restart at any time;
// every call here degrades to "no data" instead of failing.
package player

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"os"
	"strings"
	"time"

	"tunetree/internal/outline"
)

const (
	// retryWait is the backoff between connect attempts while the player
	// socket is absent or refusing connections.
	retryWait = 2 * time.Second
	// ioTimeout bounds a single dial, write or read on the socket.
	ioTimeout = 2 * time.Second
)

// Process is a handle to a spawned player, narrow enough to fake in tests.
type Process interface {
	// Terminate asks the process to exit.
	Terminate()
	// Wait blocks until the process has exited.
	Wait()
}

// Runner spawns the external player.
type Runner interface {
	Spawn(args []string) (Process, error)
}

// DialFunc connects to the player socket with a timeout.
type DialFunc func(path string, timeout time.Duration) (net.Conn, error)

// Session owns the player process lifecycle and the line-delimited JSON
// protocol to it. Callers serialize access themselves; the session keeps no
// request queue and allows one command in flight.
type Session struct {
	socketPath string
	command    []string
	runner     Runner
	dial       DialFunc

	retryWait time.Duration
	ioTimeout time.Duration

	proc Process
}

// NewSession builds a session around the given socket path and player argv.
// The URL to play is appended to the argv on Start.
func NewSession(socketPath string, command []string) *Session {
	return &Session{
		socketPath: socketPath,
		command:    command,
		runner:     execRunner{},
		dial: func(path string, timeout time.Duration) (net.Conn, error) {
			return net.DialTimeout("unix", path, timeout)
		},
		retryWait: retryWait,
		ioTimeout: ioTimeout,
	}
}

// SocketPath returns the IPC socket location.
func (s *Session) SocketPath() string { return s.socketPath }

// Start stops any previous player and spawns a fresh one playing url. The
// plain http scheme is upgraded before handing the URL over. Start does not
// wait for the player to come up; the first commands simply retry until the
// socket appears.
func (s *Session) Start(url string) error {
	s.Stop()
	proc, err := s.runner.Spawn(append(append([]string{}, s.command...), outline.SecureURL(url)))
	if err != nil {
		return err
	}
	s.proc = proc
	return nil
}

// Stop terminates the player and removes the stale socket file. It is
// idempotent and safe to call when nothing is running.
func (s *Session) Stop() {
	if s.proc != nil {
		s.proc.Terminate()
		s.proc.Wait()
		s.proc = nil
	}
	if _, err := os.Stat(s.socketPath); err == nil {
		_ = os.Remove(s.socketPath)
	}
}

// Playing reports whether a player process has been started and not stopped.
func (s *Session) Playing() bool { return s.proc != nil }

type request struct {
	Command []string `json:"command"`
}

// SendCommand writes one JSON command line to the player socket and reads
// one JSON response line. While the socket is missing or refusing
// connections it waits retryWait between attempts, aborting when ctx is
// cancelled. Timeouts, resets and undecodable responses all yield an empty
// response; callers treat that as "no data this cycle".
func (s *Session) SendCommand(ctx context.Context, cmd []string) map[string]any {
	conn := s.connect(ctx)
	if conn == nil {
		return map[string]any{}
	}
	defer func() { _ = conn.Close() }()

	payload, err := json.Marshal(request{Command: cmd})
	if err != nil {
		return map[string]any{}
	}
	_ = conn.SetDeadline(time.Now().Add(s.ioTimeout))
	if _, err := conn.Write(append(payload, '\n')); err != nil {
		return map[string]any{}
	}
	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		return map[string]any{}
	}
	var resp map[string]any
	if err := json.Unmarshal(line, &resp); err != nil {
		return map[string]any{}
	}
	return resp
}

// GetMetadata issues the fixed now-playing metadata query.
func (s *Session) GetMetadata(ctx context.Context) map[string]any {
	return s.SendCommand(ctx, []string{"get_property", "metadata"})
}

func (s *Session) connect(ctx context.Context) net.Conn {
	for {
		if _, err := os.Stat(s.socketPath); err != nil {
			if !sleep(ctx, s.retryWait) {
				return nil
			}
			continue
		}
		conn, err := s.dial(s.socketPath, s.ioTimeout)
		if err != nil {
			if !sleep(ctx, s.retryWait) {
				return nil
			}
			continue
		}
		return conn
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// Title extracts the stream title from a metadata response, with trailing
// whitespace trimmed. The second return is false when the response carries
// no title.
func Title(resp map[string]any) (string, bool) {
	data, ok := resp["data"].(map[string]any)
	if !ok {
		return "", false
	}
	for _, key := range []string{"icy-title", "title"} {
		if raw, ok := data[key].(string); ok {
			return strings.TrimRight(raw, " \t\r\n"), true
		}
	}
	return "", false
}
