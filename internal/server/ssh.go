package server

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/gliderlabs/ssh"

	"procnoise/internal/field"
	"procnoise/internal/render"
)

// SSHServer serves an interactive noise preview to every SSH session.
type SSHServer struct {
	defaults field.Params
	addr     string
	hostKey  string
}

// NewSSHServer creates a new SSH server bound to the given address. Every
// session starts from defaults.
func NewSSHServer(addr string, hostKey string, defaults field.Params) *SSHServer {
	return &SSHServer{
		defaults: defaults,
		addr:     addr,
		hostKey:  hostKey,
	}
}

// Start begins listening for SSH connections.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr: s.addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}

	// Set host key
	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", s.addr)
	return server.ListenAndServe()
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	// Require PTY
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	username := sess.User()
	if username == "" {
		username = "Anonymous"
	}
	log.Printf("Session opened: %s (%s)", username, sess.RemoteAddr())
	defer log.Printf("Session closed: %s", username)

	// Terminal dimensions
	termW := ptyReq.Window.Width
	termH := ptyReq.Window.Height
	var termMu sync.Mutex

	state := newSession(s.defaults)
	engine := render.NewEngine(termW, termH)

	// Setup terminal
	io.WriteString(sess, render.EnableAltScreen())
	io.WriteString(sess, render.HideCursor())
	io.WriteString(sess, render.ClearScreen())
	defer func() {
		io.WriteString(sess, render.ShowCursor())
		io.WriteString(sess, render.DisableAltScreen())
	}()

	actionCh := make(chan Action, 16)
	redrawCh := make(chan struct{}, 1)
	quitCh := make(chan struct{})

	// Goroutine: read input
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				close(quitCh)
				return
			}
			for _, action := range parseInput(buf[:n]) {
				if action == ActionQuit {
					close(quitCh)
					return
				}
				select {
				case actionCh <- action:
				default:
				}
			}
		}
	}()

	// Goroutine: handle window resizes
	go func() {
		for win := range winCh {
			termMu.Lock()
			termW = win.Width
			termH = win.Height
			termMu.Unlock()
			select {
			case redrawCh <- struct{}{}:
			default:
			}
		}
	}()

	draw := func() {
		termMu.Lock()
		w, h := termW, termH
		termMu.Unlock()

		if output := state.frame(engine, w, h); len(output) > 0 {
			io.WriteString(sess, output)
		}
	}

	draw()
	for {
		select {
		case <-quitCh:
			return
		case <-sess.Context().Done():
			return
		case <-redrawCh:
			draw()
		case action := <-actionCh:
			if !state.apply(action) {
				continue
			}
			if action == ActionReseed {
				log.Printf("%s reseeded: %s seed %d", username, state.params.Describe(), state.params.Seed)
			}
			draw()
		}
	}
}
