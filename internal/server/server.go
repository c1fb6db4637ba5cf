// Package server runs the wardforge SSH endpoint. Each connection gets a
// tcell screen bound to the session's PTY and a fresh rite; forged wards
// land in the shared archive.
package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"go.uber.org/zap"
	xssh "golang.org/x/crypto/ssh"

	"wardforge/internal/archive"
	"wardforge/internal/config"
	internalssh "wardforge/internal/ssh"
	"wardforge/internal/ui"
)

// Server accepts SSH connections and runs one rite per session.
type Server struct {
	cfg    config.Config
	log    *zap.Logger
	store  *archive.Store
	signer gossh.Signer
}

// New prepares a server, loading or minting its host key. store may be
// nil, in which case forged wards are not archived.
func New(cfg config.Config, log *zap.Logger, store *archive.Store) (*Server, error) {
	signer, err := loadOrCreateHostKey(cfg.HostKeyPath, log)
	if err != nil {
		return nil, err
	}
	return &Server{cfg: cfg, log: log, store: store, signer: signer}, nil
}

// ListenAndServe blocks serving rites until the listener fails.
func (s *Server) ListenAndServe() error {
	srv := &gossh.Server{
		Addr:    s.cfg.Addr,
		Handler: s.handle,
		// Accept PTY requests from any client. No auth: the wardhall
		// is open to anyone who can reach it.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{s.signer},
	}
	s.log.Info("wardhall open", zap.String("addr", s.cfg.Addr))
	return srv.ListenAndServe()
}

// termMu serializes os.Setenv("TERM") with the screen creation that reads it.
var termMu sync.Mutex

// handle runs one seeker's rite for the lifetime of their connection.
func (s *Server) handle(sess gossh.Session) {
	log := s.log.With(
		zap.String("rite", uuid.NewString()[:8]),
		zap.String("remote", sess.RemoteAddr().String()),
	)

	pty, winCh, hasPTY := sess.Pty()
	if !hasPTY {
		fmt.Fprintln(sess, "wardforge needs a PTY. Connect with: ssh -t -p 2222 <host>")
		log.Warn("rejected session without pty")
		return
	}

	term := s.clientTerm(sess)
	player := sanitizeName(sess.User())
	if player == "" {
		player = "wanderer"
	}

	// TERM must be in the process environment before the terminfo lookup.
	tty := internalssh.NewSessionTty(sess, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(sess, "Terminal setup failed: %v\n", err)
		log.Warn("terminal setup failed", zap.String("term", term), zap.Error(err))
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(sess, "Screen init failed: %v\n", err)
		log.Warn("screen init failed", zap.Error(err))
		return
	}

	log.Info("rite begins", zap.String("player", player), zap.String("term", term))
	ui.NewApp(screen, s.store, player).Run()
	log.Info("rite ends", zap.String("player", player))
}

// clientTerm picks the TERM for a session: the client's request when it is
// on the allowlist, otherwise the configured fallback.
func (s *Server) clientTerm(sess gossh.Session) string {
	for _, kv := range sess.Environ() {
		if strings.HasPrefix(kv, "TERM=") {
			if t := kv[len("TERM="):]; allowedTerms[t] {
				return t
			}
			break
		}
	}
	return s.cfg.TermFallback
}

// loadOrCreateHostKey loads a PEM host key from path, or mints and persists
// a new ed25519 key when the file is absent or unreadable. Persisting is
// best-effort; the minted key still serves this run.
func loadOrCreateHostKey(path string, log *zap.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("loaded host key", zap.String("path", path))
			return signer, nil
		}
	}

	log.Info("generating host key", zap.String("path", path))
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("host key signer: %w", err)
	}
	if block, err := xssh.MarshalPrivateKey(key, "wardforge host key"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(block), 0o600)
	}
	return signer, nil
}
