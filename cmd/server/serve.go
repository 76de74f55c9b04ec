package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"log"
	mathrand "math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"deepspire/internal/config"
	"deepspire/internal/game"
	internalssh "deepspire/internal/ssh"
	"deepspire/internal/ui"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/spf13/cobra"
	xssh "golang.org/x/crypto/ssh"
)

var (
	sshPort     int
	hostKeyFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long:  `Start the SSH server. Each incoming connection is given its own dungeon session.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&sshPort, "port", 2222, "SSH server port")
	serveCmd.Flags().StringVar(&hostKeyFile, "key", "server_host_key",
		"Path to the PEM-encoded host key (auto-generated if absent)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	signer, err := loadOrCreateHostKey(hostKeyFile)
	if err != nil {
		return err
	}

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", sshPort),
		Handler: func(s gossh.Session) {
			handleSession(s, cfg)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No auth: add gossh.PublicKeyAuth to restrict access.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("deepspire SSH server listening on :%d", sshPort)
	log.Printf("Connect with:  ssh -p %d -o StrictHostKeyChecking=no localhost", sshPort)
	return srv.ListenAndServe()
}

// termMu protects os.Setenv("TERM") around screen creation; tcell reads
// TERM from the process environment during NewTerminfoScreenFromTty.
var termMu sync.Mutex

// handleSession runs one full single-player session on an SSH
// connection. It blocks for the duration of the connection.
func handleSession(s gossh.Session, cfg config.Config) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	term := "xterm-256color"
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			term = env[5:]
			break
		}
	}

	tty := internalssh.NewTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := game.New(cfg, mathrand.New(mathrand.NewSource(seed)))
	if err != nil {
		log.Printf("session setup failed: %v", err)
		return
	}
	ui.Run(screen, g)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates
// and persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer, nil
		}
	}

	log.Printf("Generating new ed25519 host key at %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "deepspire server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer, nil
}
