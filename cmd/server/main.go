// deepspire-server serves independent single-player sessions over SSH.
// Build:
//
//	go build -o deepspire-server ./cmd/server
//
// Usage:
//
//	./deepspire-server serve [--port 2222] [--key server_host_key]
//
// Connect:
//
//	ssh -p 2222 localhost
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deepspire-server",
	Short: "SSH server for the Deepspire dungeon crawler",
	Long:  `deepspire-server hosts the terminal dungeon crawler over SSH; every connection gets its own independent session.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
