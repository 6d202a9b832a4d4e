// ABOUTME: setup subcommand: stores the Groq API key in the credential store
// ABOUTME: Reads the key without echo and validates its format before saving

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ronniebasak/ffai/internal/config"
	"github.com/ronniebasak/ffai/internal/render"
)

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Configure your Groq API key",
		RunE: func(_ *cobra.Command, _ []string) error {
			key, err := readAPIKey()
			if err != nil {
				return err
			}
			if key == "" {
				return fmt.Errorf("no key entered")
			}

			if !config.ValidGroqKey(key) {
				fmt.Fprintln(os.Stderr, render.ErrorStyle.Render(
					"warning: key does not look like a Groq key (gsk_ + 40+ alphanumerics); saving anyway"))
			}

			auth, err := config.LoadAuth()
			if err != nil {
				return err
			}
			auth.SetKey("groq", key)
			if err := auth.Save(); err != nil {
				return err
			}

			fmt.Printf("API key saved to %s\n", config.AuthFile())
			return nil
		},
	}
}

// readAPIKey prompts for the key. On a TTY input is not echoed; when
// stdin is piped the key is read as a single line.
func readAPIKey() (string, error) {
	fmt.Print("Enter your Groq API key: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("reading key: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", fmt.Errorf("reading key: %w", err)
	}
	return strings.TrimSpace(line), nil
}
