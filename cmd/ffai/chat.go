// ABOUTME: chat subcommand: one-shot prompts and an interactive REPL
// ABOUTME: Streams fragments to stdout as they arrive; re-renders markdown on a TTY

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ronniebasak/ffai/internal/config"
	"github.com/ronniebasak/ffai/internal/render"
	"github.com/ronniebasak/ffai/pkg/groq"
)

func newChatCmd() *cobra.Command {
	var (
		systemMsg   string
		modelFlag   string
		baseURLFlag string
		temperature float64
		maxTokens   int
		plain       bool
	)

	cmd := &cobra.Command{
		Use:   "chat [prompt]",
		Short: "Chat with a Groq model",
		Long: "Stream a chat completion. With a prompt argument the reply is printed\n" +
			"once and the command exits; without one an interactive session starts.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}
			if modelFlag != "" {
				settings.Model = modelFlag
			}
			if baseURLFlag != "" {
				settings.BaseURL = baseURLFlag
			}
			if cmd.Flags().Changed("temperature") {
				settings.Temperature = temperature
			}
			if cmd.Flags().Changed("max-tokens") {
				settings.MaxTokens = maxTokens
			}
			if systemMsg != "" {
				settings.System = systemMsg
			}

			auth, err := config.LoadAuth()
			if err != nil {
				return err
			}
			key := auth.GetKey("groq")
			if key == "" {
				return fmt.Errorf("no API key configured; run 'ffai setup' or set GROQ_API_KEY")
			}

			client := groq.New(key, settings.BaseURL, groq.WithLogger(cliLogger{}))

			session := &chatSession{
				client:   client,
				settings: settings,
				markdown: render.NewMarkdown(),
				plain:    plain,
			}
			if settings.System != "" {
				session.history = append(session.history, groq.NewMessage(groq.RoleSystem, settings.System))
			}

			if len(args) > 0 {
				return session.ask(cmd.Context(), strings.Join(args, " "))
			}
			return session.repl(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&systemMsg, "system", "", "System message for the session")
	cmd.Flags().StringVarP(&modelFlag, "model", "m", "", "Model ID (overrides config)")
	cmd.Flags().StringVar(&baseURLFlag, "base-url", "", "API base URL (overrides config)")
	cmd.Flags().Float64VarP(&temperature, "temperature", "t", 0.7, "Sampling temperature")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 1024, "Completion token cap")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable markdown re-rendering")
	return cmd
}

// chatSession carries conversation state across turns. History lives in
// memory only; nothing is persisted.
type chatSession struct {
	client   *groq.Client
	settings *config.Settings
	history  []groq.Message
	markdown *render.Markdown
	plain    bool
}

// ask sends one user turn, streams the reply to stdout, and appends both
// sides to the history.
func (s *chatSession) ask(ctx context.Context, prompt string) error {
	s.history = append(s.history, groq.NewMessage(groq.RoleUser, prompt))

	comp, err := s.client.StreamChat(ctx, groq.ChatRequest{
		Messages:    s.history,
		Model:       s.settings.Model,
		Temperature: s.settings.Temperature,
		MaxTokens:   s.settings.MaxTokens,
		TopP:        s.settings.TopP,
	}, groq.FragmentHandlerFunc(func(fragment string) {
		fmt.Print(fragment)
	}))
	if err != nil {
		// The failed turn stays out of the history so a retry is clean.
		s.history = s.history[:len(s.history)-1]
		return err
	}
	fmt.Println()

	if s.shouldRender() && comp.Content != "" {
		width := terminalWidth()
		fmt.Println()
		fmt.Println(s.markdown.Render(comp.Content, width))
	}
	if comp.Usage.TotalTokens > 0 {
		fmt.Fprintln(os.Stderr, render.FaintStyle.Render(
			fmt.Sprintf("[%s: %d prompt + %d completion tokens]",
				comp.Model, comp.Usage.PromptTokens, comp.Usage.CompletionTokens)))
	}

	s.history = append(s.history, groq.NewMessage(groq.RoleAssistant, comp.Content))
	return nil
}

// repl runs the interactive loop until EOF or an exit command.
func (s *chatSession) repl(ctx context.Context) error {
	fmt.Printf("Chatting with %s (type 'exit' to quit)\n", s.settings.Model)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(render.PromptStyle.Render("you> "))
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			return nil
		}

		fmt.Print(render.ReplyStyle.Render("groq> "))
		if err := s.ask(ctx, input); err != nil {
			fmt.Fprintln(os.Stderr, render.ErrorStyle.Render(fmt.Sprintf("error: %v", err)))
		}
	}
}

// shouldRender reports whether the finished reply should be re-rendered
// as markdown: only on a TTY and only when not disabled.
func (s *chatSession) shouldRender() bool {
	if s.plain {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	if width > 120 {
		width = 120
	}
	return width
}
