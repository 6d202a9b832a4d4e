// ABOUTME: models subcommand: lists the Groq model catalog
// ABOUTME: Sorted by ID with context window and owner columns

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ronniebasak/ffai/internal/config"
	"github.com/ronniebasak/ffai/internal/render"
	"github.com/ronniebasak/ffai/pkg/groq"
)

func newModelsCmd() *cobra.Command {
	var baseURLFlag string

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List available models",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}
			if baseURLFlag != "" {
				settings.BaseURL = baseURLFlag
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
			models, err := client.ListModels(cmd.Context())
			if err != nil {
				return err
			}

			sort.Slice(models, func(i, j int) bool { return models[i].ID < models[j].ID })
			for _, m := range models {
				line := fmt.Sprintf("%-48s", m.ID)
				meta := fmt.Sprintf("ctx %-8d %s", m.ContextWindow, m.OwnedBy)
				if !m.Active {
					meta += "  (inactive)"
				}
				fmt.Println(line + render.FaintStyle.Render(meta))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURLFlag, "base-url", "", "API base URL (overrides config)")
	return cmd
}
