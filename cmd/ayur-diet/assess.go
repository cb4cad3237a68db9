// cmd/ayur-diet/assess.go
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mcp-ayur-diet/internal/constitution"
	"mcp-ayur-diet/internal/models"
)

func newAssessCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "assess <answers-file>",
		Short: "Score prakriti questionnaire answers (YAML map of question id to option index)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read answers: %w", err)
			}

			var answers models.AnswerSet
			if err := yaml.Unmarshal(data, &answers); err != nil {
				return fmt.Errorf("failed to parse answers: %w", err)
			}

			cat, err := loadCatalog(root.foodsPath)
			if err != nil {
				return err
			}

			result, err := constitution.Score(cat.Questions, answers)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}
