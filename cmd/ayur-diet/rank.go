// cmd/ayur-diet/rank.go
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mcp-ayur-diet/internal/compatibility"
	"mcp-ayur-diet/internal/models"
)

func newRankCmd(root *rootFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "rank <patient-file>",
		Short: "Rank catalogue foods for a patient described in YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read patient: %w", err)
			}

			var p models.Patient
			if err := yaml.Unmarshal(data, &p); err != nil {
				return fmt.Errorf("failed to parse patient: %w", err)
			}

			cat, err := loadCatalog(root.foodsPath)
			if err != nil {
				return err
			}

			ranked := compatibility.Rank(cat.Foods, p)
			if limit > 0 && len(ranked) > limit {
				ranked = ranked[:limit]
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SCORE\tRATING\tFOOD\tREASONS")
			for _, r := range ranked {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
					r.Compatibility.Score, r.Rating, r.Food.Name, strings.Join(r.Compatibility.Reasons, "; "))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show only the top N foods")
	return cmd
}
