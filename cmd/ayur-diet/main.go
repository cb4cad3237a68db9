// cmd/ayur-diet/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mcp-ayur-diet/internal/catalog"
)

var version = "1.0.0"

type rootFlags struct {
	configPath string
	foodsPath  string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:           "ayur-diet",
		Short:         "Ayurvedic constitution assessment and diet planning service",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&f.configPath, "config", "", "Path to YAML config file")
	root.PersistentFlags().StringVar(&f.foodsPath, "foods", "", "Foods YAML file replacing the built-in catalogue")

	root.AddCommand(newServeCmd(f))
	root.AddCommand(newAssessCmd(f))
	root.AddCommand(newRankCmd(f))
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ayur-diet version %s\n", version)
		},
	}
}

// loadCatalog returns the built-in catalogue, with its foods replaced when
// foodsPath is set.
func loadCatalog(foodsPath string) (*catalog.Catalog, error) {
	c, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	if foodsPath == "" {
		return c, nil
	}

	foods, err := catalog.LoadFoods(foodsPath)
	if err != nil {
		return nil, err
	}
	return c.WithFoods(foods), nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
