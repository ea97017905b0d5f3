package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AndrewKWatts/LogViewer/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a schema config file",
		Long: `Load a schema config file without parsing any logs.

Checks:
  - JSON/YAML syntax
  - Required sections (logViewerConfig, delimiters, categories)
and reports the normalized delimiter set and category order.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Categories: %d\n", len(cfg.Categories))

	fmt.Fprintln(out, "\nCategories (sorted):")
	for i, cat := range cfg.Categories {
		fmt.Fprintf(out, "  %d. %s (%s, order %d)", i+1, cat.Name, cat.Type, cat.Order)
		if cat.HasColorRule() {
			fmt.Fprintf(out, " [%s/%s, %d rule(s)]", cat.ColourType, cat.Colouring, len(cat.ColourMap))
		}
		fmt.Fprintln(out)
	}

	d := cfg.Delimiters
	fmt.Fprintln(out, "\nDelimiters:")
	fmt.Fprintf(out, "  entry:     start=%q end=%q\n", d.LogStart, d.LogEnd)
	fmt.Fprintf(out, "  category:  %q\n", d.CategorySeparator)
	fmt.Fprintf(out, "  container: start=%q end=%q\n", d.ContainerStart, d.ContainerEnd)
	fmt.Fprintf(out, "  key-value: pair=%q kv=%q array=%q\n", d.KeyValuePairs, d.KeyValue, d.ArrayElement)

	return nil
}
