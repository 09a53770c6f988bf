package cli

import (
	"fmt"

	"github.com/kolah/swagscrape/internal/annotations"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v4"
)

// AnnotationsCommand prints the documentation nodes parsed from files, to
// check what the scraper will see in them.
func AnnotationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "annotations <file>...",
		Short: "Print the documentation blocks parsed from annotation files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := annotations.New().ParseFiles(args...)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(nodes)
			if err != nil {
				return fmt.Errorf("encoding nodes: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
