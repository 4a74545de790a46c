package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func renderCmd(opts *rootOptions, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the scenario grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			s, err := loadScenario(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: start %s, target %s\n", s.Name, s.Start, s.Target)
			fmt.Fprint(out, s.Grid.String())
			return nil
		},
	}
}
