package cli

import (
	"github.com/npillmayer/summa/table"
	"github.com/spf13/cobra"
)

func newTableCmd() *cobra.Command {
	var asHTML bool
	var class string

	cmd := &cobra.Command{
		Use:   "table <ints|squares|cubes|fact> <a> <b>",
		Short: "Tabulate function values and running sums over [a, b]",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, a, b, err := parseRange(args)
			if err != nil {
				return err
			}
			t, err := table.Build(s.label, s.big, a, b)
			if err != nil {
				return err
			}
			if asHTML {
				return table.HTML{Class: class}.Render(t, cmd.OutOrStdout())
			}
			return table.NewConsole().Render(t, cmd.OutOrStdout(), nil)
		},
	}

	cmd.Flags().BoolVar(&asHTML, "html", false, "output an HTML table")
	cmd.Flags().StringVar(&class, "class", "", "CSS class of the HTML table")
	return cmd
}
