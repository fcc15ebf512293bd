package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

func searchCommand(cfg *Config) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <endpoint> <term>",
		Short: "Run an autocomplete endpoint and print its records",
		Annotations: map[string]string{
			"group": "core",
		},
		Args: cobra.ExactArgs(2),
		Example: heredoc.Doc(`
			$ typeahead search brands_name ab
			$ typeahead search catalog ab --limit 5
		`),

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCommandConfig(cmd, cfg)
			if err != nil {
				return err
			}

			spinner := printer.Spin("")
			defer spinner.Stop()

			a, err := newApp(cmd.Context(), log.NewNoop(), cfg)
			if err != nil {
				return err
			}
			defer a.shutdown()

			ep, err := a.catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			if limit > 0 {
				ep.Options.Limit = limit
			}

			records, err := a.service.Complete(cmd.Context(), ep, args[1])
			if err != nil {
				return err
			}

			spinner.Stop()
			fmt.Println(term.Bluef(prettyPrint(records)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "--limit=5 maximum number of records, overrides the endpoint limit")
	return cmd
}
