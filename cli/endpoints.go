package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/goto/typeahead/core/autocomplete"
	"github.com/spf13/cobra"
)

func endpointsCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "List declared autocomplete endpoints",
		Annotations: map[string]string{
			"group": "core",
		},
		Args: cobra.NoArgs,
		Example: heredoc.Doc(`
			$ typeahead endpoints
			$ typeahead endpoints -c ./config.yaml
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCommandConfig(cmd, cfg)
			if err != nil {
				return err
			}

			catalog, err := buildCatalog(cfg.Endpoints)
			if err != nil {
				return err
			}

			eps := catalog.List()
			if len(eps) == 0 {
				fmt.Println(term.Yellow("No endpoints declared"))
				return nil
			}

			printer.Table(os.Stdout, endpointRows(eps))
			return nil
		},
	}
}

func endpointRows(eps []autocomplete.Endpoint) [][]string {
	rows := [][]string{{"NAME", "SEARCHES", "DISPLAY", "MATCH", "LIMIT", "ORDER"}}
	for _, ep := range eps {
		searches := ep.Target.Collection + "(" + strings.Join(ep.Target.Fields, ", ") + ")"
		if ep.Target.MultiSource() {
			searches = strings.Join(ep.Target.Pool, ", ")
		}
		display, _ := ep.Target.DisplayField(ep.Options)

		rows = append(rows, []string{
			term.Bluef(ep.Name),
			searches,
			display,
			string(ep.Options.MatchMode()),
			strconv.Itoa(autocomplete.GetLimit(ep.Options)),
			ep.Options.Order,
		})
	}
	return rows
}
