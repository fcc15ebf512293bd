package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/cmdx"
	"github.com/spf13/cobra"
)

func New(cliConfig *Config) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "typeahead <command> <subcommand> [flags]",
		Short:         "Autocomplete service",
		Long:          "Search-as-you-type endpoints over relational, document and full-text stores.",
		SilenceErrors: true,
		SilenceUsage:  false,
		Example: heredoc.Doc(`
		$ typeahead server start
		$ typeahead endpoints
		$ typeahead search brands_name ab
		`),
		Annotations: map[string]string{
			"group": "core",
			"help:learn": heredoc.Doc(`
				Use 'typeahead <command> --help' for info about a command.
			`),
			"help:feedback": heredoc.Doc(`
				Open an issue here https://github.com/goto/typeahead/issues
			`),
		},
	}

	rootCmd.AddCommand(
		serverCmd(cliConfig),
		searchCommand(cliConfig),
		endpointsCommand(cliConfig),
		configCommand(cliConfig),
		versionCmd(),
	)

	// Help topics
	rootCmd.AddCommand(cmdx.SetCompletionCmd("typeahead"))
	rootCmd.AddCommand(cmdx.SetRefCmd(rootCmd))
	rootCmd.AddCommand(cmdx.SetHelpTopicCmd("environment", envHelp))
	cmdx.SetHelp(rootCmd)

	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "Override config file")

	return rootCmd
}
