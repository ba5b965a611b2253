package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "dragboard",
		Short: "Terminal board of reorderable lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd.Context(), opts)
		},
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "dragboard.yaml", "Path to the YAML config file")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Write logs to the configured log directory")

	root.AddCommand(runCmd(opts))
	root.AddCommand(simulateCmd(opts))
	root.AddCommand(versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// rootOptions are the persistent flags shared by every subcommand
type rootOptions struct {
	configPath string
	debug      bool
}
