package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sogladev/build-mpq/internal/version"
	"github.com/sogladev/build-mpq/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "build-mpq",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but signal incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newPackageCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "build-mpq version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}
