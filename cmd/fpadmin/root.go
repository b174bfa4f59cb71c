package main

import (
	"time"

	"github.com/spf13/cobra"
)

func newRootCommand(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fpadmin",
		Short:         "Administer the fingerprint server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&ctx.addr, "addr", "localhost:50051", "Fingerprint server address")
	rootCmd.PersistentFlags().DurationVar(&ctx.timeout, "timeout", 10*time.Minute, "Per-command deadline, 0 disables it")
	rootCmd.PersistentFlags().BoolVar(&ctx.tls, "tls", false, "Connect using TLS with the system roots")

	rootCmd.AddCommand(newAuditCommand(ctx))
	rootCmd.AddCommand(newDeleteCommand(ctx))
	rootCmd.AddCommand(newMigrateCommand())

	return rootCmd
}
