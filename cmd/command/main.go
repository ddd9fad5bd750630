package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iota-uz/org-directory/pkg/commands"
	"github.com/iota-uz/org-directory/pkg/configuration"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "command",
		Short:        "Organization directory maintenance commands",
		SilenceUsage: true,
	}
	cmd.AddCommand(commands.NewUtilityCommands()...)
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	configuration.Use().Unload()
	if err != nil {
		os.Exit(1)
	}
}
