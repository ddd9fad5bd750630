package commands

import (
	"github.com/spf13/cobra"

	"github.com/iota-uz/org-directory/modules"
)

// NewUtilityCommands creates the database commands (migrate, seed, ping).
func NewUtilityCommands() []*cobra.Command {
	return []*cobra.Command{
		newMigrateCmd(),
		newSeedCmd(),
		newPingCmd(),
	}
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply, roll back or inspect schema migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return Migrate(cmd.Context(), MigrateUp, cmd.OutOrStdout(), modules.BuiltInModules...)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every applied migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return Migrate(cmd.Context(), MigrateDown, cmd.OutOrStdout(), modules.BuiltInModules...)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the state of every migration as JSON",
			RunE: func(cmd *cobra.Command, args []string) error {
				return Migrate(cmd.Context(), MigrateStatus, cmd.OutOrStdout(), modules.BuiltInModules...)
			},
		},
	)
	return cmd
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with the reference directory",
		Long:  `Populates buildings, the activity tree and organizations with their phones, addresses and activities. Running it again changes nothing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return SeedDatabase(cmd.Context(), modules.BuiltInModules...)
		},
	}
}

func newPingCmd() *cobra.Command {
	var (
		attempts int
		interval string
	)
	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Wait until the database answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Ping(cmd.Context(), attempts, interval)
		},
	}
	cmd.Flags().IntVar(&attempts, "attempts", 0, "Ping attempts (defaults to DB_WAIT_ATTEMPTS)")
	cmd.Flags().StringVar(&interval, "interval", "", "Delay between attempts, e.g. 1s (defaults to DB_WAIT_INTERVAL)")
	return cmd
}
