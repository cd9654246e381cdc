package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	database "kostku_backend/internals/databases"
)

func MigrateCmd(open DBOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update tables (rooms, tenants, payments, payment_proofs, maintenance_requests)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, done, err := open()
			if err != nil {
				return err
			}
			defer done()

			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✅ migrate selesai")
			return nil
		},
	}
}
