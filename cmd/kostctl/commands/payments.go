package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"kostku_backend/internals/configs"
	"kostku_backend/internals/features/finance/payments/service"
	"kostku_backend/internals/helpers/dbtime"
)

func PaymentsCmd(open DBOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Monthly rent operations",
	}
	cmd.AddCommand(paymentsGenerateCmd(open), paymentsExportCmd(open))
	return cmd
}

func paymentsGenerateCmd(open DBOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create one pending payment per tenant for a month (idempotent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			rawMonth, _ := cmd.Flags().GetString("month")
			amount, _ := cmd.Flags().GetInt64("amount")

			month, err := monthFlag(rawMonth)
			if err != nil {
				return err
			}
			if amount <= 0 {
				amount = configs.RentAmount
			}
			if amount <= 0 {
				amount = configs.DefaultRentAmount
			}

			db, done, err := open()
			if err != nil {
				return err
			}
			defer done()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			inserted, err := service.GeneratePayments(ctx, db, month, amount)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d payment(s) created at %d\n", dbtime.MonthKey(month), inserted, amount)
			return nil
		},
	}
	cmd.Flags().String("month", "", "bulan YYYY-MM (default bulan berjalan)")
	cmd.Flags().Int64("amount", 0, "nominal sewa (default RENT_AMOUNT)")
	return cmd
}

func paymentsExportCmd(open DBOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the payment ledger of a month to an .xlsx file",
		RunE: func(cmd *cobra.Command, args []string) error {
			rawMonth, _ := cmd.Flags().GetString("month")
			out, _ := cmd.Flags().GetString("out")

			month, err := monthFlag(rawMonth)
			if err != nil {
				return err
			}
			if out == "" {
				out = service.ExportFilename(month)
			}

			db, done, err := open()
			if err != nil {
				return err
			}
			defer done()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			rows, err := service.ListLedger(ctx, db, month)
			if err != nil {
				return fmt.Errorf("ledger: %w", err)
			}
			data, err := service.BuildLedgerXLSX(month, rows)
			if err != nil {
				return fmt.Errorf("xlsx: %w", err)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("tulis %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d row(s) written to %s\n", len(rows), out)
			return nil
		},
	}
	cmd.Flags().String("month", "", "bulan YYYY-MM (default bulan berjalan)")
	cmd.Flags().String("out", "", "file output (default payments_YYYY-MM.xlsx)")
	return cmd
}
