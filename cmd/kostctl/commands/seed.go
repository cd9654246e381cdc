package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kostku_backend/internals/seeds"
	"kostku_backend/internals/seeds/rooms"
)

func SeedCmd(open DBOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed reference data (all seeds when no subcommand is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, done, err := open()
			if err != nil {
				return err
			}
			defer done()
			return seeds.RunAllSeeds(db, "")
		},
	}
	cmd.AddCommand(seedRoomsCmd(open))
	return cmd
}

func seedRoomsCmd(open DBOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Insert rooms from a JSON file, skipping existing room numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")

			db, done, err := open()
			if err != nil {
				return err
			}
			defer done()

			inserted, skipped, err := rooms.SeedRoomsFromJSON(db, file)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rooms: %d inserted, %d skipped\n", inserted, skipped)
			return nil
		},
	}
	cmd.Flags().String("file", rooms.DefaultPath, "path ke file JSON kamar")
	return cmd
}
