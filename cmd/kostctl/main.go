package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kostku_backend/cmd/kostctl/commands"
	"kostku_backend/internals/configs"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "kostctl",
		Short:         "Kostku ops tool (migrate, seed, payments)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configs.InitLogger("kostctl")
			configs.LoadEnv()
		},
	}

	open := commands.WithClose(configs.OpenCLIDB)
	rootCmd.AddCommand(
		commands.MigrateCmd(open),
		commands.SeedCmd(open),
		commands.PaymentsCmd(open),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
