package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var disableCmd = &cobra.Command{
	Use:   "disable <id>",
	Short: "Disable a customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log, repo, err := setup(ctx)
		if err != nil {
			return err
		}
		if err := repo.Disable(ctx, args[0]); err != nil {
			return err
		}
		log.Info("customer disabled", zap.String("id", args[0]))
		return nil
	},
}

var enableCmd = &cobra.Command{
	Use:   "enable <id>",
	Short: "Enable a customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log, repo, err := setup(ctx)
		if err != nil {
			return err
		}
		if err := repo.Enable(ctx, args[0]); err != nil {
			return err
		}
		log.Info("customer enabled", zap.String("id", args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(enableCmd)
}
