package cmd

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harnessline/corral/customer"
)

var (
	createID     string
	createName   string
	createEmail  string
	createAvatar string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log, repo, err := setup(ctx)
		if err != nil {
			return err
		}

		id := createID
		if id == "" {
			id = uuid.NewString()
		}
		var avatar *string
		if createAvatar != "" {
			avatar = &createAvatar
		}

		c := customer.NewCustomer(id, createName, createEmail, avatar)
		if err := c.Validate(); err != nil {
			return err
		}
		if err := repo.Create(ctx, c); err != nil {
			return err
		}

		log.Info("customer created",
			zap.String("id", id),
			zap.String("email", createEmail),
		)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createID, "id", "", "customer id (generated when empty)")
	createCmd.Flags().StringVar(&createName, "name", "", "customer name")
	createCmd.Flags().StringVar(&createEmail, "email", "", "customer email")
	createCmd.Flags().StringVar(&createAvatar, "avatar", "", "avatar URL")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(createCmd)
}
