package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a customer by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, repo, err := setup(ctx)
		if err != nil {
			return err
		}

		c, err := repo.Get(ctx, args[0])
		if err != nil {
			return err
		}

		avatar := "-"
		if c.AvatarURL != nil {
			avatar = *c.AvatarURL
		}
		fmt.Printf("id:       %s\n", c.ID)
		fmt.Printf("name:     %s\n", c.Name)
		fmt.Printf("email:    %s\n", c.Email)
		fmt.Printf("role:     %s\n", c.Role)
		fmt.Printf("avatar:   %s\n", avatar)
		fmt.Printf("disabled: %t\n", c.Disabled)
		fmt.Printf("updated:  %dms ago\n", c.Since())
		return nil
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <email>",
	Short: "Resolve an email to a customer id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, repo, err := setup(ctx)
		if err != nil {
			return err
		}

		id, err := repo.LookupID(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(lookupCmd)
}
