package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harnessline/corral/customer"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, repo, err := setup(ctx)
		if err != nil {
			return err
		}

		var cursor customer.Cursor
		total := 0
		for {
			page, err := repo.List(ctx, cursor)
			if err != nil {
				return err
			}
			for _, li := range page.Customers {
				state := "active"
				if li.Disabled {
					state = "disabled"
				}
				fmt.Printf("%-40s %-8s %s\n", li.ID, state, li.Name)
				total++
			}
			if page.LastKey == nil {
				break
			}
			cursor = page.LastKey
		}

		fmt.Printf("%d customer(s)\n", total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
