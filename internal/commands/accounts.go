package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aifina/aifina/internal/accounts"
	"github.com/aifina/aifina/internal/model"
)

func newAccountsCommand() *cobra.Command {
	var accountType string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Print the chart of accounts as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chart := accounts.Default()
			accts := chart.All()
			if accountType != "" {
				accts = chart.ByType(model.AccountType(accountType))
				if len(accts) == 0 {
					return fmt.Errorf("no accounts of type %q", accountType)
				}
			}
			return accounts.WriteAccounts(cmd.OutOrStdout(), accts)
		},
	}

	cmd.Flags().StringVar(&accountType, "type", "", "only list accounts of this type (asset, liability, equity, revenue, expense, financial_income, financial_cost)")

	return cmd
}
