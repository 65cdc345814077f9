package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/rentdesk/property"
)

func LedgerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ledger <tenant-id>",
		Short: "Print a tenant's statement with running balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid tenant id %q", args[0])
			}

			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			st, err := openStore(cfg, logger)
			if err != nil {
				return err
			}
			defer st.Close()

			service := property.NewService(st.DB(), logger)
			statement, err := service.BuildLedger(cmd.Context(), uint(id))
			if err != nil {
				return err
			}

			fmt.Printf("Ledger for %s\n", statement.TenantName)
			fmt.Printf("%-12s  %-24s  %10s  %10s  %10s\n", "Date", "Item", "Debit", "Credit", "Balance")
			for _, line := range statement.Lines {
				fmt.Printf("%-12s  %-24s  %10.2f  %10.2f  %10.2f\n",
					line.Date, line.Description, line.Debit, line.Credit, line.Balance)
			}

			if statement.Outstanding > 0 {
				fmt.Printf("Outstanding balance: %.2f\n", statement.Outstanding)
			} else {
				fmt.Printf("Balance cleared: %.2f\n", statement.Outstanding)
			}

			return nil
		},
	}
}
