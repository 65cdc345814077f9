package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/rentdesk/property"
	"github.com/beesaferoot/rentdesk/property/models"
)

func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show building occupancy and rent status",
		RunE: func(cmd *cobra.Command, args []string) error {
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
			floors, err := service.BuildingOverview(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to build overview: %w", err)
			}

			if len(floors) == 0 {
				fmt.Println("No units found.")
				return nil
			}

			for _, floor := range floors {
				fmt.Printf("Floor %s\n", floor.Floor)
				fmt.Printf("  %-8s  %-20s  %-10s  %-8s  %10s\n", "Code", "Tenant", "Status", "Rent", "Amount")
				for _, unit := range floor.Units {
					tenant := unit.TenantName
					rent := unit.RentStatus
					if unit.Status == models.UnitStatusVacant {
						tenant = "-"
						rent = "-"
					}
					fmt.Printf("  %-8s  %-20s  %-10s  %-8s  %10.2f\n", unit.Code, tenant, unit.Status, rent, unit.RentAmount)
				}
			}

			return nil
		},
	}
}
