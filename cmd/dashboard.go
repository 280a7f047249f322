package cmd

import (
	"github.com/harlequix/ecsim/dashboard"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive view: edit data and key, move the flipped bit.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sim, config, err := loadSimulator()
		if err != nil {
			return err
		}
		return dashboard.Run(sim, config)
	},
}

func init() {
	dashboardCmd.Flags().StringP("data", "d", "1011001", "initial data bits")
	dashboardCmd.Flags().StringP("key", "k", "1011", "initial CRC generator polynomial")
	dashboardCmd.Flags().IntP("flip", "f", 5, "initial bit position to flip")
	rootCmd.AddCommand(dashboardCmd)
}
