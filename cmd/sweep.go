package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/harlequix/ecsim/simulator"
	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Flip every bit position in turn and tabulate the outcome.",
	Args:  cobra.NoArgs,
	RunE:  sweep,
}

func init() {
	sweepCmd.Flags().StringP("data", "d", "1011001", "data bits to transmit")
	sweepCmd.Flags().StringP("key", "k", "1011", "CRC generator polynomial")
	sweepCmd.Flags().Bool("text", false, "treat the data as ASCII text, 8 bits per character")
	sweepCmd.Flags().Int("workers", 0, "positions simulated at once, 0 for all")
	rootCmd.AddCommand(sweepCmd)
}

func sweep(cmd *cobra.Command, args []string) error {
	sim, config, err := loadSimulator()
	if err != nil {
		return err
	}
	result, err := sim.Sweep(cmd.Context(), config.Data, config.Key)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "data %s, key %s: CRC codeword %d bits, Hamming codeword %d bits\n",
		result.Data, result.Key, result.CRCLen, result.HammingLen)
	fmt.Fprintln(out, sweepTable(result))
	fmt.Fprintf(out, "CRC detected %d/%d flips, Hamming corrected %d/%d flips\n",
		result.CRCDetected, result.CRCLen, result.HammingRestored, result.HammingLen)
	return nil
}

func sweepTable(result *simulator.SweepReport) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("position", "CRC", "Hamming")
	for _, row := range result.Rows {
		t.Row(strconv.Itoa(row.Position), crcCell(row), hammingCell(row))
	}
	return t
}

func crcCell(row simulator.SweepRow) string {
	switch {
	case !row.CRCHit:
		return "-"
	case row.CRCDetected:
		return "detected"
	default:
		return "missed"
	}
}

func hammingCell(row simulator.SweepRow) string {
	switch {
	case !row.HammingHit:
		return "-"
	case row.HammingRestored:
		return "corrected"
	default:
		return fmt.Sprintf("wrong (%d)", row.HammingFound)
	}
}
