package cmd

import (
	"fmt"

	"github.com/harlequix/ecsim/internal/encoding"
	"github.com/harlequix/ecsim/internal/format"
	"github.com/spf13/cobra"
)

var hammingCmd = &cobra.Command{
	Use:   "hamming",
	Short: "Encode and correct Hamming codewords.",
	Long: `Single error correcting Hamming code. Parity bits sit at the power of
two positions 1, 2, 4, 8, ... of the codeword, counted from the left.`,
}

var hammingEncodeCmd = &cobra.Command{
	Use:     "encode DATA",
	Short:   "Interleave DATA with its parity bits.",
	Example: "  ecsim hamming encode 1011001",
	Args:    cobra.ExactArgs(1),
	RunE:    hammingEncode,
}

var hammingDecodeCmd = &cobra.Command{
	Use:     "decode CODEWORD",
	Short:   "Locate and flip back a single bit error in CODEWORD.",
	Example: "  ecsim hamming decode 10101111001",
	Args:    cobra.ExactArgs(1),
	RunE:    hammingDecode,
}

func init() {
	hammingEncodeCmd.Flags().Bool("text", false, "treat DATA as ASCII text, 8 bits per character")
	hammingDecodeCmd.Flags().Bool("text", false, "print the recovered data as ASCII text")
	hammingCmd.AddCommand(hammingEncodeCmd)
	hammingCmd.AddCommand(hammingDecodeCmd)
	rootCmd.AddCommand(hammingCmd)
}

func hammingEncode(cmd *cobra.Command, args []string) error {
	data, err := parseData(args[0], GetFlag(cmd, "text"))
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	codeword, err := encoding.EncodeHamming(data)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "data:        %s\n", data)
	fmt.Fprintf(out, "parity bits: %d\n", len(codeword)-len(data))
	fmt.Fprintf(out, "layout:      %s\n", format.Skeleton(data))
	fmt.Fprintf(out, "codeword:    %s\n", codeword)
	fmt.Fprintf(out, "             %s\n", format.ParityMarker(len(codeword)))
	return nil
}

func hammingDecode(cmd *cobra.Command, args []string) error {
	received, err := encoding.Parse(args[0])
	if err != nil {
		return fmt.Errorf("codeword: %w", err)
	}
	corrected, pos, err := encoding.DecodeHamming(received)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "received:  %s\n", received)
	switch {
	case pos == 0:
		fmt.Fprintln(out, "result:    no error detected")
	case pos > len(received):
		fmt.Fprintf(out, "result:    syndrome %d is past the end, more than one bit is wrong\n", pos)
	default:
		fmt.Fprintf(out, "           %s\n", format.Marker(len(received), pos))
		fmt.Fprintf(out, "result:    error at bit position %d\n", pos)
		fmt.Fprintf(out, "corrected: %s\n", corrected)
	}
	data := encoding.ExtractData(corrected)
	if GetFlag(cmd, "text") {
		fmt.Fprintf(out, "data:      %q\n", encoding.ToText(data))
	} else {
		fmt.Fprintf(out, "data:      %s\n", data)
	}
	return nil
}
