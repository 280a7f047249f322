package cmd

import (
	"fmt"

	"github.com/harlequix/ecsim/internal/encoding"
	"github.com/spf13/cobra"
)

var crcCmd = &cobra.Command{
	Use:   "crc",
	Short: "Compute and check CRC codewords.",
	Long: `Cyclic redundancy check over GF(2). The generator polynomial KEY is given
as a bit string, e.g. 1011 for x^3 + x + 1.`,
}

var crcEncodeCmd = &cobra.Command{
	Use:     "encode DATA KEY",
	Short:   "Append the CRC remainder of DATA under KEY.",
	Example: "  ecsim crc encode 1011001 1011",
	Args:    cobra.ExactArgs(2),
	RunE:    crcEncode,
}

var crcVerifyCmd = &cobra.Command{
	Use:     "verify CODEWORD KEY",
	Short:   "Check whether CODEWORD divides cleanly by KEY.",
	Example: "  ecsim crc verify 1011001011 1011",
	Args:    cobra.ExactArgs(2),
	RunE:    crcVerify,
}

func init() {
	crcEncodeCmd.Flags().Bool("text", false, "treat DATA as ASCII text, 8 bits per character")
	crcCmd.AddCommand(crcEncodeCmd)
	crcCmd.AddCommand(crcVerifyCmd)
	rootCmd.AddCommand(crcCmd)
}

func crcEncode(cmd *cobra.Command, args []string) error {
	data, err := parseData(args[0], GetFlag(cmd, "text"))
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	key, err := encoding.ParseKey(args[1])
	if err != nil {
		return fmt.Errorf("key: %w", err)
	}
	codeword, remainder, err := encoding.EncodeCRC(data, key)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "data:      %s\n", data)
	fmt.Fprintf(out, "key:       %s\n", key)
	fmt.Fprintf(out, "remainder: %s\n", remainder)
	fmt.Fprintf(out, "codeword:  %s\n", codeword)
	return nil
}

func crcVerify(cmd *cobra.Command, args []string) error {
	codeword, err := encoding.Parse(args[0])
	if err != nil {
		return fmt.Errorf("codeword: %w", err)
	}
	key, err := encoding.ParseKey(args[1])
	if err != nil {
		return fmt.Errorf("key: %w", err)
	}
	remainder, err := encoding.CRCRemainder(codeword, key)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "remainder: %s\n", remainder)
	if remainder.IsZero() {
		fmt.Fprintln(out, "result:    no error detected")
	} else {
		fmt.Fprintln(out, "result:    error DETECTED")
	}
	return nil
}

func parseData(s string, text bool) (encoding.BitString, error) {
	if !text {
		return encoding.Parse(s)
	}
	if s == "" {
		return nil, encoding.ErrEmptyBitString
	}
	return encoding.FromText(s), nil
}
