package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/harlequix/ecsim/channel"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Walk through encoding, corruption and checking step by step.",
	Long: `Encodes the data with both codecs, corrupts the codewords on the way
through the channel and reports what the receiver finds.

When stdin is a terminal the data, key and flip position are asked for, with
the configured values as defaults. Use --prompt or --no-prompt to override.`,
	Args: cobra.NoArgs,
	RunE: simulate,
}

func init() {
	addSimulationFlags(simulateCmd)
	simulateCmd.Flags().Bool("prompt", false, "always ask for data, key and flip position")
	simulateCmd.Flags().Bool("no-prompt", false, "never ask, use flags and config only")
	rootCmd.AddCommand(simulateCmd)
}

func simulate(cmd *cobra.Command, args []string) error {
	sim, config, err := loadSimulator()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !shouldPrompt(cmd) {
		report, err := sim.Run(config.Data, config.Key)
		if err != nil {
			return err
		}
		printGeneration(out, report)
		fmt.Fprintln(out)
		printTransmission(out, report)
		return nil
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	fmt.Fprintln(out, "--- CRC and Hamming Code Simulator ---")
	data := ask(reader, out, "Enter the data bits", config.Data)
	key := ask(reader, out, "Enter the CRC Generator Polynomial", config.Key)

	clean, err := sim.RunChannel(data, key, channel.Noiseless{})
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	printGeneration(out, clean)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "--- Simulating a Single-Bit Error ---")
	prompt := fmt.Sprintf("Enter bit position to introduce error (1 to %d)", clean.MaxLen())
	position, err := strconv.Atoi(ask(reader, out, prompt, strconv.Itoa(config.FlipPosition)))
	if err != nil {
		return fmt.Errorf("flip position: %w", err)
	}
	report, err := sim.RunAt(data, key, position)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	printTransmission(out, report)
	return nil
}

func shouldPrompt(cmd *cobra.Command) bool {
	if GetFlag(cmd, "no-prompt") {
		return false
	}
	if GetFlag(cmd, "prompt") {
		return true
	}
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ask prints prompt and reads one line, returning def for an empty answer.
func ask(reader *bufio.Reader, out io.Writer, prompt string, def string) string {
	fmt.Fprintf(out, "%s [%s]: ", prompt, def)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		logger.WithError(err).Warn("reading answer")
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}
