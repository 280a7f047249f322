package cmd

import (
	"fmt"
	"os"

	"github.com/harlequix/ecsim/simulator"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flag name -> configuration key
var flagKeys = map[string]string{
	"log-level": "LogLevel",
	"trace":     "TraceFile",
	"data":      "Data",
	"key":       "Key",
	"text":      "Text",
	"channel":   "Channel",
	"flip":      "FlipPosition",
	"burst":     "BurstLength",
	"flips":     "Flips",
	"mask":      "Mask",
	"seed":      "Seed",
	"workers":   "Workers",
}

// bindFlags binds the flags of the running command to their configuration
// keys. Several commands share a key, so this happens once the command is
// known rather than in init.
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if key, ok := flagKeys[flag.Name]; ok {
			if err := viper.BindPFlag(key, flag); err != nil {
				logger.WithField("flag", flag.Name).WithError(err).Error("cannot bind flag")
			}
		}
	})
}

func addSimulationFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("data", "d", "1011001", "data bits to transmit")
	cmd.Flags().StringP("key", "k", "1011", "CRC generator polynomial")
	cmd.Flags().Bool("text", false, "treat the data as ASCII text, 8 bits per character")
	cmd.Flags().StringP("channel", "c", "single", "channel: none, single, burst, random or pattern")
	cmd.Flags().IntP("flip", "f", 5, "1-indexed bit position to flip (single, burst)")
	cmd.Flags().Int("burst", 2, "burst length (burst)")
	cmd.Flags().Int("flips", 1, "number of random flips (random)")
	cmd.Flags().String("mask", "", "error pattern XORed onto the end of the codeword (pattern)")
	cmd.Flags().Int64("seed", 0, "random source seed (random)")
}

func loadSimulator() (*simulator.Simulator, simulator.Config, error) {
	config, err := simulator.LoadConfig()
	if err != nil {
		return nil, config, err
	}
	sim, err := simulator.New(config)
	if err != nil {
		return nil, config, err
	}
	return sim, config, nil
}

// GetFlag gets an expected boolean flag, or exit if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return r
}
