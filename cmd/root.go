package cmd

import (
	"fmt"
	"io"
	"os"

	log "github.com/harlequix/ecsim/log"
	"github.com/harlequix/ecsim/simulator"
	"github.com/harlequix/ecsim/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var logger = log.NewLogger("cmd")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ecsim",
	Short: "Simulate CRC error detection and Hamming error correction.",
	Long: `ecsim encodes bit strings with a CRC generator polynomial and with a
Hamming code, flips bits on the way to the receiver and shows whether the
corruption was detected or corrected.

Run "ecsim simulate" for the step by step walk-through or "ecsim dashboard"
for the interactive view.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if GetFlag(cmd, "version") {
			printVersion(cmd.OutOrStdout())
			return nil
		}
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: trace, debug, info, warn or error")
	rootCmd.PersistentFlags().String("trace", "", "also write JSON logs to <path>.trace and <path>.warn")
}

// setup loads the configuration and applies the logging settings before any
// command runs.
func setup(cmd *cobra.Command, args []string) error {
	if err := simulator.SetConfig(cfgFile); err != nil {
		return err
	}
	bindFlags(cmd)
	if err := log.SetLevel(viper.GetString("LogLevel")); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if trace := viper.GetString("TraceFile"); trace != "" {
		log.AddTracer(trace)
	}
	logger.WithField("command", cmd.Name()).Debug("starting")
	return nil
}

func printVersion(w io.Writer) {
	fmt.Fprintln(w, "Version:", version.Resolve())
	fmt.Fprintln(w, "Git Commit:", version.GitCommit)
	fmt.Fprintln(w, "Build Date:", version.BuildDate)
	fmt.Fprintln(w, "Go Version:", version.GoVersion)
	fmt.Fprintln(w, "OS / Arch:", version.OsArch)
}
