package simulator

import (
	"fmt"

	"github.com/harlequix/ecsim/channel"
	"github.com/jinzhu/copier"
	"github.com/spf13/viper"
)

type Config struct {
	Data         string
	Key          string
	Text         bool
	Channel      string
	FlipPosition int
	BurstLength  int
	Flips        int
	Mask         string
	Seed         int64
	Workers      int
	LogLevel     string
	TraceFile    string
}

func init() {
	SetDefaults()
}

// SetDefaults registers the defaults of every configuration key. The data
// and key are the ones the walk-through starts with.
func SetDefaults() {
	viper.SetDefault("Data", "1011001")
	viper.SetDefault("Key", "1011")
	viper.SetDefault("Text", false)
	viper.SetDefault("Channel", channel.NameSingle)
	viper.SetDefault("FlipPosition", 5)
	viper.SetDefault("BurstLength", 2)
	viper.SetDefault("Flips", 1)
	viper.SetDefault("Mask", "")
	viper.SetDefault("Seed", 0)
	viper.SetDefault("Workers", 0)
	viper.SetDefault("LogLevel", "warn")
	viper.SetDefault("TraceFile", "")
}

// SetConfig reads configFile into viper. An empty name keeps the defaults.
func SetConfig(configFile string) error {
	if configFile == "" {
		return nil
	}
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}
	logger.WithField("file", configFile).Debug("config loaded")
	return nil
}

func LoadConfig() (Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// ChannelOptions extracts the channel settings of the configuration.
func (c Config) ChannelOptions() (channel.Options, error) {
	var opts channel.Options
	if err := copier.Copy(&opts, &c); err != nil {
		return channel.Options{}, err
	}
	return opts, nil
}
