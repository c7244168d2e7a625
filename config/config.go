package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/lumenwatch/tower/params"
	"github.com/lumenwatch/tower/pkgs/logger"
)

var (
	// AppName is the name of the application
	AppName = "towerd"

	// DefaultDataDir is the path to the data directory
	DefaultDataDir = os.ExpandEnv("$HOME/." + AppName)

	// AppEnvPrefix is used as the prefix for environment variables
	AppEnvPrefix = strings.ToUpper(AppName)
)

func init() {
	DefaultDataDir, _ = homedir.Expand(filepath.Join("~", "."+AppName))
}

// Configure reads the config file (if present), environment and
// defaults into cfg and initializes the global logger.
func Configure(cfg *AppConfig) error {

	if cfg.dataDir == "" {
		cfg.dataDir = DefaultDataDir
	}
	if err := os.MkdirAll(cfg.GetDBDir(), 0700); err != nil {
		return errors.Wrap(err, "failed to create data directory")
	}

	viper.SetDefault("subscription.slots", params.DefaultSubscriptionSlots)
	viper.SetDefault("subscription.duration", params.DefaultSubscriptionDuration)
	viper.SetDefault("subscription.expirydelta", params.DefaultExpiryDelta)
	viper.SetDefault("node.network", "mainnet")

	viper.SetEnvPrefix(AppEnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(AppName)
	viper.AddConfigPath(cfg.dataDir)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "failed to read config file")
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return errors.Wrap(err, "failed to unmarshal config")
	}

	switch cfg.Node.Mode {
	case ModeTest:
		cfg.g.Log = logger.NewLogrusNoOp()
	default:
		cfg.g.Log = logger.NewLogrus()
	}
	if cfg.IsDev() {
		cfg.g.Log.SetToDebug()
	}

	return nil
}
