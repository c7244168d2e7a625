package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lumenwatch/tower/config"
	"github.com/lumenwatch/tower/pkgs/logger"
)

var (
	// BuildVersion is the build version set by goreleaser
	BuildVersion = ""

	// BuildCommit is the git hash of the build. It is set by goreleaser
	BuildCommit = ""
)

var (
	log logger.Logger

	// cfg is the application config
	cfg = config.EmptyAppConfig()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   config.AppName,
	Short: "A watchtower that holds and broadcasts justice transactions for its users",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Configure(cfg); err != nil {
			return err
		}
		log = cfg.G().Log.Module("main")
		return nil
	},
}

// Execute adds all child commands to the root command and sets
// flags appropriately
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("home", config.DefaultDataDir, "Set the path to the home directory")
	rootCmd.PersistentFlags().Bool("dev", false, "Enable development mode")
	_ = viper.BindPFlag("home", rootCmd.PersistentFlags().Lookup("home"))
	_ = viper.BindPFlag("dev", rootCmd.PersistentFlags().Lookup("dev"))

	cobra.OnInitialize(func() {
		cfg.SetDataDir(viper.GetString("home"))
		if viper.GetBool("dev") {
			cfg.Node.Mode = config.ModeDev
		}
	})
}
