package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	// Verbose enables debug logging.
	Verbose bool
	// AppVersion is set by main at build time.
	AppVersion string
	// AppBuildTime is set by main at build time.
	AppBuildTime string
)

var rootCmd = &cobra.Command{
	Use:   "shox",
	Short: "Compress and inspect short strings",
	Long: `shox compresses short strings (names, keys, URLs, timestamps, chat
messages) into compact payloads without headers or length prefixes.

Payloads must be decompressed with the same preset and a size hint that is at
least the length of the original text.`,
}

// Execute runs the root command. It is called once by main.main.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", AppVersion, AppBuildTime)
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	log.SetHandler(clihandler.Default)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/shox/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().Bool("color", false, "colorize output")
	rootCmd.PersistentFlags().StringP("preset", "p", "default", "frequent-sequence preset (default, json, url, markup)")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
	viper.BindPFlag("preset", rootCmd.PersistentFlags().Lookup("preset"))
	viper.BindEnv("color", "CLICOLOR")

	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(decompressCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(batchCmd)

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(filepath.Join(home, ".config", "shox"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("shox")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()

	if viper.GetBool("verbose") {
		log.SetLevel(log.DebugLevel)
	}
	color.NoColor = !viper.GetBool("color")

	if err == nil {
		log.WithField("file", viper.ConfigFileUsed()).Debug("Using config file")
	}
}
