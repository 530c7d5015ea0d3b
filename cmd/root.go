// Package cmd implements the command-line interface for strs.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/strs-cli/strs/config"
	"github.com/strs-cli/strs/constant"
	"github.com/strs-cli/strs/icon"
	"github.com/strs-cli/strs/key"
	"github.com/strs-cli/strs/log"
	"github.com/strs-cli/strs/stream"
	"github.com/strs-cli/strs/version"
)

// configFile is the explicit configuration file path from the --config flag.
var configFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path of the configuration FILE")
	lo.Must0(rootCmd.MarkPersistentFlagFilename("config", "toml"))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for the strs application.
var rootCmd = &cobra.Command{
	Use:   constant.Strs,
	Short: "Report which of your configured streamers are currently live",
	Long: "A minimalist command-line interface that classifies stream URLs by provider\n" +
		"and probes their live status through an external media-inspection tool.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The default configuration was already loaded in main; an explicit
		// --config path replaces it and must exist.
		if configFile == "" {
			return nil
		}

		if err := config.Setup(configFile); err != nil {
			return err
		}
		return log.Setup()
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// buildStreamlink validates the configured stream URLs into a Streamlink,
// terminating the run on the first invalid entry.
func buildStreamlink() *stream.Streamlink {
	if len(viper.GetStringSlice(key.StreamURLs)) == 0 {
		handleErr(errors.New("no stream URLs configured; add stream_urls to your config file"))
	}

	link, err := stream.New()
	handleErr(err)
	return link
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
