// Package cmd implements the command-line interface for strs.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/strs-cli/strs/color"
	"github.com/strs-cli/strs/key"
	"github.com/strs-cli/strs/style"
)

func init() {
	rootCmd.AddCommand(urlCmd)
	urlCmd.Flags().BoolP("names", "n", false, "Prefix each URL with the derived streamer name")
	urlCmd.SetOut(os.Stdout)
}

// urlCmd prints the validated, canonical URL of every configured stream
// without probing any of them.
var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the formatted URL of every configured stream",
	Run: func(cmd *cobra.Command, args []string) {
		withNames, _ := cmd.Flags().GetBool("names")
		link := buildStreamlink()

		for _, s := range link.StreamURLs() {
			if !withNames {
				cmd.Println(s)
				continue
			}

			name := s.Name().OrElse(s.String())
			if viper.GetBool(key.CliColored) {
				name = style.Fg(color.Cyan)(name)
			}
			cmd.Printf("%s\t%s\n", name, s)
		}
	},
}
