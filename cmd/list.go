// Package cmd implements the command-line interface for strs.
package cmd

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/strs-cli/strs/key"
	"github.com/strs-cli/strs/log"
	"github.com/strs-cli/strs/probe"
	"github.com/strs-cli/strs/stream"
	"github.com/strs-cli/strs/style"
	"github.com/strs-cli/strs/util"
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.SetOut(os.Stdout)
}

// listCmd probes every configured stream and reports its live status.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List streamers and whether they are currently live",
	Long: `Probe every stream URL from the configuration through the external
media-inspection tool and print one status line per stream.`,
	Run: func(cmd *cobra.Command, args []string) {
		link := buildStreamlink()
		prober := probe.Default()

		var bar *progressbar.ProgressBar
		if viper.GetBool(key.CliProgress) {
			bar = progressbar.NewOptions(link.Len(),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("probing"),
				progressbar.OptionClearOnFinish(),
			)
		}

		// Lines are collected while the bar ticks and printed only after it
		// is cleared, so the report never interleaves with the bar.
		lines := make([]string, 0, link.Len())
		for s, status := range link.Status(prober) {
			lines = append(lines, statusLine(s, status))

			if bar != nil {
				_ = bar.Add(1)
			}
		}

		if bar != nil {
			_ = bar.Finish()
		}

		log.Infof("probed %s", util.Quantify(link.Len(), "stream", "streams"))

		for _, line := range lines {
			cmd.Println(line)
		}
	},
}

// statusLine renders one report line: "<name> is <status>", the name falling
// back to the full URL when no identifier can be derived from the path.
func statusLine(s *stream.Stream, status stream.Status) string {
	rendered := status.String()
	if viper.GetBool(key.CliColored) {
		if status == stream.StatusOnline {
			rendered = style.Online(rendered)
		} else {
			rendered = style.Offline(rendered)
		}
	}

	return fmt.Sprintf("%s is %s", s.Name().OrElse(s.String()), rendered)
}
