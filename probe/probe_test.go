package probe

import (
	"runtime"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/strs-cli/strs/key"
)

func TestDefault(t *testing.T) {
	Convey("Default", t, func() {
		viper.Set(key.ProbeCommand, "yt-dlp")
		viper.Set(key.ProbeArgs, []string{"--list-formats"})
		defer func() {
			viper.Set(key.ProbeCommand, nil)
			viper.Set(key.ProbeArgs, nil)
		}()

		c := Default()
		So(c.Name, ShouldEqual, "yt-dlp")
		So(c.Args, ShouldResemble, []string{"--list-formats"})
	})
}

func TestProbe(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX true/false executables")
	}

	Convey("Probe", t, func() {
		Convey("Exit success reports ok", func() {
			ok, err := (&Command{Name: "true"}).Probe("https://twitch.tv/food")
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
		})

		Convey("A non-zero exit is not an error", func() {
			ok, err := (&Command{Name: "false"}).Probe("https://twitch.tv/food")
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})

		Convey("A missing executable is a launch error", func() {
			_, err := (&Command{Name: "strs-no-such-probe-binary"}).Probe("https://twitch.tv/food")
			So(err, ShouldNotBeNil)
		})

		Convey("The target URL is appended after the configured arguments", func() {
			c := &Command{Name: "true", Args: []string{"-F"}}
			So(c.Args, ShouldResemble, []string{"-F"})

			_, err := c.Probe("https://twitch.tv/food")
			So(err, ShouldBeNil)
			// Args must stay untouched between probes.
			So(c.Args, ShouldResemble, []string{"-F"})
		})
	})
}
