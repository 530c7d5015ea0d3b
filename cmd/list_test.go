package cmd

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/strs-cli/strs/key"
	"github.com/strs-cli/strs/stream"
)

func TestStatusLine(t *testing.T) {
	Convey("statusLine", t, func() {
		viper.Set(key.CliColored, false)
		defer viper.Set(key.CliColored, nil)

		Convey("Should render the derived name and status word", func() {
			s := lo.Must(stream.FromString("https://twitch.tv/gogcom"))
			So(statusLine(s, stream.StatusOnline), ShouldEqual, "gogcom is online")
			So(statusLine(s, stream.StatusOffline), ShouldEqual, "gogcom is offline")
		})

		Convey("Should resolve youtube /user/ paths", func() {
			s := lo.Must(stream.FromString("https://youtube.com/user/markiplierGAME"))
			So(statusLine(s, stream.StatusOffline), ShouldEqual, "markiplierGAME is offline")
		})

		Convey("Should fall back to the full URL when no name can be derived", func() {
			s := lo.Must(stream.FromString("https://twitch.tv/"))
			So(statusLine(s, stream.StatusOffline), ShouldEqual, "https://twitch.tv/ is offline")
		})
	})
}
