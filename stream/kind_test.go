package stream

import (
	"net/url"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func kindOf(raw string) Kind {
	return Classify(lo.Must(url.Parse(raw)))
}

func TestClassify(t *testing.T) {
	Convey("Classify", t, func() {
		Convey("Should recognize youtube.com", func() {
			So(kindOf("https://youtube.com/markipliergame"), ShouldEqual, KindYoutube)
		})

		Convey("Should recognize twitch.tv", func() {
			So(kindOf("https://twitch.tv/gogcom"), ShouldEqual, KindTwitch)
		})

		Convey("Should classify every other host as other", func() {
			So(kindOf("https://rust-lang.org"), ShouldEqual, KindOther)
			So(kindOf("https://example.com/x"), ShouldEqual, KindOther)
		})

		Convey("Should not match subdomains of known hosts", func() {
			So(kindOf("https://www.twitch.tv/gogcom"), ShouldEqual, KindOther)
			So(kindOf("https://www.youtube.com/markipliergame"), ShouldEqual, KindOther)
		})

		Convey("Should classify host-less URLs as other", func() {
			So(kindOf("mailto:someone@example.com"), ShouldEqual, KindOther)
		})

		Convey("Should never inspect the path", func() {
			So(kindOf("https://example.com/twitch.tv"), ShouldEqual, KindOther)
			So(kindOf("https://twitch.tv/youtube.com"), ShouldEqual, KindTwitch)
		})
	})
}

func TestKindString(t *testing.T) {
	Convey("Kind String", t, func() {
		So(KindYoutube.String(), ShouldEqual, "youtube")
		So(KindTwitch.String(), ShouldEqual, "twitch")
		So(KindOther.String(), ShouldEqual, "other")
	})
}
