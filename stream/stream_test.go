package stream

import (
	"errors"
	"net/url"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	twitchGogcom          = "https://twitch.tv/gogcom"
	youtubeUserMarkiplier = "https://youtube.com/user/markiplierGAME"
	youtubeMarkiplier     = "https://youtube.com/markiplierGAME"
	otherValid            = "https://rust-lang.org/about"
)

// stubProber implements Prober with a fixed outcome, recording every call.
type stubProber struct {
	ok    bool
	err   error
	calls int
}

func (p *stubProber) Probe(string) (bool, error) {
	p.calls++
	return p.ok, p.err
}

func TestFromString(t *testing.T) {
	Convey("FromString", t, func() {
		Convey("Should accept supported provider URLs", func() {
			s, err := FromString(twitchGogcom)
			So(err, ShouldBeNil)
			So(s.Kind(), ShouldEqual, KindTwitch)
		})

		Convey("Should reject input that is not an absolute URL", func() {
			for _, raw := range []string{"not a url", "twitch.tv/gogcom", ""} {
				_, err := FromString(raw)
				So(errors.Is(err, ErrMalformed), ShouldBeTrue)
			}
		})

		Convey("Should reject URLs of unsupported hosts", func() {
			_, err := FromString(otherValid)
			So(errors.Is(err, ErrNonStream), ShouldBeTrue)
		})
	})
}

func TestFromURL(t *testing.T) {
	Convey("FromURL", t, func() {
		Convey("Should succeed iff classification is not other", func() {
			_, err := FromURL(mustParse(twitchGogcom))
			So(err, ShouldBeNil)

			_, err = FromURL(mustParse(youtubeMarkiplier))
			So(err, ShouldBeNil)

			_, err = FromURL(mustParse(otherValid))
			So(errors.Is(err, ErrNonStream), ShouldBeTrue)
		})
	})
}

func TestName(t *testing.T) {
	Convey("Name", t, func() {
		Convey("Twitch uses the first path segment", func() {
			So(name(twitchGogcom), ShouldEqual, "gogcom")
		})

		Convey("Youtube resolves /user/<id> to the second segment", func() {
			So(name(youtubeUserMarkiplier), ShouldEqual, "markiplierGAME")
		})

		Convey("Youtube resolves a direct path to the first segment", func() {
			So(name(youtubeMarkiplier), ShouldEqual, "markiplierGAME")
		})

		Convey("Should be None when the path has no usable segment", func() {
			s := lo.Must(FromString("https://twitch.tv/"))
			So(s.Name().IsAbsent(), ShouldBeTrue)

			s = lo.Must(FromString("https://youtube.com"))
			So(s.Name().IsAbsent(), ShouldBeTrue)

			s = lo.Must(FromString("https://youtube.com/user"))
			So(s.Name().IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestString(t *testing.T) {
	Convey("String", t, func() {
		Convey("Should round-trip the exact constructed URL", func() {
			for _, raw := range []string{twitchGogcom, youtubeUserMarkiplier, youtubeMarkiplier} {
				s := lo.Must(FromString(raw))
				So(s.String(), ShouldEqual, raw)
			}
		})
	})
}

func TestStatus(t *testing.T) {
	Convey("Status", t, func() {
		s := lo.Must(FromString(twitchGogcom))

		Convey("Exit success maps to online", func() {
			status, err := s.Status(&stubProber{ok: true})
			So(err, ShouldBeNil)
			So(status, ShouldEqual, StatusOnline)
		})

		Convey("A probe that ran and failed maps to offline, not an error", func() {
			status, err := s.Status(&stubProber{ok: false})
			So(err, ShouldBeNil)
			So(status, ShouldEqual, StatusOffline)
		})

		Convey("A probe that could not be launched is an error", func() {
			launchErr := errors.New("executable file not found")
			_, err := s.Status(&stubProber{err: launchErr})
			So(errors.Is(err, launchErr), ShouldBeTrue)
		})
	})
}

func TestStatusString(t *testing.T) {
	Convey("Status String", t, func() {
		So(StatusOnline.String(), ShouldEqual, "online")
		So(StatusOffline.String(), ShouldEqual, "offline")
	})
}

func name(raw string) string {
	return lo.Must(FromString(raw)).Name().MustGet()
}

func mustParse(raw string) *url.URL {
	return lo.Must(url.Parse(raw))
}
