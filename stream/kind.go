// Package stream defines the domain model for monitored live streams: provider
// classification, the Stream entity and the Streamlink collection.
package stream

import "net/url"

// Kind is the closed set of streaming platforms a URL can belong to.
type Kind int

const (
	KindOther Kind = iota
	KindYoutube
	KindTwitch
)

// Hosts recognized as stream providers. Matching is an exact, case-sensitive
// string comparison, so subdomains like "www.twitch.tv" resolve to KindOther.
const (
	hostYoutube = "youtube.com"
	hostTwitch  = "twitch.tv"
)

func (k Kind) String() string {
	switch k {
	case KindYoutube:
		return "youtube"
	case KindTwitch:
		return "twitch"
	default:
		return "other"
	}
}

// Classify maps a parsed URL to its provider Kind.
// It is pure and total: it only inspects the host, never the path or query,
// and URLs without a recognized host yield KindOther.
func Classify(u *url.URL) Kind {
	switch u.Hostname() {
	case hostYoutube:
		return KindYoutube
	case hostTwitch:
		return KindTwitch
	default:
		return KindOther
	}
}
