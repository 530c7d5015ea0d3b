package stream

import (
	"iter"
	"net/url"

	"github.com/spf13/viper"
	"github.com/strs-cli/strs/key"
	"github.com/strs-cli/strs/log"
)

// Streamlink is an ordered, fixed-size collection of Streams built once from
// configuration or explicit lists. Order always matches the input order.
type Streamlink struct {
	streams []*Stream
}

// New builds a Streamlink from the stream_urls key of the global configuration.
func New() (*Streamlink, error) {
	return FromStrings(viper.GetStringSlice(key.StreamURLs))
}

// FromStrings validates every raw URL through FromString, failing fast on the
// first invalid entry. No partial collection is ever returned.
func FromStrings(raw []string) (*Streamlink, error) {
	streams := make([]*Stream, 0, len(raw))
	for _, r := range raw {
		s, err := FromString(r)
		if err != nil {
			return nil, err
		}
		streams = append(streams, s)
	}

	return &Streamlink{streams: streams}, nil
}

// FromURLs validates every URL through FromURL, failing fast on the first
// invalid entry.
func FromURLs(urls []*url.URL) (*Streamlink, error) {
	streams := make([]*Stream, 0, len(urls))
	for _, u := range urls {
		s, err := FromURL(u)
		if err != nil {
			return nil, err
		}
		streams = append(streams, s)
	}

	return &Streamlink{streams: streams}, nil
}

// StreamURLs returns a read-only view of the collected streams in input order.
func (l *Streamlink) StreamURLs() []*Stream {
	return l.streams
}

// Len returns the number of collected streams.
func (l *Streamlink) Len() int {
	return len(l.streams)
}

// Status lazily probes every stream in stored order through p, yielding one
// (stream, status) pair each. Probes run one at a time and every invocation of
// the sequence re-probes from scratch.
//
// A probe that cannot be launched is logged and downgraded to StatusOffline so
// one broken probe never aborts the report for the remaining streams.
func (l *Streamlink) Status(p Prober) iter.Seq2[*Stream, Status] {
	return func(yield func(*Stream, Status) bool) {
		for _, s := range l.streams {
			status, err := s.Status(p)
			if err != nil {
				log.Errorf("downgrading to offline: %v", err)
				status = StatusOffline
			}

			if !yield(s, status) {
				return
			}
		}
	}
}
