package stream

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/mo"
)

// Construction errors. Both are wrapped with the offending input.
var (
	// ErrMalformed indicates the raw input could not be parsed as an absolute URL.
	ErrMalformed = errors.New("malformed stream URL")

	// ErrNonStream indicates the URL parsed but its host is not a supported stream provider.
	ErrNonStream = errors.New("not a stream URL")
)

// Status is the result of a single liveness probe. It is never persisted and
// is recomputed on every probe.
type Status int

const (
	StatusOffline Status = iota
	StatusOnline
)

func (s Status) String() string {
	if s == StatusOnline {
		return "online"
	}
	return "offline"
}

// Prober launches one external liveness probe against a stream URL.
//
// The boolean result reports whether the probe ran and found available
// formats. A non-nil error strictly means the probe process could not be
// launched at all; a probe that ran and reported failure is (false, nil).
type Prober interface {
	Probe(target string) (ok bool, err error)
}

// Stream represents one monitored stream endpoint: a validated absolute URL
// together with its provider classification. Immutable after construction.
type Stream struct {
	url  *url.URL
	kind Kind
}

// FromURL classifies the given URL and builds a Stream from it.
// URLs classified as KindOther are rejected with ErrNonStream.
// No network access is performed.
func FromURL(u *url.URL) (*Stream, error) {
	kind := Classify(u)
	if kind == KindOther {
		return nil, fmt.Errorf("%w: %s", ErrNonStream, u)
	}

	return &Stream{url: u, kind: kind}, nil
}

// FromString parses raw as an absolute URL and delegates to FromURL.
// Inputs that do not parse, or parse without a scheme and host, are rejected
// with ErrMalformed.
func FromString(raw string) (*Stream, error) {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrMalformed, raw)
	}

	return FromURL(u)
}

// Kind returns the provider classification computed at construction time.
func (s *Stream) Kind() Kind {
	return s.kind
}

// URL returns the parsed stream URL.
func (s *Stream) URL() *url.URL {
	return s.url
}

// Name derives the canonical display identifier from the URL path.
//
// Twitch uses the first path segment (/gogcom -> gogcom). Youtube uses the
// second segment when the first is literally "user" (/user/markiplierGAME ->
// markiplierGAME) and the first segment otherwise. None is returned only when
// the path yields no usable segment.
func (s *Stream) Name() mo.Option[string] {
	segments := strings.Split(strings.TrimPrefix(s.url.Path, "/"), "/")

	switch s.kind {
	case KindTwitch:
		return nonEmpty(segments[0])
	case KindYoutube:
		if segments[0] == "user" {
			if len(segments) < 2 {
				return mo.None[string]()
			}
			return nonEmpty(segments[1])
		}
		return nonEmpty(segments[0])
	default:
		return mo.None[string]()
	}
}

// Status runs one synchronous liveness probe through p.
// An exit-success probe maps to StatusOnline and any probe that ran but
// reported failure maps to StatusOffline. The returned error is non-nil only
// when the probe could not be launched.
func (s *Stream) Status(p Prober) (Status, error) {
	ok, err := p.Probe(s.url.String())
	if err != nil {
		return StatusOffline, fmt.Errorf("probe %s: %w", s.url, err)
	}

	if ok {
		return StatusOnline, nil
	}
	return StatusOffline, nil
}

// String returns the full URL string the Stream was constructed from.
func (s *Stream) String() string {
	return s.url.String()
}

func nonEmpty(segment string) mo.Option[string] {
	if segment == "" {
		return mo.None[string]()
	}
	return mo.Some(segment)
}
