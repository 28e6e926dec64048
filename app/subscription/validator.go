package subscription

import (
	"context"
	"net/url"

	"feedgram/app/feed"
)

// Validator checks that a string is URL-shaped and that the URL serves a
// real feed document. The two steps are independent: the syntactic check
// never performs network I/O.
type Validator struct {
	reader     feed.Reader
	normalizer *feed.Normalizer
}

// NewValidator creates a validator backed by the given feed reader
func NewValidator(reader feed.Reader, normalizer *feed.Normalizer) *Validator {
	return &Validator{reader: reader, normalizer: normalizer}
}

// Validate returns ErrInvalidRSSURL for a syntactically invalid URL and
// ErrURLIsNotRSS when the URL does not serve a feed that normalizes cleanly.
// The normalized feed is discarded; repeated validation re-fetches.
func (v *Validator) Validate(ctx context.Context, rawURL string) error {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return ErrInvalidRSSURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidRSSURL
	}

	raw, err := v.reader.Fetch(ctx, rawURL)
	if err != nil {
		return ErrURLIsNotRSS
	}
	if _, err := v.normalizer.Run(raw); err != nil {
		return ErrURLIsNotRSS
	}

	return nil
}
