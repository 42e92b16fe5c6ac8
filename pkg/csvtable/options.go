package csvtable

import (
	"golang.org/x/text/encoding"
)

// Option configures how csv sources are read.
type Option func(*options)

type options struct {
	comma            rune
	lazyQuotes       bool
	trimLeadingSpace bool
	encoding         encoding.Encoding
}

func defaultOptions() options {
	return options{comma: ','}
}

// WithComma sets the field delimiter.
func WithComma(r rune) Option {
	return func(o *options) { o.comma = r }
}

// WithLazyQuotes tolerates bare quotes inside unquoted fields, which shows
// up constantly in hand-exported feeds.
func WithLazyQuotes() Option {
	return func(o *options) { o.lazyQuotes = true }
}

// WithTrimLeadingSpace strips leading whitespace from each field.
func WithTrimLeadingSpace() Option {
	return func(o *options) { o.trimLeadingSpace = true }
}

// WithEncoding decodes the source through the given character encoding
// before csv parsing. Useful for legacy exports (e.g. Windows-1250).
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *options) { o.encoding = enc }
}
