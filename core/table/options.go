package table

// DefaultDelimiter is the sentinel that marks computed column boundaries.
// U+2063 INVISIBLE SEPARATOR does not show up in ordinary terminal output.
const DefaultDelimiter = '\u2063'

// Kind classifies a recoverable irregularity seen while parsing.
type Kind string

const (
	// KindAlignmentDrift means a sparse boundary scan ran back to the
	// start of the line without finding whitespace.
	KindAlignmentDrift Kind = "alignment_drift"

	// KindInsufficientColumns means a simple-table line had fewer tokens
	// than the header has columns.
	KindInsufficientColumns Kind = "insufficient_columns"
)

// Irregularity describes degraded input that was absorbed into the output.
// Irregularities are never returned as errors.
type Irregularity struct {
	Kind Kind
	// Line is the zero-based index of the data line (the header excluded).
	Line int
	// Column is the affected column name.
	Column string
}

// options holds per-call parser settings.
type options struct {
	delim    rune
	observer func(Irregularity)
}

// Option configures a single parse call.
type Option func(*options)

// WithDelimiter overrides the sentinel used by the sparse parser. Use it
// when the input may contain DefaultDelimiter.
func WithDelimiter(r rune) Option {
	return func(o *options) {
		o.delim = r
	}
}

// WithObserver registers fn to be called for every irregularity.
func WithObserver(fn func(Irregularity)) Option {
	return func(o *options) {
		o.observer = fn
	}
}

func buildOptions(opts []Option) options {
	o := options{delim: DefaultDelimiter}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) report(ir Irregularity) {
	if o.observer != nil {
		o.observer(ir)
	}
}
