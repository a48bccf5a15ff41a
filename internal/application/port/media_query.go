package port

// Reporter receives the serialized preference state.
// Panics raised by a Reporter are not recovered.
type Reporter func(report string)

// MediaQueryList is a live view of one condition query.
type MediaQueryList interface {
	// Media returns the canonical form of the query, or "not all" if it
	// could not be parsed.
	Media() string

	// Matches reports whether the condition currently holds.
	Matches() bool

	// AddChangeListener registers fn to run whenever Matches() flips.
	// The returned function unregisters it and is safe to call twice.
	AddChangeListener(fn func()) (remove func())
}

// MediaEnvironment is the host capability the tracker observes.
type MediaEnvironment interface {
	// Supported reports whether condition queries can be evaluated.
	Supported() bool

	// MatchMedia returns a list for the given query string.
	MatchMedia(query string) MediaQueryList
}
