package pkguid

// StringID generates unique string identifiers.
type StringID interface {
	// Generate returns a new identifier. Implementations must be safe for
	// concurrent use.
	Generate() string
}

// NumberID generates unique numeric identifiers.
type NumberID interface {
	// Generate returns a new identifier as an int64.
	Generate() int64
}

var (
	_ StringID = (*UUID)(nil)
	_ StringID = (*RandomUUID)(nil)
	_ NumberID = (*Snowflake)(nil)
)
