package pkglog

import "context"

// MissingCorrelationID is returned by GetCorrelationID when ctx carries none.
const MissingCorrelationID = "[invalid_chain_id]"

type correlationIDKey struct{}

// CorrelationID returns the correlation ID stored in ctx by the router.
func CorrelationID(ctx context.Context) (string, bool) {
	cid, ok := ctx.Value(correlationIDKey{}).(string)
	return cid, ok && cid != ""
}

// GetCorrelationID is CorrelationID for places that always need a printable
// value, such as outgoing headers.
func GetCorrelationID(ctx context.Context) string {
	if cid, ok := CorrelationID(ctx); ok {
		return cid
	}
	return MissingCorrelationID
}

func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cid)
}
