package oracle

import "context"

// Oracle issues timestamps used to order distributed transactions. Values
// returned by a single Oracle are strictly increasing and never reused, even
// if the caller that fetched one goes away before seeing it.
type Oracle interface {
	FetchTimestamp(ctx context.Context) (uint64, error)
}
