package ports

import "time"

// Clock supplies the current instant to the ledger. It is injected so that
// timestamps are reproducible in tests.
type Clock interface {
	Now() time.Time
}
