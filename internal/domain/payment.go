package domain

import "context"

// ValueTransfer pays an amount to an identity. The transfer is atomic: it
// either fully succeeds or fails with no partial effect. Failures are a
// first-class outcome; the ledger never retries a transfer.
type ValueTransfer interface {
	Transfer(ctx context.Context, to string, amount int64) error
}
