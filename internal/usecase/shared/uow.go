package shared

import "context"

type UnitOfWork interface {
	// Within runs fn in a serializable transaction, retrying on serialization failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingStore
	Idempotency() IdempotencyStore
}
