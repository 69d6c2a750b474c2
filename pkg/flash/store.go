package flash

import "context"

// Store persists flashed payloads between request cycles. A store behaves as
// a single-slot register per key: Flash overwrites whatever was previously
// stored, and the value becomes readable starting the next cycle. Get is
// read-once; a payload already consumed this cycle is not returned again.
//
// The engine treats both calls as atomic black boxes. Store failures are not
// retried; Get failures during bag construction are logged and treated as
// "no flashed messages".
type Store interface {
	// Get retrieves and consumes the payload flashed for key during the
	// previous cycle. It returns ErrNoFlashData when nothing was flashed.
	Get(ctx context.Context, key string) (string, error)

	// Flash stores the payload for key, to be visible starting next cycle,
	// overwriting any prior value for that key.
	Flash(ctx context.Context, key, value string) error
}
