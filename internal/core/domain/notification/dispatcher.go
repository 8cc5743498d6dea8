package notification

import "context"

// Dispatcher delivers a payload to the push gateway. Failures are logged by
// the implementation and reported as false, Send never returns an error.
type Dispatcher interface {
	Send(ctx context.Context, payload Payload) bool
}
