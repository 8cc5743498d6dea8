package notification

import (
	"context"
	"sync"
)

type TestDispatcher struct {
	Sent   []Payload
	Result bool
	Panic  interface{}
	lock   sync.Mutex
}

func NewTestDispatcher(result bool) *TestDispatcher {
	return &TestDispatcher{Result: result}
}

func (d *TestDispatcher) Send(ctx context.Context, payload Payload) bool {
	d.lock.Lock()
	d.Sent = append(d.Sent, payload)
	d.lock.Unlock()
	if d.Panic != nil {
		panic(d.Panic)
	}
	return d.Result
}

func (d *TestDispatcher) SentCount() int {
	d.lock.Lock()
	defer d.lock.Unlock()
	return len(d.Sent)
}
