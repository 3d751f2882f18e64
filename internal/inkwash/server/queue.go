package server

import (
	"sync"

	"github.com/inkwash/inkwash/internal/mcp"
)

// outQueue is the unbounded reply queue between the dispatcher and the
// frame writer. Send never blocks: if the writer dies, replies pile up here
// instead of wedging the dispatcher.
type outQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []*mcp.Response
	closed bool
}

func newOutQueue() *outQueue {
	q := &outQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Send enqueues a reply. It reports false once the queue is closed, which
// tells the producer to shut down.
func (q *outQueue) Send(msg *mcp.Response) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.items = append(q.items, msg)
	q.cond.Signal()
	return true
}

// Receive blocks until a reply is available or the queue is closed and
// drained. The second result is false only on closed-and-drained.
func (q *outQueue) Receive() (*mcp.Response, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.items) == 0 {
		return nil, false
	}
	msg := q.items[0]
	q.items = q.items[1:]
	return msg, true
}

// Close stops the queue. Pending replies are still delivered to Receive.
func (q *outQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.cond.Broadcast()
}

// Len reports the backlog size.
func (q *outQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
