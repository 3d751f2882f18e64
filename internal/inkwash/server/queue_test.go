package server

import (
	"sync"
	"testing"

	"github.com/inkwash/inkwash/internal/mcp"
)

func TestOutQueueNeverBlocksProducer(t *testing.T) {
	q := newOutQueue()
	// No consumer attached. If Send could block, this would wedge here.
	for i := 0; i < 10000; i++ {
		if !q.Send(mcp.NewResponse(int64(i), mcp.M{})) {
			t.Fatalf("Send() reported closed at %d", i)
		}
	}
	if q.Len() != 10000 {
		t.Errorf("Len() = %d, want 10000", q.Len())
	}
}

func TestOutQueueFIFOAndDrainOnClose(t *testing.T) {
	q := newOutQueue()
	for i := 0; i < 3; i++ {
		q.Send(mcp.NewResponse(int64(i), mcp.M{}))
	}
	q.Close()

	for i := 0; i < 3; i++ {
		msg, ok := q.Receive()
		if !ok {
			t.Fatalf("Receive() closed before backlog drained, at %d", i)
		}
		if msg.ID.(int64) != int64(i) {
			t.Errorf("Receive() order: got id %v, want %d", msg.ID, i)
		}
	}

	if _, ok := q.Receive(); ok {
		t.Errorf("Receive() should report closed after drain")
	}
}

func TestOutQueueSendAfterClose(t *testing.T) {
	q := newOutQueue()
	q.Close()
	if q.Send(mcp.NewResponse(int64(1), mcp.M{})) {
		t.Errorf("Send() after Close should report false")
	}
	q.Close() // idempotent
}

func TestOutQueueConcurrent(t *testing.T) {
	q := newOutQueue()
	const n = 1000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			q.Send(mcp.NewResponse(int64(i), mcp.M{}))
		}
		q.Close()
	}()

	got := 0
	for {
		_, ok := q.Receive()
		if !ok {
			break
		}
		got++
	}
	wg.Wait()

	if got != n {
		t.Errorf("received %d messages, want %d", got, n)
	}
}
