// Package server implements the line-delimited JSON-RPC pipeline: a frame
// reader, a serialized dispatcher, and a frame writer connected by a bounded
// inbound queue and an unbounded reply queue.
package server

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/inkwash/inkwash/internal/inkwash/tools"
	"github.com/inkwash/inkwash/internal/mcp"
)

const DefaultInboundCap = 128

// Options wires a Server. In and Out default to the process streams at the
// call site; tests pass pipes.
type Options struct {
	In         io.Reader
	Out        io.Writer
	Invoker    tools.Invoker
	Identity   Identity
	InboundCap int
}

type Server struct {
	opts Options
}

func New(opts Options) *Server {
	if opts.InboundCap <= 0 {
		opts.InboundCap = DefaultInboundCap
	}
	return &Server{opts: opts}
}

// Run starts the three stages and blocks until all of them finish. The
// normal termination path is EOF on the input stream: the reader closes the
// inbound queue, the dispatcher drains it and closes the reply queue, the
// writer drains that and stops. Run never fails a request into a process
// exit; it returns nil on a clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	inbound := make(chan *mcp.Message, s.opts.InboundCap)
	outbound := newOutQueue()

	reader := &frameReader{in: s.opts.In, inbound: inbound}
	processor := newMessageProcessor(outbound, s.opts.Invoker, s.opts.Identity)
	writer := &frameWriter{out: s.opts.Out, queue: outbound}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		reader.run()
	}()
	go func() {
		defer wg.Done()
		processor.run(ctx, inbound)
	}()
	go func() {
		defer wg.Done()
		writer.run()
	}()

	wg.Wait()
	log.Info().Msg("server stopped")
	return nil
}
