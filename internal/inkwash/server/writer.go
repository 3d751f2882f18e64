package server

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/rs/zerolog/log"
)

// frameWriter drains the reply queue onto the output stream, one JSON
// document per line, flushed per message. A reply that cannot be marshaled
// is logged and dropped. A write failure is fatal to the writer only; the
// other stages keep running and replies accumulate in the queue.
type frameWriter struct {
	out   io.Writer
	queue *outQueue
}

func (w *frameWriter) run() {
	bw := bufio.NewWriter(w.out)

	for {
		msg, ok := w.queue.Receive()
		if !ok {
			log.Debug().Msg("frame writer finished (queue closed)")
			return
		}

		b, err := json.Marshal(msg)
		if err != nil {
			log.Error().Err(err).Msg("failed to serialize reply")
			continue
		}

		if _, err := bw.Write(b); err != nil {
			log.Error().Err(err).Msg("failed to write to output stream")
			return
		}
		if err := bw.WriteByte('\n'); err != nil {
			log.Error().Err(err).Msg("failed to write line terminator")
			return
		}
		if err := bw.Flush(); err != nil {
			log.Error().Err(err).Msg("failed to flush output stream")
			return
		}
	}
}
