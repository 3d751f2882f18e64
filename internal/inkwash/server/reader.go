package server

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/inkwash/inkwash/internal/mcp"
)

// MaxLineBytes caps a single wire line. Tool arguments are file paths, so
// anything near this size is garbage, not traffic.
const MaxLineBytes = 4 * 1024 * 1024

var errLineTooLong = errors.New("line exceeds max length")

// frameReader turns the byte stream into parsed messages on the inbound
// channel. A malformed or oversized line is logged and skipped; it never
// stops the stream. The channel is closed on EOF or read error so the
// dispatcher drains and exits.
type frameReader struct {
	in      io.Reader
	inbound chan<- *mcp.Message
}

func (r *frameReader) run() {
	defer close(r.inbound)

	br := bufio.NewReaderSize(r.in, 64*1024)
	for {
		line, err := readLine(br)
		if err == errLineTooLong {
			log.Error().Int("limit", MaxLineBytes).Msg("oversized line dropped")
			continue
		}

		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			msg, perr := mcp.ParseMessage(line)
			if perr != nil {
				log.Error().Err(perr).Msg("failed to parse inbound message")
			} else {
				// Backpressure: blocks while the inbound queue is full.
				r.inbound <- msg
			}
		}

		if err != nil {
			if err != io.EOF {
				log.Error().Err(err).Msg("input stream read failed")
			}
			break
		}
	}

	log.Debug().Msg("frame reader finished (EOF)")
}

// readLine returns the next newline-terminated line, or the final
// unterminated line together with io.EOF. A line over MaxLineBytes is
// discarded through its terminating newline and reported as errLineTooLong
// so the caller keeps reading.
func readLine(br *bufio.Reader) ([]byte, error) {
	var line []byte
	for {
		chunk, err := br.ReadSlice('\n')
		line = append(line, chunk...)
		if len(line) > MaxLineBytes {
			for err == bufio.ErrBufferFull {
				_, err = br.ReadSlice('\n')
			}
			if err != nil && err != io.EOF {
				return nil, err
			}
			return nil, errLineTooLong
		}
		if err != bufio.ErrBufferFull {
			return line, err
		}
	}
}
