package launcher

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
)

const (
	// maxOutputBufferSize caps each collected stream. Reading continues past
	// the limit but the buffer stops growing.
	maxOutputBufferSize = 10 * 1024 * 1024 // 10MB

	// maxLineSize caps the line handed to a line callback; longer lines are cut.
	maxLineSize = 1024 * 1024 // 1MB

	// readChunkSize is the reader buffer; lines longer than this arrive in pieces.
	readChunkSize = 64 * 1024
)

// outputBuffer collects one stream of child output.
type outputBuffer struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (b *outputBuffer) write(p []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if remaining := maxOutputBufferSize - b.buf.Len(); remaining > 0 {
		if len(p) > remaining {
			p = p[:remaining]
		}

		b.buf.Write(p)
	}
}

// String returns the collected output.
func (b *outputBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

// drain reads r until EOF, collecting it into buf and handing each line to onLine.
// Memory stays bounded by the buffer cap plus one capped line.
func drain(r io.Reader, buf *outputBuffer, onLine func(string)) error {
	reader := bufio.NewReaderSize(r, readChunkSize)

	var line []byte

	for {
		chunk, err := reader.ReadSlice('\n')
		if len(chunk) > 0 {
			buf.write(chunk)

			if onLine != nil {
				if room := maxLineSize - len(line); room > 0 {
					line = append(line, chunk[:min(len(chunk), room)]...)
				}
			}
		}

		// A line longer than the reader buffer; keep reading it
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		if onLine != nil && len(line) > 0 {
			onLine(strings.TrimRight(string(line), "\r\n"))
			line = line[:0]
		}

		if err != nil {
			// The pipe is closed by Wait once the child exits
			if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
				return nil
			}

			return err
		}
	}
}
