package stdio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// PrefixWriter labels each line written through it, used to attribute
// subprocess output such as postbuild hooks.
type PrefixWriter struct {
	prefix string
	w      io.Writer
}

func NewPrefixWriter(w io.Writer, prefix string) *PrefixWriter {
	return &PrefixWriter{w: w, prefix: prefix}
}

func (w *PrefixWriter) Write(p []byte) (int, error) {
	s := bufio.NewScanner(bytes.NewReader(p))
	for s.Scan() {
		res := fmt.Sprintf("%12s |  %s\n", w.prefix, s.Text())
		if _, err := w.w.Write([]byte(res)); err != nil {
			return 0, err
		}
	}
	if err := s.Err(); err != nil {
		return 0, err
	}
	// io.Writer requires n == len(p) when err is nil, even though the
	// underlying writer receives extra prefix bytes.
	return len(p), nil
}
