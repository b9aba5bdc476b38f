package stdio

import (
	"io"
	"sync"
)

// Writer serializes complete lines onto a shared output stream.
type Writer struct {
	out io.Writer
	mux sync.Mutex
}

// NewWriter creates a line writer over out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WriteLine writes line followed by a newline as one write.
func (w *Writer) WriteLine(line []byte) error {
	buffer := make([]byte, 0, len(line)+1)
	buffer = append(buffer, line...)
	buffer = append(buffer, '\n')
	w.mux.Lock()
	defer w.mux.Unlock()
	_, err := w.out.Write(buffer)
	return err
}
