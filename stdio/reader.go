package stdio

import (
	"bufio"
	"io"
	"strings"
)

// LineReader pulls newline delimited lines without a length limit.
type LineReader struct {
	reader *bufio.Reader
}

// NewLineReader creates a line reader over in.
func NewLineReader(in io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReaderSize(in, 64*1024)}
}

// Next returns the next line without its terminator, or io.EOF.
// A final line without a terminator is still returned.
func (r *LineReader) Next() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
