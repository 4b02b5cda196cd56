package source

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultMaxLines is the number of input lines read before the rest is dropped.
const DefaultMaxLines = 100

// ReadResult holds the raw lines read from the input stream.
type ReadResult struct {
	Lines     []string
	Truncated bool // more than MaxLines lines were available
}

// ReadLines reads up to maxLines lines from r. A maxLines of zero or less
// means DefaultMaxLines. Remaining input is left unread.
func ReadLines(r io.Reader, maxLines int) (ReadResult, error) {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}

	var res ReadResult
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if len(res.Lines) == maxLines {
			res.Truncated = true
			break
		}
		res.Lines = append(res.Lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("reading input: %w", err)
	}
	return res, nil
}
