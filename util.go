package hctree

import (
	"fmt"
	"io"
)

// truncated converts an end-of-stream condition hit in the middle of a
// structure into a corruption error.  Any other error is returned as is.
func truncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: %w", ErrCorrupt, io.ErrUnexpectedEOF)
	}
	return err
}

func corruptf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrCorrupt}, args...)...)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
