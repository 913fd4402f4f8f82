package util

import (
	"io"
	"sync"
)

// CopyBufferSize is the size of buffers handed out by CopyPool.
const CopyBufferSize = 64 * KiB

// CopyPool provides reusable buffers for streaming file content into upload
// bodies. Buffers are zeroed before they go back to the pool since they may
// have held plaintext.
var CopyPool = sync.Pool{
	New: func() any {
		b := make([]byte, CopyBufferSize)
		return &b
	},
}

// Copy streams src into dst using a pooled buffer.
func Copy(dst io.Writer, src io.Reader) (int64, error) {
	bp := CopyPool.Get().(*[]byte)
	defer func() {
		clear(*bp)
		CopyPool.Put(bp)
	}()
	return io.CopyBuffer(dst, src, *bp)
}
