// Package memzero wipes sensitive buffers.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros. This is best-effort: the copy goes through
// crypto/subtle and b is kept alive past it so the write is not elided.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	runtime.KeepAlive(b)
}
