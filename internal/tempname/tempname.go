// Package tempname derives short, hash-based suffixes for the
// temporary working files fsop's copy primitives write to before the
// final rename into place. It is deliberately not used for content
// integrity verification — that remains outside this module's scope —
// only for picking a working-file name. The suffix depends only on the
// destination and a counter, so the same (dst, counter) pair always
// yields the same suffix.
package tempname

import (
	"encoding/hex"
	"strconv"

	"github.com/zeebo/blake3"
)

// Suffix derives an 8-character hex suffix from dst and counter. The
// counter lets a single call site get distinct suffixes across
// retries without reaching for time.Now, which would make behavior
// non-deterministic in tests.
func Suffix(dst string, counter uint64) string {
	h := blake3.New()
	h.Write([]byte(dst))
	h.Write([]byte(strconv.FormatUint(counter, 10)))

	sum := h.Sum(nil)

	return hex.EncodeToString(sum[:4])
}
