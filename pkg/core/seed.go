package core

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed draws a non-zero seed from crypto/rand. Zero is reserved by callers
// to mean "use the configured seed".
func NewSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		if seed := int64(binary.LittleEndian.Uint64(b[:])); seed != 0 {
			return seed, nil
		}
	}
}
