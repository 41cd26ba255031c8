package sortedvec

import (
	"encoding/binary"

	"gopkg.in/gholt/brimutil.v1"
)

// random returns a deterministic generator of ints in [0, n).
func random(seed int64) func(n int) int {
	src := brimutil.NewSeededScrambled(seed)
	var buf [8]byte
	return func(n int) int {
		src.Read(buf[:])
		return int(binary.LittleEndian.Uint64(buf[:]) % uint64(n))
	}
}

var testSizes = []int{0, 1, 2, 3, 4, 5, 10, 100, 1000}
