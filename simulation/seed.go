package simulation

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random run seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// GameSeeds derives one seed per game from the run seed. All seeds are drawn
// up front so the assignment does not depend on execution order.
func GameSeeds(seed int64, numGames int) []int64 {
	rng := rand.New(rand.NewSource(seed))
	seeds := make([]int64, numGames)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}
	return seeds
}
