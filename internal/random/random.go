// Package random implements the deterministic xorshift128 generator used for
// weight initialization, dropout masks and batch shuffling.
//
// A Rand is a plain value owned by its caller. There is no package-level
// generator: reproducibility comes from threading explicit seeds.
package random

import "math"

// Initial xorshift128 state. The seed is folded into x and y.
const (
	kx uint32 = 123456789
	ky uint32 = 362436069
	kz uint32 = 521288629
	kw uint32 = 88675123
)

// Rand is a xorshift128 pseudo-random generator.
//
// Example:
//
//	rng := random.New(42)
//	u := rng.Float64()     // [0, 1)
//	k := rng.Range(1, 6)   // dice roll
//	rng.ShuffleInts(order) // Fisher–Yates
type Rand struct {
	x, y, z, w uint32
}

// New creates a generator seeded with seed.
func New(seed uint32) *Rand {
	return &Rand{
		x: kx ^ seed,
		y: ky ^ seed,
		z: kz,
		w: kw,
	}
}

// Uint32 returns the next raw 32-bit value.
func (r *Rand) Uint32() uint32 {
	t := r.x ^ (r.x << 11)
	r.x, r.y, r.z = r.y, r.z, r.w
	r.w ^= (r.w >> 19) ^ t ^ (t >> 8)
	return r.w
}

// Float64 returns a value uniformly distributed in [0, 1).
func (r *Rand) Float64() float64 {
	return unit(r.Uint32())
}

// unit maps a raw draw onto [0, 1).
func unit(u uint32) float64 {
	return float64(u) / (float64(math.MaxUint32) + 1)
}

// Range returns an integer uniformly distributed in [a, b].
// Panics if b < a.
func (r *Rand) Range(a, b int) int {
	if b < a {
		panic("random: Range called with b < a")
	}
	m := uint32(b - a + 1) //nolint:gosec // G115: span checked above.
	return a + int(r.Uint32()%m)
}

// Shuffle permutes n elements with the Fisher–Yates algorithm, walking from
// the last element down. swap exchanges the elements at i and j.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(r.Uint32() % uint32(i+1)) //nolint:gosec // G115: i < n.
		swap(i, j)
	}
}

// ShuffleInts shuffles s in place.
func (r *Rand) ShuffleInts(s []int) {
	r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}

// ShuffleFloat64s shuffles s in place.
func (r *Rand) ShuffleFloat64s(s []float64) {
	r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
