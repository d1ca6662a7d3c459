package rng

// Scripted is a Source that replays fixed draws. Each IntN call consumes the
// next entry of Ints (reduced modulo n); each Float64 call consumes the next
// entry of Floats. When a script runs out it wraps around. Shuffle is the
// identity permutation.
//
// It is intended for tests that need to pin a generator's choices.
type Scripted struct {
	Ints   []int
	Floats []float64

	ni, nf int
}

// IntN implements Source.
func (s *Scripted) IntN(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to IntN")
	}
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.ni%len(s.Ints)]
	s.ni++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Float64 implements Source.
func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.nf%len(s.Floats)]
	s.nf++
	return v
}

// Shuffle implements Source and leaves the order unchanged.
func (s *Scripted) Shuffle(n int, swap func(i, j int)) {}

var _ Source = (*Scripted)(nil)
