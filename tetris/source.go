package tetris

import (
	"math/rand/v2"
	"time"
)

// ShapeSource decides which shape the next spawned piece takes.
type ShapeSource interface {
	Next() Shape
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// UniformSource picks every shape with equal probability.
type UniformSource struct {
	rng *rand.Rand
}

// NewUniformSource creates a uniform source. A zero seed seeds from the clock.
func NewUniformSource(seed uint64) *UniformSource {
	return &UniformSource{rng: newRand(seed)}
}

func (s *UniformSource) Next() Shape {
	return Shape(s.rng.IntN(ShapeCount)) + Tower
}

// BagSource deals shapes from shuffled bags holding one of each shape, so no
// shape is ever more than twelve pieces away.
type BagSource struct {
	rng *rand.Rand
	bag []Shape
}

// NewBagSource creates a bag source. A zero seed seeds from the clock.
func NewBagSource(seed uint64) *BagSource {
	return &BagSource{rng: newRand(seed)}
}

func (s *BagSource) Next() Shape {
	if len(s.bag) == 0 {
		s.bag = Shapes()
		s.rng.Shuffle(len(s.bag), func(i, j int) {
			s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
		})
	}

	shape := s.bag[0]
	s.bag = s.bag[1:]
	return shape
}

// SequenceSource replays a fixed list of shapes, wrapping around at the end.
type SequenceSource struct {
	shapes []Shape
	next   int
}

// NewSequenceSource creates a source cycling through shapes. It panics when
// given no shapes or an unplayable one.
func NewSequenceSource(shapes ...Shape) *SequenceSource {
	if len(shapes) == 0 {
		panic("tetris: sequence source needs at least one shape")
	}
	for _, shape := range shapes {
		if !shape.Valid() {
			panic("tetris: invalid shape in sequence: " + shape.String())
		}
	}
	return &SequenceSource{shapes: append([]Shape(nil), shapes...)}
}

func (s *SequenceSource) Next() Shape {
	shape := s.shapes[s.next]
	s.next = (s.next + 1) % len(s.shapes)
	return shape
}
