package tetris

import "github.com/kamstrup/intmap"

// Stats counts what happened on a board since it was created.
type Stats struct {
	spawned *intmap.Map[Shape, int]

	// Locked is the number of pieces committed to the grid.
	Locked int
	// Rows is the number of cleared rows.
	Rows int
}

func newStats() *Stats {
	return &Stats{spawned: intmap.New[Shape, int](ShapeCount)}
}

func (s *Stats) recordSpawn(shape Shape) {
	count, _ := s.spawned.Get(shape)
	s.spawned.Put(shape, count+1)
}

// Spawned returns how many pieces of the given shape were spawned.
func (s *Stats) Spawned(shape Shape) int {
	count, _ := s.spawned.Get(shape)
	return count
}

// TotalSpawned returns the number of pieces spawned across all shapes.
func (s *Stats) TotalSpawned() int {
	total := 0
	for _, shape := range Shapes() {
		total += s.Spawned(shape)
	}
	return total
}

// Clone returns an independent copy.
func (s *Stats) Clone() *Stats {
	clone := newStats()
	for _, shape := range Shapes() {
		if count, ok := s.spawned.Get(shape); ok {
			clone.spawned.Put(shape, count)
		}
	}
	clone.Locked = s.Locked
	clone.Rows = s.Rows
	return clone
}
