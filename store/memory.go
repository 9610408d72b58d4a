package store

import "slices"

// MemoryKV is a map-backed store that forgets everything on exit.
type MemoryKV struct {
	values map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string][]byte)}
}

func (s *MemoryKV) Get(key string) ([]byte, bool, error) {
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}

	return slices.Clone(v), true, nil
}

func (s *MemoryKV) Set(key string, value []byte) error {
	s.values[key] = slices.Clone(value)

	return nil
}

func (s *MemoryKV) Close() error {
	return nil
}
