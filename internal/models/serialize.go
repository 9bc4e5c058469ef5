package models

// omitSet is an explicit per-call exclusion list of relationship names to
// skip when serializing an entity.
type omitSet map[string]struct{}

func newOmitSet(names []string) omitSet {
	s := make(omitSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s omitSet) has(name string) bool {
	_, ok := s[name]
	return ok
}
