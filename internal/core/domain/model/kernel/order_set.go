package kernel

import "slices"

// OrderSet is the set of order ids an aggregate references. Membership is what the
// back-reference invariants are stated over; insertion order is kept for stable output.
type OrderSet struct {
	ids []UUID
}

func NewOrderSet(ids ...UUID) OrderSet {
	s := OrderSet{}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id and reports whether the set changed.
func (s *OrderSet) Add(id UUID) bool {
	if s.Contains(id) {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Remove deletes id and reports whether the set changed.
func (s *OrderSet) Remove(id UUID) bool {
	i := slices.IndexFunc(s.ids, id.IsEqual)
	if i < 0 {
		return false
	}
	s.ids = slices.Delete(s.ids, i, i+1)
	return true
}

func (s OrderSet) Contains(id UUID) bool {
	return slices.ContainsFunc(s.ids, id.IsEqual)
}

func (s OrderSet) Len() int {
	return len(s.ids)
}

func (s OrderSet) IDs() []UUID {
	return slices.Clone(s.ids)
}

// Strings returns the ids in their canonical textual form.
func (s OrderSet) Strings() []string {
	out := make([]string, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, id.String())
	}
	return out
}
