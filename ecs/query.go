package ecs

// intersect returns the ids present in every set, in the order of the first.
func intersect(sets []store) []entityID {
	if len(sets) == 0 {
		return nil
	}
	out := make([]entityID, 0, sets[0].size())
	for _, id := range sets[0].ids() {
		inAll := true
		for _, s := range sets[1:] {
			if !s.has(id) {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, id)
		}
	}
	return out
}
