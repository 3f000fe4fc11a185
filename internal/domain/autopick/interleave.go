package autopick

// Interleave deterministically mixes previously-purchased ("seen") and
// never-purchased ("unseen") candidates at the given unseen share,
// preserving relative rank order inside each partition.
//
// The debt owed to the unseen partition starts at the share and grows by
// it for every seen emission; whenever a whole unseen emission is owed the
// next unseen candidate is emitted. The debt is derived from emission
// counts on each step rather than accumulated, so repeated float addition
// cannot erode the threshold (0.1 summed ten times stays below 1). Unseen
// items therefore surface once every 1/share positions without starving
// either partition. A non-positive share returns the ranked sequence
// unchanged.
func Interleave(ranked []Candidate, unseenShare float64) []Candidate {
	if unseenShare <= 0 {
		return ranked
	}

	var seen, unseen []Candidate
	for _, c := range ranked {
		if c.Seen {
			seen = append(seen, c)
		} else {
			unseen = append(unseen, c)
		}
	}

	out := make([]Candidate, 0, len(ranked))
	seenEmitted, unseenEmitted := 0, 0
	for len(seen) > 0 || len(unseen) > 0 {
		owed := float64(seenEmitted+1)*unseenShare >= float64(unseenEmitted+1)
		switch {
		case len(unseen) > 0 && owed:
			out = append(out, unseen[0])
			unseen = unseen[1:]
			unseenEmitted++
		case len(seen) > 0:
			out = append(out, seen[0])
			seen = seen[1:]
			seenEmitted++
		default:
			out = append(out, unseen...)
			unseen = nil
		}
	}
	return out
}
