package format

// AssembleHeader linearizes an ordered run of header fragments (qualifiers,
// keyword, identifier) into one rendered header. Empty fragments are dropped
// first. The remainder folds left to right through the merger, so qualifiers
// and name land on a single line except where a gap carries a comment, which
// forces a break at that point only. A gap the merger cannot classify falls
// back to a plain space join; the failure never leaves this function.
func AssembleHeader(m Merger, shape Shape, fragments []Fragment) string {
	shape = shape.Infinite()

	kept := fragments[:0:0]
	for _, f := range fragments {
		if f.Text != "" {
			kept = append(kept, f)
		}
	}
	if len(kept) == 0 {
		return ""
	}

	result := kept[0].Text
	pos := kept[0].Origin
	for _, part := range kept[1:] {
		gap := pos.Between(part.Origin)
		merged, err := m.Combine(result, part.Text, gap, shape, true)
		if err != nil {
			merged = result + " " + part.Text
		}
		result = merged
		pos = part.Origin
	}
	return result
}
