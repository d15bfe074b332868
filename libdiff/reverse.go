package libdiff

// Reverse returns the diff turning d.To back into d.From.
func Reverse(d *Diff) *Diff {
	if d == nil {
		return nil
	}
	res := &Diff{From: d.To, To: d.From}
	if d.Edits == nil {
		return res
	}
	res.Edits = make([]Edit, len(d.Edits))
	for i, e := range d.Edits {
		switch e.Op {
		case DeleteOp:
			e.Op = InsertOp
		case InsertOp:
			e.Op = DeleteOp
		}
		res.Edits[i] = e
	}
	return res
}
