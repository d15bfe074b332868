package libdiff

import (
	"strings"

	"github.com/signadot/rvalue/value"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Edit struct {
	Op   Op
	Text string
}

// Diff describes how to turn From into To. Edits run over the text forms
// of the values, so non UTF-8 bytes are diffed as their hex dumps.
type Diff struct {
	From, To value.Value
	Edits    []Edit
}

// DiffValues returns nil if from and to are Equal.
func DiffValues(from, to value.Value) *Diff {
	if value.Equal(from, to) {
		return nil
	}
	res := &Diff{From: from, To: to}
	fromText, toText := from.String(), to.String()
	if fromText == toText {
		// Null against empty text
		return res
	}
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(fromText, "\n") && strings.Contains(toText, "\n")
	diffs := diffCfg.DiffCleanupSemantic(diffCfg.DiffMain(fromText, toText, doMultiLine))
	res.Edits = make([]Edit, 0, len(diffs))
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			res.Edits = append(res.Edits, Edit{Op: InsertOp, Text: diff.Text})
		case diffpatch.DiffDelete:
			res.Edits = append(res.Edits, Edit{Op: DeleteOp, Text: diff.Text})
		case diffpatch.DiffEqual:
			res.Edits = append(res.Edits, Edit{Op: EqualOp, Text: diff.Text})
		}
	}
	return res
}

func (d *Diff) KindChanged() bool {
	return d.From.Kind() != d.To.Kind()
}

// String renders d with deletions as [-text-] and insertions as {+text+},
// preceded by the kind change if there is one.
func (d *Diff) String() string {
	b := &strings.Builder{}
	if d.KindChanged() {
		b.WriteString(d.From.Kind().String() + " -> " + d.To.Kind().String() + ": ")
	}
	for _, e := range d.Edits {
		switch e.Op {
		case EqualOp:
			b.WriteString(e.Text)
		case DeleteOp:
			b.WriteString("[-" + e.Text + "-]")
		case InsertOp:
			b.WriteString("{+" + e.Text + "+}")
		}
	}
	return b.String()
}
