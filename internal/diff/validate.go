package diff

import (
	"fmt"
	"strings"
)

// validate checks the Diff invariants and returns an error on the first violation.
func (d Diff) validate() error {
	var oldConcat, newConcat strings.Builder
	for hi, h := range d.Hunks {
		if err := checkOp(h.Op, h.OldText, h.NewText); err != nil {
			return fmt.Errorf("hunk[%d]: %w", hi, err)
		}
		oldConcat.WriteString(h.OldText)
		newConcat.WriteString(h.NewText)

		if h.Op == OpEqual {
			if h.Lines != nil {
				return fmt.Errorf("hunk[%d]: OpEqual requires Lines==nil", hi)
			}
			continue
		}

		var oldLines, newLines strings.Builder
		for li, ln := range h.Lines {
			if err := ln.validate(); err != nil {
				return fmt.Errorf("hunk[%d].line[%d]: %w", hi, li, err)
			}
			oldLines.WriteString(ln.OldText)
			newLines.WriteString(ln.NewText)
		}

		if h.OldText != oldLines.String() {
			return fmt.Errorf("hunk[%d]: lines do not reconstruct OldText", hi)
		}
		if h.NewText != newLines.String() {
			return fmt.Errorf("hunk[%d]: lines do not reconstruct NewText", hi)
		}
	}

	if d.OldText != oldConcat.String() {
		return fmt.Errorf("diff: hunks do not reconstruct OldText")
	}
	if d.NewText != newConcat.String() {
		return fmt.Errorf("diff: hunks do not reconstruct NewText")
	}
	return nil
}

func (ln DiffLine) validate() error {
	if err := checkOp(ln.Op, ln.OldText, ln.NewText); err != nil {
		return err
	}
	if ln.Op == OpEqual {
		if ln.Spans != nil {
			return fmt.Errorf("OpEqual requires Spans==nil")
		}
		return nil
	}

	var sOld, sNew strings.Builder
	for si, sp := range ln.Spans {
		if strings.Contains(sp.OldText, defaultEOL) || strings.Contains(sp.NewText, defaultEOL) {
			return fmt.Errorf("span[%d]: contains EOL", si)
		}
		if err := checkOp(sp.Op, sp.OldText, sp.NewText); err != nil {
			return fmt.Errorf("span[%d]: %w", si, err)
		}
		if sp.Op == OpEqual && sp.Ignored {
			return fmt.Errorf("span[%d]: OpEqual cannot be Ignored", si)
		}
		sOld.WriteString(sp.OldText)
		sNew.WriteString(sp.NewText)
	}

	oldCore, _ := trimEOL(ln.OldText, defaultEOL)
	newCore, _ := trimEOL(ln.NewText, defaultEOL)
	if oldCore != sOld.String() {
		return fmt.Errorf("spans do not reconstruct OldText")
	}
	if newCore != sNew.String() {
		return fmt.Errorf("spans do not reconstruct NewText")
	}
	return nil
}

// checkOp checks that op describes the change from oldText to newText.
func checkOp(op Op, oldText, newText string) error {
	switch op {
	case OpEqual:
		if oldText != newText {
			return fmt.Errorf("OpEqual requires OldText==NewText")
		}
	case OpInsert:
		if oldText != "" || newText == "" {
			return fmt.Errorf("OpInsert requires OldText==\"\" and NewText!=\"\"")
		}
	case OpDelete:
		if oldText == "" || newText != "" {
			return fmt.Errorf("OpDelete requires OldText!=\"\" and NewText==\"\"")
		}
	case OpReplace:
		if oldText == "" || newText == "" {
			return fmt.Errorf("OpReplace requires OldText!=\"\" and NewText!=\"\"")
		}
	default:
		return fmt.Errorf("unknown op %d", op)
	}
	return nil
}
