package vigenere

import (
	"fmt"
	"strings"
)

// maskEntry records how one position of the original text is rebuilt: either
// a literal rune passed through untouched, or a slot consuming the next
// recovered alphabetic character with its original case reapplied.
type maskEntry struct {
	literal rune
	slot    bool
	upper   bool
}

type textMask []maskEntry

// normalize splits text into the upper-cased alphabetic stream the analyzers
// work on and a mask that restores the original layout afterwards. Only
// ASCII letters join the stream; everything else passes through the mask as
// a literal.
func normalize(text string) (string, textMask) {
	var alpha strings.Builder
	mask := make(textMask, 0, len(text))
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			alpha.WriteRune(r)
			mask = append(mask, maskEntry{slot: true, upper: true})
		case r >= 'a' && r <= 'z':
			alpha.WriteRune(r - 'a' + 'A')
			mask = append(mask, maskEntry{slot: true})
		default:
			mask = append(mask, maskEntry{literal: r})
		}
	}
	return alpha.String(), mask
}

// slots reports how many alphabetic characters the mask consumes.
func (m textMask) slots() int {
	n := 0
	for _, e := range m {
		if e.slot {
			n++
		}
	}
	return n
}

// apply re-interleaves an upper-case alphabetic stream through the mask,
// reapplying the original casing. The stream must supply exactly one
// character per slot.
func (m textMask) apply(alpha string) (string, error) {
	if len(alpha) != m.slots() {
		return "", fmt.Errorf("mask wants %d alphabetic characters, got %d", m.slots(), len(alpha))
	}
	var out strings.Builder
	out.Grow(len(m))
	next := 0
	for _, e := range m {
		if !e.slot {
			out.WriteRune(e.literal)
			continue
		}
		c := alpha[next]
		next++
		if !e.upper {
			c = c - 'A' + 'a'
		}
		out.WriteByte(c)
	}
	return out.String(), nil
}
