package table

import (
	"strings"

	"github.com/vk/argrid/internal/textwidth"
)

// Wrap word-wraps text to the given display width. Existing line breaks are
// paragraph boundaries: each paragraph wraps independently and the resulting
// lines are rejoined with breakSeq. Words whose own display width exceeds the
// target are hard-split at the width boundary when cut is true, and emitted
// on a line of their own otherwise.
func Wrap(text string, width int, breakSeq string, cut bool) string {
	return strings.Join(WrapLines(text, width, cut), breakSeq)
}

// WrapLines is Wrap without the final join, for callers that lay lines out
// individually.
func WrapLines(text string, width int, cut bool) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(paragraph, width, cut)...)
	}
	return lines
}

// wrapParagraph greedily fills lines with whitespace-delimited words.
func wrapParagraph(paragraph string, width int, cut bool) []string {
	if width < 1 {
		width = 1
	}
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		// A blank paragraph stays a blank line.
		return []string{""}
	}

	var lines []string
	cur := ""
	for len(words) > 0 {
		word := words[0]
		words = words[1:]
		ww := textwidth.Width(word)

		if cur == "" {
			if ww <= width || !cut {
				if ww > width {
					// Oversized and uncuttable: a line of its own.
					lines = append(lines, word)
					continue
				}
				cur = word
				continue
			}
			head, tail := cutWord(word, width)
			lines = append(lines, head)
			words = append([]string{tail}, words...)
			continue
		}

		if textwidth.Width(cur)+1+ww <= width {
			cur += " " + word
			continue
		}
		lines = append(lines, cur)
		cur = ""
		words = append([]string{word}, words...)
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// cutWord splits word at the width-column boundary, cutting only between
// whole code points. SGR escape sequences pass through without consuming
// columns, so a colored word is cut at the same visible position as its
// plain form.
func cutWord(word string, width int) (head, tail string) {
	rs := []rune(word)
	w := 0
	i := 0
	for i < len(rs) {
		if rs[i] == 0x1b && i+1 < len(rs) && rs[i+1] == '[' {
			j := i + 2
			for j < len(rs) && (rs[j] == ';' || (rs[j] >= '0' && rs[j] <= '9')) {
				j++
			}
			if j < len(rs) && rs[j] == 'm' {
				i = j + 1
				continue
			}
		}
		if w == width {
			break
		}
		w++
		i++
	}
	return string(rs[:i]), string(rs[i:])
}
