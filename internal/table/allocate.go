package table

import (
	"github.com/vk/argrid/internal/textwidth"
)

// Allocate computes a concrete width for every column so that the widths plus
// one border between each pair of adjacent columns add up to exactly total.
//
// Fixed columns consume their width first. Percentage columns each take the
// floor of their share of the remaining budget; the collective rounding
// shortfall goes to the last percentage column so that together they still
// cover their intended share. What is left is split evenly across wildcard
// columns, the last one absorbing the division remainder. When no wildcard
// exists the last column absorbs the leftover instead.
func Allocate(cols []ColumnSpec, total int, border string) []int {
	n := len(cols)
	if n == 0 {
		return nil
	}

	avail := total - (n-1)*textwidth.Width(border)
	widths := make([]int, n)

	fixedSum := 0
	for i, c := range cols {
		if c.kind == fixedCol {
			widths[i] = c.amount
			fixedSum += c.amount
		}
	}

	// Percentages are taken out of what the fixed columns leave over.
	base := avail - fixedSum
	pctTotal := 0
	pctFloored := 0
	lastPct := -1
	for i, c := range cols {
		if c.kind == percentCol {
			widths[i] = c.amount * base / 100
			pctFloored += widths[i]
			pctTotal += c.amount
			lastPct = i
		}
	}
	pctShare := pctTotal * base / 100
	if lastPct >= 0 {
		widths[lastPct] += pctShare - pctFloored
	}

	remaining := base - pctShare
	var wildcards []int
	for i, c := range cols {
		if c.kind == wildcardCol {
			wildcards = append(wildcards, i)
		}
	}
	if len(wildcards) > 0 {
		each := remaining / len(wildcards)
		for _, i := range wildcards {
			widths[i] = each
		}
		widths[wildcards[len(wildcards)-1]] += remaining - each*len(wildcards)
	} else if remaining != 0 {
		widths[n-1] += remaining
	}

	return widths
}
