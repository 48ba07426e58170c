/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package util

import (
	"sort"
	"strings"
)

// Suggest returns the options close enough to input to be what the user meant, most similar first.
// An option qualifies when its distance to input is at most half the length of the longer of the
// two (and at least 1).
func Suggest(input string, options []string) []string {
	type candidate struct {
		option   string
		distance int
	}

	var candidates []candidate
	for _, option := range options {
		threshold := len(input)
		if len(option) > threshold {
			threshold = len(option)
		}
		threshold /= 2
		if threshold < 1 {
			threshold = 1
		}

		if distance := lexicalDistance(input, option); distance <= threshold {
			candidates = append(candidates, candidate{option, distance})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	suggestions := make([]string, len(candidates))
	for i := range candidates {
		suggestions[i] = candidates[i].option
	}
	return suggestions
}

// lexicalDistance counts the edits (insertion, deletion, substitution or swap of two adjacent
// characters) needed to turn a into b. Strings that differ only in case are 1 apart.
func lexicalDistance(a string, b string) int {
	if a == b {
		return 0
	}

	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 1
	}

	// Only the last three rows of the edit matrix are needed.
	prev2 := make([]int, len(b)+1)
	prev := make([]int, len(b)+1)
	row := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			d := min(prev[j]+1, row[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				d = min(d, prev2[j-2]+cost)
			}
			row[j] = d
		}
		prev2, prev, row = prev, row, prev2
	}

	return prev[len(b)]
}

// OrList joins items into `A, B, or C`. Items are quoted when quoted is true.
func OrList(items []string, quoted bool) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			if len(items) > 2 {
				b.WriteString(", ")
			} else {
				b.WriteString(" ")
			}
			if i == len(items)-1 {
				b.WriteString("or ")
			}
		}
		if quoted {
			b.WriteByte('"')
			b.WriteString(item)
			b.WriteByte('"')
		} else {
			b.WriteString(item)
		}
	}
	return b.String()
}
