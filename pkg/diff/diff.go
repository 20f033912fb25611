// Package diff renders line-based unified diffs.
package diff

import (
	"fmt"
	"strings"
)

// Context is the number of unchanged lines kept around each change.
const Context = 3

type op byte

const (
	keep op = ' '
	del  op = '-'
	add  op = '+'
)

type line struct {
	op   op
	text string
}

type hunk struct {
	// oldStart and newStart count the lines that precede the hunk.
	oldStart, newStart int
	lines              []line
}

// Unified returns the unified diff turning oldText into newText, with
// name in both file headers. Identical inputs produce an empty string.
func Unified(name, oldText, newText string) string {
	if oldText == newText {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", name)
	fmt.Fprintf(&b, "+++ b/%s\n", name)
	for _, h := range hunks(script(split(oldText), split(newText)), Context) {
		h.write(&b)
	}
	return b.String()
}

// split breaks s into lines that keep their terminating newline.
func split(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// script walks a longest-common-subsequence table to produce the edit
// script. Deletions come before insertions at each change.
func script(a, b []string) []line {
	n, m := len(a), len(b)

	// lcs[i][j] is the LCS length of a[i:] and b[j:].
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	out := make([]line, 0, n+m)
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			out = append(out, line{keep, a[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			out = append(out, line{del, a[i]})
			i++
		default:
			out = append(out, line{add, b[j]})
			j++
		}
	}
	for ; i < n; i++ {
		out = append(out, line{del, a[i]})
	}
	for ; j < m; j++ {
		out = append(out, line{add, b[j]})
	}
	return out
}

// hunks groups the changes of s with context lines on each side. Changes
// separated by at most 2*context unchanged lines share a hunk.
func hunks(s []line, context int) []hunk {
	// before[i] holds the old and new line counts preceding s[i].
	before := make([][2]int, len(s))
	var o, n int
	for i, l := range s {
		before[i] = [2]int{o, n}
		if l.op != add {
			o++
		}
		if l.op != del {
			n++
		}
	}

	var out []hunk
	for i := 0; i < len(s); {
		if s[i].op == keep {
			i++
			continue
		}

		start := max(0, i-context)
		end := i
		for end < len(s) {
			if s[end].op != keep {
				end++
				continue
			}
			k := end
			for k < len(s) && s[k].op == keep {
				k++
			}
			if k == len(s) || k-end > 2*context {
				break
			}
			end = k
		}
		stop := min(len(s), end+context)

		out = append(out, hunk{
			oldStart: before[start][0],
			newStart: before[start][1],
			lines:    s[start:stop],
		})
		i = stop
	}
	return out
}

func (h hunk) write(b *strings.Builder) {
	var oldCount, newCount int
	for _, l := range h.lines {
		if l.op != add {
			oldCount++
		}
		if l.op != del {
			newCount++
		}
	}

	fmt.Fprintf(b, "@@ -%s +%s @@\n", span(h.oldStart, oldCount), span(h.newStart, newCount))
	for _, l := range h.lines {
		b.WriteByte(byte(l.op))
		b.WriteString(l.text)
		if !strings.HasSuffix(l.text, "\n") {
			b.WriteString("\n\\ No newline at end of file\n")
		}
	}
}

func span(before, count int) string {
	switch count {
	case 0:
		return fmt.Sprintf("%d,0", before)
	case 1:
		return fmt.Sprintf("%d", before+1)
	}
	return fmt.Sprintf("%d,%d", before+1, count)
}
