// Package stringtest builds multi-line string fixtures for tests.
package stringtest

import "strings"

// JoinLF joins lines with LF line endings.
//
//	want := stringtest.JoinLF(
//		"/**",
//		" * Summary.",
//		" */",
//	) // -> "/**\n * Summary.\n */"
func JoinLF(lines ...string) string {
	return strings.Join(lines, "\n")
}

// JoinCRLF joins lines with CRLF line endings, for fixtures that exercise
// Windows sources.
func JoinCRLF(lines ...string) string {
	return strings.Join(lines, "\r\n")
}

// Input dedents a raw string literal so fixtures can be indented with the
// surrounding test code. One leading newline and one trailing
// whitespace-only line are dropped, the indentation shared by all non-blank
// lines is removed, and whitespace-only lines become empty.
//
//	src := stringtest.Input(`
//		/// <summary>Does a thing.</summary>
//	`) // -> "/// <summary>Does a thing.</summary>"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")

	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == "" {
		lines = lines[:n-1]
	}

	indent := -1

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	for i, line := range lines {
		switch {
		case strings.TrimSpace(line) == "":
			lines[i] = ""
		case indent > 0:
			lines[i] = line[indent:]
		}
	}

	return strings.Join(lines, "\n")
}
