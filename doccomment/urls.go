package doccomment

import (
	"strings"

	"go.jacobcolvin.com/ndoc/ndmarkup"
)

var knownProtocols = map[string]bool{
	"http": true, "https": true, "ftp": true, "ftps": true, "sftp": true,
	"file": true, "news": true, "ssh": true, "git": true, "svn": true,
}

// KnownProtocol is the default URL protocol predicate.
func KnownProtocol(protocol string) bool {
	return knownProtocols[strings.ToLower(protocol)]
}

// Linkify encodes plain text, turning URLs whose protocol passes
// isProtocol and e-mail addresses into links.
func Linkify(text string, isProtocol func(string) bool) string {
	var sb strings.Builder

	for text != "" {
		i := strings.IndexAny(text, " \t\n")
		if i == 0 {
			sb.WriteByte(text[0])
			text = text[1:]

			continue
		}

		if i < 0 {
			i = len(text)
		}

		sb.WriteString(linkifyWord(text[:i], isProtocol))
		text = text[i:]
	}

	return sb.String()
}

func linkifyWord(word string, isProtocol func(string) bool) string {
	lead := word[:len(word)-len(strings.TrimLeft(word, `("'<[`))]
	core := word[len(lead):]
	core = strings.TrimRight(core, `.,;:!?)"'>]`)
	trail := word[len(lead)+len(core):]

	var link string

	switch {
	case strings.HasPrefix(strings.ToLower(core), "mailto:"):
		if addr := core[len("mailto:"):]; isEmail(addr) {
			link = ndmarkup.Link(ndmarkup.LinkEmail, addr, "")
		}

	case strings.Contains(core, "://"):
		scheme := core[:strings.Index(core, "://")]
		rest := core[len(scheme)+3:]

		if isScheme(scheme) && rest != "" && isProtocol(scheme) {
			link = ndmarkup.Link(ndmarkup.LinkURL, core, "")
		}

	case isEmail(core):
		link = ndmarkup.Link(ndmarkup.LinkEmail, core, "")
	}

	if link == "" {
		return ndmarkup.Encode(word)
	}

	return ndmarkup.Encode(lead) + link + ndmarkup.Encode(trail)
}

func isScheme(s string) bool {
	if s == "" {
		return false
	}

	for i := range len(s) {
		c := s[i]

		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}

	return true
}

func isEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || strings.Count(s, "@") != 1 {
		return false
	}

	local, domain := s[:at], s[at+1:]

	dot := strings.LastIndexByte(domain, '.')
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}

	valid := func(c byte, extra string) bool {
		return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
			strings.IndexByte(extra, c) >= 0
	}

	for i := range len(local) {
		if !valid(local[i], "._%+-") {
			return false
		}
	}

	for i := range len(domain) {
		if !valid(domain[i], ".-") {
			return false
		}
	}

	return true
}
