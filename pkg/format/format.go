// Package format converts rich-text item bodies into a length-bounded
// markdown form suitable for a chat surface with a fixed message budget.
//
// The transformation is pure and deterministic: no I/O, no hidden state,
// safe for concurrent use.
//
// Carried-over limitations, documented rather than fixed: relative links in
// the source body are not rewritten to absolute links, and truncation may
// cut a fenced code block mid-block, producing malformed markdown.
package format

import (
	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/clipperhouse/uax29/v2/graphemes"
)

// MaxChars is the truncation boundary in characters. When the converted
// markdown reaches this length, a "..." marker is appended, making the
// longest possible output MaxChars + 3 = 1024 characters, the message
// budget of the downstream chat surface.
const MaxChars = 1021

const marker = "..."

// converter applies GitHub-flavored-markdown conventions: fenced code
// blocks, tables, strikethrough.
var converter = newConverter()

func newConverter() *md.Converter {
	conv := md.NewConverter("", true, nil)
	conv.Use(plugin.GitHubFlavored())
	return conv
}

// Body converts an HTML body to GFM markdown and clamps it with Truncate.
func Body(html string) (string, error) {
	out, err := converter.ConvertString(html)
	if err != nil {
		return "", err
	}
	return Truncate(out), nil
}

// Truncate returns s unchanged when it is shorter than MaxChars characters;
// otherwise it returns the first MaxChars characters followed by the "..."
// marker. A character is an extended grapheme cluster, so the cut never
// lands inside a character boundary.
func Truncate(s string) string {
	var count, cut int

	g := graphemes.FromString(s)
	for g.Next() {
		if count == MaxChars {
			return s[:cut] + marker
		}
		cut += len(g.Value())
		count++
	}

	if count < MaxChars {
		return s
	}
	// Exactly MaxChars characters: the prefix is the whole string, but the
	// marker still applies.
	return s + marker
}
