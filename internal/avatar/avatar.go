// Package avatar renders the initials badge used when a player has no photo.
package avatar

import (
	"encoding/base64"
	"fmt"
	"hash/fnv"
	"html"
	"strings"
	"unicode"
)

// DefaultSize is the edge length, in pixels, of generated avatars.
const DefaultSize = 128

var hues = []int{210, 260, 300, 340, 10, 30, 140}

// fallbackName stands in for players saved without a name.
const fallbackName = "Usuario"

// Initials returns the upper-case initials of the first and last words of
// name. A single word yields its initial twice. Empty names fall back to
// fallbackName.
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		words = []string{fallbackName}
	}
	var out []rune
	for _, w := range []string{words[0], words[len(words)-1]} {
		if r, ok := initial(w); ok {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return "U"
	}
	return string(out)
}

// initial returns the upper-cased first letter or digit of word.
func initial(word string) (rune, bool) {
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToUpper(r), true
		}
	}
	return 0, false
}

// Color picks a stable background colour for name.
func Color(name string) string {
	if strings.TrimSpace(name) == "" {
		name = fallbackName
	}
	h := fnv.New32a()
	h.Write([]byte(name))
	n := int32(h.Sum32())
	if n < 0 {
		n = -n
	}
	if n < 0 { // math.MinInt32
		n = 0
	}
	return fmt.Sprintf("hsl(%d 70%% 55%%)", hues[int(n)%len(hues)])
}

// SVG renders a square avatar with the initials of name on a coloured background.
func SVG(name string, size int) string {
	if size <= 0 {
		size = DefaultSize
	}
	fontSize := size * 2 / 5
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect width="100%%" height="100%%" rx="%d" fill="%s"/>`+
			`<text x="50%%" y="50%%" dy=".35em" text-anchor="middle" font-family="sans-serif" font-size="%d" font-weight="600" fill="#fff">%s</text>`+
			`</svg>`,
		size, size, size, size, size/8, Color(name), fontSize, html.EscapeString(Initials(name)),
	)
}

// DataURI returns the SVG avatar for name as a base64 data URI, suitable for
// storing in a player's photo field.
func DataURI(name string, size int) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(SVG(name, size)))
}
