// Package entity resolves HTML entity references to their decoded
// text, backed by the entity table shipped with golang.org/x/net/html.
package entity

import "golang.org/x/net/html"

// Lookup decodes an entity reference given with its leading ampersand
// and trailing semicolon, e.g. "&amp;" or "&hearts;". Numeric
// references ("&#35;", "&#x23;") are decoded as well. It reports false
// when the reference is not recognized.
func Lookup(name string) (string, bool) {
	if len(name) < 3 || name[0] != '&' || name[len(name)-1] != ';' {
		return "", false
	}
	decoded := html.UnescapeString(name)
	if decoded == name {
		return "", false
	}
	return decoded, true
}
