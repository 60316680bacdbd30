package news

import (
	"strconv"
	"strings"
)

// DefaultBaseURL is the public Spaceflight News API root.
const DefaultBaseURL = "https://api.spaceflightnewsapi.net/v4"

// LatestURL builds the request URL for the most recent articles.
func LatestURL(base string, limit int) string {
	return articlesEndpoint(base) + "?limit=" + strconv.Itoa(limit)
}

// SearchURL builds the request URL for a keyword search.
func SearchURL(base, keyword string, limit int) string {
	return articlesEndpoint(base) + "?search=" + EscapeQueryComponent(keyword) + "&limit=" + strconv.Itoa(limit)
}

func articlesEndpoint(base string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return base + "/articles"
}

const upperhex = "0123456789ABCDEF"

// EscapeQueryComponent percent-encodes s for use as a single query value.
// Only A-Z a-z 0-9 and - _ . ! ~ * ' ( ) are left as is; every other byte of
// the UTF-8 encoding becomes %XX, so a space is %20 and a plus sign is %2B.
func EscapeQueryComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreservedComponentByte(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreservedComponentByte(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreservedComponentByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
