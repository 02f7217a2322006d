/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import (
	"strings"

	"golang.org/x/net/idna"
)

const upperHex = "0123456789ABCDEF"

// Normalize applies syntax-based normalization to the reference according
// to RFC 3986, Section 6.2.2 and returns the result as a new Reference:
//
//   - case normalization: the host is lowercased, percent-encoding triplets
//     use uppercase hexadecimal digits;
//   - percent-encoding normalization: triplets encoding unreserved
//     characters are decoded;
//   - path segment normalization: dot segments are removed from absolute
//     URIs and from absolute-path references.
//
// Non-ASCII registered names are mapped to their canonical Unicode form
// through IDNA. No scheme-based normalization is done: default ports and
// empty paths are kept.
func (r *Reference) Normalize() *Reference {
	n := r.clone()

	if a := r.authority; a != nil {
		na := *a
		na.userinfo = normalizePercentEncoding(a.userinfo)
		na.host = normalizeHost(a.host)
		n.authority = &na
	}

	n.path = normalizePercentEncoding(r.path)
	if r.hasScheme || strings.HasPrefix(n.path, "/") {
		n.path = RemoveDotSegments(n.path)
	}
	n.query = normalizePercentEncoding(r.query)
	n.fragment = normalizePercentEncoding(r.fragment)
	return n
}

// normalizeHost decodes the unreserved octets of host, then lowercases it.
// Non-ASCII registered names are passed through IDNA to get their canonical
// Unicode form. The remaining percent-encoded octets keep uppercase digits.
func normalizeHost(host string) string {
	host = asciiLower(normalizePercentEncoding(host))
	if !isASCII(host) && !strings.HasPrefix(host, "[") {
		if asciiHost, err := idna.ToASCII(host); err == nil {
			if unicodeHost, err := idna.ToUnicode(asciiHost); err == nil {
				host = unicodeHost
			}
		}
	}
	return normalizePercentEncoding(host)
}

// normalizePercentEncoding decodes the percent-encoded octets that stand for
// unreserved characters and uppercases the hexadecimal digits of the other
// ones, as per RFC 3986, Sections 6.2.2.1 and 6.2.2.2. Malformed triplets
// are copied unchanged.
func normalizePercentEncoding(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' || i+2 >= len(s) || !isASCIIHexDigit(rune(s[i+1])) || !isASCIIHexDigit(rune(s[i+2])) {
			b.WriteByte(s[i])
			continue
		}
		c := unhex(s[i+1])<<4 | unhex(s[i+2])
		if isUnreserved(rune(c)) {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&0x0F])
		}
		i += 2
	}
	return b.String()
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
