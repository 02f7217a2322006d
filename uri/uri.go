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

// Package uri provides types and functions for working with URI references
// as defined by RFC 3986.
//
// A Reference is either an absolute URI (e.g., "http://example.com/a") or a
// relative reference (e.g., "/a", "b", "#c"). References are immutable: every
// operation that derives a new reference returns a new value.
//
// Key features include:
//   - Permissive decomposition (`Split`) following RFC 3986 Appendix B.
//   - Strict parsing (`Parse`) that additionally validates every component,
//     and IRI parsing (`ParseIRI`) using the RFC 3987 character classes.
//   - Reference resolution (`Resolve`) following RFC 3986, Section 5.
//   - Relativization (`Relativize`), the inverse of resolution.
//   - Syntax-based normalization (`Normalize`) following RFC 3986, Section 6.2.2.
//   - Support for JSON marshalling and unmarshalling.
//
// All functions are pure and safe for concurrent use.
package uri

import (
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
	"golang.org/x/text/unicode/norm"
)

// Reference represents a URI reference. Components are stored exactly as
// they appear in the input (still percent-encoded), except for the scheme
// which is lowercased.
//
// The zero value is the empty relative reference.
type Reference struct {
	scheme      string
	hasScheme   bool
	authority   *Authority
	path        string
	query       string
	hasQuery    bool
	fragment    string
	hasFragment bool
}

// Authority is the authority component of a URI: [ userinfo "@" ] host [ ":" port ].
type Authority struct {
	userinfo    string
	hasUserinfo bool
	host        string
	port        string
	hasPort     bool
}

// Split decomposes s into its five components following the regular
// expression of RFC 3986, Appendix B, without validating them. The only
// failure is ErrMalformedAuthority for unbalanced IP-literal brackets.
//
// Split accepts any byte sequence, including invalid UTF-8.
func Split(s string) (*Reference, error) {
	pos, err := lex(s)
	if err != nil {
		return nil, err
	}
	return newReference(s, pos), nil
}

// Parse parses and validates a string as a URI reference per RFC 3986.
// Validation failures are reported as a *ParseError wrapping the
// *ValidationError describing the first invalid character.
func Parse(s string) (*Reference, error) {
	r, err := Split(s)
	if err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, newParseError(err)
	}
	return r, nil
}

// ParseIRI parses and validates a string as an IRI reference per RFC 3987.
// It accepts the non-ASCII characters allowed by RFC 3987 and checks the
// bidirectional text rules of RFC 3987, Section 4.2, including the "should"
// ones: a component mixing left-to-right and right-to-left characters, such
// as "http://a.example/AZaz\u00c0\ufdf0", is rejected with ErrInvalidBidi.
// The string is not normalized; for that, use ParseNormalizedIRI.
func ParseIRI(s string) (*Reference, error) {
	r, err := Split(s)
	if err != nil {
		return nil, err
	}
	if err := r.ValidateIRI(); err != nil {
		return nil, newParseError(err)
	}
	return r, nil
}

// ParseNormalizedIRI first normalizes the input string to Unicode
// Normalization Form C (NFC) and then parses it with ParseIRI.
//
// In accordance with RFC 3987 sections 3.1 and 5.3.2.2, this function should
// be used when the source of the string is not a pre-normalized Unicode
// source.
func ParseNormalizedIRI(s string) (*Reference, error) {
	return ParseIRI(norm.NFC.String(s))
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding references.
func MustParse(s string) *Reference {
	r, err := Parse(s)
	if err != nil {
		panic(`uri: Parse(` + strconv.Quote(s) + `): ` + err.Error())
	}
	return r
}

// newReference slices the lexed input into components.
func newReference(s string, pos Positions) *Reference {
	r := &Reference{}
	if pos.SchemeEnd > 0 {
		r.scheme = asciiLower(s[:pos.SchemeEnd-1])
		r.hasScheme = true
	}
	if pos.AuthorityEnd > pos.SchemeEnd {
		r.authority = newAuthority(s[pos.SchemeEnd+authorityPrefixLength : pos.AuthorityEnd])
	}
	r.path = s[pos.AuthorityEnd:pos.PathEnd]
	if pos.QueryEnd > pos.PathEnd {
		r.query = s[pos.PathEnd+1 : pos.QueryEnd]
		r.hasQuery = true
	}
	if pos.QueryEnd < len(s) {
		r.fragment = s[pos.QueryEnd+1:]
		r.hasFragment = true
	}
	return r
}

// asciiLower lowercases the ASCII letters of s, leaving every other byte
// untouched so that byte offsets are preserved.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

// String serializes the reference back to RFC 3986 syntax. Percent-encoding
// is left untouched.
//
// A path starting with "//" in a reference without authority, which can be
// produced by resolution, is written with a "/." prefix. The result parses
// back to an equivalent reference: its path keeps the "/." prefix, and it
// resolves to the same target.
func (r *Reference) String() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	out := &pooledOutputBuffer{buf: buf}
	r.writeComponents(out)
	return out.string()
}

// IsAbsolute returns true if the reference has a scheme.
func (r *Reference) IsAbsolute() bool {
	return r.hasScheme
}

// Scheme returns the scheme component (e.g., "http") and a boolean
// indicating whether it was present.
func (r *Reference) Scheme() (string, bool) {
	return r.scheme, r.hasScheme
}

// Authority returns the authority component and a boolean indicating
// whether it was present. An empty authority ("file:///a") is present.
func (r *Reference) Authority() (*Authority, bool) {
	return r.authority, r.authority != nil
}

// Path returns the path component. A path is always present, though it may
// be an empty string.
func (r *Reference) Path() string {
	return r.path
}

// Query returns the query component (without the "?") and a boolean
// indicating whether it was present.
func (r *Reference) Query() (string, bool) {
	return r.query, r.hasQuery
}

// Fragment returns the fragment component (without the "#") and a boolean
// indicating whether it was present.
func (r *Reference) Fragment() (string, bool) {
	return r.fragment, r.hasFragment
}

// Segments returns the path split on "/". The leading slash of an absolute
// path does not produce an empty first segment. An empty path has no segments.
func (r *Reference) Segments() []string {
	if r.path == "" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(r.path, "/"), "/")
}

// Equal reports whether r and other have the same components, including
// the presence of empty optional components.
func (r *Reference) Equal(other *Reference) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.scheme == other.scheme && r.hasScheme == other.hasScheme &&
		r.authority.Equal(other.authority) &&
		r.path == other.path &&
		r.query == other.query && r.hasQuery == other.hasQuery &&
		r.fragment == other.fragment && r.hasFragment == other.hasFragment
}

// withoutFragment returns a copy of r with the fragment removed.
func (r *Reference) withoutFragment() *Reference {
	c := *r
	c.fragment, c.hasFragment = "", false
	return &c
}

// Userinfo returns the userinfo subcomponent (without the "@") and a
// boolean indicating whether it was present.
func (a *Authority) Userinfo() (string, bool) {
	return a.userinfo, a.hasUserinfo
}

// Host returns the host subcomponent. IP literals keep their brackets.
func (a *Authority) Host() string {
	return a.host
}

// Port returns the port subcomponent (without the ":") and a boolean
// indicating whether it was present. A present port may be empty
// ("http://example.org:/").
func (a *Authority) Port() (string, bool) {
	return a.port, a.hasPort
}

// PortNumber returns the port as an integer. It returns false when the port
// is absent, empty, or does not fit in an int.
func (a *Authority) PortNumber() (int, bool) {
	if a.port == "" {
		return 0, false
	}
	for _, c := range a.port {
		if !isASCIIDigit(c) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(a.port)
	if err != nil {
		return 0, false
	}
	return n, true
}

// HostKind classifies the host.
func (a *Authority) HostKind() HostKind {
	return classifyHost(a.host)
}

// String returns the authority in RFC 3986 syntax, without the leading "//".
func (a *Authority) String() string {
	var b strings.Builder
	a.writeTo(&stringOutputBuffer{builder: &b}, nil)
	return b.String()
}

// Equal reports whether a and other have the same subcomponents. Two nil
// authorities are equal.
func (a *Authority) Equal(other *Authority) bool {
	if a == nil || other == nil {
		return a == other
	}
	return *a == *other
}
