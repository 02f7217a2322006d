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

import "strings"

// isASCIILetter checks if a rune is an ASCII letter.
func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// isASCIIDigit checks if a rune is an ASCII digit.
func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isASCIIHexDigit checks if a rune is an ASCII hexadecimal digit.
func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// isSchemeChar reports whether r may appear after the first character of a scheme.
func isSchemeChar(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == '+' || r == '-' || r == '.'
}

// isUnreserved checks if a character is in the unreserved set as defined by RFC 3986.
func isUnreserved(c rune) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

// isSubDelim checks if a character is in the sub-delims set of RFC 3986, Section 2.2.
func isSubDelim(c rune) bool {
	return strings.ContainsRune("!$&'()*+,;=", c)
}

// isUnreservedOrSubDelims checks if a character is in the unreserved or
// sub-delims sets as defined by RFC 3986 (US-ASCII only).
func isUnreservedOrSubDelims(c rune) bool {
	return isUnreserved(c) || isSubDelim(c)
}

// isForbiddenBidiFormatting checks for bidirectional formatting characters that are forbidden in IRIs.
func isForbiddenBidiFormatting(c rune) bool {
	// RFC 3987, Section 4.1: LRM, RLM and LRE, RLE, PDF, LRO, RLO.
	return (c >= '\u202A' && c <= '\u202E') || c == '\u200E' || c == '\u200F'
}

// isUCSChar checks if a character is in the ucschar production of RFC 3987.
func isUCSChar(c rune) bool {
	if isForbiddenBidiFormatting(c) {
		return false
	}
	switch {
	case c >= '\u00A0' && c <= '\uD7FF',
		c >= '\uF900' && c <= '\uFDCF',
		c >= '\uFDF0' && c <= '\uFFEF',
		c >= 0x10000 && c <= 0x1FFFD,
		c >= 0x20000 && c <= 0x2FFFD,
		c >= 0x30000 && c <= 0x3FFFD,
		c >= 0x40000 && c <= 0x4FFFD,
		c >= 0x50000 && c <= 0x5FFFD,
		c >= 0x60000 && c <= 0x6FFFD,
		c >= 0x70000 && c <= 0x7FFFD,
		c >= 0x80000 && c <= 0x8FFFD,
		c >= 0x90000 && c <= 0x9FFFD,
		c >= 0xA0000 && c <= 0xAFFFD,
		c >= 0xB0000 && c <= 0xBFFFD,
		c >= 0xC0000 && c <= 0xCFFFD,
		c >= 0xD0000 && c <= 0xDFFFD,
		c >= 0xE1000 && c <= 0xEFFFD:
		return true
	}
	return false
}

// isIPrivate checks if a character is in the iprivate production of RFC 3987.
// These are only allowed in the query component.
func isIPrivate(c rune) bool {
	return (c >= '\uE000' && c <= '\uF8FF') ||
		(c >= 0xF0000 && c <= 0xFFFFD) ||
		(c >= 0x100000 && c <= 0x10FFFD)
}

// charClass is a predicate over the unencoded characters of one component.
type charClass func(c rune) bool

// The generic syntax character classes of RFC 3986, Section 3.
var (
	userinfoChars charClass = func(c rune) bool {
		return isUnreservedOrSubDelims(c) || c == ':'
	}
	regNameChars charClass = isUnreservedOrSubDelims
	pathChars    charClass = func(c rune) bool {
		return isUnreservedOrSubDelims(c) || c == ':' || c == '@' || c == '/'
	}
	queryChars charClass = func(c rune) bool {
		return pathChars(c) || c == '?'
	}
)

// withUCSChars extends a class with the ucschar production, turning an
// RFC 3986 class into its RFC 3987 counterpart.
func withUCSChars(class charClass) charClass {
	return func(c rune) bool {
		return class(c) || isUCSChar(c)
	}
}

// iqueryChars is the RFC 3987 iquery class, the only one allowing iprivate.
var iqueryChars charClass = func(c rune) bool {
	return queryChars(c) || isUCSChar(c) || isIPrivate(c)
}
