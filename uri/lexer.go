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
	"fmt"
	"strings"
)

const (
	// authorityPrefixLength is the length of the string "//".
	authorityPrefixLength = 2
)

// Positions holds the end indices of the components of a lexed reference.
//
//   - SchemeEnd is the index just after the ':' ending the scheme, or 0.
//   - AuthorityEnd is the index just after the authority. It equals
//     SchemeEnd when there is no authority; otherwise it includes the "//".
//   - PathEnd is the index of the '?' or '#' ending the path, or len(s).
//   - QueryEnd is the index of the '#' starting the fragment, or len(s).
//     It equals PathEnd when there is no query.
type Positions struct {
	SchemeEnd    int
	AuthorityEnd int
	PathEnd      int
	QueryEnd     int
}

// lexer holds the state for a single decomposition.
type lexer struct {
	input     *lexerInput
	positions Positions
}

// lex decomposes s following RFC 3986, Appendix B:
//
//	^(([^:/?#]+):)?(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?
func lex(s string) (Positions, error) {
	l := &lexer{input: newLexerInput(s)}
	err := l.lexSchemeStart()
	return l.positions, err
}

// lexSchemeStart is the initial state. It consumes a scheme if the input
// starts with one or more characters other than ":/?#" followed by ':'.
func (l *lexer) lexSchemeStart() error {
	for {
		r, ok := l.input.next()
		if !ok {
			// No ':' at all: the whole input is a relative reference.
			l.input.seek(0)
			return l.lexHierPart()
		}
		switch r {
		case ':':
			if l.input.position() == 1 {
				// An empty scheme is not a scheme; ':' belongs to the path.
				l.input.seek(0)
				return l.lexHierPart()
			}
			l.positions.SchemeEnd = l.input.position()
			return l.lexHierPart()
		case '/', '?', '#':
			// A '/' before the first ':' makes "a/b:c" a path, not a scheme.
			l.input.seek(0)
			return l.lexHierPart()
		}
	}
}

// lexHierPart consumes an optional authority and dispatches to the path.
func (l *lexer) lexHierPart() error {
	if !l.input.startsWith("//") {
		l.positions.AuthorityEnd = l.positions.SchemeEnd
		return l.lexPath()
	}
	l.input.skip(authorityPrefixLength)
	start := l.input.position()
	authority := l.input.rest()
	end := strings.IndexAny(authority, "/?#")
	if end == -1 {
		end = len(authority)
	}
	if err := checkAuthorityBrackets(authority[:end], start); err != nil {
		return err
	}
	l.input.skip(end)
	l.positions.AuthorityEnd = l.input.position()
	return l.lexPath()
}

// lexPath consumes the path, up to the first '?' or '#'.
func (l *lexer) lexPath() error {
	for {
		r, ok := l.input.peek()
		if !ok {
			l.positions.PathEnd = l.input.position()
			l.positions.QueryEnd = l.positions.PathEnd
			return nil
		}
		switch r {
		case '?':
			l.positions.PathEnd = l.input.position()
			l.input.next()
			return l.lexQuery()
		case '#':
			l.positions.PathEnd = l.input.position()
			l.positions.QueryEnd = l.positions.PathEnd
			return nil
		}
		l.input.next()
	}
}

// lexQuery consumes the query, up to the first '#'. Everything after it is
// the fragment.
func (l *lexer) lexQuery() error {
	rest := l.input.rest()
	if i := strings.IndexByte(rest, '#'); i != -1 {
		l.positions.QueryEnd = l.input.position() + i
		return nil
	}
	l.positions.QueryEnd = l.input.position() + len(rest)
	return nil
}

// checkAuthorityBrackets verifies that IP-literal brackets in the host part
// of an authority are balanced and well placed. offset is the position of
// the authority in the input.
func checkAuthorityBrackets(authority string, offset int) error {
	hostport := authority
	if i := strings.LastIndexByte(authority, '@'); i != -1 {
		hostport = authority[i+1:]
		offset += i + 1
	}

	if !strings.HasPrefix(hostport, "[") {
		if i := strings.IndexAny(hostport, "[]"); i != -1 {
			return malformedAuthority(offset+i, "unexpected bracket in host", hostport)
		}
		return nil
	}

	end := strings.IndexByte(hostport, ']')
	if end == -1 {
		return malformedAuthority(offset, "unterminated IP literal", hostport)
	}
	if i := strings.IndexByte(hostport[1:end], '['); i != -1 {
		return malformedAuthority(offset+1+i, "nested bracket in IP literal", hostport)
	}
	rest := hostport[end+1:]
	if rest != "" && rest[0] != ':' {
		return malformedAuthority(offset+end+1, "unexpected characters after IP literal", hostport)
	}
	if i := strings.IndexAny(rest, "[]"); i != -1 {
		return malformedAuthority(offset+end+1+i, "unexpected bracket in port", hostport)
	}
	return nil
}

func malformedAuthority(offset int, reason, hostport string) *ParseError {
	return &ParseError{
		Component: ComponentAuthority,
		Offset:    offset,
		Message:   fmt.Sprintf("%s at byte %d: %s '%s'", ErrMalformedAuthority, offset, reason, hostport),
		Err:       ErrMalformedAuthority,
	}
}
