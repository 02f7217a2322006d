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
	"unicode/utf8"
)

// percentEncodingLength is the length of a "%XX" triplet.
const percentEncodingLength = 3

// validator checks the components of a reference against the RFC 3986
// character classes, or the RFC 3987 ones when iri is set.
type validator struct {
	iri bool
}

// Validate checks every component of r against RFC 3986.
//
// Components are checked in order (scheme, userinfo, host, port, path,
// query, fragment) and the first violation is returned as a
// *ValidationError. Offsets are byte offsets in r.String().
func (r *Reference) Validate() error {
	return validator{}.validate(r)
}

// ValidateIRI is like Validate but uses the RFC 3987 character classes: it
// accepts non-ASCII characters allowed in IRIs and checks the bidirectional
// text rules of RFC 3987, Section 4.2.
func (r *Reference) ValidateIRI() error {
	return validator{iri: true}.validate(r)
}

// class returns c, extended with ucschar in IRI mode.
func (v validator) class(c charClass) charClass {
	if v.iri {
		return withUCSChars(c)
	}
	return c
}

func (v validator) validate(r *Reference) error {
	offs := r.writeComponents(&voidOutputBuffer{})

	if r.hasScheme {
		if err := validateScheme(r.scheme); err != nil {
			return err
		}
	}

	if a := r.authority; a != nil {
		if a.hasUserinfo {
			err := v.checkChars(a.userinfo, ComponentUserinfo, offs[ComponentUserinfo], v.class(userinfoChars))
			if err != nil {
				return err
			}
		}
		if err := v.validateHost(a.host, offs[ComponentHost]); err != nil {
			return err
		}
		if a.hasPort {
			if err := validatePort(a.port, offs[ComponentPort]); err != nil {
				return err
			}
		}
	}

	if err := v.validatePath(r, offs[ComponentPath]); err != nil {
		return err
	}

	if r.hasQuery {
		class := queryChars
		if v.iri {
			class = iqueryChars
		}
		if err := v.checkText(r.query, ComponentQuery, offs[ComponentQuery], class); err != nil {
			return err
		}
	}

	if r.hasFragment {
		err := v.checkText(r.fragment, ComponentFragment, offs[ComponentFragment], v.class(queryChars))
		if err != nil {
			return err
		}
	}
	return nil
}

// validateScheme checks the scheme rule: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func validateScheme(scheme string) error {
	if scheme == "" {
		return &ValidationError{Component: ComponentScheme, Details: "empty scheme", Err: ErrInvalidScheme}
	}
	for i, r := range scheme {
		if (i == 0 && !isASCIILetter(r)) || !isSchemeChar(r) {
			return &ValidationError{Component: ComponentScheme, Offset: i, Char: r, Err: ErrInvalidScheme}
		}
	}
	return nil
}

// validatePath checks the structure of the path then its characters.
func (v validator) validatePath(r *Reference, offset int) error {
	path := r.path
	ambiguous := func(details string) error {
		return &ValidationError{Component: ComponentPath, Offset: offset, Details: details, Err: ErrAmbiguousPath}
	}

	switch {
	case r.authority != nil:
		// RFC 3986, Section 3.3: path-abempty.
		if path != "" && path[0] != '/' {
			return ambiguous(path)
		}
	case strings.HasPrefix(path, "//"):
		// "//" would be read back as an authority.
		return ambiguous(path)
	case !r.hasScheme:
		// RFC 3986, Section 4.2: path-noscheme.
		firstSegment, _, _ := strings.Cut(path, "/")
		if strings.ContainsRune(firstSegment, ':') {
			return ambiguous(firstSegment)
		}
	}

	if err := v.checkChars(path, ComponentPath, offset, v.class(pathChars)); err != nil {
		return err
	}
	if v.iri {
		start := 0
		for _, segment := range strings.Split(path, "/") {
			if err := validateBidiComponent(segment, ComponentPath, offset+start); err != nil {
				return err
			}
			start += len(segment) + 1
		}
	}
	return nil
}

// checkText checks the characters of a query or fragment, then, in IRI
// mode, its bidirectional text.
func (v validator) checkText(s string, component Component, offset int, class charClass) error {
	if err := v.checkChars(s, component, offset, class); err != nil {
		return err
	}
	if v.iri {
		return validateBidiComponent(s, component, offset)
	}
	return nil
}

// checkChars checks that every character of s is either a well-formed
// percent-encoding triplet or allowed by class. Invalid UTF-8 is rejected.
func (v validator) checkChars(s string, component Component, offset int, class charClass) error {
	for i := 0; i < len(s); {
		if s[i] == '%' {
			if i+2 >= len(s) || !isASCIIHexDigit(rune(s[i+1])) || !isASCIIHexDigit(rune(s[i+2])) {
				end := min(i+percentEncodingLength, len(s))
				return &ValidationError{
					Component: component,
					Offset:    offset + i,
					Details:   s[i:end],
					Err:       ErrInvalidPercentEncoding,
				}
			}
			i += percentEncodingLength
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || !class(r) {
			return &ValidationError{Component: component, Offset: offset + i, Char: r, Err: ErrInvalidCharacter}
		}
		i += size
	}
	return nil
}
