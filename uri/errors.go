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

	"github.com/go-faster/errors"
)

var (
	// ErrMalformedAuthority is returned by the lexer when the host part of an
	// authority has unbalanced or misplaced IP-literal brackets ("http://[/",
	// "http://]/", "http://[::1]a/").
	ErrMalformedAuthority = errors.New("malformed authority")
	// ErrInvalidScheme is returned when the scheme does not match
	// ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
	ErrInvalidScheme = errors.New("invalid scheme")
	// ErrInvalidCharacter is returned when an unencoded character is not
	// allowed in the component it appears in.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrInvalidPercentEncoding is returned when a '%' is not followed by two
	// hexadecimal digits.
	ErrInvalidPercentEncoding = errors.New("invalid percent encoding")
	// ErrInvalidHost is returned for malformed IP literals and hosts.
	ErrInvalidHost = errors.New("invalid host")
	// ErrInvalidPort is returned when the port contains a non-digit.
	ErrInvalidPort = errors.New("invalid port")
	// ErrInvalidBidi is returned in IRI mode when a component mixes
	// left-to-right and right-to-left characters, or does not start and end
	// with right-to-left characters while containing some (RFC 3987, Section 4.2).
	ErrInvalidBidi = errors.New("invalid bidirectional text")
	// ErrAmbiguousPath is returned when a path could be mistaken for another
	// component: a first segment containing ':' in a relative-path reference,
	// a path starting with "//" without an authority, or a rootless path
	// following an authority.
	ErrAmbiguousPath = errors.New("ambiguous path")
	// ErrBaseNotAbsolute is returned when the base of a resolution or a
	// relativization has no scheme.
	ErrBaseNotAbsolute = errors.New("base URI is not absolute")
	// ErrTargetNotAbsolute is returned by Relativize when the target has no scheme.
	ErrTargetNotAbsolute = errors.New("target URI is not absolute")
	// ErrNotRelativizable is returned by Relativize when the target path
	// contains "." or ".." segments. Resolution always removes them, so no
	// reference can resolve back to such a target.
	ErrNotRelativizable = errors.New("it is not possible to make this URI relative because its path contains '.' or '..' segments")
)

// Component identifies one of the parts of a URI reference.
type Component int

// Components in serialization order.
const (
	ComponentScheme Component = iota
	ComponentAuthority
	ComponentUserinfo
	ComponentHost
	ComponentPort
	ComponentPath
	ComponentQuery
	ComponentFragment
)

var componentNames = [...]string{
	ComponentScheme:    "scheme",
	ComponentAuthority: "authority",
	ComponentUserinfo:  "userinfo",
	ComponentHost:      "host",
	ComponentPort:      "port",
	ComponentPath:      "path",
	ComponentQuery:     "query",
	ComponentFragment:  "fragment",
}

func (c Component) String() string {
	if c < 0 || int(c) >= len(componentNames) {
		return fmt.Sprintf("Component(%d)", int(c))
	}
	return componentNames[c]
}

// ValidationError describes the first violation found by Validate or ValidateIRI.
type ValidationError struct {
	// Component is the component holding the violation.
	Component Component
	// Offset is the byte offset of the violation in the serialized reference.
	Offset int
	// Char is the offending character, or 0 when the violation is not tied
	// to a single character.
	Char rune
	// Details holds the offending text when Char is not set.
	Details string
	// Err is one of the Err* kinds of this package.
	Err error
}

// Error formats the error message with any available character or details.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s in %s at byte %d", e.Err, e.Component, e.Offset)
	if e.Char != 0 {
		msg = fmt.Sprintf("%s %q", msg, e.Char)
	} else if e.Details != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.Details)
	}
	return msg
}

// Unwrap returns the error kind.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ParseError is the error type returned by the parsing functions in this package.
// It carries the component and byte offset of the failure and wraps either an
// error kind (lexing failures) or a *ValidationError.
type ParseError struct {
	Component Component
	Offset    int
	Message   string
	Err       error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("URI parse error: %s", e.Message)
}

// Unwrap provides compatibility with the errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError wraps a lexing or validation failure into a ParseError.
// It returns nil if the input error is nil.
func newParseError(err error) *ParseError {
	if err == nil {
		return nil
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe
	}
	out := &ParseError{Message: err.Error(), Err: err}
	var ve *ValidationError
	if errors.As(err, &ve) {
		out.Component = ve.Component
		out.Offset = ve.Offset
	}
	return out
}
