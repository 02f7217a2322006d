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

	"golang.org/x/text/unicode/bidi"
)

// isRTL reports whether r has a strong right-to-left bidi class.
func isRTL(r rune) bool {
	prop, _ := bidi.LookupRune(r)
	class := prop.Class()
	return class == bidi.R || class == bidi.AL
}

// isLTR reports whether r has a strong left-to-right bidi class.
func isLTR(r rune) bool {
	prop, _ := bidi.LookupRune(r)
	return prop.Class() == bidi.L
}

// validateBidiComponent checks a component against the structural rules
// for bidirectional IRIs of RFC 3987, Section 4.2:
//
//  1. A component should not use both right-to-left and left-to-right characters.
//  2. A component using right-to-left characters should start and end with
//     right-to-left characters.
//
// Both "should" rules are enforced. Only non-ASCII components can contain
// right-to-left characters, so ASCII ones are accepted without lookups.
func validateBidiComponent(s string, component Component, offset int) error {
	if isASCII(s) {
		return nil
	}

	runes := []rune(s)
	var hasLTR, hasRTL bool
	for _, r := range runes {
		switch {
		case isRTL(r):
			hasRTL = true
		case isLTR(r):
			hasLTR = true
		}
	}

	if hasLTR && hasRTL {
		return &ValidationError{
			Component: component,
			Offset:    offset,
			Details:   "mixed left-to-right and right-to-left characters: " + s,
			Err:       ErrInvalidBidi,
		}
	}
	if hasRTL && (!isRTL(runes[0]) || !isRTL(runes[len(runes)-1])) {
		return &ValidationError{
			Component: component,
			Offset:    offset,
			Details:   "right-to-left text must start and end with right-to-left characters: " + s,
			Err:       ErrInvalidBidi,
		}
	}
	return nil
}

// validateBidiHost checks a reg-name against the bidi rules. Each
// dot-separated label is a component of its own.
func validateBidiHost(host string, offset int) error {
	start := 0
	for _, label := range strings.Split(host, ".") {
		if err := validateBidiComponent(label, ComponentHost, offset+start); err != nil {
			return err
		}
		start += len(label) + 1
	}
	return nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
