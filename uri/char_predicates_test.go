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

//nolint:testpackage // This is a white-box test file. It needs to be in the same package to test unexported functions.
package uri

import (
	"testing"
)

func TestCharPredicates(t *testing.T) {
	tests := []struct {
		name string
		fn   func(rune) bool
		in   []rune
		out  []rune
	}{
		{"isASCIILetter", isASCIILetter, []rune("azAZm"), []rune("09-@[` \u00e9")},
		{"isASCIIDigit", isASCIIDigit, []rune("0189"), []rune("a/:\u0660")},
		{"isASCIIHexDigit", isASCIIHexDigit, []rune("09afAF"), []rune("gG-")},
		{"isSchemeChar", isSchemeChar, []rune("aZ9+-."), []rune(":/_~")},
		{"isUnreserved", isUnreserved, []rune("aZ9-._~"), []rune("!:/%")},
		{"isSubDelim", isSubDelim, []rune("!$&'()*+,;="), []rune(":/?#[]@")},
		{"isForbiddenBidiFormatting", isForbiddenBidiFormatting, []rune("\u200e\u200f\u202a\u202e"), []rune("a\u200d\u2066")},
		{"isUCSChar", isUCSChar, []rune("\u00a0\ud7ff\uf900\U00010000\U000efffd"), []rune("a\u009f\ufdd0\ufffe\u202e")},
		{"isIPrivate", isIPrivate, []rune("\ue000\U000f0000\U0010fffd"), []rune("a\uf900\U0010ffff")},
		{"userinfoChars", userinfoChars, []rune("a:!"), []rune("@/?#[")},
		{"regNameChars", regNameChars, []rune("a-!="), []rune(":@/[")},
		{"pathChars", pathChars, []rune("a:@/"), []rune("?#[ ")},
		{"queryChars", queryChars, []rune("a/?:@"), []rune("#[ ")},
		{"iqueryChars", iqueryChars, []rune("?\u00e9\ue000"), []rune("# \u202e")},
		{"withUCSChars(pathChars)", withUCSChars(pathChars), []rune("/\u00e9"), []rune("?\u200e\ue000")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, r := range tt.in {
				if !tt.fn(r) {
					t.Errorf("%s(%U) = false, want true", tt.name, r)
				}
			}
			for _, r := range tt.out {
				if tt.fn(r) {
					t.Errorf("%s(%U) = true, want false", tt.name, r)
				}
			}
		})
	}
}
