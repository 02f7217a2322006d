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
	"errors"
	"testing"
)

func TestLex(t *testing.T) {
	tests := []struct {
		input string
		want  Positions
	}{
		{"", Positions{0, 0, 0, 0}},
		{"#", Positions{0, 0, 0, 0}},
		{"?", Positions{0, 0, 0, 1}},
		{"?#", Positions{0, 0, 0, 1}},
		{"http:", Positions{5, 5, 5, 5}},
		{"a:b/c", Positions{2, 2, 5, 5}},
		{"a/b:c", Positions{0, 0, 5, 5}},
		{":a/b", Positions{0, 0, 4, 4}},
		{"//g", Positions{0, 3, 3, 3}},
		{"//", Positions{0, 2, 2, 2}},
		{"http://a/b?q#f", Positions{5, 8, 10, 12}},
		{"http://a?q/r#f?g", Positions{5, 8, 8, 12}},
		{"file:///foo", Positions{5, 7, 11, 11}},
		{"g?y/./x#s", Positions{0, 0, 1, 7}},
		{"http://[::1]:80/x", Positions{5, 15, 17, 17}},
		{"\xff:\xfe", Positions{2, 2, 3, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := lex(tt.input)
			if err != nil {
				t.Fatalf("lex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("lex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLexMalformedAuthority(t *testing.T) {
	tests := []struct {
		input      string
		wantOffset int
	}{
		{"http://[/", 7},
		{"http://]/", 7},
		{"http://[::1]a/", 12},
		{"http://[[::1]]/", 8},
		{"http://[::1]:8[0/", 14},
		{"//u@[::1/", 4},
		{"//a]b", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := lex(tt.input)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("lex(%q) error = %v, want *ParseError", tt.input, err)
			}
			if !errors.Is(err, ErrMalformedAuthority) {
				t.Errorf("lex(%q) error = %v, want ErrMalformedAuthority", tt.input, err)
			}
			if pe.Component != ComponentAuthority || pe.Offset != tt.wantOffset {
				t.Errorf("lex(%q) error at %s:%d, want authority:%d", tt.input, pe.Component, pe.Offset, tt.wantOffset)
			}
		})
	}
}

// components renders the components of r, marking absent ones with "-".
func components(r *Reference) [5]string {
	var c [5]string
	for i := range c {
		c[i] = "-"
	}
	if s, ok := r.Scheme(); ok {
		c[0] = s
	}
	if a, ok := r.Authority(); ok {
		c[1] = a.String()
	}
	c[2] = r.Path()
	if q, ok := r.Query(); ok {
		c[3] = q
	}
	if f, ok := r.Fragment(); ok {
		c[4] = f
	}
	return c
}

func TestSplit(t *testing.T) {
	tests := []struct {
		input string
		want  [5]string
	}{
		{"", [5]string{"-", "-", "", "-", "-"}},
		{"#", [5]string{"-", "-", "", "-", ""}},
		{"?", [5]string{"-", "-", "", "", "-"}},
		{"a/b:c", [5]string{"-", "-", "a/b:c", "-", "-"}},
		{"a:b/c", [5]string{"a", "-", "b/c", "-", "-"}},
		{"HTTP://EXAMPLE.ORG/AAA/BBB#CCC", [5]string{"http", "EXAMPLE.ORG", "/AAA/BBB", "-", "CCC"}},
		{"http://example.com/foo/bar/.././baz", [5]string{"http", "example.com", "/foo/bar/.././baz", "-", "-"}},
		{"file:///foo/bar", [5]string{"file", "", "/foo/bar", "-", "-"}},
		{"http://a/b?", [5]string{"http", "a", "/b", "", "-"}},
		{"http://a/b", [5]string{"http", "a", "/b", "-", "-"}},
		{"mailto:user@host?subject=blah", [5]string{"mailto", "-", "user@host", "subject=blah", "-"}},
		{"//[2010:836B:4179::836B:4179]", [5]string{"-", "[2010:836B:4179::836B:4179]", "", "-", "-"}},
		{"http://[xyz]/", [5]string{"http", "[xyz]", "/", "-", "-"}},
		{"#\x00", [5]string{"-", "-", "", "-", "\x00"}},
		{"A C", [5]string{"-", "-", "A C", "-", "-"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := Split(tt.input)
			if err != nil {
				t.Fatalf("Split(%q) unexpected error: %v", tt.input, err)
			}
			if got := components(r); got != tt.want {
				t.Errorf("Split(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitAuthority(t *testing.T) {
	tests := []struct {
		authority   string
		userinfo    string
		hasUserinfo bool
		host        string
		port        string
		hasPort     bool
	}{
		{"", "", false, "", "", false},
		{"example.com", "", false, "example.com", "", false},
		{"u:p@example.com:8080", "u:p", true, "example.com", "8080", true},
		{"a@b@c", "a@b", true, "c", "", false},
		{"@h:", "", true, "h", "", true},
		{"[::1]", "", false, "[::1]", "", false},
		{"[::1]:443", "", false, "[::1]", "443", true},
		{"u@[v1.x]:", "u", true, "[v1.x]", "", true},
		{"h:1:2", "", false, "h:1", "2", true},
	}

	for _, tt := range tests {
		t.Run(tt.authority, func(t *testing.T) {
			a := newAuthority(tt.authority)
			want := Authority{tt.userinfo, tt.hasUserinfo, tt.host, tt.port, tt.hasPort}
			if *a != want {
				t.Errorf("newAuthority(%q) = %+v, want %+v", tt.authority, *a, want)
			}
			if got := a.String(); got != tt.authority {
				t.Errorf("newAuthority(%q).String() = %q", tt.authority, got)
			}
		})
	}
}
