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
	"io"
	"strings"
)

// lexerInput provides a reader-like interface over the input string,
// allowing for peeking, advancing, and position tracking. Invalid UTF-8
// is read one byte at a time as utf8.RuneError.
type lexerInput struct {
	originalString string
	reader         *strings.Reader
}

// newLexerInput creates a new lexerInput wrapping the given string.
func newLexerInput(s string) *lexerInput {
	return &lexerInput{
		originalString: s,
		reader:         strings.NewReader(s),
	}
}

// next reads and returns the next rune from the input, advancing the position.
func (p *lexerInput) next() (rune, bool) {
	r, _, err := p.reader.ReadRune()
	return r, err == nil
}

// peek returns the next rune from the input without advancing the position.
func (p *lexerInput) peek() (rune, bool) {
	r, _, err := p.reader.ReadRune()
	if err != nil {
		return 0, false
	}
	_ = p.reader.UnreadRune()
	return r, true
}

// startsWith checks if the remaining input starts with the given string.
func (p *lexerInput) startsWith(prefix string) bool {
	return strings.HasPrefix(p.rest(), prefix)
}

// position returns the current read position in bytes from the start of the input.
func (p *lexerInput) position() int {
	return len(p.originalString) - p.reader.Len()
}

// rest returns the unread portion of the input string.
func (p *lexerInput) rest() string {
	return p.originalString[p.position():]
}

// skip advances the position by n bytes, clamped to the end of the input.
func (p *lexerInput) skip(n int) {
	pos := p.position() + n
	if pos > len(p.originalString) {
		pos = len(p.originalString)
	}
	p.seek(pos)
}

// seek moves the read position to an absolute byte offset.
func (p *lexerInput) seek(pos int) {
	p.reader.Reset(p.originalString)
	_, _ = p.reader.Seek(int64(pos), io.SeekStart)
}
