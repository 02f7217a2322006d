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

	"github.com/valyala/bytebufferpool"
)

// outputBuffer is an interface for building the serialized form of a
// reference. This abstraction allows the serializer to be used in different
// modes, such as full string generation (pooledOutputBuffer) or offset
// computation without string allocation (voidOutputBuffer).
type outputBuffer interface {
	// writeByte appends a single byte to the buffer.
	writeByte(c byte)
	// writeString appends a string to the buffer.
	writeString(s string)
	// string returns the complete content of the buffer.
	string() string
	// len returns the number of bytes currently in the buffer.
	len() int
}

// voidOutputBuffer is an implementation of outputBuffer that discards all
// writes and only tracks the length of the would-be output. The validator
// uses it to locate components in the serialized form.
type voidOutputBuffer struct {
	length int
}

// writeByte tracks the length of the byte that would have been written.
func (b *voidOutputBuffer) writeByte(byte) { b.length++ }

// writeString tracks the length of the string that would have been written.
func (b *voidOutputBuffer) writeString(s string) { b.length += len(s) }

// string returns an empty string, as no output is stored.
func (b *voidOutputBuffer) string() string { return "" }

// len returns the number of bytes that would have been written to the buffer.
func (b *voidOutputBuffer) len() int { return b.length }

// stringOutputBuffer is an implementation of outputBuffer that uses a
// strings.Builder to construct the output string.
type stringOutputBuffer struct {
	builder *strings.Builder
}

func (b *stringOutputBuffer) writeByte(c byte)     { b.builder.WriteByte(c) }
func (b *stringOutputBuffer) writeString(s string) { b.builder.WriteString(s) }
func (b *stringOutputBuffer) string() string       { return b.builder.String() }
func (b *stringOutputBuffer) len() int             { return b.builder.Len() }

// pooledOutputBuffer is an implementation of outputBuffer backed by a
// pooled byte buffer. The buffer must not be used after it is returned to
// the pool, so string() copies its content.
type pooledOutputBuffer struct {
	buf *bytebufferpool.ByteBuffer
}

func (b *pooledOutputBuffer) writeByte(c byte)     { _ = b.buf.WriteByte(c) }
func (b *pooledOutputBuffer) writeString(s string) { _, _ = b.buf.WriteString(s) }
func (b *pooledOutputBuffer) string() string       { return b.buf.String() }
func (b *pooledOutputBuffer) len() int             { return b.buf.Len() }

// componentOffsets holds the byte offset at which each component's content
// starts in the serialized reference.
type componentOffsets [ComponentFragment + 1]int

// writeComponents serializes r into out and returns the component offsets.
func (r *Reference) writeComponents(out outputBuffer) componentOffsets {
	var offs componentOffsets
	if r.hasScheme {
		out.writeString(r.scheme)
		out.writeByte(':')
	}
	if r.authority != nil {
		out.writeString("//")
		offs[ComponentAuthority] = out.len()
		r.authority.writeTo(out, &offs)
	} else {
		offs[ComponentAuthority] = out.len()
		offs[ComponentUserinfo] = out.len()
		offs[ComponentHost] = out.len()
		offs[ComponentPort] = out.len()
		if strings.HasPrefix(r.path, "//") {
			// RFC 3986, Section 5.2 erratum 4547.
			out.writeString("/.")
		}
	}
	offs[ComponentPath] = out.len()
	out.writeString(r.path)
	if r.hasQuery {
		out.writeByte('?')
	}
	offs[ComponentQuery] = out.len()
	out.writeString(r.query)
	if r.hasFragment {
		out.writeByte('#')
	}
	offs[ComponentFragment] = out.len()
	out.writeString(r.fragment)
	return offs
}

// writeTo serializes the authority into out. When offs is not nil, the
// offsets of the subcomponents are recorded in it.
func (a *Authority) writeTo(out outputBuffer, offs *componentOffsets) {
	record := func(c Component) {
		if offs != nil {
			offs[c] = out.len()
		}
	}
	record(ComponentUserinfo)
	if a.hasUserinfo {
		out.writeString(a.userinfo)
		out.writeByte('@')
	}
	record(ComponentHost)
	out.writeString(a.host)
	if a.hasPort {
		out.writeByte(':')
	}
	record(ComponentPort)
	out.writeString(a.port)
}
