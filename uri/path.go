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

// RemoveDotSegments implements the "Remove Dot Segments" algorithm from
// RFC 3986, Section 5.2.4. It interprets and removes the "." and ".."
// segments of path.
//
// The algorithm is applied literally, including to relative paths: a ".."
// that climbs above the first segment leaves a leading slash ("a/../b"
// gives "/b"). Input and output buffers are substrings of path and a
// single byte slice, so the cost is linear in the length of path.
func RemoveDotSegments(path string) string {
	in := path
	out := make([]byte, 0, len(path))

	for in != "" {
		switch {
		// Rule 2A: "../" or "./"
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		// Rule 2B: "/./" or "/."
		case strings.HasPrefix(in, "/./"):
			in = in[2:]
		case in == "/.":
			in = "/"
		// Rule 2C: "/../" or "/.."
		case strings.HasPrefix(in, "/../"):
			in = in[3:]
			out = removeLastSegment(out)
		case in == "/..":
			in = "/"
			out = removeLastSegment(out)
		// Rule 2D: "." or ".."
		case in == "." || in == "..":
			in = ""
		// Rule 2E: move the first segment, with its leading "/" if any.
		default:
			end := strings.IndexByte(in[1:], '/') + 1
			if end == 0 {
				end = len(in)
			}
			out = append(out, in[:end]...)
			in = in[end:]
		}
	}
	return string(out)
}

// removeLastSegment removes the last segment of out and its preceding "/",
// if any.
func removeLastSegment(out []byte) []byte {
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] == '/' {
			return out[:i]
		}
	}
	return out[:0]
}

// merge merges a relative-path reference with the path of base as defined
// in RFC 3986, Section 5.2.3.
func merge(base *Reference, refPath string) string {
	if base.authority != nil && base.path == "" {
		return "/" + refPath
	}
	lastSlash := strings.LastIndexByte(base.path, '/')
	return base.path[:lastSlash+1] + refPath
}

// hasDotSegments reports whether path contains a "." or ".." segment.
func hasDotSegments(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		if segment == "." || segment == ".." {
			return true
		}
	}
	return false
}
