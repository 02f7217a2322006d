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

// Relativize returns a reference that resolves against r to target, so that
// r.ResolveReference(ref) equals target. Both r and target must be absolute.
//
// The result is the shortest of the forms tried, in order:
//   - target itself, when the scheme or the authority differs;
//   - an empty reference, or a query-only one, when the paths are equal;
//   - a network-path reference ("//host?q") when the target path is empty;
//   - a relative path built from the common directory prefix of both paths,
//     using "../" to climb out of the base directory;
//   - an absolute path.
//
// The query and fragment of target are always kept. Relativize fails with
// ErrNotRelativizable when the target path contains "." or ".." segments,
// since resolution always removes them.
func (r *Reference) Relativize(target *Reference) (*Reference, error) {
	if !r.hasScheme {
		return nil, ErrBaseNotAbsolute
	}
	if !target.hasScheme {
		return nil, ErrTargetNotAbsolute
	}
	if hasDotSegments(target.path) {
		return nil, ErrNotRelativizable
	}

	if target.scheme != r.scheme || !target.authority.Equal(r.authority) {
		return target.clone(), nil
	}

	ref := &Reference{
		query:       target.query,
		hasQuery:    target.hasQuery,
		fragment:    target.fragment,
		hasFragment: target.hasFragment,
	}

	if target.path == r.path {
		if target.hasQuery == r.hasQuery && target.query == r.query {
			ref.query, ref.hasQuery = "", false
			return ref, nil
		}
		if target.hasQuery {
			return ref, nil
		}
		// The target drops the base query: a non-empty path is required.
	}

	if target.path == "" || strings.HasPrefix(target.path, "//") {
		if target.authority == nil {
			return target.clone(), nil
		}
		ref.authority = target.authority
		ref.path = target.path
		return ref, nil
	}

	relPath, ok := relativePath(r, target.path)
	isAbsolutePath := target.path[0] == '/'
	switch {
	case ok && (!isAbsolutePath || len(relPath) <= len(target.path)):
		ref.path = relPath
	case isAbsolutePath:
		ref.path = target.path
	default:
		return target.clone(), nil
	}
	return ref, nil
}

// relativePath returns a relative path that merges with the path of base
// into targetPath. It returns false when no such path exists.
func relativePath(base *Reference, targetPath string) (string, bool) {
	if hasDotSegments(base.path) {
		return "", false
	}

	baseDir := base.path[:strings.LastIndexByte(base.path, '/')+1]
	if base.authority != nil && base.path == "" {
		baseDir = "/"
	}

	var b strings.Builder
	if strings.HasPrefix(targetPath, baseDir) {
		rest := targetPath[len(baseDir):]
		firstSegment, _, _ := strings.Cut(rest, "/")
		switch {
		case rest == "":
			return ".", true
		case firstSegment == "" || strings.ContainsRune(firstSegment, ':'):
			// Would be read as an absolute path or a scheme.
			b.WriteString("./")
		}
		b.WriteString(rest)
		return b.String(), true
	}

	// Climbing with ".." out of a rootless path would leave a leading "/".
	if baseDir == "" || baseDir[0] != '/' || targetPath[0] != '/' {
		return "", false
	}

	var baseSegs []string
	if baseDir != "/" {
		baseSegs = strings.Split(baseDir[1:len(baseDir)-1], "/")
	}
	targetSegs := strings.Split(targetPath[1:], "/")

	common := 0
	for common < len(baseSegs) && common < len(targetSegs)-1 && baseSegs[common] == targetSegs[common] {
		common++
	}
	for range len(baseSegs) - common {
		b.WriteString("../")
	}
	b.WriteString(strings.Join(targetSegs[common:], "/"))
	return b.String(), true
}

// clone returns a shallow copy of r. The authority is shared as it is
// never mutated.
func (r *Reference) clone() *Reference {
	c := *r
	return &c
}
