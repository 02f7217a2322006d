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

// Resolve resolves ref against base following RFC 3986, Section 5.2.2.
// base must be absolute; otherwise ErrBaseNotAbsolute is returned.
//
// Neither base nor ref is validated, and neither is the result.
func Resolve(base, ref *Reference) (*Reference, error) {
	if !base.hasScheme {
		return nil, ErrBaseNotAbsolute
	}

	// RFC 3986, Section 5.2.2: a reference with a scheme is used as is.
	// There is no special case for a scheme equal to the base one.
	if ref.hasScheme {
		t := *ref
		t.path = RemoveDotSegments(ref.path)
		return &t, nil
	}

	t := &Reference{
		scheme:      base.scheme,
		hasScheme:   true,
		fragment:    ref.fragment,
		hasFragment: ref.hasFragment,
	}

	switch {
	case ref.authority != nil:
		t.authority = ref.authority
		t.path = RemoveDotSegments(ref.path)
		t.query, t.hasQuery = ref.query, ref.hasQuery
	case ref.path == "":
		t.authority = base.authority
		t.path = base.path
		if ref.hasQuery {
			t.query, t.hasQuery = ref.query, true
		} else {
			t.query, t.hasQuery = base.query, base.hasQuery
		}
	case ref.path[0] == '/':
		t.authority = base.authority
		t.path = RemoveDotSegments(ref.path)
		t.query, t.hasQuery = ref.query, ref.hasQuery
	default:
		t.authority = base.authority
		t.path = RemoveDotSegments(merge(base, ref.path))
		t.query, t.hasQuery = ref.query, ref.hasQuery
	}
	return t, nil
}

// ResolveReference resolves ref against r. It is a method form of Resolve
// with r as the base.
func (r *Reference) ResolveReference(ref *Reference) (*Reference, error) {
	return Resolve(r, ref)
}

// Resolve parses ref with Parse and resolves it against r.
//
//	base := uri.MustParse("http://a/b/c/d;p?q")
//	target, _ := base.Resolve("../g") // http://a/b/g
func (r *Reference) Resolve(ref string) (*Reference, error) {
	if !r.hasScheme {
		return nil, ErrBaseNotAbsolute
	}
	parsed, err := Parse(ref)
	if err != nil {
		return nil, err
	}
	return Resolve(r, parsed)
}
