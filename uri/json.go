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
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// MarshalJSON implements the json.Marshaler interface, encoding the
// reference as a JSON string.
func (r *Reference) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	e.Str(r.String())
	return e.Bytes(), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes a JSON
// string and parses it with Parse.
func (r *Reference) UnmarshalJSON(data []byte) error {
	s, err := jx.DecodeBytes(data).Str()
	if err != nil {
		return errors.Wrap(err, "decode URI reference")
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*r = *parsed
	return nil
}
