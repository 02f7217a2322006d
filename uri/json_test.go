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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type document struct {
	Link *Reference `json:"link"`
}

func TestJSON(t *testing.T) {
	in := document{Link: MustParse("http://a/b?q=x&y=%22z%22#f")}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"link":"http://a/b?q=x&y=%22z%22#f"}`, string(data))

	var out document
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, in.Link.Equal(out.Link))
}

func TestJSONErrors(t *testing.T) {
	var out document
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"link":"http://[xyz]/"}`), &out), ErrInvalidHost)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"link":"http://[/"}`), &out), ErrMalformedAuthority)
	assert.Error(t, json.Unmarshal([]byte(`{"link":123}`), &out))
}
