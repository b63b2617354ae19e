// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cases_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/jspbname/internal/cases"
)

func TestLowerCamel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		str, want string
	}{
		{str: ""},
		{str: "_"},
		{str: "__"},

		{str: "foo", want: "foo"},
		{str: "fooBar", want: "fooBar"},
		{str: "FOO", want: "FOO"},
		{str: "foo_bar_baz", want: "fooBarBaz"},
		{str: "foo__bar", want: "fooBar"},
		{str: "foo_bar_", want: "fooBar"},
		{str: "_foo", want: "Foo"},
		{str: "foo_2", want: "foo2"},
		{str: "FOO_BAR", want: "FOOBAR"},
		{str: "über_ärger", want: "überÄrger"},
	}

	for _, test := range tests {
		t.Run(test.str, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, cases.LowerCamel(test.str))
		})
	}
}
