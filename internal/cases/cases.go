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

// Package cases converts lower_underscore identifiers to lowerCamel.
package cases

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LowerCamel converts a lower_underscore name to lowerCamel: underscores are
// dropped and the first rune of every word after the first is uppercased.
// No other rune changes, so a name without underscores comes back as is.
//
//	LowerCamel("foo_bar_baz") == "fooBarBaz"
//	LowerCamel("_foo") == "Foo"
func LowerCamel(str string) string {
	buf := new(strings.Builder)
	buf.Grow(len(str))
	first := true
	for word := range strings.SplitSeq(str, "_") {
		if !first && word != "" {
			r, n := utf8.DecodeRuneInString(word)
			buf.WriteRune(unicode.ToUpper(r))
			word = word[n:]
		}
		buf.WriteString(word)
		first = false
	}
	return buf.String()
}
