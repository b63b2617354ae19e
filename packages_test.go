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

package jspbname_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/bufbuild/jspbname"
)

func TestDefaultPackages(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "proto.a.b", jspbname.DefaultPackages.JSPackage(buildFile(t, testFileProto())))
	assert.Equal(t, "proto", jspbname.DefaultPackages.JSPackage(buildFile(t, noPackageFileProto())))
}

func TestNamespaces(t *testing.T) {
	t.Parallel()
	withPkg := buildFile(t, testFileProto())
	noPkg := buildFile(t, noPackageFileProto())

	ns := &jspbname.Namespaces{
		Overrides: map[string]string{"": "global"},
	}
	assert.Equal(t, "global", ns.JSPackage(noPkg))
	assert.Equal(t, "proto.a.b", ns.JSPackage(withPkg))

	ns.Fallback = jspbname.PackageResolverFunc(func(file protoreflect.FileDescriptor) string {
		return "fallback." + string(file.Package())
	})
	assert.Equal(t, "fallback.a.b", ns.JSPackage(withPkg))
}

func TestLoadNamespaces(t *testing.T) {
	t.Parallel()

	ns, err := jspbname.LoadNamespaces(strings.NewReader(`
namespaces:
  a.b: my.app
  "": global
`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a.b": "my.app", "": "global"}, ns.Overrides)
	assert.Equal(t, "my.app", ns.JSPackage(buildFile(t, testFileProto())))

	ns, err = jspbname.LoadNamespaces(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ns.Overrides)

	_, err = jspbname.LoadNamespaces(strings.NewReader("packages:\n  a.b: x\n"))
	assert.Error(t, err)

	_, err = jspbname.LoadNamespaces(strings.NewReader("namespaces:\n  a.b: \"\"\n"))
	assert.ErrorContains(t, err, `namespace for package "a.b" is empty`)
}
