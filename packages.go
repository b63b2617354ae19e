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

package jspbname

import (
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/reflect/protoreflect"
	"gopkg.in/yaml.v3"
)

// PackageResolver computes the JS package (the namespace that generated code
// for a file lives under) for a proto file.
//
// The result must not end in ".": the Namer joins it to the rest of a name
// with a separator, inserting one itself for files with no package.
//
// Implementations must be safe for concurrent use.
type PackageResolver interface {
	JSPackage(file protoreflect.FileDescriptor) string
}

// PackageResolverFunc adapts a function to the PackageResolver interface.
type PackageResolverFunc func(protoreflect.FileDescriptor) string

var _ PackageResolver = PackageResolverFunc(nil)

func (f PackageResolverFunc) JSPackage(file protoreflect.FileDescriptor) string {
	return f(file)
}

// DefaultPackages places every file under the "proto" namespace: a file in
// package "a.b" resolves to "proto.a.b", and a file with no package resolves
// to "proto".
var DefaultPackages PackageResolver = PackageResolverFunc(defaultJSPackage)

func defaultJSPackage(file protoreflect.FileDescriptor) string {
	if pkg := file.Package(); pkg != "" {
		return "proto." + string(pkg)
	}
	return "proto"
}

// Namespaces overrides the JS package of selected proto packages.
//
// A file whose package has an entry in Overrides resolves to that entry;
// all other files resolve through Fallback, or DefaultPackages if Fallback
// is nil. The empty string key applies to files with no package.
type Namespaces struct {
	Overrides map[string]string `yaml:"namespaces"`
	Fallback  PackageResolver   `yaml:"-"`
}

var _ PackageResolver = (*Namespaces)(nil)

func (n *Namespaces) JSPackage(file protoreflect.FileDescriptor) string {
	if ns, ok := n.Overrides[string(file.Package())]; ok {
		return ns
	}
	if n.Fallback != nil {
		return n.Fallback.JSPackage(file)
	}
	return DefaultPackages.JSPackage(file)
}

// LoadNamespaces reads a YAML namespace configuration of the form
//
//	namespaces:
//	  foo.bar: my.app.foo
//
// Unknown keys are rejected, as are empty namespaces.
func LoadNamespaces(r io.Reader) (*Namespaces, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	ns := new(Namespaces)
	if err := dec.Decode(ns); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not parse namespaces: %w", err)
	}
	for pkg, js := range ns.Overrides {
		if js == "" {
			return nil, fmt.Errorf("namespace for package %q is empty", pkg)
		}
	}
	return ns, nil
}
