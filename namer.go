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
	"fmt"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/bufbuild/jspbname/internal/cases"
)

// Namer computes the identifiers that generated JS code uses to refer to
// messages, enums and extensions.
//
// The zero value is ready to use. A Namer holds no mutable state, so its
// methods are safe for concurrent use as long as its PackageResolver is.
type Namer struct {
	// Computes the JS package of a file. If nil, DefaultPackages is used.
	Packages PackageResolver
}

// QualifiedName returns the JS name of the given message type: the JS package
// of its file followed by the message's path of containing types and its own
// name. For example, message "a.b.Outer.Inner" in package "a.b" is
// "proto.a.b.Outer.Inner" with the default packages.
//
// If the message's full name does not start with its file's package (ending
// at a name boundary), a *ConsistencyError is returned.
func (n Namer) QualifiedName(md protoreflect.MessageDescriptor) (string, error) {
	return n.qualify(md)
}

// EnumQualifiedName is like [Namer.QualifiedName], but for enums.
func (n Namer) EnumQualifiedName(ed protoreflect.EnumDescriptor) (string, error) {
	return n.qualify(ed)
}

// ExtensionName returns the JS name of the extension, as passed to
// getExtension(). An extension declared inside a message is named relative
// to that message; one declared at file scope is named relative to the JS
// package of its file. The extension's own name is converted to lowerCamel.
func (n Namer) ExtensionName(xd protoreflect.ExtensionDescriptor) (string, error) {
	scope, err := extensionScope(xd)
	if err != nil {
		return "", err
	}
	if scope == nil {
		return n.fileScoped(xd), nil
	}
	name, err := n.QualifiedName(scope)
	if err != nil {
		return "", err
	}
	return name + "." + camelName(xd), nil
}

// ExtensionImport returns the JS name that must be imported (with
// goog.require) to use the extension. For an extension declared inside a
// message, that is the outermost message containing the declaration, not the
// immediate scope. For a file-scoped extension it is the same as
// [Namer.ExtensionName].
func (n Namer) ExtensionImport(xd protoreflect.ExtensionDescriptor) (string, error) {
	scope, err := extensionScope(xd)
	if err != nil {
		return "", err
	}
	if scope == nil {
		return n.fileScoped(xd), nil
	}
	return n.QualifiedName(topLevel(scope))
}

func (n Namer) packages() PackageResolver {
	if n.Packages == nil {
		return DefaultPackages
	}
	return n.Packages
}

func (n Namer) fileScoped(xd protoreflect.ExtensionDescriptor) string {
	return n.packages().JSPackage(xd.ParentFile()) + "." + camelName(xd)
}

// qualify replaces the proto package prefix of d's full name with the JS
// package of its file.
func (n Namer) qualify(d protoreflect.Descriptor) (string, error) {
	file := d.ParentFile()
	pkg := string(file.Package())
	rest, ok := strings.CutPrefix(string(d.FullName()), pkg)
	switch {
	case !ok:
		return "", &ConsistencyError{FullName: d.FullName(), Package: file.Package()}
	case pkg == "":
		rest = "." + rest
	case !strings.HasPrefix(rest, "."):
		// "a.b" is a string prefix of "a.bc.Foo", but not its package.
		return "", &ConsistencyError{FullName: d.FullName(), Package: file.Package()}
	}
	return n.packages().JSPackage(file) + rest, nil
}

// extensionScope returns the message xd is declared in, or nil if xd is
// declared at file scope.
func extensionScope(xd protoreflect.ExtensionDescriptor) (protoreflect.MessageDescriptor, error) {
	if !xd.IsExtension() {
		return nil, fmt.Errorf("%w: %s", ErrNotExtension, xd.FullName())
	}
	scope, _ := xd.Parent().(protoreflect.MessageDescriptor)
	return scope, nil
}

// topLevel follows containing types up from md to a message declared at
// file scope.
func topLevel(md protoreflect.MessageDescriptor) protoreflect.MessageDescriptor {
	for {
		parent, ok := md.Parent().(protoreflect.MessageDescriptor)
		if !ok {
			return md
		}
		md = parent
	}
}

// camelName converts a lower_underscore field name to lowerCamel.
func camelName(fd protoreflect.FieldDescriptor) string {
	return cases.LowerCamel(string(fd.Name()))
}

var defaultNamer Namer

// QualifiedName calls [Namer.QualifiedName] on a Namer using DefaultPackages.
func QualifiedName(md protoreflect.MessageDescriptor) (string, error) {
	return defaultNamer.QualifiedName(md)
}

// ExtensionName calls [Namer.ExtensionName] on a Namer using DefaultPackages.
func ExtensionName(xd protoreflect.ExtensionDescriptor) (string, error) {
	return defaultNamer.ExtensionName(xd)
}

// ExtensionImport calls [Namer.ExtensionImport] on a Namer using
// DefaultPackages.
func ExtensionImport(xd protoreflect.ExtensionDescriptor) (string, error) {
	return defaultNamer.ExtensionImport(xd)
}
