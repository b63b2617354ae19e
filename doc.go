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

// Package jspbname computes the fully-qualified identifiers that generated
// JavaScript (JSPB) code uses to refer to protobuf messages, enums and
// extensions.
//
// Names are computed from linked descriptors (see the protoreflect package).
// A message "a.b.Outer.Inner" declared in package "a.b" is referred to as
// "proto.a.b.Outer.Inner": the JS package of its file, followed by the part
// of its full name that comes after the proto package. Extensions are named
// relative to the message they are declared in, or to the JS package of
// their file when declared at file scope, with their own name converted to
// lowerCamel:
//
//	namer := jspbname.Namer{}
//	name, err := namer.ExtensionName(ext)    // e.g. "proto.a.b.Outer.myExt"
//	imp, err := namer.ExtensionImport(ext)   // e.g. "proto.a.b.Outer"
//
// The JS package of a file comes from a PackageResolver. DefaultPackages
// prefixes the proto package with "proto"; Namespaces overrides it for
// selected packages.
//
// # Consistency errors
//
// A descriptor whose full name does not start with the package of its file
// cannot be named. Rather than guess, the Namer returns a *ConsistencyError,
// which matches ErrInconsistentDescriptor. Callers should treat it as fatal
// for the file being generated.
//
// # Tables
//
// A Tabulator computes the names of everything declared in a set of files,
// in parallel, reporting consistency errors through a reporter.Reporter with
// the position of the offending element.
package jspbname
