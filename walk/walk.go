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

// Package walk visits the named elements of a file that generated code can
// refer to: messages, enums and extensions.
package walk

import (
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Descriptors calls fn for every message, enum and extension in file. Within
// the file and within each message, the messages come first, then the enums,
// then the extensions, each in declaration order. A message is visited just
// before the elements nested inside it. Fields, oneofs, enum values and
// services are not visited.
//
// If fn returns an error, the walk stops and that error is returned.
func Descriptors(file protoreflect.FileDescriptor, fn func(protoreflect.Descriptor) error) error {
	return walkScope(file, fn)
}

// scope is satisfied by both files and messages.
type scope interface {
	Messages() protoreflect.MessageDescriptors
	Enums() protoreflect.EnumDescriptors
	Extensions() protoreflect.ExtensionDescriptors
}

func walkScope(c scope, fn func(protoreflect.Descriptor) error) error {
	for i := range c.Messages().Len() {
		msg := c.Messages().Get(i)
		if err := fn(msg); err != nil {
			return err
		}
		if err := walkScope(msg, fn); err != nil {
			return err
		}
	}
	for i := range c.Enums().Len() {
		if err := fn(c.Enums().Get(i)); err != nil {
			return err
		}
	}
	for i := range c.Extensions().Len() {
		if err := fn(c.Extensions().Get(i)); err != nil {
			return err
		}
	}
	return nil
}
