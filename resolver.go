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
	"io"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Resolver locates the descriptor for a proto file by its path.
type Resolver interface {
	FindFileByPath(string) (protoreflect.FileDescriptor, error)
}

var _ Resolver = (*protoregistry.Files)(nil)

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(string) (protoreflect.FileDescriptor, error)

var _ Resolver = ResolverFunc(nil)

func (f ResolverFunc) FindFileByPath(path string) (protoreflect.FileDescriptor, error) {
	return f(path)
}

// CompositeResolver tries each of its resolvers in order and returns the
// first file found. If none finds the file, the first error is returned.
type CompositeResolver []Resolver

var _ Resolver = CompositeResolver(nil)

func (f CompositeResolver) FindFileByPath(path string) (protoreflect.FileDescriptor, error) {
	if len(f) == 0 {
		return nil, protoregistry.NotFound
	}
	var firstErr error
	for _, res := range f {
		r, err := res.FindFileByPath(path)
		if err == nil {
			return r, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

// LoadDescriptorSet reads a serialized FileDescriptorSet, such as the output
// of protoc --descriptor_set_out, and links its files. The set must be
// self-contained: every import must be present in it.
func LoadDescriptorSet(r io.Reader) (*protoregistry.Files, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var fds descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(data, &fds); err != nil {
		return nil, fmt.Errorf("could not parse descriptor set: %w", err)
	}
	files, err := protodesc.NewFiles(&fds)
	if err != nil {
		return nil, fmt.Errorf("could not link descriptor set: %w", err)
	}
	return files, nil
}
