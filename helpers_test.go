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
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/bufbuild/jspbname/walk"
)

// testFileProto describes a/b/test.proto:
//
//	package a.b;
//	message Base { optional int32 id = 1; extensions 100 to 199; }
//	message Outer {
//	  message Inner {
//	    message Deep { extend Base { optional int32 deep_ext = 103; } }
//	    extend Base { optional int32 inner_ext = 102; }
//	  }
//	  enum Color { RED = 0; }
//	  extend Base { optional int32 outer_ext = 101; }
//	}
//	extend Base { optional string foo_bar_baz = 100; }
func testFileProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("a/b/test.proto"),
		Package: proto.String("a.b"),
		Syntax:  proto.String("proto2"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name:  proto.String("Base"),
				Field: []*descriptorpb.FieldDescriptorProto{field("id", 1, "")},
				ExtensionRange: []*descriptorpb.DescriptorProto_ExtensionRange{
					{Start: proto.Int32(100), End: proto.Int32(200)},
				},
			},
			{
				Name: proto.String("Outer"),
				NestedType: []*descriptorpb.DescriptorProto{
					{
						Name: proto.String("Inner"),
						NestedType: []*descriptorpb.DescriptorProto{
							{
								Name:      proto.String("Deep"),
								Extension: []*descriptorpb.FieldDescriptorProto{field("deep_ext", 103, ".a.b.Base")},
							},
						},
						Extension: []*descriptorpb.FieldDescriptorProto{field("inner_ext", 102, ".a.b.Base")},
					},
				},
				EnumType: []*descriptorpb.EnumDescriptorProto{
					{
						Name: proto.String("Color"),
						Value: []*descriptorpb.EnumValueDescriptorProto{
							{Name: proto.String("RED"), Number: proto.Int32(0)},
						},
					},
				},
				Extension: []*descriptorpb.FieldDescriptorProto{field("outer_ext", 101, ".a.b.Base")},
			},
		},
		Extension: []*descriptorpb.FieldDescriptorProto{
			{
				Name:     proto.String("foo_bar_baz"),
				Number:   proto.Int32(100),
				Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
				Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
				Extendee: proto.String(".a.b.Base"),
			},
		},
	}
}

// noPackageFileProto describes nopkg.proto, which has no package:
//
//	message Foo { message Bar {} extensions 1 to 9; }
//	extend Foo { optional int32 my_ext = 1; }
func noPackageFileProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:   proto.String("nopkg.proto"),
		Syntax: proto.String("proto2"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name:       proto.String("Foo"),
				NestedType: []*descriptorpb.DescriptorProto{{Name: proto.String("Bar")}},
				ExtensionRange: []*descriptorpb.DescriptorProto_ExtensionRange{
					{Start: proto.Int32(1), End: proto.Int32(10)},
				},
			},
		},
		Extension: []*descriptorpb.FieldDescriptorProto{field("my_ext", 1, ".Foo")},
	}
}

func field(name string, number int32, extendee string) *descriptorpb.FieldDescriptorProto {
	fld := &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum(),
	}
	if extendee != "" {
		fld.Extendee = proto.String(extendee)
	}
	return fld
}

func buildFile(t *testing.T, fdp *descriptorpb.FileDescriptorProto) protoreflect.FileDescriptor {
	t.Helper()
	fd, err := protodesc.NewFile(fdp, new(protoregistry.Files))
	require.NoError(t, err)
	return fd
}

func buildFiles(t *testing.T, fdps ...*descriptorpb.FileDescriptorProto) *protoregistry.Files {
	t.Helper()
	files, err := protodesc.NewFiles(&descriptorpb.FileDescriptorSet{File: fdps})
	require.NoError(t, err)
	return files
}

func lookup(t *testing.T, fd protoreflect.FileDescriptor, name protoreflect.FullName) protoreflect.Descriptor {
	t.Helper()
	var found protoreflect.Descriptor
	err := walk.Descriptors(fd, func(d protoreflect.Descriptor) error {
		if d.FullName() == name {
			found = d
		}
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, found, "no descriptor named %s", name)
	return found
}

func message(t *testing.T, fd protoreflect.FileDescriptor, name protoreflect.FullName) protoreflect.MessageDescriptor {
	t.Helper()
	d := lookup(t, fd, name)
	md, ok := d.(protoreflect.MessageDescriptor)
	require.True(t, ok, "%s is a %T", name, d)
	return md
}

func extension(t *testing.T, fd protoreflect.FileDescriptor, name protoreflect.FullName) protoreflect.ExtensionDescriptor {
	t.Helper()
	d := lookup(t, fd, name)
	xd, ok := d.(protoreflect.ExtensionDescriptor)
	require.True(t, ok, "%s is a %T", name, d)
	return xd
}

// renamedMessage is a message whose full name disagrees with its file's
// package, which a linked descriptor never does.
type renamedMessage struct {
	protoreflect.MessageDescriptor
	fullName protoreflect.FullName
}

func (m renamedMessage) FullName() protoreflect.FullName {
	return m.fullName
}

// rescopedExtension is an extension declared in a different message than
// the one its descriptor says.
type rescopedExtension struct {
	protoreflect.ExtensionDescriptor
	parent protoreflect.Descriptor
}

func (x rescopedExtension) Parent() protoreflect.Descriptor {
	return x.parent
}
