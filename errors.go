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

	"google.golang.org/protobuf/reflect/protoreflect"
)

var (
	// ErrInconsistentDescriptor is matched by every *ConsistencyError.
	ErrInconsistentDescriptor = errors.New("inconsistent descriptor")

	// ErrNotExtension is returned when an extension operation is given a
	// normal field.
	ErrNotExtension = errors.New("field is not an extension")
)

// ConsistencyError is returned when a descriptor's full name does not start
// with the package of the file that declares it. This means the descriptor
// model is corrupt; the name cannot be computed and no fallback is attempted.
type ConsistencyError struct {
	FullName protoreflect.FullName
	Package  protoreflect.FullName
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("internal consistency error: expected %q to start with package %q", e.FullName, e.Package)
}

// Is lets errors.Is match e against ErrInconsistentDescriptor.
func (e *ConsistencyError) Is(target error) bool {
	return target == ErrInconsistentDescriptor
}
