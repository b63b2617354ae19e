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

package reporter

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// ErrNameResolution is a sentinel error that is returned when errors were
// encountered while computing names, but the configured ErrorReporter
// always returned nil.
var ErrNameResolution = errors.New("name resolution failed: inconsistent descriptors")

// SourcePos identifies a location in a proto source file. Line and Col are
// 1-based; they are zero when the file carries no source info for the
// element.
type SourcePos struct {
	Filename  string
	Line, Col int
}

func (p SourcePos) String() string {
	if p.Line <= 0 {
		return p.Filename
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Col)
}

// PositionOf returns the position where d is declared, using the source code
// info of its file when present.
func PositionOf(d protoreflect.Descriptor) SourcePos {
	file := d.ParentFile()
	if file == nil {
		return SourcePos{Filename: string(d.FullName())}
	}
	pos := SourcePos{Filename: file.Path()}
	loc := file.SourceLocations().ByDescriptor(d)
	if loc.Path != nil {
		pos.Line = loc.StartLine + 1
		pos.Col = loc.StartColumn + 1
	}
	return pos
}

// ErrorWithPos is an error about a proto source file that includes information
// about the location in the file that caused the error.
//
// The value of Error() will contain both the SourcePos and Underlying error.
// The value of Unwrap() will only be the Underlying error.
type ErrorWithPos interface {
	error
	GetPosition() SourcePos
	Unwrap() error
}

func Error(pos SourcePos, err error) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: err}
}

func Errorf(pos SourcePos, format string, args ...any) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithSourcePos struct {
	underlying error
	pos        SourcePos
}

func (e errorWithSourcePos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

// GetPosition implements the ErrorWithPos interface.
func (e errorWithSourcePos) GetPosition() SourcePos {
	return e.pos
}

// Unwrap implements the ErrorWithPos interface, supplying the underlying
// error. This error will not include location information.
func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSourcePos{}
