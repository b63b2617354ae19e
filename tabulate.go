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
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/tidwall/btree"
	"golang.org/x/sync/semaphore"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/bufbuild/jspbname/reporter"
	"github.com/bufbuild/jspbname/walk"
)

// SymbolKind is the kind of element a Symbol names.
type SymbolKind int

const (
	SymbolKindMessage SymbolKind = iota + 1
	SymbolKindEnum
	SymbolKindExtension
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolKindMessage:
		return "message"
	case SymbolKindEnum:
		return "enum"
	case SymbolKindExtension:
		return "extension"
	default:
		return fmt.Sprintf("SymbolKind(%d)", int(k))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (k SymbolKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Symbol is an element of a proto file along with the names generated JS
// code uses for it.
type Symbol struct {
	FullName protoreflect.FullName `yaml:"full_name"`
	Kind     SymbolKind            `yaml:"kind"`
	// The qualified JS name of the element.
	Name string `yaml:"name"`
	// The JS name to goog.require in order to use the element. For messages
	// and enums this is the outermost message enclosing them, or the element
	// itself when it is declared at file scope.
	Import string `yaml:"import"`
}

// Table holds the names of everything declared in one file.
type Table struct {
	File string `yaml:"file"`
	// The JS package of the file.
	Package string `yaml:"package"`
	// In the order of walk.Descriptors: per scope, messages, then enums, then
	// extensions.
	Symbols []Symbol `yaml:"symbols,omitempty"`
	// The sorted, de-duplicated imports needed by the file's extensions.
	Requires []string `yaml:"requires,omitempty"`
}

// Tabulator computes name tables for whole files.
type Tabulator struct {
	// Computes the names. The zero value uses DefaultPackages.
	Namer Namer
	// Resolves paths into file descriptors. This field is required.
	Resolver Resolver
	// The maximum number of files to process at once. If unspecified or set
	// to a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified, tabulation fails
	// on the first error and warnings are ignored.
	//
	// If the reporter returns nil for an error, the offending element is
	// left out of its table, processing continues, and Tabulate returns
	// reporter.ErrNameResolution once all files are done.
	Reporter reporter.Reporter
}

var errNoPackage = errors.New("file has no package; its names are declared directly in the JS package")

// Tabulate computes a table for each of the given paths. Tables are returned
// in the same order as paths; see [Table] for the order of symbols.
func (t *Tabulator) Tabulate(ctx context.Context, paths ...string) ([]Table, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := t.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	e := executor{
		t:       t,
		h:       reporter.NewHandler(t.Reporter),
		s:       semaphore.NewWeighted(int64(par)),
		results: map[string]*result{},
	}

	results := make([]*result, len(paths))
	for i, path := range paths {
		results[i] = e.tabulate(ctx, path)
	}

	tables := make([]Table, len(paths))
	for i, r := range results {
		select {
		case <-r.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if r.err != nil {
			return nil, r.err
		}
		tables[i] = r.res
	}

	if err := e.h.Error(); err != nil {
		return nil, err
	}
	return tables, nil
}

type result struct {
	ready chan struct{}
	res   Table
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(table Table) {
	r.res = table
	close(r.ready)
}

type executor struct {
	t *Tabulator
	h *reporter.Handler
	s *semaphore.Weighted

	mu      sync.Mutex
	results map[string]*result
}

func (e *executor) tabulate(ctx context.Context, path string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[path]
	if r != nil {
		return r
	}

	r = &result{
		ready: make(chan struct{}),
	}
	e.results[path] = r
	go e.doTabulate(ctx, path, r)
	return r
}

func (e *executor) doTabulate(ctx context.Context, path string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	file, err := e.t.Resolver.FindFileByPath(path)
	if err != nil {
		r.fail(fmt.Errorf("could not resolve %q: %w", path, err))
		return
	}
	if file.Path() != path {
		r.fail(fmt.Errorf("search result for %q returned descriptor for %q", path, file.Path()))
		return
	}

	table, err := e.table(file)
	if err != nil {
		r.fail(err)
		return
	}
	r.complete(table)
}

func (e *executor) table(file protoreflect.FileDescriptor) (Table, error) {
	namer := e.t.Namer
	table := Table{
		File:    file.Path(),
		Package: namer.packages().JSPackage(file),
	}
	if file.Package() == "" {
		e.h.HandleWarning(reporter.PositionOf(file), errNoPackage)
	}

	var requires btree.Set[string]
	err := walk.Descriptors(file, func(d protoreflect.Descriptor) error {
		sym, err := symbolFor(namer, d)
		switch {
		case errors.Is(err, ErrInconsistentDescriptor):
			return e.h.HandleError(reporter.Error(reporter.PositionOf(d), err))
		case err != nil:
			return err
		}
		if sym.Kind == SymbolKindExtension {
			requires.Insert(sym.Import)
		}
		table.Symbols = append(table.Symbols, sym)
		return nil
	})
	if err != nil {
		return Table{}, err
	}

	requires.Scan(func(name string) bool {
		table.Requires = append(table.Requires, name)
		return true
	})
	return table, nil
}

func symbolFor(n Namer, d protoreflect.Descriptor) (Symbol, error) {
	sym := Symbol{FullName: d.FullName()}
	var err error
	switch d := d.(type) {
	case protoreflect.MessageDescriptor:
		sym.Kind = SymbolKindMessage
		if sym.Name, err = n.QualifiedName(d); err != nil {
			return Symbol{}, err
		}
		sym.Import, err = n.QualifiedName(topLevel(d))
	case protoreflect.EnumDescriptor:
		sym.Kind = SymbolKindEnum
		if sym.Name, err = n.EnumQualifiedName(d); err != nil {
			return Symbol{}, err
		}
		sym.Import = sym.Name
		if parent, ok := d.Parent().(protoreflect.MessageDescriptor); ok {
			sym.Import, err = n.QualifiedName(topLevel(parent))
		}
	case protoreflect.ExtensionDescriptor:
		sym.Kind = SymbolKindExtension
		if sym.Name, err = n.ExtensionName(d); err != nil {
			return Symbol{}, err
		}
		sym.Import, err = n.ExtensionImport(d)
	default:
		return Symbol{}, fmt.Errorf("unexpected descriptor %s of type %T", d.FullName(), d)
	}
	if err != nil {
		return Symbol{}, err
	}
	return sym, nil
}
