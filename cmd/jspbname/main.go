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

// The jspbname binary prints the JS names of everything declared in a set of
// proto files.
//
// It reads a FileDescriptorSet produced by protoc --descriptor_set_out (with
// --include_imports, so the set is self-contained) and writes one YAML
// document per requested file:
//
//	jspbname -descriptor_set_in=out.binpb [-namespaces=ns.yaml] [path ...]
//
// With no paths, every file in the set is printed.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/jspbname"
	"github.com/bufbuild/jspbname/reporter"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("jspbname", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		descSetIn  = flags.String("descriptor_set_in", "", "path to a serialized FileDescriptorSet (required)")
		namespaces = flags.String("namespaces", "", "path to a YAML file mapping proto packages to JS namespaces")
		par        = flags.Int("j", 0, "maximum number of files to process at once")
	)
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *descSetIn == "" {
		fmt.Fprintln(stderr, "jspbname: -descriptor_set_in is required")
		return 2
	}

	if err := tabulate(ctx, *descSetIn, *namespaces, *par, flags.Args(), stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "jspbname: %v\n", err)
		return 1
	}
	return 0
}

func tabulate(ctx context.Context, descSetIn, namespaces string, par int, paths []string, stdout, stderr io.Writer) error {
	files, err := loadFiles(descSetIn)
	if err != nil {
		return err
	}

	var namer jspbname.Namer
	if namespaces != "" {
		ns, err := loadNamespaces(namespaces)
		if err != nil {
			return err
		}
		namer.Packages = ns
	}

	if len(paths) == 0 {
		files.RangeFiles(func(fd protoreflect.FileDescriptor) bool {
			paths = append(paths, fd.Path())
			return true
		})
		slices.Sort(paths)
	}

	// The handler does not serialize warnings.
	var mu sync.Mutex
	t := jspbname.Tabulator{
		Namer:          namer,
		Resolver:       files,
		MaxParallelism: par,
		// Report every error, not just the first.
		Reporter: reporter.NewReporter(
			func(err reporter.ErrorWithPos) error {
				mu.Lock()
				defer mu.Unlock()
				fmt.Fprintln(stderr, err)
				return nil
			},
			func(err reporter.ErrorWithPos) {
				mu.Lock()
				defer mu.Unlock()
				fmt.Fprintf(stderr, "warning: %v\n", err)
			},
		),
	}
	tables, err := t.Tabulate(ctx, paths...)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	for _, table := range tables {
		if err := enc.Encode(table); err != nil {
			return err
		}
	}
	return enc.Close()
}

func loadFiles(path string) (*protoregistry.Files, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return jspbname.LoadDescriptorSet(f)
}

func loadNamespaces(path string) (*jspbname.Namespaces, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return jspbname.LoadNamespaces(f)
}
