// This file is part of rslua-go - https://github.com/rslua-go/rslua
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/rslua-go/rslua/ast"
	"github.com/rslua-go/rslua/compiler"
	"github.com/rslua-go/rslua/opcode"
)

var debug bool

func atExit(err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}

func loadFixture(name string) (*ast.Block, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "open fixture %q", name)
	}
	defer f.Close()

	var block ast.Block
	if err := json.NewDecoder(f).Decode(&block); err != nil {
		return nil, errors.Wrapf(err, "decode fixture %q", name)
	}
	return &block, nil
}

func dumpSummary(p *opcode.Proto, w *os.File) {
	fmt.Fprintf(w, "stacksize %d, params %d, locals %d, consts %d, protos %d\n",
		p.StackSize, p.ParamCount, len(p.Locals), len(p.Consts), len(p.Protos))
	for i, k := range p.Consts {
		fmt.Fprintf(w, "  k%d\t%v\n", i, k)
	}
}

func main() {
	var err error
	defer func() { atExit(err) }()

	exampleName := flag.String("example", "", "compile the named built-in snippet, one of: "+fmt.Sprint(exampleNames()))
	fixtureName := flag.String("fixture", "", "compile the `file` as a JSON-encoded ast.Block")
	dump := flag.Bool("dump", false, "print the compiled Proto's register and constant summary before the listing")
	flag.BoolVar(&debug, "debug", false, "print errors with a full stack trace")
	flag.Parse()

	var block *ast.Block
	switch {
	case *exampleName != "" && *fixtureName != "":
		err = errors.New("-example and -fixture are mutually exclusive")
		return
	case *exampleName != "":
		var ok bool
		block, ok = examples[*exampleName]
		if !ok {
			err = errors.Errorf("no such example %q, want one of %v", *exampleName, exampleNames())
			return
		}
	case *fixtureName != "":
		block, err = loadFixture(*fixtureName)
		if err != nil {
			return
		}
	default:
		err = errors.New("one of -example or -fixture is required")
		return
	}

	p, cerr := compiler.Compile(block)
	if cerr != nil {
		err = cerr
		return
	}

	if *dump {
		dumpSummary(p, os.Stdout)
	}
	opcode.Disassemble(p, os.Stdout)
}
