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

package compiler

import (
	"github.com/rslua-go/rslua/ast"
	"github.com/rslua-go/rslua/opcode"
)

// Compiler walks a Block and lowers it into a Proto. It keeps a stack of
// proto contexts so nested function bodies (not yet part of this core, but
// anticipated by Proto.Protos) would push and pop their own register file
// independently of the enclosing one.
type Compiler struct {
	stack []*opcode.ProtoContext
}

// New returns a Compiler ready to compile a single top-level block.
func New() *Compiler {
	return &Compiler{}
}

func (c *Compiler) context() *opcode.ProtoContext {
	return c.stack[len(c.stack)-1]
}

func (c *Compiler) proto() *opcode.Proto {
	return c.context().Proto
}

func (c *Compiler) pushProto() *opcode.ProtoContext {
	pc := opcode.NewProtoContext()
	c.stack = append(c.stack, pc)
	return pc
}

func (c *Compiler) popProto() *opcode.Proto {
	pc := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return pc.Proto
}

// Compile lowers block into a standalone Proto. The returned Proto always
// ends in a bare Return covering no values, matching what a Lua chunk
// implicitly does when control falls off its end.
func Compile(block *ast.Block) (*opcode.Proto, error) {
	c := New()
	return c.Compile(block)
}

// Compile is the instance form of the package-level Compile: useful when a
// caller wants to reuse a Compiler across several independent blocks, since
// each call pushes and pops its own fresh proto context.
func (c *Compiler) Compile(block *ast.Block) (*opcode.Proto, error) {
	c.pushProto()
	defer c.popProto()

	for i := range block.Stats {
		if err := c.stat(&block.Stats[i]); err != nil {
			return nil, err
		}
	}

	p := c.proto()
	p.CodeReturn(0, 0)
	return p, nil
}

// stmtVisitor dispatches a statement to its lowering method. *Compiler
// implements it directly rather than through a reflection-driven walker,
// the same way asm.parser drives its own state machine by hand.
type stmtVisitor interface {
	localStat(names []string, exprs []*ast.Expr) error
	assignStat(left []ast.Assignable, right []*ast.Expr) error
}

func (c *Compiler) stat(s *ast.Stmt) error {
	var v stmtVisitor = c
	switch s.Kind {
	case ast.StmtLocal:
		return v.localStat(s.Names, s.Exprs)
	case ast.StmtAssign:
		return v.assignStat(s.Left, s.Right)
	default:
		return newCompileError(0, "unsupported statement kind")
	}
}
