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

import "github.com/rslua-go/rslua/ast"

// adjustAssign reports how many of exprs line up one-to-one with the
// numLeft assignment targets, and validates any exprs beyond that count:
// this language has no multi-value expressions, so a longer RHS simply
// evaluates (and discards) its extra entries, and a shorter RHS needs the
// remaining targets padded with nil.
func adjustAssign(numLeft int, exprs []*ast.Expr) (matched int, err error) {
	matched = numLeft
	if len(exprs) < matched {
		matched = len(exprs)
	}
	for _, e := range exprs[matched:] {
		if e.HasMultRet() {
			return 0, newCompileError(e.Line, "multiple return values are not supported")
		}
	}
	return matched, nil
}

// localStat declares numLeft new locals, in order, each taking the next
// register above the current top. Exprs matching a name are evaluated
// straight into that local's register; missing ones are padded with a
// single LoadNil covering the whole tail; any exprs beyond numLeft are
// still evaluated, for their compile-time checks, then discarded.
func (c *Compiler) localStat(names []string, exprs []*ast.Expr) error {
	matched, err := adjustAssign(len(names), exprs)
	if err != nil {
		return err
	}

	for i := 0; i < matched; i++ {
		reg := c.context().ReserveRegs(1)
		if _, err := c.exprAndSave(exprs[i], &reg); err != nil {
			return err
		}
		c.proto().AddLocal(names[i])
	}

	if pad := len(names) - matched; pad > 0 {
		start := c.context().ReserveRegs(uint32(pad))
		c.proto().CodeNil(start, uint32(pad))
		for i := matched; i < len(names); i++ {
			c.proto().AddLocal(names[i])
		}
	}

	for i := matched; i < len(exprs); i++ {
		reg := c.context().ReserveRegs(1)
		if _, err := c.exprAndSave(exprs[i], &reg); err != nil {
			return err
		}
		c.context().FreeReg(1)
	}

	return nil
}

// assignStat lowers a (possibly parallel) assignment. A single target with
// a single expression writes straight into the target's register. A
// parallel assignment — the case that matters for swaps like "a, b = b,
// a" — stages every RHS value but the last into a fresh temp register
// first, left to right, before writing any of them back: this is what
// keeps a read of a target on the RHS from observing another target's
// already-updated value. When every target has a matching expression
// (no padding, nothing discarded), the last expression is evaluated
// straight into its own target instead of through a temp: by the time
// it's evaluated, every other target's old value has already been read
// (staged into a temp, or is about to be read from a register this write
// doesn't touch), so there's nothing left for it to clobber. The
// remaining temps are then moved into their targets in reverse order,
// since the last-reserved temp sits on top of the register stack and
// must be consumed (and freed) before the ones below it.
func (c *Compiler) assignStat(left []ast.Assignable, right []*ast.Expr) error {
	targets := make([]uint32, len(left))
	for i, a := range left {
		if a.Kind != ast.AssignName {
			return newCompileError(0, "only plain name assignment targets are supported")
		}
		idx, ok := c.proto().ResolveLocal(a.Name)
		if !ok {
			return newCompileError(0, "unresolved name %q (globals and upvalues are not supported)", a.Name)
		}
		targets[i] = idx
	}

	if len(targets) == 1 && len(right) == 1 {
		reg := targets[0]
		_, err := c.exprAndSave(right[0], &reg)
		return err
	}

	matched, err := adjustAssign(len(targets), right)
	if err != nil {
		return err
	}

	// directLast is the exact-arity case: every target has a matching
	// expression, so the last one can land straight in its target.
	directLast := matched == len(right) && matched == len(targets)
	staged := matched
	if directLast {
		staged--
	}

	temps := make([]uint32, len(targets))
	for i := 0; i < staged; i++ {
		reg := c.context().ReserveRegs(1)
		if _, err := c.exprAndSave(right[i], &reg); err != nil {
			return err
		}
		temps[i] = reg
	}

	if directLast {
		last := matched - 1
		if _, err := c.exprAndSave(right[last], &targets[last]); err != nil {
			return err
		}
	}

	if pad := len(targets) - matched; pad > 0 {
		start := c.context().ReserveRegs(uint32(pad))
		c.proto().CodeNil(start, uint32(pad))
		for i := matched; i < len(targets); i++ {
			temps[i] = start + uint32(i-matched)
		}
	}

	for i := matched; i < len(right); i++ {
		reg := c.context().ReserveRegs(1)
		if _, err := c.exprAndSave(right[i], &reg); err != nil {
			return err
		}
		c.context().FreeReg(1)
	}

	writeBackFrom := len(targets) - 1
	if directLast {
		writeBackFrom--
	}
	for i := writeBackFrom; i >= 0; i-- {
		c.proto().CodeMove(targets[i], temps[i])
		c.context().FreeReg(1)
	}

	return nil
}
