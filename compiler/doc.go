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

// Package compiler lowers an ast.Block into an opcode.Proto: register
// allocation, constant folding, expression and statement codegen, and jump
// patching for comparisons and short-circuit and/or.
//
// Compilation is single-pass and fail-fast: the first CompileError aborts
// and the partial Proto is discarded. There is no optimizer beyond the
// constant folding described in fold.go.
package compiler
