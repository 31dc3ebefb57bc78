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

// Package lexer scans Lua-like source text into a flat token stream.
//
// The lexer is a single-pass, fail-fast hand-written scanner: numeric
// literals (decimal/hex, integer/float), short strings with the usual
// backslash escapes, long bracketed strings/comments ([=*[ ... ]=*]), and
// the operator set of Lua 5.3. It does not build an AST; see package ast and
// package compiler for that.
//
// Run returns the whole token stream at once rather than an iterator,
// mirroring the reference implementation this core was distilled from: the
// downstream parser (out of scope here) consumes the slice positionally.
package lexer
