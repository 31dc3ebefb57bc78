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

// The luacc command is a showcase for the package github.com/rslua-go/rslua/compiler:
// it lowers an AST fixture into a Proto and prints its disassembly.
//
// There is no parser in this tree, so input comes from one of two places:
// a named built-in snippet (-example) or a JSON-encoded ast.Block fixture
// (-fixture). Exactly one of the two must be given.
//
//	luacc -example swap
//	luacc -fixture testdata/swap.json
//	luacc -example swap -dump
//
// The -dump flag additionally prints the compiled Proto's register and
// constant-table summary above the instruction listing.
package main
