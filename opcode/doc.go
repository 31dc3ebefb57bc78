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

// Package opcode defines the register-based bytecode instruction set, its
// 32-bit packed encoding, and the function prototype (Proto) that a compiled
// chunk of code is assembled into.
//
// Instructions carry one of three operand layouts, matching Lua 5.3's
// bytecode format bit for bit so that a Proto's Code is interoperable with
// that VM:
//
//	ABC  : [opcode:6][A:8][C:9][B:9]
//	ABx  : [opcode:6][A:8][Bx:18]
//	AsBx : [opcode:6][A:8][sBx:18]   (signed, biased by MaxArgSBx)
//
// Registers and constant-table indices are frequently packed together in a
// single 9-bit "RK" operand: the top bit (MaskK) selects which.
package opcode
