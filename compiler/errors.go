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

import "fmt"

// CompileError is the single fatal error a Compile call can produce:
// everything from arithmetic errors discovered during constant folding to
// references to names the compiler cannot resolve. It carries no wrapped
// cause, so plain fmt.Sprintf formatting is enough here; github.com/pkg/errors
// stays reserved for sites that actually wrap a lower-level error (cmd/luacc's
// I/O failures).
type CompileError struct {
	msg  string
	line int
}

func (e *CompileError) Error() string {
	if e.line > 0 {
		return fmt.Sprintf("[compile error] %s at line [%d]", e.msg, e.line)
	}
	return fmt.Sprintf("[compile error] %s", e.msg)
}

func newCompileError(line int, format string, args ...interface{}) *CompileError {
	return &CompileError{msg: fmt.Sprintf(format, args...), line: line}
}
