/*
 * Copyright 2022 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package legalizer

import (
    `github.com/cloudwego/gisel/mir`
    `github.com/cloudwego/gisel/rtlib`
    `github.com/nikandfor/errors`
)

// Info is implemented by every target. The table is computed once and
// never changes afterwards.
type Info interface {
    Table() *Table
    LibcallABI() rtlib.ABI
    CallLowering() CallLowering

    // LegalizeCustom rewrites b.Instr(). On success the staged sequence must
    // have been committed, on failure nothing may have been.
    LegalizeCustom(b *mir.Builder) error
}

// CallLowering expresses a call in the target calling convention. Errors
// returned by LowerCall must wrap ErrCallLowering.
type CallLowering interface {
    LowerCall(b *mir.Builder, cs *mir.CallSite) error
}

// CreateLibcall stages a call to the runtime routine id.
func CreateLibcall(b *mir.Builder, info Info, id rtlib.ID, ret mir.CallArg, args ...mir.CallArg) error {
    name := rtlib.Name(id, info.LibcallABI())
    if name == "" {
        return errors.Wrap(ErrCallLowering, "no %v routine for %v", info.LibcallABI(), id)
    }

    /* build the call site */
    cs := &mir.CallSite {
        Callee : name,
        Ret    : ret,
        Args   : args,
    }

    /* lower it with the target calling convention */
    if err := info.CallLowering().LowerCall(b, cs); err != nil {
        return errors.Wrap(err, "libcall %v", id)
    } else {
        return nil
    }
}
