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

package arm

import (
    `github.com/cloudwego/gisel/legalizer`
    `github.com/cloudwego/gisel/llt`
    `github.com/cloudwego/gisel/mir`
    `github.com/cloudwego/gisel/rtlib`
)

var (
    p0  = llt.P0
    s1  = llt.S1
    s8  = llt.S8
    s16 = llt.S16
    s32 = llt.S32
    s64 = llt.S64
)

const (
    Legal       = legalizer.Legal
    WidenScalar = legalizer.WidenScalar
    Lower       = legalizer.Lower
    Libcall     = legalizer.Libcall
    Custom      = legalizer.Custom
)

// LegalizerInfo is the legalization rule set of one ARM subtarget. It is
// immutable once built and may be shared by concurrent compilations.
type LegalizerInfo struct {
    st    Subtarget
    table *legalizer.Table
    fcmp  *FCmpPlan
    calls legalizer.CallLowering
}

// NewLegalizerInfo builds the rules for st, calling runtime routines with
// the AAPCS base procedure call standard.
func NewLegalizerInfo(st Subtarget) *LegalizerInfo {
    return NewLegalizerInfoWith(st, CallLowering{})
}

func NewLegalizerInfoWith(st Subtarget, calls legalizer.CallLowering) *LegalizerInfo {
    tb := legalizer.NewTableBuilder()
    ret := &LegalizerInfo { st: st, calls: calls }

    /* addresses */
    tb.SetAction(mir.OpGlobalValue, p0, Legal)
    tb.SetAction(mir.OpFrameIndex, p0, Legal)

    /* memory accesses */
    for _, op := range []mir.Opcode { mir.OpLoad, mir.OpStore } {
        for _, ty := range []llt.Type { s1, s8, s16, s32, p0 } {
            tb.SetAction(op, ty, Legal)
        }
        tb.SetActionAt(op, 1, p0, Legal)
    }

    /* integer arithmetic and bitwise operations */
    for _, op := range []mir.Opcode { mir.OpAdd, mir.OpSub, mir.OpMul, mir.OpAnd, mir.OpOr, mir.OpXor } {
        for _, ty := range []llt.Type { s1, s8, s16 } {
            tb.SetAction(op, ty, WidenScalar)
        }
        tb.SetAction(op, s32, Legal)
    }

    /* division */
    for _, op := range []mir.Opcode { mir.OpSDiv, mir.OpUDiv } {
        for _, ty := range []llt.Type { s8, s16 } {
            tb.SetAction(op, ty, WidenScalar)
        }
        if st.HasDivide {
            tb.SetAction(op, s32, Legal)
        } else {
            tb.SetAction(op, s32, Libcall)
        }
    }

    /* remainder */
    for _, op := range []mir.Opcode { mir.OpSRem, mir.OpURem } {
        for _, ty := range []llt.Type { s8, s16 } {
            tb.SetAction(op, ty, WidenScalar)
        }
        if st.HasDivide {
            tb.SetAction(op, s32, Lower)
        } else if st.IsAEABI() {
            tb.SetAction(op, s32, Custom)
        } else {
            tb.SetAction(op, s32, Libcall)
        }
    }

    /* extensions */
    for _, op := range []mir.Opcode { mir.OpSExt, mir.OpZExt } {
        tb.SetAction(op, s32, Legal)
        for _, ty := range []llt.Type { s1, s8, s16 } {
            tb.SetActionAt(op, 1, ty, Legal)
        }
    }

    /* shifts */
    for _, op := range []mir.Opcode { mir.OpAShr, mir.OpLShr, mir.OpShl } {
        tb.SetAction(op, s32, Legal)
    }

    /* address computation */
    tb.SetAction(mir.OpGEP, p0, Legal)
    tb.SetActionAt(mir.OpGEP, 1, s32, Legal)

    /* selection and branching */
    tb.SetAction(mir.OpSelect, s32, Legal)
    tb.SetAction(mir.OpSelect, p0, Legal)
    tb.SetActionAt(mir.OpSelect, 1, s1, Legal)
    tb.SetAction(mir.OpBrCond, s1, Legal)

    /* constants */
    tb.SetAction(mir.OpConstant, s32, Legal)
    for _, ty := range []llt.Type { s1, s8, s16 } {
        tb.SetAction(mir.OpConstant, ty, WidenScalar)
    }

    /* integer comparison */
    tb.SetAction(mir.OpICmp, s1, Legal)
    for _, ty := range []llt.Type { s8, s16 } {
        tb.SetActionAt(mir.OpICmp, 1, ty, WidenScalar)
    }
    for _, ty := range []llt.Type { s32, p0 } {
        tb.SetActionAt(mir.OpICmp, 1, ty, Legal)
    }

    /* floating point, in hardware or in software */
    if st.HasFPU() {
        for _, op := range []mir.Opcode { mir.OpFAdd, mir.OpFSub } {
            for _, ty := range []llt.Type { s32, s64 } {
                tb.SetAction(op, ty, Legal)
            }
        }
        tb.SetAction(mir.OpLoad, s64, Legal)
        tb.SetAction(mir.OpStore, s64, Legal)
        tb.SetAction(mir.OpFCmp, s1, Legal)
        tb.SetActionAt(mir.OpFCmp, 1, s32, Legal)
        tb.SetActionAt(mir.OpFCmp, 1, s64, Legal)
    } else {
        for _, op := range []mir.Opcode { mir.OpFAdd, mir.OpFSub } {
            for _, ty := range []llt.Type { s32, s64 } {
                tb.SetAction(op, ty, Libcall)
            }
        }
        tb.SetAction(mir.OpFCmp, s1, Legal)
        tb.SetActionAt(mir.OpFCmp, 1, s32, Custom)
        tb.SetActionAt(mir.OpFCmp, 1, s64, Custom)
        if st.IsAEABI() {
            ret.fcmp = AEABIPlan
        } else {
            ret.fcmp = GNUPlan
        }
    }

    /* always in software */
    for _, op := range []mir.Opcode { mir.OpFRem, mir.OpFPow } {
        for _, ty := range []llt.Type { s32, s64 } {
            tb.SetAction(op, ty, Libcall)
        }
    }

    /* freeze the table */
    ret.table = tb.Compute()
    return ret
}

func (self *LegalizerInfo) Subtarget() Subtarget {
    return self.st
}

func (self *LegalizerInfo) Table() *legalizer.Table {
    return self.table
}

func (self *LegalizerInfo) LibcallABI() rtlib.ABI {
    return self.st.LibcallABI()
}

func (self *LegalizerInfo) CallLowering() legalizer.CallLowering {
    return self.calls
}

// FCmpPlan returns the active comparison plan, nil if floating point
// comparisons are done in hardware.
func (self *LegalizerInfo) FCmpPlan() *FCmpPlan {
    return self.fcmp
}

// Lookup is a shorthand for querying the table.
func (self *LegalizerInfo) Lookup(op mir.Opcode, idx int, ty llt.Type) (legalizer.Action, error) {
    return self.table.Lookup(legalizer.Key { Op: op, Idx: idx, Type: ty })
}
