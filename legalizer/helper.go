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
    `github.com/cloudwego/gisel/llt`
    `github.com/cloudwego/gisel/mir`
    `github.com/cloudwego/gisel/rtlib`
    `github.com/nikandfor/errors`
)

// Helper carries out the target independent actions.
type Helper struct {
    info Info
}

func NewHelper(info Info) Helper {
    return Helper { info }
}

func libcallFor(op mir.Opcode, size int) (rtlib.ID, mir.ValueType) {
    switch op {
        case mir.OpSDiv : return rtlib.Width(size, rtlib.SDIV_I32, rtlib.Unknown), mir.Int32Ty
        case mir.OpUDiv : return rtlib.Width(size, rtlib.UDIV_I32, rtlib.Unknown), mir.Int32Ty
        case mir.OpSRem : return rtlib.Width(size, rtlib.SREM_I32, rtlib.Unknown), mir.Int32Ty
        case mir.OpURem : return rtlib.Width(size, rtlib.UREM_I32, rtlib.Unknown), mir.Int32Ty
        case mir.OpFAdd : return rtlib.Width(size, rtlib.ADD_F32, rtlib.ADD_F64), floatType(size)
        case mir.OpFSub : return rtlib.Width(size, rtlib.SUB_F32, rtlib.SUB_F64), floatType(size)
        case mir.OpFRem : return rtlib.Width(size, rtlib.REM_F32, rtlib.REM_F64), floatType(size)
        case mir.OpFPow : return rtlib.Width(size, rtlib.POW_F32, rtlib.POW_F64), floatType(size)
        default         : return rtlib.Unknown, mir.VoidTy
    }
}

func floatType(size int) mir.ValueType {
    if size == 64 {
        return mir.DoubleTy
    } else {
        return mir.FloatTy
    }
}

// Libcall replaces a binary operation with the equivalent runtime call.
func (self Helper) Libcall(b *mir.Builder) error {
    ins := b.Instr()
    if len(ins.Defs) != 1 || len(ins.Uses) != 2 {
        return errors.Wrap(ErrUnsupported, "libcall: malformed %v", ins.Op)
    }

    /* find the routine */
    size := b.TypeOf(ins.Defs[0]).SizeInBits()
    id, vt := libcallFor(ins.Op, size)
    if id == rtlib.Unknown {
        return errors.Wrap(ErrUnsupported, "libcall: %v at %d bits", ins.Op, size)
    }

    /* emit the call, the result goes straight into the original register */
    err := CreateLibcall(b, self.info, id,
        mir.CallArg { Reg: ins.Defs[0], Type: vt },
        mir.CallArg { Reg: ins.Uses[0], Type: vt },
        mir.CallArg { Reg: ins.Uses[1], Type: vt },
    )
    if err != nil {
        return err
    }

    /* all done */
    b.Commit()
    return nil
}

// Lower expands remainders into a division, a multiplication and a
// subtraction: x % y == x - (x / y) * y.
func (self Helper) Lower(b *mir.Builder) error {
    var div mir.Opcode
    ins := b.Instr()

    /* only remainders have a generic expansion here */
    switch ins.Op {
        case mir.OpSRem : div = mir.OpSDiv
        case mir.OpURem : div = mir.OpUDiv
        default         : return errors.Wrap(ErrUnsupported, "lower: %v", ins.Op)
    }

    /* build the expansion */
    ty := b.TypeOf(ins.Defs[0])
    quo := b.NewReg(ty)
    prd := b.NewReg(ty)
    b.BuildBinOp(div, quo, ins.Uses[0], ins.Uses[1])
    b.BuildBinOp(mir.OpMul, prd, quo, ins.Uses[1])
    b.BuildBinOp(mir.OpSub, ins.Defs[0], ins.Uses[0], prd)
    b.Commit()
    return nil
}

// WidenScalar performs the operation on the next legal scalar and truncates
// the result. Only the integer arithmetic and bitwise operations and
// constants are widened here, and only on their primary type.
func (self Helper) WidenScalar(b *mir.Builder, idx int) error {
    ins := b.Instr()
    if idx != 0 || len(ins.Defs) != 1 {
        return errors.Wrap(ErrUnsupported, "widen: type index %d of %v", idx, ins.Op)
    }

    /* find the destination type */
    ty := b.TypeOf(ins.Defs[0])
    wide, ok := self.info.Table().NextLegalScalar(ins.Op, 0, ty)
    if !ok {
        return errors.Wrap(ErrUnsupported, "widen: no legal type above %v for %v", ty, ins.Op)
    }

    /* widen the operation */
    switch ins.Op {
        default: {
            return errors.Wrap(ErrUnsupported, "widen: %v", ins.Op)
        }

        /* binary operations work on the low bits regardless of the upper bits */
        case mir.OpAdd, mir.OpSub, mir.OpMul, mir.OpAnd, mir.OpOr, mir.OpXor: {
            x := self.anyext(b, ins.Uses[0], wide)
            y := self.anyext(b, ins.Uses[1], wide)
            r := b.NewReg(wide)
            b.BuildBinOp(ins.Op, r, x, y)
            b.BuildTrunc(ins.Defs[0], r)
        }

        /* constants are materialized wide then truncated */
        case mir.OpConstant: {
            r := b.NewReg(wide)
            b.BuildConstant(r, ins.Imm)
            b.BuildTrunc(ins.Defs[0], r)
        }
    }

    /* replace the original instruction */
    b.Commit()
    return nil
}

func (self Helper) anyext(b *mir.Builder, r mir.Reg, ty llt.Type) mir.Reg {
    ret := b.NewReg(ty)
    b.BuildAnyExt(ret, r)
    return ret
}
