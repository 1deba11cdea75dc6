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
    `github.com/cloudwego/gisel/mir`
    `github.com/cloudwego/gisel/rtlib`
    `github.com/nikandfor/errors`
    `github.com/nikandfor/tlog`
)

type customCase uint8

const (
    _CustomNone customCase = iota
    _CustomSDivRem32
    _CustomUDivRem32
    _CustomFCmp32
    _CustomFCmp64
)

// classify picks the rewrite for ins, or explains why there is none.
func (self *LegalizerInfo) classify(b *mir.Builder) (customCase, error) {
    ins := b.Instr()
    switch ins.Op {
        default: {
            return _CustomNone, errors.Wrap(legalizer.ErrContract, "%v", ins.Op)
        }

        /* remainders, through the combined division routines */
        case mir.OpSRem, mir.OpURem: {
            if len(ins.Defs) != 1 || len(ins.Uses) != 2 {
                return _CustomNone, errors.Wrap(legalizer.ErrContract, "malformed %v", ins.Op)
            } else if size := b.TypeOf(ins.Defs[0]).SizeInBits(); size != 32 {
                return _CustomNone, errors.Wrap(legalizer.ErrContract, "%v on %d bits", ins.Op, size)
            } else if ins.Op == mir.OpSRem {
                return _CustomSDivRem32, nil
            } else {
                return _CustomUDivRem32, nil
            }
        }

        /* floating point comparison, through the comparison routines */
        case mir.OpFCmp: {
            if len(ins.Defs) != 1 || len(ins.Uses) != 2 {
                return _CustomNone, errors.Wrap(legalizer.ErrContract, "malformed %v", ins.Op)
            }

            /* both operands must agree */
            tx := b.TypeOf(ins.Uses[0])
            ty := b.TypeOf(ins.Uses[1])
            if tx != ty {
                return _CustomNone, errors.Wrap(legalizer.ErrContract, "mismatched operands for %v: %v and %v", ins.Op, tx, ty)
            }

            /* check the predicate and the plan */
            if !ins.Pred.IsFP() {
                return _CustomNone, errors.Wrap(legalizer.ErrContract, "%v with %v", ins.Op, ins.Pred)
            } else if self.fcmp == nil {
                return _CustomNone, errors.Wrap(legalizer.ErrContract, "%v is done in hardware", ins.Op)
            }

            /* select by operand size */
            switch tx.SizeInBits() {
                case 32 : return _CustomFCmp32, nil
                case 64 : return _CustomFCmp64, nil
                default : return _CustomNone, errors.Wrap(legalizer.ErrContract, "%v on %d bits", ins.Op, tx.SizeInBits())
            }
        }
    }
}

// LegalizeCustom rewrites remainders into calls to the combined division
// routines, and floating point comparisons into calls to the comparison
// routines. The instruction is replaced only if every call could be lowered.
func (self *LegalizerInfo) LegalizeCustom(b *mir.Builder) error {
    var err error
    var cc customCase

    /* find out what to do */
    if cc, err = self.classify(b); err != nil {
        return err
    }

    /* perform the rewrite */
    switch cc {
        case _CustomSDivRem32 : err = self.legalizeRem(b, true)
        case _CustomUDivRem32 : err = self.legalizeRem(b, false)
        case _CustomFCmp32    : err = self.legalizeFCmp(b, 32)
        case _CustomFCmp64    : err = self.legalizeFCmp(b, 64)
        default               : panic("unreachable")
    }

    /* keep the original instruction on failure */
    if err != nil {
        b.Discard()
        return err
    }

    /* replace the original instruction */
    if l := tlog.V("legalize_custom"); l != nil {
        l.Printw("custom lowering", "func", b.Func().Name, "instr", b.Instr().String(), "count", len(b.Staged()))
    }
    b.Commit()
    return nil
}

// DivRem holds the two halves of a combined division routine result.
type DivRem struct {
    Quotient  mir.Reg
    Remainder mir.Reg
}

// BuildDivRem calls the combined division routine on x and y and splits its
// result into the registers of out.
func (self *LegalizerInfo) BuildDivRem(b *mir.Builder, signed bool, x mir.Reg, y mir.Reg, out DivRem) error {
    id := rtlib.UDIVREM_I32
    if signed {
        id = rtlib.SDIVREM_I32
    }

    /* the routine returns a packed { quotient, remainder } pair */
    ret := b.NewReg(mir.Int32PairTy.LLT())
    err := legalizer.CreateLibcall(b, self, id,
        mir.CallArg { Reg: ret, Type: mir.Int32PairTy },
        mir.CallArg { Reg: x, Type: mir.Int32Ty },
        mir.CallArg { Reg: y, Type: mir.Int32Ty },
    )
    if err != nil {
        return err
    }

    /* split it into the two halves */
    b.BuildUnmerge([]mir.Reg { out.Quotient, out.Remainder }, ret)
    return nil
}

func (self *LegalizerInfo) legalizeRem(b *mir.Builder, signed bool) error {
    ins := b.Instr()
    out := DivRem {
        Quotient  : b.NewReg(s32),
        Remainder : ins.Defs[0],
    }
    return self.BuildDivRem(b, signed, ins.Uses[0], ins.Uses[1], out)
}

func (self *LegalizerInfo) legalizeFCmp(b *mir.Builder, size int) error {
    ins := b.Instr()
    dst := ins.Defs[0]
    steps := self.fcmp.Lookup(ins.Pred, size)

    /* trivial predicates are constants */
    if len(steps) == 0 {
        switch ins.Pred {
            case mir.FCmpTrue  : b.BuildConstant(dst, 1)
            case mir.FCmpFalse : b.BuildConstant(dst, 0)
            default            : return errors.Wrap(legalizer.ErrContract, "no libcalls for %v", ins.Pred)
        }
        return nil
    }

    /* the routines take floats or doubles and return an int */
    vt := mir.FloatTy
    if size == 64 {
        vt = mir.DoubleTy
    }

    /* one call per step */
    res := make([]mir.Reg, 0, len(steps))
    for _, st := range steps {
        raw := b.NewReg(s32)
        err := legalizer.CreateLibcall(b, self, st.ID,
            mir.CallArg { Reg: raw, Type: mir.Int32Ty },
            mir.CallArg { Reg: ins.Uses[0], Type: vt },
            mir.CallArg { Reg: ins.Uses[1], Type: vt },
        )
        if err != nil {
            return err
        }

        /* a single step defines the result directly */
        out := dst
        if len(steps) != 1 {
            out = b.NewReg(b.TypeOf(dst))
        }

        /* turn the raw result into a boolean */
        if st.Pred == mir.BadICmp {
            b.BuildTrunc(out, raw)
        } else {
            zero := b.NewReg(s32)
            b.BuildConstant(zero, 0)
            b.BuildICmp(st.Pred, out, raw, zero)
        }
        res = append(res, out)
    }

    /* either of the two conditions */
    if len(res) == 2 {
        b.BuildOr(dst, res[0], res[1])
    } else if len(res) != 1 {
        return errors.Wrap(legalizer.ErrContract, "%d libcalls for %v", len(res), ins.Pred)
    }
    return nil
}
