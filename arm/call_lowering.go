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
    `github.com/nikandfor/errors`
)

var coreRegs = [...]string { "r0", "r1", "r2", "r3" }

// CallLowering passes runtime call arguments in core registers following the
// AAPCS base standard, which the runtime helpers use even on hard-float
// targets. Arguments that would spill to the stack are not supported.
type CallLowering struct{}

func (CallLowering) LowerCall(b *mir.Builder, cs *mir.CallSite) error {
    var err error
    var next int

    /* assign the arguments */
    for i := range cs.Args {
        if err = checkType(b, cs.Args[i]); err != nil {
            return errors.Wrap(err, "%s: argument %d", cs.Callee, i)
        } else if cs.Args[i].Locs, next, err = assign(cs.Args[i].Type, next); err != nil {
            return errors.Wrap(err, "%s: argument %d", cs.Callee, i)
        }
    }

    /* assign the result */
    if cs.Ret.Type != mir.VoidTy {
        if err = checkType(b, cs.Ret); err != nil {
            return errors.Wrap(err, "%s: result", cs.Callee)
        } else if cs.Ret.Locs, _, err = assign(cs.Ret.Type, 0); err != nil {
            return errors.Wrap(err, "%s: result", cs.Callee)
        }
    }

    /* emit the call */
    cs.Conv = "aapcs"
    b.BuildCall(cs)
    return nil
}

func checkType(b *mir.Builder, arg mir.CallArg) error {
    if ty := b.TypeOf(arg.Reg); !ty.IsScalar() {
        return errors.Wrap(legalizer.ErrCallLowering, "%v has unsupported type %v", arg.Reg, ty)
    } else if ty.SizeInBits() != arg.Type.SizeInBits() {
        return errors.Wrap(legalizer.ErrCallLowering, "%v of type %v cannot hold %v", arg.Reg, ty, arg.Type)
    } else {
        return nil
    }
}

func assign(vt mir.ValueType, next int) ([]string, int, error) {
    var n int

    /* number of registers, 64-bit values start at an even register */
    switch vt {
        case mir.Int1Ty, mir.Int8Ty, mir.Int16Ty, mir.Int32Ty, mir.FloatTy: {
            n = 1
        }
        case mir.DoubleTy, mir.Int32PairTy: {
            n, next = 2, (next + 1) &^ 1
        }
        default: {
            return nil, next, errors.Wrap(legalizer.ErrCallLowering, "unsupported value type %v", vt)
        }
    }

    /* stack arguments are not supported */
    if next + n > len(coreRegs) {
        return nil, next, errors.Wrap(legalizer.ErrCallLowering, "%v does not fit in registers", vt)
    } else {
        return append([]string(nil), coreRegs[next:next + n]...), next + n, nil
    }
}
