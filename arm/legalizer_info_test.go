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
    `testing`

    `github.com/cloudwego/gisel/legalizer`
    `github.com/cloudwego/gisel/llt`
    `github.com/cloudwego/gisel/mir`
    `github.com/cloudwego/gisel/rtlib`
    `github.com/nikandfor/errors`
    `github.com/stretchr/testify/assert`
    `github.com/stretchr/testify/require`
)

var allEnvs = []Env {
    EnvUnknown,
    EnvGNU,
    EnvAndroid,
    EnvEABI,
    EnvEABIHF,
    EnvGNUEABI,
    EnvGNUEABIHF,
    EnvMusl,
    EnvMuslEABI,
    EnvMuslEABIHF,
}

func allSubtargets() []Subtarget {
    var ret []Subtarget
    for _, env := range allEnvs {
        for _, div := range []bool { false, true } {
            for _, vfp := range []bool { false, true } {
                for _, soft := range []bool { false, true } {
                    ret = append(ret, Subtarget { HasDivide: div, HasVFP2: vfp, SoftFloat: soft, Env: env })
                }
            }
        }
    }
    return ret
}

type expect struct {
    op  mir.Opcode
    idx int
    tys []llt.Type
    act legalizer.Action
}

func expectations(st Subtarget) []expect {
    ints := []mir.Opcode { mir.OpAdd, mir.OpSub, mir.OpMul, mir.OpAnd, mir.OpOr, mir.OpXor }
    ret := []expect {
        { mir.OpGlobalValue , 0, []llt.Type { p0 }, Legal },
        { mir.OpFrameIndex  , 0, []llt.Type { p0 }, Legal },
        { mir.OpLoad        , 0, []llt.Type { s1, s8, s16, s32, p0 }, Legal },
        { mir.OpStore       , 0, []llt.Type { s1, s8, s16, s32, p0 }, Legal },
        { mir.OpLoad        , 1, []llt.Type { p0 }, Legal },
        { mir.OpStore       , 1, []llt.Type { p0 }, Legal },
        { mir.OpSExt        , 0, []llt.Type { s32 }, Legal },
        { mir.OpZExt        , 0, []llt.Type { s32 }, Legal },
        { mir.OpSExt        , 1, []llt.Type { s1, s8, s16 }, Legal },
        { mir.OpZExt        , 1, []llt.Type { s1, s8, s16 }, Legal },
        { mir.OpAShr        , 0, []llt.Type { s32 }, Legal },
        { mir.OpLShr        , 0, []llt.Type { s32 }, Legal },
        { mir.OpShl         , 0, []llt.Type { s32 }, Legal },
        { mir.OpGEP         , 0, []llt.Type { p0 }, Legal },
        { mir.OpGEP         , 1, []llt.Type { s32 }, Legal },
        { mir.OpSelect      , 0, []llt.Type { s32, p0 }, Legal },
        { mir.OpSelect      , 1, []llt.Type { s1 }, Legal },
        { mir.OpBrCond      , 0, []llt.Type { s1 }, Legal },
        { mir.OpConstant    , 0, []llt.Type { s32 }, Legal },
        { mir.OpConstant    , 0, []llt.Type { s1, s8, s16 }, WidenScalar },
        { mir.OpICmp        , 0, []llt.Type { s1 }, Legal },
        { mir.OpICmp        , 1, []llt.Type { s8, s16 }, WidenScalar },
        { mir.OpICmp        , 1, []llt.Type { s32, p0 }, Legal },
        { mir.OpFCmp        , 0, []llt.Type { s1 }, Legal },
        { mir.OpFRem        , 0, []llt.Type { s32, s64 }, Libcall },
        { mir.OpFPow        , 0, []llt.Type { s32, s64 }, Libcall },
    }

    /* integer arithmetic */
    for _, op := range ints {
        ret = append(ret, expect { op, 0, []llt.Type { s1, s8, s16 }, WidenScalar })
        ret = append(ret, expect { op, 0, []llt.Type { s32 }, Legal })
    }

    /* division and remainder */
    div, rem := Libcall, Libcall
    if st.HasDivide {
        div, rem = Legal, Lower
    } else if st.Env.IsAEABI() {
        rem = Custom
    }
    for _, op := range []mir.Opcode { mir.OpSDiv, mir.OpUDiv } {
        ret = append(ret, expect { op, 0, []llt.Type { s8, s16 }, WidenScalar })
        ret = append(ret, expect { op, 0, []llt.Type { s32 }, div })
    }
    for _, op := range []mir.Opcode { mir.OpSRem, mir.OpURem } {
        ret = append(ret, expect { op, 0, []llt.Type { s8, s16 }, WidenScalar })
        ret = append(ret, expect { op, 0, []llt.Type { s32 }, rem })
    }

    /* floating point */
    if st.HasVFP2 && !st.SoftFloat {
        ret = append(ret,
            expect { mir.OpFAdd  , 0, []llt.Type { s32, s64 }, Legal },
            expect { mir.OpFSub  , 0, []llt.Type { s32, s64 }, Legal },
            expect { mir.OpLoad  , 0, []llt.Type { s64 }, Legal },
            expect { mir.OpStore , 0, []llt.Type { s64 }, Legal },
            expect { mir.OpFCmp  , 1, []llt.Type { s32, s64 }, Legal },
        )
    } else {
        ret = append(ret,
            expect { mir.OpFAdd  , 0, []llt.Type { s32, s64 }, Libcall },
            expect { mir.OpFSub  , 0, []llt.Type { s32, s64 }, Libcall },
            expect { mir.OpFCmp  , 1, []llt.Type { s32, s64 }, Custom },
        )
    }
    return ret
}

func TestLegalizerInfo_Policy(t *testing.T) {
    for _, st := range allSubtargets() {
        info := NewLegalizerInfo(st)
        seen := make(map[legalizer.Key]bool)
        for _, e := range expectations(st) {
            for _, ty := range e.tys {
                act, err := info.Lookup(e.op, e.idx, ty)
                require.NoError(t, err, "%v: %v/%d/%v", st, e.op, e.idx, ty)
                assert.Equal(t, e.act, act, "%v: %v/%d/%v", st, e.op, e.idx, ty)
                seen[legalizer.Key { Op: e.op, Idx: e.idx, Type: ty }] = true
            }
        }

        /* nothing else may be bound */
        for _, k := range info.Table().Keys() {
            assert.True(t, seen[k], "%v: unexpected binding for %v", st, k)
        }
    }
}

func TestLegalizerInfo_Unbound(t *testing.T) {
    info := NewLegalizerInfo(Subtarget { Env: EnvGNUEABI })
    for _, k := range []legalizer.Key {
        { Op: mir.OpLoad, Type: s64 },
        { Op: mir.OpAdd, Type: s64 },
        { Op: mir.OpAShr, Type: s16 },
        { Op: mir.OpSDiv, Type: s1 },
        { Op: mir.OpFCmp, Idx: 1, Type: s16 },
    } {
        act, err := info.Table().Lookup(k)
        assert.Equal(t, legalizer.NotFound, act, k.String())
        assert.True(t, errors.Is(err, legalizer.ErrUnbound), k.String())
    }
}

func TestLegalizerInfo_Deterministic(t *testing.T) {
    for _, st := range allSubtargets() {
        a := NewLegalizerInfo(st)
        b := NewLegalizerInfo(st)
        require.Equal(t, a.Table().Keys(), b.Table().Keys(), st.String())
        for _, k := range a.Table().Keys() {
            x, _ := a.Table().Lookup(k)
            y, _ := b.Table().Lookup(k)
            z, _ := a.Table().Lookup(k)
            assert.Equal(t, x, y, k.String())
            assert.Equal(t, x, z, k.String())
        }
    }
}

func TestLegalizerInfo_FCmpPlan(t *testing.T) {
    assert.Nil(t, NewLegalizerInfo(Subtarget { HasVFP2: true, Env: EnvEABI }).FCmpPlan())
    assert.Same(t, AEABIPlan, NewLegalizerInfo(Subtarget { Env: EnvEABI }).FCmpPlan())
    assert.Same(t, AEABIPlan, NewLegalizerInfo(Subtarget { HasVFP2: true, SoftFloat: true, Env: EnvMuslEABIHF }).FCmpPlan())
    assert.Same(t, GNUPlan, NewLegalizerInfo(Subtarget { Env: EnvGNU }).FCmpPlan())
    assert.Same(t, GNUPlan, NewLegalizerInfo(Subtarget { Env: EnvAndroid }).FCmpPlan())
}

func TestLegalizerInfo_LibcallABI(t *testing.T) {
    assert.Equal(t, rtlib.AEABI, NewLegalizerInfo(Subtarget { Env: EnvGNUEABIHF }).LibcallABI())
    assert.Equal(t, rtlib.GNU, NewLegalizerInfo(Subtarget { Env: EnvMusl }).LibcallABI())
}
