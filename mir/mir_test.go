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

package mir

import (
    `testing`

    `github.com/cloudwego/gisel/llt`
    `github.com/stretchr/testify/assert`
    `github.com/stretchr/testify/require`
)

func newRem(t *testing.T) (*Func, *Instr) {
    fn := NewFunc("rem")
    bb := fn.NewBlock()
    x := fn.NewReg(llt.S32)
    y := fn.NewReg(llt.S32)
    r := fn.NewReg(llt.S32)
    bb.Append(&Instr { Op: OpConstant, Defs: []Reg { x }, Imm: 7 })
    bb.Append(&Instr { Op: OpConstant, Defs: []Reg { y }, Imm: 3 })
    ins := bb.Append(&Instr { Op: OpURem, Defs: []Reg { r }, Uses: []Reg { x, y } })
    bb.Append(&Instr { Op: OpStore, Uses: []Reg { r, fn.NewReg(llt.P0) }, Mem: 32 })
    require.Len(t, bb.Ins, 4)
    return fn, ins
}

func TestBuilder_Commit(t *testing.T) {
    fn, ins := newRem(t)
    b := NewBuilder(fn, ins)
    pair := b.NewReg(llt.S64)
    quot := b.NewReg(llt.S32)
    b.BuildConstant(pair, 0)
    b.BuildUnmerge([]Reg { quot, ins.Defs[0] }, pair)
    assert.Len(t, fn.Blocks[0].Ins, 4, "staged instructions must not be visible")
    b.Commit()
    bb := fn.Blocks[0]
    require.Len(t, bb.Ins, 5)
    assert.Equal(t, OpConstant, bb.Ins[2].Op)
    assert.Equal(t, OpUnmergeValues, bb.Ins[3].Op)
    assert.Equal(t, OpStore, bb.Ins[4].Op)
    assert.Nil(t, ins.Parent())
    assert.Equal(t, bb, bb.Ins[3].Parent())
    assert.Equal(t, 6, fn.NumRegs())
    assert.Panics(t, func() { b.Commit() })
    b.Discard()
    assert.Equal(t, 6, fn.NumRegs())
}

func TestBuilder_Discard(t *testing.T) {
    fn, ins := newRem(t)
    before := fn.String()
    b := NewBuilder(fn, ins)
    b.BuildConstant(b.NewReg(llt.S32), 1)
    b.BuildConstant(b.NewReg(llt.S32), 2)
    b.Discard()
    assert.Equal(t, before, fn.String())
    assert.Equal(t, fn.Blocks[0], ins.Parent())
    assert.Empty(t, b.Staged())
}

func TestFunc_Erase(t *testing.T) {
    fn, ins := newRem(t)
    fn.Erase(ins)
    assert.Len(t, fn.Blocks[0].Ins, 3)
    assert.Panics(t, func() { fn.Erase(ins) })
}

func TestFunc_TypeIndices(t *testing.T) {
    fn := NewFunc("types")
    bb := fn.NewBlock()
    p := fn.NewReg(llt.P0)
    c := fn.NewReg(llt.S1)
    v := fn.NewReg(llt.S8)
    w := fn.NewReg(llt.S32)
    d := fn.NewReg(llt.S64)
    tests := []struct {
        ins *Instr
        tys []llt.Type
    } {
        { &Instr { Op: OpLoad, Defs: []Reg { v }, Uses: []Reg { p } }, []llt.Type { llt.S8, llt.P0 } },
        { &Instr { Op: OpStore, Uses: []Reg { d, p } }, []llt.Type { llt.S64, llt.P0 } },
        { &Instr { Op: OpZExt, Defs: []Reg { w }, Uses: []Reg { v } }, []llt.Type { llt.S32, llt.S8 } },
        { &Instr { Op: OpGEP, Defs: []Reg { p }, Uses: []Reg { p, w } }, []llt.Type { llt.P0, llt.S32 } },
        { &Instr { Op: OpSelect, Defs: []Reg { w }, Uses: []Reg { c, w, w } }, []llt.Type { llt.S32, llt.S1 } },
        { &Instr { Op: OpBrCond, Uses: []Reg { c } }, []llt.Type { llt.S1 } },
        { &Instr { Op: OpFCmp, Defs: []Reg { c }, Uses: []Reg { d, d }, Pred: FCmpOEQ }, []llt.Type { llt.S1, llt.S64 } },
        { &Instr { Op: OpShl, Defs: []Reg { w }, Uses: []Reg { w, w } }, []llt.Type { llt.S32 } },
        { &Instr { Op: OpCall, Call: &CallSite { Callee: "f" } }, nil },
    }
    for _, tc := range tests {
        bb.Append(tc.ins)
        tys, err := fn.TypeIndices(tc.ins)
        require.NoError(t, err, tc.ins.String())
        assert.Equal(t, tc.tys, tys, tc.ins.String())
    }
    _, err := fn.TypeIndices(&Instr { Op: OpAdd })
    assert.Error(t, err)
    _, err = fn.TypeIndices(&Instr { Op: OpAdd, Defs: []Reg { 1000 } })
    assert.Error(t, err)
}

func TestInstr_String(t *testing.T) {
    assert.Equal(t, "%2 = G_UREM %0, %1", (&Instr { Op: OpURem, Defs: []Reg { 2 }, Uses: []Reg { 0, 1 } }).String())
    assert.Equal(t, "%1 = G_FCMP floatoeq, %0, %0", (&Instr { Op: OpFCmp, Defs: []Reg { 1 }, Uses: []Reg { 0, 0 }, Pred: FCmpOEQ }).String())
    assert.Equal(t, "%3 = G_CONSTANT 0", (&Instr { Op: OpConstant, Defs: []Reg { 3 } }).String())
    assert.Equal(t, "G_STORE %0, %1, (1 bits)", (&Instr { Op: OpStore, Uses: []Reg { 0, 1 }, Mem: 1 }).String())
    cs := &CallSite {
        Callee : "__aeabi_fcmpeq",
        Ret    : CallArg { Reg: 2, Type: Int32Ty, Locs: []string { "r0" } },
        Args   : []CallArg { { Reg: 0, Type: FloatTy, Locs: []string { "r0" } }, { Reg: 1, Type: FloatTy, Locs: []string { "r1" } } },
    }
    assert.Equal(t, "%2 = CALL @__aeabi_fcmpeq(float %0{r0}, float %1{r1}) -> i32 %2{r0}", (&Instr { Op: OpCall, Defs: []Reg { 2 }, Uses: []Reg { 0, 1 }, Call: cs }).String())
}

func TestPredicate(t *testing.T) {
    for p := FirstFCmp; p <= LastFCmp; p++ {
        assert.True(t, p.IsFP(), p.String())
        assert.False(t, p.IsInt(), p.String())
    }
    for p := FirstICmp; p <= LastICmp; p++ {
        assert.True(t, p.IsInt(), p.String())
        assert.False(t, p.IsFP(), p.String())
    }
    assert.False(t, BadICmp.IsInt())
    assert.Equal(t, "none", BadICmp.String())
    assert.Equal(t, "intsge", ICmpSGE.String())
}

func TestOpcode(t *testing.T) {
    assert.Equal(t, "G_SREM", OpSRem.String())
    assert.False(t, OpCall.IsGeneric())
    assert.True(t, OpFCmp.IsGeneric())
    assert.True(t, OpTrunc.IsArtifact())
    assert.False(t, OpOr.IsArtifact())
    assert.Equal(t, 2, OpICmp.NumTypeIndices())
    assert.Equal(t, 1, OpAShr.NumTypeIndices())
}
