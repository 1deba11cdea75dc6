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
    `github.com/cloudwego/gisel/llt`
)

// Builder stages a replacement sequence for one instruction. Nothing is
// visible in the function until Commit, and Discard drops the staged
// instructions together with the registers created for them.
type Builder struct {
    fn   *Func
    at   *Instr
    ins  []*Instr
    nreg int
    done bool
}

func NewBuilder(fn *Func, at *Instr) *Builder {
    if at.bb == nil || at.bb.fn != fn {
        panic("mir: builder anchored outside of " + fn.Name + ": " + at.String())
    }
    return &Builder {
        fn   : fn,
        at   : at,
        nreg : fn.NumRegs(),
    }
}

func (self *Builder) Func() *Func {
    return self.fn
}

// Instr returns the instruction being replaced.
func (self *Builder) Instr() *Instr {
    return self.at
}

func (self *Builder) TypeOf(r Reg) llt.Type {
    return self.fn.TypeOf(r)
}

func (self *Builder) NewReg(ty llt.Type) Reg {
    self.check()
    return self.fn.NewReg(ty)
}

// Staged returns the instructions built so far, or committed by Commit.
func (self *Builder) Staged() []*Instr {
    return self.ins
}

func (self *Builder) Insert(ins *Instr) *Instr {
    self.check()
    self.ins = append(self.ins, ins)
    return ins
}

func (self *Builder) BuildConstant(dst Reg, v int64) *Instr {
    return self.Insert(&Instr { Op: OpConstant, Defs: []Reg { dst }, Imm: v })
}

func (self *Builder) BuildTrunc(dst Reg, src Reg) *Instr {
    return self.Insert(&Instr { Op: OpTrunc, Defs: []Reg { dst }, Uses: []Reg { src } })
}

func (self *Builder) BuildAnyExt(dst Reg, src Reg) *Instr {
    return self.Insert(&Instr { Op: OpAnyExt, Defs: []Reg { dst }, Uses: []Reg { src } })
}

func (self *Builder) BuildICmp(pred Predicate, dst Reg, x Reg, y Reg) *Instr {
    if !pred.IsInt() {
        panic("mir: invalid integer predicate: " + pred.String())
    }
    return self.Insert(&Instr { Op: OpICmp, Defs: []Reg { dst }, Uses: []Reg { x, y }, Pred: pred })
}

func (self *Builder) BuildBinOp(op Opcode, dst Reg, x Reg, y Reg) *Instr {
    return self.Insert(&Instr { Op: op, Defs: []Reg { dst }, Uses: []Reg { x, y } })
}

func (self *Builder) BuildOr(dst Reg, x Reg, y Reg) *Instr {
    return self.BuildBinOp(OpOr, dst, x, y)
}

func (self *Builder) BuildUnmerge(dst []Reg, src Reg) *Instr {
    return self.Insert(&Instr { Op: OpUnmergeValues, Defs: append([]Reg(nil), dst...), Uses: []Reg { src } })
}

// BuildCall inserts a call. The call site must already be lowered.
func (self *Builder) BuildCall(cs *CallSite) *Instr {
    ins := &Instr { Op: OpCall, Call: cs }
    if cs.Ret.Type != VoidTy {
        ins.Defs = []Reg { cs.Ret.Reg }
    }
    for _, a := range cs.Args {
        ins.Uses = append(ins.Uses, a.Reg)
    }
    return self.Insert(ins)
}

// Commit replaces the anchor instruction with the staged sequence.
func (self *Builder) Commit() {
    self.check()
    self.fn.Replace(self.at, self.ins)
    self.done = true
}

// Discard forgets the staged sequence, leaving the function untouched.
func (self *Builder) Discard() {
    if !self.done {
        self.ins = nil
        self.fn.truncateRegs(self.nreg)
        self.done = true
    }
}

func (self *Builder) check() {
    if self.done {
        panic("mir: builder already finished")
    }
}
