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
    `fmt`
    `strings`

    `github.com/cloudwego/gisel/llt`
    `github.com/nikandfor/errors`
)

type Block struct {
    Id  int
    Ins []*Instr
    fn  *Func
}

// Append adds an instruction to the end of the block.
func (self *Block) Append(ins *Instr) *Instr {
    if ins.bb != nil {
        panic("mir: instruction already has a parent: " + ins.String())
    }
    ins.bb = self
    self.Ins = append(self.Ins, ins)
    return ins
}

func (self *Block) indexOf(ins *Instr) int {
    for i, v := range self.Ins {
        if v == ins {
            return i
        }
    }
    return -1
}

// Func is the instruction stream of one function. It owns the types of all
// virtual registers used inside it.
type Func struct {
    Name   string
    Blocks []*Block
    regs   []llt.Type
}

func NewFunc(name string) *Func {
    return &Func { Name: name }
}

func (self *Func) NewBlock() *Block {
    bb := &Block { Id: len(self.Blocks), fn: self }
    self.Blocks = append(self.Blocks, bb)
    return bb
}

func (self *Func) NewReg(ty llt.Type) Reg {
    if !ty.IsValid() {
        panic("mir: register of invalid type")
    }
    self.regs = append(self.regs, ty)
    return Reg(len(self.regs) - 1)
}

func (self *Func) NumRegs() int {
    return len(self.regs)
}

// TypeOf returns the type of r, or the invalid type if r does not belong to
// this function.
func (self *Func) TypeOf(r Reg) llt.Type {
    if int(r) < len(self.regs) {
        return self.regs[r]
    } else {
        return llt.Type{}
    }
}

func (self *Func) truncateRegs(n int) {
    if n < len(self.regs) {
        self.regs = self.regs[:n]
    }
}

// Instrs returns every instruction of the function in block order.
func (self *Func) Instrs() []*Instr {
    var ret []*Instr
    for _, bb := range self.Blocks {
        ret = append(ret, bb.Ins...)
    }
    return ret
}

// Replace substitutes ins with seq in its parent block, seq may be empty.
func (self *Func) Replace(ins *Instr, seq []*Instr) {
    bb := ins.bb
    if bb == nil || bb.fn != self {
        panic("mir: instruction does not belong to " + self.Name + ": " + ins.String())
    }

    /* locate the instruction */
    i := bb.indexOf(ins)
    if i < 0 {
        panic("mir: corrupted block: " + ins.String())
    }

    /* attach the new instructions */
    for _, v := range seq {
        if v.bb != nil {
            panic("mir: instruction already has a parent: " + v.String())
        }
        v.bb = bb
    }

    /* splice them in */
    rem := append([]*Instr(nil), bb.Ins[i + 1:]...)
    bb.Ins = append(append(bb.Ins[:i], seq...), rem...)
    ins.bb = nil
}

// Erase removes ins from its parent block.
func (self *Func) Erase(ins *Instr) {
    self.Replace(ins, nil)
}

// TypeIndices returns the type bound to each type index of ins, in the order
// the legalizer queries them.
func (self *Func) TypeIndices(ins *Instr) ([]llt.Type, error) {
    var r0 Reg
    var r1 Reg

    /* pick the registers carrying each type index */
    switch ins.Op {
        case OpInvalid, OpCall                         : return nil, nil
        case OpStore                                   : r0, r1 = use(ins, 0), use(ins, 1)
        case OpBrCond                                  : r0 = use(ins, 0)
        case OpLoad                                    : r0, r1 = def(ins, 0), use(ins, 0)
        case OpSExt, OpZExt, OpAnyExt, OpTrunc         : r0, r1 = def(ins, 0), use(ins, 0)
        case OpICmp, OpFCmp, OpSelect, OpUnmergeValues : r0, r1 = def(ins, 0), use(ins, 0)
        case OpGEP                                     : r0, r1 = def(ins, 0), use(ins, 1)
        default                                        : r0 = def(ins, 0)
    }

    /* resolve the types */
    rr := [...]Reg { r0, r1 }
    ret := make([]llt.Type, ins.Op.NumTypeIndices())
    for i, r := range rr[:len(ret)] {
        if r == _RegNone {
            return nil, errors.New("missing operand for type index %d: %v", i, ins)
        } else if ret[i] = self.TypeOf(r); !ret[i].IsValid() {
            return nil, errors.New("unknown register %v: %v", r, ins)
        }
    }
    return ret, nil
}

const _RegNone = ^Reg(0)

func def(ins *Instr, i int) Reg {
    if i < len(ins.Defs) {
        return ins.Defs[i]
    } else {
        return _RegNone
    }
}

func use(ins *Instr, i int) Reg {
    if i < len(ins.Uses) {
        return ins.Uses[i]
    } else {
        return _RegNone
    }
}

func (self *Func) String() string {
    var buf strings.Builder
    fmt.Fprintf(&buf, "func %s {\n", self.Name)

    /* register types */
    for i, ty := range self.regs {
        fmt.Fprintf(&buf, "    %s: %s\n", Reg(i), ty)
    }

    /* dump every block */
    for _, bb := range self.Blocks {
        fmt.Fprintf(&buf, "bb_%d:\n", bb.Id)
        for _, v := range bb.Ins {
            fmt.Fprintf(&buf, "    %s\n", v)
        }
    }

    /* close the function */
    buf.WriteString("}")
    return buf.String()
}
