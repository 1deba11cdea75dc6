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
)

// Reg is a generic virtual register. Every register has exactly one
// low-level type, recorded in the owning Func.
type Reg uint32

func (self Reg) String() string {
    return fmt.Sprintf("%%%d", uint32(self))
}

// ValueType is the type of a runtime call argument or result as seen by the
// calling convention, which unlike llt.Type distinguishes floats from
// integers of the same size.
type ValueType uint8

const (
    VoidTy ValueType = iota
    Int1Ty
    Int8Ty
    Int16Ty
    Int32Ty
    FloatTy
    DoubleTy
    Int32PairTy // packed { i32, i32 }
)

func (self ValueType) SizeInBits() int {
    switch self {
        case VoidTy      : return 0
        case Int1Ty      : return 1
        case Int8Ty      : return 8
        case Int16Ty     : return 16
        case Int32Ty     : return 32
        case FloatTy     : return 32
        case DoubleTy    : return 64
        case Int32PairTy : return 64
        default          : panic("unreachable")
    }
}

// LLT returns the low-level type of a register holding a value of this type.
func (self ValueType) LLT() llt.Type {
    if self == VoidTy {
        return llt.Type{}
    } else {
        return llt.Scalar(self.SizeInBits())
    }
}

func (self ValueType) String() string {
    switch self {
        case VoidTy      : return "void"
        case Int1Ty      : return "i1"
        case Int8Ty      : return "i8"
        case Int16Ty     : return "i16"
        case Int32Ty     : return "i32"
        case FloatTy     : return "float"
        case DoubleTy    : return "double"
        case Int32PairTy : return "<{ i32, i32 }>"
        default          : return fmt.Sprintf("vt(%d)", uint8(self))
    }
}

type CallArg struct {
    Reg  Reg
    Type ValueType
    Locs []string
}

func (self CallArg) String() string {
    if len(self.Locs) == 0 {
        return fmt.Sprintf("%s %s", self.Type, self.Reg)
    } else {
        return fmt.Sprintf("%s %s{%s}", self.Type, self.Reg, strings.Join(self.Locs, ":"))
    }
}

// CallSite describes a call to a runtime routine. Locs of every argument and
// of the result are filled in by call lowering.
type CallSite struct {
    Callee string
    Conv   string
    Ret    CallArg
    Args   []CallArg
}

type Instr struct {
    Op   Opcode
    Defs []Reg
    Uses []Reg
    Imm  int64
    Pred Predicate
    Sym  string
    Mem  int
    Call *CallSite
    bb   *Block
}

// Parent returns the block holding the instruction, nil once it was erased.
func (self *Instr) Parent() *Block {
    return self.bb
}

func (self *Instr) String() string {
    var ops []string
    var buf strings.Builder

    /* definitions */
    for i, r := range self.Defs {
        if i != 0 {
            buf.WriteString(", ")
        }
        buf.WriteString(r.String())
    }

    /* operation */
    if len(self.Defs) != 0 {
        buf.WriteString(" = ")
    }
    buf.WriteString(self.Op.String())

    /* extra operands */
    switch self.Op {
        case OpICmp, OpFCmp           : ops = append(ops, self.Pred.String())
        case OpConstant, OpFrameIndex : ops = append(ops, fmt.Sprint(self.Imm))
        case OpGlobalValue            : ops = append(ops, "@" + self.Sym)
    }

    /* call sites print their own arguments */
    if self.Call != nil {
        args := make([]string, 0, len(self.Call.Args))
        for _, a := range self.Call.Args {
            args = append(args, a.String())
        }
        ops = append(ops, fmt.Sprintf("@%s(%s) -> %s", self.Call.Callee, strings.Join(args, ", "), self.Call.Ret))
    } else {
        for _, r := range self.Uses {
            ops = append(ops, r.String())
        }
    }

    /* memory access size */
    if self.Op == OpLoad || self.Op == OpStore {
        ops = append(ops, fmt.Sprintf("(%d bits)", self.Mem))
    }

    /* join everything together */
    if len(ops) != 0 {
        buf.WriteByte(' ')
        buf.WriteString(strings.Join(ops, ", "))
    }
    return buf.String()
}
