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
)

// Opcode identifies a generic (target independent) machine operation.
type Opcode uint16

const (
    OpInvalid Opcode = iota

    /* integer arithmetic and bitwise operations */
    OpAdd
    OpSub
    OpMul
    OpAnd
    OpOr
    OpXor
    OpSDiv
    OpUDiv
    OpSRem
    OpURem

    /* extensions and truncation */
    OpSExt
    OpZExt
    OpAnyExt
    OpTrunc

    /* shifts */
    OpAShr
    OpLShr
    OpShl

    /* memory */
    OpLoad
    OpStore

    /* comparison, selection and branching */
    OpICmp
    OpFCmp
    OpSelect
    OpBrCond

    /* constants and addresses */
    OpConstant
    OpGEP
    OpGlobalValue
    OpFrameIndex

    /* floating point */
    OpFAdd
    OpFSub
    OpFRem
    OpFPow

    /* value splitting */
    OpUnmergeValues

    /* runtime call, already lowered to the target calling convention */
    OpCall

    _OpCount
)

var opcodeNames = [_OpCount]string {
    OpInvalid       : "G_INVALID",
    OpAdd           : "G_ADD",
    OpSub           : "G_SUB",
    OpMul           : "G_MUL",
    OpAnd           : "G_AND",
    OpOr            : "G_OR",
    OpXor           : "G_XOR",
    OpSDiv          : "G_SDIV",
    OpUDiv          : "G_UDIV",
    OpSRem          : "G_SREM",
    OpURem          : "G_UREM",
    OpSExt          : "G_SEXT",
    OpZExt          : "G_ZEXT",
    OpAnyExt        : "G_ANYEXT",
    OpTrunc         : "G_TRUNC",
    OpAShr          : "G_ASHR",
    OpLShr          : "G_LSHR",
    OpShl           : "G_SHL",
    OpLoad          : "G_LOAD",
    OpStore         : "G_STORE",
    OpICmp          : "G_ICMP",
    OpFCmp          : "G_FCMP",
    OpSelect        : "G_SELECT",
    OpBrCond        : "G_BRCOND",
    OpConstant      : "G_CONSTANT",
    OpGEP           : "G_GEP",
    OpGlobalValue   : "G_GLOBAL_VALUE",
    OpFrameIndex    : "G_FRAME_INDEX",
    OpFAdd          : "G_FADD",
    OpFSub          : "G_FSUB",
    OpFRem          : "G_FREM",
    OpFPow          : "G_FPOW",
    OpUnmergeValues : "G_UNMERGE_VALUES",
    OpCall          : "CALL",
}

func (self Opcode) String() string {
    if self < _OpCount {
        return opcodeNames[self]
    } else {
        return fmt.Sprintf("G_OPCODE(%d)", uint16(self))
    }
}

// IsGeneric reports whether the legalizer is expected to make a decision
// about the operation. Calls are emitted by call lowering in their final
// form and are never looked up.
func (self Opcode) IsGeneric() bool {
    return self > OpInvalid && self < _OpCount && self != OpCall
}

// IsArtifact reports whether the operation only glues values of different
// sizes together. Artifacts are produced by legalization itself and are
// combined away later, so they are not looked up either.
func (self Opcode) IsArtifact() bool {
    switch self {
        case OpAnyExt, OpTrunc, OpUnmergeValues : return true
        default                                 : return false
    }
}

// NumTypeIndices returns how many independently typed operand positions
// the operation has. Index 0 is always the primary type.
func (self Opcode) NumTypeIndices() int {
    switch self {
        case OpInvalid, OpCall                     : return 0
        case OpLoad, OpStore                       : return 2
        case OpSExt, OpZExt, OpAnyExt, OpTrunc     : return 2
        case OpGEP, OpSelect                       : return 2
        case OpICmp, OpFCmp, OpUnmergeValues       : return 2
        default                                    : return 1
    }
}
