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

// Package rtlib enumerates the runtime support routines the legalizer may
// call, and how each one is spelled under the supported ABI families.
package rtlib

import (
    `fmt`
)

type ID uint16

const (
    Unknown ID = iota

    /* integer division */
    SDIV_I32
    UDIV_I32
    SREM_I32
    UREM_I32
    SDIVREM_I32
    UDIVREM_I32

    /* floating point arithmetic */
    ADD_F32
    ADD_F64
    SUB_F32
    SUB_F64
    REM_F32
    REM_F64
    POW_F32
    POW_F64

    /* floating point comparison */
    OEQ_F32
    OEQ_F64
    UNE_F32
    UNE_F64
    OGE_F32
    OGE_F64
    OLT_F32
    OLT_F64
    OLE_F32
    OLE_F64
    OGT_F32
    OGT_F64
    UO_F32
    UO_F64
    O_F32
    O_F64

    _IDCount
)

// ABI selects the naming convention of the runtime routines.
type ABI uint8

const (
    GNU ABI = iota
    AEABI
)

func (self ABI) String() string {
    switch self {
        case GNU   : return "gnu"
        case AEABI : return "aeabi"
        default    : return fmt.Sprintf("abi(%d)", uint8(self))
    }
}

var gnuNames = [_IDCount]string {
    SDIV_I32    : "__divsi3",
    UDIV_I32    : "__udivsi3",
    SREM_I32    : "__modsi3",
    UREM_I32    : "__umodsi3",
    SDIVREM_I32 : "__divmodsi4",
    UDIVREM_I32 : "__udivmodsi4",
    ADD_F32     : "__addsf3",
    ADD_F64     : "__adddf3",
    SUB_F32     : "__subsf3",
    SUB_F64     : "__subdf3",
    REM_F32     : "fmodf",
    REM_F64     : "fmod",
    POW_F32     : "powf",
    POW_F64     : "pow",
    OEQ_F32     : "__eqsf2",
    OEQ_F64     : "__eqdf2",
    UNE_F32     : "__nesf2",
    UNE_F64     : "__nedf2",
    OGE_F32     : "__gesf2",
    OGE_F64     : "__gedf2",
    OLT_F32     : "__ltsf2",
    OLT_F64     : "__ltdf2",
    OLE_F32     : "__lesf2",
    OLE_F64     : "__ledf2",
    OGT_F32     : "__gtsf2",
    OGT_F64     : "__gtdf2",
    UO_F32      : "__unordsf2",
    UO_F64      : "__unorddf2",
    O_F32       : "__unordsf2",
    O_F64       : "__unorddf2",
}

// The run-time ABI for the ARM architecture renames most helpers and folds
// the "ordered" and "not equal" checks into the unordered and equality ones.
var aeabiNames = [_IDCount]string {
    SDIV_I32    : "__aeabi_idiv",
    UDIV_I32    : "__aeabi_uidiv",
    SREM_I32    : "__modsi3",
    UREM_I32    : "__umodsi3",
    SDIVREM_I32 : "__aeabi_idivmod",
    UDIVREM_I32 : "__aeabi_uidivmod",
    ADD_F32     : "__aeabi_fadd",
    ADD_F64     : "__aeabi_dadd",
    SUB_F32     : "__aeabi_fsub",
    SUB_F64     : "__aeabi_dsub",
    REM_F32     : "fmodf",
    REM_F64     : "fmod",
    POW_F32     : "powf",
    POW_F64     : "pow",
    OEQ_F32     : "__aeabi_fcmpeq",
    OEQ_F64     : "__aeabi_dcmpeq",
    UNE_F32     : "__aeabi_fcmpeq",
    UNE_F64     : "__aeabi_dcmpeq",
    OGE_F32     : "__aeabi_fcmpge",
    OGE_F64     : "__aeabi_dcmpge",
    OLT_F32     : "__aeabi_fcmplt",
    OLT_F64     : "__aeabi_dcmplt",
    OLE_F32     : "__aeabi_fcmple",
    OLE_F64     : "__aeabi_dcmple",
    OGT_F32     : "__aeabi_fcmpgt",
    OGT_F64     : "__aeabi_dcmpgt",
    UO_F32      : "__aeabi_fcmpun",
    UO_F64      : "__aeabi_dcmpun",
    O_F32       : "__aeabi_fcmpun",
    O_F64       : "__aeabi_dcmpun",
}

var idNames = [_IDCount]string {
    Unknown     : "UNKNOWN_LIBCALL",
    SDIV_I32    : "SDIV_I32",
    UDIV_I32    : "UDIV_I32",
    SREM_I32    : "SREM_I32",
    UREM_I32    : "UREM_I32",
    SDIVREM_I32 : "SDIVREM_I32",
    UDIVREM_I32 : "UDIVREM_I32",
    ADD_F32     : "ADD_F32",
    ADD_F64     : "ADD_F64",
    SUB_F32     : "SUB_F32",
    SUB_F64     : "SUB_F64",
    REM_F32     : "REM_F32",
    REM_F64     : "REM_F64",
    POW_F32     : "POW_F32",
    POW_F64     : "POW_F64",
    OEQ_F32     : "OEQ_F32",
    OEQ_F64     : "OEQ_F64",
    UNE_F32     : "UNE_F32",
    UNE_F64     : "UNE_F64",
    OGE_F32     : "OGE_F32",
    OGE_F64     : "OGE_F64",
    OLT_F32     : "OLT_F32",
    OLT_F64     : "OLT_F64",
    OLE_F32     : "OLE_F32",
    OLE_F64     : "OLE_F64",
    OGT_F32     : "OGT_F32",
    OGT_F64     : "OGT_F64",
    UO_F32      : "UO_F32",
    UO_F64      : "UO_F64",
    O_F32       : "O_F32",
    O_F64       : "O_F64",
}

func (self ID) String() string {
    if self < _IDCount {
        return idNames[self]
    } else {
        return fmt.Sprintf("LIBCALL(%d)", uint16(self))
    }
}

// Name returns the symbol implementing id under abi, or "" if there is none.
func Name(id ID, abi ABI) string {
    if id == Unknown || id >= _IDCount {
        return ""
    }
    switch abi {
        case GNU   : return gnuNames[id]
        case AEABI : return aeabiNames[id]
        default    : return ""
    }
}

// Width picks between the 32 and 64 bit variant of a routine.
func Width(size int, f32 ID, f64 ID) ID {
    switch size {
        case 32 : return f32
        case 64 : return f64
        default : return Unknown
    }
}
