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
    `fmt`

    `github.com/cloudwego/gisel/mir`
    `github.com/cloudwego/gisel/rtlib`
)

// LibcallStep is one runtime comparison. If Pred is mir.BadICmp the routine
// already returns 0 or 1, otherwise its result is compared against zero
// with Pred.
type LibcallStep struct {
    ID   rtlib.ID
    Pred mir.Predicate
}

func (self LibcallStep) String() string {
    return fmt.Sprintf("%s(%s)", self.ID, self.Pred)
}

type fcmpTable [mir.LastFCmp + 1][]LibcallStep

// FCmpPlan maps every floating point predicate and operand width to the
// runtime comparisons implementing it. Two steps are OR-ed together.
type FCmpPlan struct {
    Name string
    f32  fcmpTable
    f64  fcmpTable
}

const none = mir.BadICmp

// AEABIPlan follows the run-time ABI for the ARM architecture, where the
// comparison helpers return a boolean. FCmpTrue and FCmpFalse need no call.
var AEABIPlan = &FCmpPlan {
    Name: "aeabi",
    f32: fcmpTable {
        mir.FCmpOEQ : { { rtlib.OEQ_F32, none } },
        mir.FCmpOGE : { { rtlib.OGE_F32, none } },
        mir.FCmpOGT : { { rtlib.OGT_F32, none } },
        mir.FCmpOLE : { { rtlib.OLE_F32, none } },
        mir.FCmpOLT : { { rtlib.OLT_F32, none } },
        mir.FCmpORD : { { rtlib.O_F32, mir.ICmpEQ } },
        mir.FCmpUGE : { { rtlib.OLT_F32, mir.ICmpEQ } },
        mir.FCmpUGT : { { rtlib.OLE_F32, mir.ICmpEQ } },
        mir.FCmpULE : { { rtlib.OGT_F32, mir.ICmpEQ } },
        mir.FCmpULT : { { rtlib.OGE_F32, mir.ICmpEQ } },
        mir.FCmpUNE : { { rtlib.UNE_F32, mir.ICmpEQ } },
        mir.FCmpUNO : { { rtlib.UO_F32, none } },
        mir.FCmpONE : { { rtlib.OGT_F32, none }, { rtlib.OLT_F32, none } },
        mir.FCmpUEQ : { { rtlib.OEQ_F32, none }, { rtlib.UO_F32, none } },
    },
    f64: fcmpTable {
        mir.FCmpOEQ : { { rtlib.OEQ_F64, none } },
        mir.FCmpOGE : { { rtlib.OGE_F64, none } },
        mir.FCmpOGT : { { rtlib.OGT_F64, none } },
        mir.FCmpOLE : { { rtlib.OLE_F64, none } },
        mir.FCmpOLT : { { rtlib.OLT_F64, none } },
        mir.FCmpORD : { { rtlib.O_F64, mir.ICmpEQ } },
        mir.FCmpUGE : { { rtlib.OLT_F64, mir.ICmpEQ } },
        mir.FCmpUGT : { { rtlib.OLE_F64, mir.ICmpEQ } },
        mir.FCmpULE : { { rtlib.OGT_F64, mir.ICmpEQ } },
        mir.FCmpULT : { { rtlib.OGE_F64, mir.ICmpEQ } },
        mir.FCmpUNE : { { rtlib.UNE_F64, mir.ICmpEQ } },
        mir.FCmpUNO : { { rtlib.UO_F64, none } },
        mir.FCmpONE : { { rtlib.OGT_F64, none }, { rtlib.OLT_F64, none } },
        mir.FCmpUEQ : { { rtlib.OEQ_F64, none }, { rtlib.UO_F64, none } },
    },
}

// GNUPlan follows the libgcc soft-float helpers, whose results are three-way
// and must always be compared against zero.
var GNUPlan = &FCmpPlan {
    Name: "gnu",
    f32: fcmpTable {
        mir.FCmpOEQ : { { rtlib.OEQ_F32, mir.ICmpEQ } },
        mir.FCmpOGE : { { rtlib.OGE_F32, mir.ICmpSGE } },
        mir.FCmpOGT : { { rtlib.OGT_F32, mir.ICmpSGT } },
        mir.FCmpOLE : { { rtlib.OLE_F32, mir.ICmpSLE } },
        mir.FCmpOLT : { { rtlib.OLT_F32, mir.ICmpSLT } },
        mir.FCmpORD : { { rtlib.O_F32, mir.ICmpEQ } },
        mir.FCmpUGE : { { rtlib.OLT_F32, mir.ICmpSGE } },
        mir.FCmpUGT : { { rtlib.OLE_F32, mir.ICmpSGT } },
        mir.FCmpULE : { { rtlib.OGT_F32, mir.ICmpSLE } },
        mir.FCmpULT : { { rtlib.OGE_F32, mir.ICmpSLT } },
        mir.FCmpUNE : { { rtlib.UNE_F32, mir.ICmpNE } },
        mir.FCmpUNO : { { rtlib.UO_F32, mir.ICmpNE } },
        mir.FCmpONE : { { rtlib.OGT_F32, mir.ICmpSGT }, { rtlib.OLT_F32, mir.ICmpSLT } },
        mir.FCmpUEQ : { { rtlib.OEQ_F32, mir.ICmpEQ }, { rtlib.UO_F32, mir.ICmpNE } },
    },
    f64: fcmpTable {
        mir.FCmpOEQ : { { rtlib.OEQ_F64, mir.ICmpEQ } },
        mir.FCmpOGE : { { rtlib.OGE_F64, mir.ICmpSGE } },
        mir.FCmpOGT : { { rtlib.OGT_F64, mir.ICmpSGT } },
        mir.FCmpOLE : { { rtlib.OLE_F64, mir.ICmpSLE } },
        mir.FCmpOLT : { { rtlib.OLT_F64, mir.ICmpSLT } },
        mir.FCmpORD : { { rtlib.O_F64, mir.ICmpEQ } },
        mir.FCmpUGE : { { rtlib.OLT_F64, mir.ICmpSGE } },
        mir.FCmpUGT : { { rtlib.OLE_F64, mir.ICmpSGT } },
        mir.FCmpULE : { { rtlib.OGT_F64, mir.ICmpSLE } },
        mir.FCmpULT : { { rtlib.OGE_F64, mir.ICmpSLT } },
        mir.FCmpUNE : { { rtlib.UNE_F64, mir.ICmpNE } },
        mir.FCmpUNO : { { rtlib.UO_F64, mir.ICmpNE } },
        mir.FCmpONE : { { rtlib.OGT_F64, mir.ICmpSGT }, { rtlib.OLT_F64, mir.ICmpSLT } },
        mir.FCmpUEQ : { { rtlib.OEQ_F64, mir.ICmpEQ }, { rtlib.UO_F64, mir.ICmpNE } },
    },
}

// Lookup returns the steps implementing pred on operands of size bits.
// Passing an integer predicate or a size other than 32 or 64 is a bug in
// the caller.
func (self *FCmpPlan) Lookup(pred mir.Predicate, size int) []LibcallStep {
    if !pred.IsFP() {
        panic("arm: unsupported fcmp predicate: " + pred.String())
    }
    switch size {
        case 32 : return append([]LibcallStep(nil), self.f32[pred]...)
        case 64 : return append([]LibcallStep(nil), self.f64[pred]...)
        default : panic(fmt.Sprintf("arm: unsupported size for fcmp predicate: %d", size))
    }
}
