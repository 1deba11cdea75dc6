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

// Predicate is the condition of a comparison. Floating point predicates come
// first, followed by the integer ones; the numbering follows the usual
// compiler convention so that the float predicates can index a table.
type Predicate uint8

const (
    FCmpFalse Predicate = iota  // always false
    FCmpOEQ                     // ordered and equal
    FCmpOGT                     // ordered and greater than
    FCmpOGE                     // ordered and greater than or equal
    FCmpOLT                     // ordered and less than
    FCmpOLE                     // ordered and less than or equal
    FCmpONE                     // ordered and not equal
    FCmpORD                     // ordered (no NaNs)
    FCmpUNO                     // unordered (either is NaN)
    FCmpUEQ                     // unordered or equal
    FCmpUGT                     // unordered or greater than
    FCmpUGE                     // unordered, greater than, or equal
    FCmpULT                     // unordered or less than
    FCmpULE                     // unordered, less than, or equal
    FCmpUNE                     // unordered or not equal
    FCmpTrue                    // always true
)

const (
    ICmpEQ Predicate = iota + 32
    ICmpNE
    ICmpUGT
    ICmpUGE
    ICmpULT
    ICmpULE
    ICmpSGT
    ICmpSGE
    ICmpSLT
    ICmpSLE
)

// BadICmp is the "no predicate" marker.
const BadICmp Predicate = ICmpSLE + 1

const (
    FirstFCmp = FCmpFalse
    LastFCmp  = FCmpTrue
    FirstICmp = ICmpEQ
    LastICmp  = ICmpSLE
)

var predicateNames = map[Predicate]string {
    FCmpFalse : "false",
    FCmpOEQ   : "oeq",
    FCmpOGT   : "ogt",
    FCmpOGE   : "oge",
    FCmpOLT   : "olt",
    FCmpOLE   : "ole",
    FCmpONE   : "one",
    FCmpORD   : "ord",
    FCmpUNO   : "uno",
    FCmpUEQ   : "ueq",
    FCmpUGT   : "ugt",
    FCmpUGE   : "uge",
    FCmpULT   : "ult",
    FCmpULE   : "ule",
    FCmpUNE   : "une",
    FCmpTrue  : "true",
    ICmpEQ    : "eq",
    ICmpNE    : "ne",
    ICmpUGT   : "ugt",
    ICmpUGE   : "uge",
    ICmpULT   : "ult",
    ICmpULE   : "ule",
    ICmpSGT   : "sgt",
    ICmpSGE   : "sge",
    ICmpSLT   : "slt",
    ICmpSLE   : "sle",
    BadICmp   : "none",
}

func (self Predicate) IsFP() bool {
    return self <= LastFCmp
}

func (self Predicate) IsInt() bool {
    return self >= FirstICmp && self <= LastICmp
}

func (self Predicate) String() string {
    if s, ok := predicateNames[self]; ok {
        if self.IsFP() {
            return "float" + s
        } else if self.IsInt() {
            return "int" + s
        } else {
            return s
        }
    } else {
        return fmt.Sprintf("pred(%d)", uint8(self))
    }
}
