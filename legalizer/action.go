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

package legalizer

import (
    `fmt`
)

// Action is what the legalizer must do with an (operation, type) pair.
type Action uint8

const (
    // NotFound is never bound, it is returned with an error for unbound keys.
    NotFound Action = iota

    // Legal means the target handles the operation natively.
    Legal

    // WidenScalar promotes the operation to the next legal, wider scalar.
    WidenScalar

    // Lower expresses the operation with simpler generic operations.
    Lower

    // Libcall replaces the operation with a call to a runtime routine.
    Libcall

    // Custom defers to the target's own rewrite.
    Custom
)

func (self Action) String() string {
    switch self {
        case NotFound    : return "NotFound"
        case Legal       : return "Legal"
        case WidenScalar : return "WidenScalar"
        case Lower       : return "Lower"
        case Libcall     : return "Libcall"
        case Custom      : return "Custom"
        default          : return fmt.Sprintf("Action(%d)", uint8(self))
    }
}
