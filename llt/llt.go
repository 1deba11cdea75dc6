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

// Package llt describes the low-level types the legalizer reasons about:
// scalars of a given bit width and pointers in an address space.
package llt

import (
    `fmt`
)

type Kind uint8

const (
    Invalid Kind = iota
    ScalarKind
    PointerKind
)

// Type is a scalar or a pointer. Two types are equal iff their kind, size
// and (for pointers) address space are equal, so Type can be compared with
// == and used as a map key.
type Type struct {
    kind  Kind
    space uint16
    bits  uint16
}

func Scalar(bits int) Type {
    if bits <= 0 || bits > 0xffff {
        panic(fmt.Sprintf("llt: invalid scalar size: %d", bits))
    } else {
        return Type { kind: ScalarKind, bits: uint16(bits) }
    }
}

func Pointer(space int, bits int) Type {
    if bits <= 0 || bits > 0xffff {
        panic(fmt.Sprintf("llt: invalid pointer size: %d", bits))
    } else if space < 0 || space > 0xffff {
        panic(fmt.Sprintf("llt: invalid address space: %d", space))
    } else {
        return Type { kind: PointerKind, space: uint16(space), bits: uint16(bits) }
    }
}

var (
    S1  = Scalar(1)
    S8  = Scalar(8)
    S16 = Scalar(16)
    S32 = Scalar(32)
    S64 = Scalar(64)
    P0  = Pointer(0, 32)
)

func (self Type) Kind() Kind {
    return self.kind
}

func (self Type) IsValid() bool {
    return self.kind != Invalid
}

func (self Type) IsScalar() bool {
    return self.kind == ScalarKind
}

func (self Type) IsPointer() bool {
    return self.kind == PointerKind
}

// SizeInBits returns the width of the type, 0 for the invalid type.
func (self Type) SizeInBits() int {
    return int(self.bits)
}

// AddressSpace is only meaningful for pointers.
func (self Type) AddressSpace() int {
    return int(self.space)
}

func (self Type) String() string {
    switch self.kind {
        case ScalarKind  : return fmt.Sprintf("s%d", self.bits)
        case PointerKind : return fmt.Sprintf("p%d", self.space)
        default          : return "<invalid>"
    }
}
