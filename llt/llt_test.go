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

package llt

import (
    `testing`

    `github.com/stretchr/testify/assert`
)

func TestType_Equality(t *testing.T) {
    assert.Equal(t, Scalar(32), S32)
    assert.NotEqual(t, S32, P0)
    assert.NotEqual(t, Pointer(0, 32), Pointer(1, 32))
    assert.NotEqual(t, Pointer(0, 32), Pointer(0, 64))
    assert.NotEqual(t, S32, S64)
    assert.True(t, Pointer(0, 32) == P0)
    m := map[Type]int { S1: 1, S32: 32, P0: -1 }
    assert.Equal(t, 32, m[Scalar(32)])
    assert.Equal(t, -1, m[Pointer(0, 32)])
}

func TestType_Properties(t *testing.T) {
    assert.True(t, S16.IsScalar())
    assert.False(t, S16.IsPointer())
    assert.True(t, P0.IsPointer())
    assert.Equal(t, 32, P0.SizeInBits())
    assert.Equal(t, 0, P0.AddressSpace())
    assert.Equal(t, 3, Pointer(3, 32).AddressSpace())
    assert.False(t, Type{}.IsValid())
    assert.Equal(t, 0, Type{}.SizeInBits())
}

func TestType_String(t *testing.T) {
    assert.Equal(t, "s1", S1.String())
    assert.Equal(t, "s64", S64.String())
    assert.Equal(t, "p0", P0.String())
    assert.Equal(t, "p2", Pointer(2, 32).String())
    assert.Equal(t, "<invalid>", Type{}.String())
}

func TestType_InvalidSize(t *testing.T) {
    assert.Panics(t, func() { Scalar(0) })
    assert.Panics(t, func() { Pointer(0, -1) })
    assert.Panics(t, func() { Pointer(-1, 32) })
}
