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

package rtlib

import (
    `testing`

    `github.com/stretchr/testify/assert`
)

func TestName_Complete(t *testing.T) {
    for id := Unknown + 1; id < _IDCount; id++ {
        assert.NotEmpty(t, Name(id, GNU), id.String())
        assert.NotEmpty(t, Name(id, AEABI), id.String())
    }
    assert.Empty(t, Name(Unknown, GNU))
    assert.Empty(t, Name(_IDCount, AEABI))
    assert.Empty(t, Name(OEQ_F32, ABI(9)))
}

func TestName_Convention(t *testing.T) {
    assert.Equal(t, "__aeabi_idivmod", Name(SDIVREM_I32, AEABI))
    assert.Equal(t, "__aeabi_uidivmod", Name(UDIVREM_I32, AEABI))
    assert.Equal(t, "__aeabi_dcmpun", Name(O_F64, AEABI))
    assert.Equal(t, "__aeabi_fcmpeq", Name(UNE_F32, AEABI))
    assert.Equal(t, "__nesf2", Name(UNE_F32, GNU))
    assert.Equal(t, "__unorddf2", Name(O_F64, GNU))
    assert.Equal(t, "__divsi3", Name(SDIV_I32, GNU))
    assert.Equal(t, "fmod", Name(REM_F64, AEABI))
}

func TestWidth(t *testing.T) {
    assert.Equal(t, OEQ_F32, Width(32, OEQ_F32, OEQ_F64))
    assert.Equal(t, OEQ_F64, Width(64, OEQ_F32, OEQ_F64))
    assert.Equal(t, Unknown, Width(16, OEQ_F32, OEQ_F64))
}
