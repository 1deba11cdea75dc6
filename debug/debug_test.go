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

package debug

import (
    `testing`

    `github.com/cloudwego/gisel/arm`
    `github.com/cloudwego/gisel/legalizer`
    `github.com/cloudwego/gisel/llt`
    `github.com/cloudwego/gisel/mir`
    `github.com/stretchr/testify/assert`
    `github.com/stretchr/testify/require`
)

func TestGetStats(t *testing.T) {
    fn := mir.NewFunc("stats")
    bb := fn.NewBlock()
    x := fn.NewReg(llt.S32)
    bb.Append(&mir.Instr { Op: mir.OpSRem, Defs: []mir.Reg { fn.NewReg(llt.S32) }, Uses: []mir.Reg { x, x } })
    bb.Append(&mir.Instr { Op: mir.OpFRem, Defs: []mir.Reg { fn.NewReg(llt.S32) }, Uses: []mir.Reg { x, x } })

    /* counters only ever grow */
    before := GetStats()
    require.NoError(t, legalizer.New(arm.NewLegalizerInfo(arm.Subtarget { Env: arm.EnvEABI })).Legalize(fn))
    after := GetStats()
    assert.GreaterOrEqual(t, after.Custom - before.Custom, 1)
    assert.GreaterOrEqual(t, after.Libcalls - before.Libcalls, 1)
    assert.GreaterOrEqual(t, after.Legal, before.Legal)
}
