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
    `runtime`

    `github.com/klauspost/cpuid/v2`
)

// HostSubtarget describes the machine the process is running on, for
// compiling code that runs natively. Integer division is mandatory from
// ARMv8 on, so 64-bit hosts running 32-bit code always have it.
func HostSubtarget() Subtarget {
    env := EnvEABIHF
    if runtime.GOOS == "linux" {
        env = EnvGNUEABIHF
    }
    return Subtarget {
        HasDivide : runtime.GOARCH == "arm64",
        HasVFP2   : cpuid.CPU.Supports(cpuid.FP),
        Env       : env,
    }
}
