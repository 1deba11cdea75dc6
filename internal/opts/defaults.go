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

package opts

import (
    `github.com/xyproto/env/v2`
)

const (
    _DefaultTriple = "armv7-none-eabi"  // bare metal, no FPU, no divider
)

var (
    DefaultTriple    = env.Str("GISEL_TRIPLE", _DefaultTriple)
    DefaultHasDivide = env.Bool("GISEL_HWDIV")
    DefaultHasVFP2   = env.Bool("GISEL_VFP2")
    DefaultSoftFloat = env.Bool("GISEL_SOFT_FLOAT")
    DumpTable        = env.Bool("GISEL_DEBUG_TABLE")
)
