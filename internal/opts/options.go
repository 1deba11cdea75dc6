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
    `github.com/cloudwego/gisel/arm`
)

type Options struct {
    HasDivide bool
    HasVFP2   bool
    SoftFloat bool
    Env       arm.Env
    DumpTable bool
}

// Subtarget converts the options into the capabilities of the target.
func (self *Options) Subtarget() arm.Subtarget {
    return arm.Subtarget {
        HasDivide : self.HasDivide,
        HasVFP2   : self.HasVFP2,
        SoftFloat : self.SoftFloat,
        Env       : self.Env,
    }
}

func GetDefaultOptions() Options {
    return Options {
        HasDivide : DefaultHasDivide,
        HasVFP2   : DefaultHasVFP2,
        SoftFloat : DefaultSoftFloat,
        Env       : arm.ParseEnv(DefaultTriple),
        DumpTable : DumpTable,
    }
}
