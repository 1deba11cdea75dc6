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

package gisel

import (
    `fmt`

    `github.com/cloudwego/gisel/arm`
    `github.com/cloudwego/gisel/internal/opts`
)

// Option is the property setter function for opts.Options.
type Option func(*opts.Options)

// WithHardwareDivide declares that the target has SDIV and UDIV in ARM mode.
//
// Without it, 32-bit divisions become runtime calls, and so do remainders
// (through the combined division routines on AEABI targets).
//
// The default value is taken from the "GISEL_HWDIV" environment variable.
func WithHardwareDivide(v bool) Option {
    return func(o *opts.Options) { o.HasDivide = v }
}

// WithVFP2 declares that the target has a VFPv2 floating point unit.
//
// The default value is taken from the "GISEL_VFP2" environment variable.
func WithVFP2(v bool) Option {
    return func(o *opts.Options) { o.HasVFP2 = v }
}

// WithSoftFloat forces floating point arithmetic and comparisons into
// runtime calls even if the target has a floating point unit.
func WithSoftFloat(v bool) Option {
    return func(o *opts.Options) { o.SoftFloat = v }
}

// WithEnvironment selects the ABI family.
func WithEnvironment(env arm.Env) Option {
    if env > arm.EnvMuslEABIHF {
        panic(fmt.Sprintf("gisel: invalid environment: %d", env))
    } else {
        return func(o *opts.Options) { o.Env = env }
    }
}

// WithTriple selects the ABI family from a target triple, such as
// "armv7-none-eabihf" or "arm-unknown-linux-gnueabi".
//
// The default triple is taken from the "GISEL_TRIPLE" environment variable,
// and is "armv7-none-eabi" if not set.
func WithTriple(triple string) Option {
    if triple == "" {
        panic("gisel: empty target triple")
    } else {
        env := arm.ParseEnv(triple)
        return func(o *opts.Options) { o.Env = env }
    }
}

// WithTableDump logs the legalization table of every new target.
func WithTableDump(v bool) Option {
    return func(o *opts.Options) { o.DumpTable = v }
}
