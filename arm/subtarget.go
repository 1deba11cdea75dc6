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

// Package arm describes how generic instructions are legalized for 32-bit
// ARM targets.
package arm

import (
    `fmt`
    `strings`

    `github.com/cloudwego/gisel/rtlib`
)

// Env is the environment component of a target triple, which decides the
// ABI family of the runtime library.
type Env uint8

const (
    EnvUnknown Env = iota
    EnvGNU
    EnvAndroid
    EnvEABI
    EnvEABIHF
    EnvGNUEABI
    EnvGNUEABIHF
    EnvMusl
    EnvMuslEABI
    EnvMuslEABIHF
)

// Longer names first, every entry is matched as a prefix.
var envPrefixes = [...]struct {
    name string
    env  Env
} {
    { "eabihf"     , EnvEABIHF     },
    { "eabi"       , EnvEABI       },
    { "gnueabihf"  , EnvGNUEABIHF  },
    { "gnueabi"    , EnvGNUEABI    },
    { "gnu"        , EnvGNU        },
    { "androideabi", EnvAndroid    },
    { "android"    , EnvAndroid    },
    { "musleabihf" , EnvMuslEABIHF },
    { "musleabi"   , EnvMuslEABI   },
    { "musl"       , EnvMusl       },
}

// ParseEnv extracts the environment from a target triple such as
// "armv7-none-eabi" or "arm-unknown-linux-musleabihf".
func ParseEnv(triple string) Env {
    parts := strings.Split(strings.ToLower(triple), "-")

    /* the architecture never names an environment */
    if len(parts) < 2 {
        return EnvUnknown
    }

    /* the environment is the last recognizable component */
    for i := len(parts) - 1; i >= 1; i-- {
        for _, p := range envPrefixes {
            if strings.HasPrefix(parts[i], p.name) {
                return p.env
            }
        }
    }
    return EnvUnknown
}

func (self Env) String() string {
    switch self {
        case EnvUnknown    : return "unknown"
        case EnvGNU        : return "gnu"
        case EnvAndroid    : return "android"
        case EnvEABI       : return "eabi"
        case EnvEABIHF     : return "eabihf"
        case EnvGNUEABI    : return "gnueabi"
        case EnvGNUEABIHF  : return "gnueabihf"
        case EnvMusl       : return "musl"
        case EnvMuslEABI   : return "musleabi"
        case EnvMuslEABIHF : return "musleabihf"
        default            : return fmt.Sprintf("env(%d)", uint8(self))
    }
}

// IsAEABI reports whether the environment follows the run-time ABI for the
// ARM architecture: bare-metal EABI, GNU EABI or musl EABI.
func (self Env) IsAEABI() bool {
    switch self {
        case EnvEABI, EnvEABIHF         : return true
        case EnvGNUEABI, EnvGNUEABIHF   : return true
        case EnvMuslEABI, EnvMuslEABIHF : return true
        default                         : return false
    }
}

// Subtarget holds the capabilities the legalization rules depend on. It is
// a plain value: rules never consult any other state.
type Subtarget struct {
    HasDivide bool  // hardware SDIV/UDIV in ARM mode
    HasVFP2   bool  // VFPv2 floating point unit
    SoftFloat bool  // floating point forced to software
    Env       Env
}

// HasFPU reports whether floating point operations run on hardware.
func (self Subtarget) HasFPU() bool {
    return self.HasVFP2 && !self.SoftFloat
}

func (self Subtarget) IsAEABI() bool {
    return self.Env.IsAEABI()
}

// LibcallABI returns the naming convention of the runtime routines.
func (self Subtarget) LibcallABI() rtlib.ABI {
    if self.IsAEABI() {
        return rtlib.AEABI
    } else {
        return rtlib.GNU
    }
}

func (self Subtarget) String() string {
    return fmt.Sprintf("arm{hwdiv=%t, vfp2=%t, softfloat=%t, env=%s}", self.HasDivide, self.HasVFP2, self.SoftFloat, self.Env)
}
