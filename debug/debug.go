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
    `sync/atomic`

    `github.com/cloudwego/gisel/legalizer`
)

// A Stats records statistics about the legalizer since the process started.
type Stats struct {
    Legal    int
    Widened  int
    Lowered  int
    Libcalls int
    Custom   int
    Failures int
}

// GetStats returns statistics of the legalizer.
func GetStats() Stats {
    return Stats {
        Legal    : int(atomic.LoadUint64(&legalizer.LegalCount)),
        Widened  : int(atomic.LoadUint64(&legalizer.WidenCount)),
        Lowered  : int(atomic.LoadUint64(&legalizer.LowerCount)),
        Libcalls : int(atomic.LoadUint64(&legalizer.LibcallCount)),
        Custom   : int(atomic.LoadUint64(&legalizer.CustomCount)),
        Failures : int(atomic.LoadUint64(&legalizer.FailureCount)),
    }
}
