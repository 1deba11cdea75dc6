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
    `github.com/cloudwego/gisel/legalizer`
)

var (
    // ErrUnbound occurs when an instruction has an operation and type with
    // no legalization action for the target.
    ErrUnbound = legalizer.ErrUnbound

    // ErrContract occurs when a custom rewrite is asked to handle an
    // unsupported width or predicate.
    ErrContract = legalizer.ErrContract

    // ErrCallLowering occurs when a runtime call cannot be passed with the
    // target calling convention.
    ErrCallLowering = legalizer.ErrCallLowering

    // ErrUnsupported occurs when the required action is not implemented.
    ErrUnsupported = legalizer.ErrUnsupported
)
