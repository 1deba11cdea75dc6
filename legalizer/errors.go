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

package legalizer

import (
    `fmt`

    `github.com/nikandfor/errors`
)

var (
    // ErrUnbound is returned when a key was never given an action.
    ErrUnbound = errors.New("no action bound")

    // ErrContract is returned when a rewrite is asked to handle an
    // operation, width or predicate it does not support.
    ErrContract = errors.New("unsupported by custom lowering")

    // ErrCallLowering is returned when a runtime call cannot be expressed
    // in the target calling convention.
    ErrCallLowering = errors.New("cannot lower call")

    // ErrUnsupported is returned for actions the driver cannot perform.
    ErrUnsupported = errors.New("unsupported action")
)

// KeyError occurs when the legalization table has no entry for a key.
type KeyError struct {
    Key Key
}

func (self KeyError) Error() string {
    return fmt.Sprintf("KeyError(%s): %s", self.Key, ErrUnbound)
}

func (self KeyError) Unwrap() error {
    return ErrUnbound
}
