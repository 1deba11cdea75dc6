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

// Package gisel decides how generic machine instructions must be legalized
// for 32-bit ARM targets, and performs the rewrites that need runtime calls.
package gisel

import (
    `sync`

    `github.com/cloudwego/gisel/arm`
    `github.com/cloudwego/gisel/internal/opts`
    `github.com/cloudwego/gisel/legalizer`
    `github.com/cloudwego/gisel/llt`
    `github.com/cloudwego/gisel/mir`
    `github.com/nikandfor/tlog`
)

// Target is the legalizer of one ARM configuration. It is immutable and safe
// for concurrent use, as long as each Func is legalized by one goroutine.
type Target struct {
    info *arm.LegalizerInfo
    lz   *legalizer.Legalizer
}

var targetCache sync.Map

// NewTarget returns the target described by the default options overridden
// by options. Targets are cached by subtarget.
func NewTarget(options ...Option) *Target {
    o := opts.GetDefaultOptions()
    for _, fn := range options {
        fn(&o)
    }

    /* check the cache first */
    st := o.Subtarget()
    if tg, ok := targetCache.Load(st); ok {
        return tg.(*Target)
    }

    /* build the rules */
    info := arm.NewLegalizerInfo(st)
    if o.DumpTable {
        tlog.Printw("legalization table", "subtarget", st.String(), "rules", info.Table().Len(), "table", info.Table().Dump())
    }

    /* racing builders produce identical targets, keep the first */
    tg, _ := targetCache.LoadOrStore(st, &Target {
        info : info,
        lz   : legalizer.New(info),
    })
    return tg.(*Target)
}

func (self *Target) Subtarget() arm.Subtarget {
    return self.info.Subtarget()
}

func (self *Target) Info() *arm.LegalizerInfo {
    return self.info
}

// Lookup returns the action for type index idx of op when it has type ty.
func (self *Target) Lookup(op mir.Opcode, idx int, ty llt.Type) (legalizer.Action, error) {
    return self.info.Lookup(op, idx, ty)
}

// Legalize rewrites fn until every generic instruction is legal.
func (self *Target) Legalize(fn *mir.Func) error {
    return self.lz.Legalize(fn)
}

// Legalize is a shorthand for NewTarget(options...).Legalize(fn).
func Legalize(fn *mir.Func, options ...Option) error {
    return NewTarget(options...).Legalize(fn)
}
