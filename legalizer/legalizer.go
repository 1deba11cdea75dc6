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
    `sync/atomic`

    `github.com/cloudwego/gisel/mir`
    `github.com/nikandfor/errors`
    `github.com/nikandfor/tlog`
    `github.com/oleiade/lane`
)

var (
    LegalCount   uint64
    WidenCount   uint64
    LowerCount   uint64
    LibcallCount uint64
    CustomCount  uint64
    FailureCount uint64
)

// Legalizer walks a function and makes every generic instruction legal for
// the target described by an Info. A Legalizer holds no per-function state
// and may be shared, but a single Func must not be legalized concurrently.
type Legalizer struct {
    info   Info
    helper Helper
}

func New(info Info) *Legalizer {
    return &Legalizer {
        info   : info,
        helper : NewHelper(info),
    }
}

func (self *Legalizer) Info() Info {
    return self.info
}

// Action returns the action for ins: the first type index whose action is
// not Legal decides, otherwise the instruction is Legal.
func (self *Legalizer) Action(fn *mir.Func, ins *mir.Instr) (Action, int, error) {
    tys, err := fn.TypeIndices(ins)
    if err != nil {
        return NotFound, 0, err
    }

    /* query every type index */
    for i, ty := range tys {
        if act, err := self.info.Table().Lookup(Key { ins.Op, i, ty }); err != nil {
            return NotFound, i, err
        } else if act != Legal {
            return act, i, nil
        }
    }

    /* every type index is legal */
    return Legal, 0, nil
}

// Legalize rewrites fn in place. Newly created instructions are legalized as
// well. The first instruction that cannot be legalized aborts the function.
func (self *Legalizer) Legalize(fn *mir.Func) error {
    q := lane.NewQueue()
    enqueue(q, fn.Instrs())

    /* process until fixed point */
    for !q.Empty() {
        ins := q.Dequeue().(*mir.Instr)

        /* skip the erased instructions */
        if ins.Parent() == nil {
            continue
        }

        /* legalize the instruction */
        seq, err := self.LegalizeInstr(fn, ins)
        if err != nil {
            atomic.AddUint64(&FailureCount, 1)
            return errors.Wrap(err, "%s: %v", fn.Name, ins)
        }

        /* the replacement may need further legalization */
        enqueue(q, seq)
    }
    return nil
}

func enqueue(q *lane.Queue, seq []*mir.Instr) {
    for _, v := range seq {
        if v.Op.IsGeneric() && !v.Op.IsArtifact() {
            q.Enqueue(v)
        }
    }
}

// LegalizeInstr applies the action chosen for ins and returns the
// instructions that replaced it, nil if it was already legal.
func (self *Legalizer) LegalizeInstr(fn *mir.Func, ins *mir.Instr) ([]*mir.Instr, error) {
    act, idx, err := self.Action(fn, ins)
    if err != nil {
        return nil, err
    }

    /* trace the decision */
    if l := tlog.V("legalize"); l != nil {
        l.Printw("legalize", "func", fn.Name, "instr", ins.String(), "action", act.String(), "type_index", idx)
    }

    /* nothing to do for legal instructions */
    if act == Legal {
        atomic.AddUint64(&LegalCount, 1)
        return nil, nil
    }

    /* the builder replaces ins only if the action succeeds */
    b := mir.NewBuilder(fn, ins)
    defer b.Discard()

    /* perform the action */
    switch act {
        case WidenScalar : err = self.helper.WidenScalar(b, idx)
        case Lower       : err = self.helper.Lower(b)
        case Libcall     : err = self.helper.Libcall(b)
        case Custom      : err = self.info.LegalizeCustom(b)
        default          : err = errors.Wrap(ErrUnsupported, "%v", act)
    }

    /* check for errors */
    if err != nil {
        return nil, errors.Wrap(err, "%v", act)
    } else if ins.Parent() != nil {
        return nil, errors.Wrap(ErrContract, "%v left the instruction in place", act)
    } else {
        count(act)
        return b.Staged(), nil
    }
}

func count(act Action) {
    switch act {
        case WidenScalar : atomic.AddUint64(&WidenCount, 1)
        case Lower       : atomic.AddUint64(&LowerCount, 1)
        case Libcall     : atomic.AddUint64(&LibcallCount, 1)
        case Custom      : atomic.AddUint64(&CustomCount, 1)
    }
}
