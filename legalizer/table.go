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
    `sort`

    `github.com/cloudwego/gisel/llt`
    `github.com/cloudwego/gisel/mir`
    `github.com/davecgh/go-spew/spew`
)

// Key identifies one type index of an operation.
type Key struct {
    Op   mir.Opcode
    Idx  int
    Type llt.Type
}

func (self Key) String() string {
    return fmt.Sprintf("{%s, %d, %s}", self.Op, self.Idx, self.Type)
}

// TableBuilder collects actions while a target is being initialized.
type TableBuilder struct {
    m    map[Key]Action
    done bool
}

func NewTableBuilder() *TableBuilder {
    return &TableBuilder { m: make(map[Key]Action) }
}

// SetAction binds act to the primary type of op.
func (self *TableBuilder) SetAction(op mir.Opcode, ty llt.Type, act Action) {
    self.SetActionAt(op, 0, ty, act)
}

// SetActionAt binds act to type index idx of op. Later bindings of the same
// key replace earlier ones.
func (self *TableBuilder) SetActionAt(op mir.Opcode, idx int, ty llt.Type, act Action) {
    if self.done {
        panic("legalizer: table already computed")
    } else if act == NotFound {
        panic("legalizer: cannot bind NotFound")
    } else if idx < 0 || idx >= op.NumTypeIndices() {
        panic(fmt.Sprintf("legalizer: invalid type index %d for %s", idx, op))
    } else {
        self.m[Key { op, idx, ty }] = act
    }
}

// Compute freezes the builder into a read-only table.
func (self *TableBuilder) Compute() *Table {
    if self.done {
        panic("legalizer: table already computed")
    }
    self.done = true
    return newTable(self.m)
}

// Table is the immutable result of a TableBuilder. It is safe for
// concurrent use.
type Table struct {
    m    map[Key]Action
    keys []Key
}

func newTable(m map[Key]Action) *Table {
    ret := &Table {
        m    : m,
        keys : make([]Key, 0, len(m)),
    }

    /* keep a stable order for enumeration */
    for k := range m {
        ret.keys = append(ret.keys, k)
    }
    sort.Slice(ret.keys, func(i int, j int) bool {
        return keyLess(ret.keys[i], ret.keys[j])
    })
    return ret
}

func keyLess(a Key, b Key) bool {
    if a.Op != b.Op {
        return a.Op < b.Op
    } else if a.Idx != b.Idx {
        return a.Idx < b.Idx
    } else if a.Type.Kind() != b.Type.Kind() {
        return a.Type.Kind() < b.Type.Kind()
    } else if a.Type.SizeInBits() != b.Type.SizeInBits() {
        return a.Type.SizeInBits() < b.Type.SizeInBits()
    } else {
        return a.Type.AddressSpace() < b.Type.AddressSpace()
    }
}

// Lookup returns the action bound to key. Unbound keys yield NotFound and a
// KeyError.
func (self *Table) Lookup(key Key) (Action, error) {
    if act, ok := self.m[key]; ok {
        return act, nil
    } else {
        return NotFound, KeyError { key }
    }
}

// Keys returns every bound key in a deterministic order.
func (self *Table) Keys() []Key {
    return append([]Key(nil), self.keys...)
}

func (self *Table) Len() int {
    return len(self.keys)
}

// NextLegalScalar finds the narrowest scalar wider than ty for which the
// same type index of op is Legal.
func (self *Table) NextLegalScalar(op mir.Opcode, idx int, ty llt.Type) (llt.Type, bool) {
    var ok bool
    var ret llt.Type

    /* scan for the narrowest candidate */
    for _, k := range self.keys {
        if k.Op == op && k.Idx == idx && k.Type.IsScalar() && k.Type.SizeInBits() > ty.SizeInBits() {
            if self.m[k] == Legal && (!ok || k.Type.SizeInBits() < ret.SizeInBits()) {
                ok, ret = true, k.Type
            }
        }
    }
    return ret, ok
}

// Dump renders the table for debugging.
func (self *Table) Dump() string {
    ret := make(map[string]string, len(self.keys))
    for _, k := range self.keys {
        ret[k.String()] = self.m[k].String()
    }
    cfg := spew.ConfigState {
        Indent   : "    ",
        SortKeys : true,
    }
    return cfg.Sdump(ret)
}
