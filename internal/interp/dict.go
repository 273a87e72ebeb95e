package interp

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// Dict is a persistent dictionary from int64 keys to values, ordered by
// key. With and Without return new dictionaries and leave the receiver
// unchanged, so a Dict may be shared freely between variables.
type Dict struct {
	m *treemap.Map // int64 -> Value; never modified after construction
}

// NewDict returns an empty dictionary.
func NewDict() *Dict {
	return &Dict{m: treemap.NewWith(utils.Int64Comparator)}
}

// clone returns a dictionary holding the same entries as d in a fresh
// tree.
func (d *Dict) clone() *Dict {
	c := NewDict()
	d.m.Each(func(k, v interface{}) {
		c.m.Put(k, v)
	})
	return c
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	return d.m.Size()
}

// Get returns the value stored under key.
func (d *Dict) Get(key int64) (Value, bool) {
	v, ok := d.m.Get(key)
	if !ok {
		return nil, false
	}
	return v.(Value), true
}

// With returns a copy of d in which key maps to v.
func (d *Dict) With(key int64, v Value) *Dict {
	c := d.clone()
	c.m.Put(key, v)
	return c
}

// Without returns a copy of d without key.
func (d *Dict) Without(key int64) *Dict {
	c := d.clone()
	c.m.Remove(key)
	return c
}

// Each calls f for every entry in ascending key order. It stops early if
// f returns false.
func (d *Dict) Each(f func(key int64, v Value) bool) {
	it := d.m.Iterator()
	for it.Next() {
		if !f(it.Key().(int64), it.Value().(Value)) {
			return
		}
	}
}

func (d *Dict) equal(o *Dict) bool {
	if d == o {
		return true
	}
	if d.Len() != o.Len() {
		return false
	}
	eq := true
	d.Each(func(k int64, v Value) bool {
		w, ok := o.Get(k)
		eq = ok && Equal(v, w)
		return eq
	})
	return eq
}

func (*Dict) aValue() {}

// String formats d as [k1:v1,k2:v2] in ascending key order.
func (d *Dict) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	d.Each(func(k int64, v Value) bool {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(Int(k).String())
		b.WriteByte(':')
		b.WriteString(v.String())
		return true
	})
	b.WriteByte(']')
	return b.String()
}
