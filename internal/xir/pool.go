// Package xir implements the IR object model, builder, analyses and
// transforms for a GPU shading/compute language: values, users, uses,
// types, constants, instructions, basic blocks, functions, modules and
// metadata, together with a dominator-tree analysis, dead-code elimination,
// store-forwarding/load-elimination, GEP-chain tracing, an aggregate field
// bitmask primitive, and a deterministic textual/JSON printer.
package xir

import "github.com/segmentio/ksuid"

// ValueID is a pool-local identity handle. It plays the role the original
// implementation gave to a stable pointer: the only thing outside this
// package that ever sees one is a printer or a JSON tree, never a live
// reference that could outlive its pool.
type ValueID uint32

// Pool owns every IR object produced through it. There is no Go-level
// teardown step (the garbage collector reclaims unreachable objects once
// the pool itself is unreachable), but identity, allocation order and the
// "values must not outlive their pool" rule are still enforced: a value's
// ValueID is only meaningful relative to the Pool that minted it, and nothing
// outside this package constructs a Value by any means other than a Pool
// method or a Builder method backed by one.
type Pool struct {
	id     string
	nextID uint32
}

// NewPool creates an empty pool, stamped with a sortable unique id so a
// long-running host (a language server translating many files concurrently,
// one module per goroutine) can tell pools apart in logs.
func NewPool() *Pool {
	return &Pool{id: ksuid.New().String()}
}

// ID returns the pool's unique identity string.
func (p *Pool) ID() string { return p.id }

func (p *Pool) allocID() ValueID {
	id := ValueID(p.nextID)
	p.nextID++
	return id
}
