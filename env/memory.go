// Copyright (c) 2026 Ledgerware
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at ledgerware.dev/bsl11.
//
// Change Date: 2030-8-1
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package env provides a simulated execution environment: an in-memory
// implementation of the host context for tests and local experiments.
package env

import (
	"slices"

	"github.com/ledgerware/tokencore/token"
)

// Snapshot identifies a point in the modification history of a Context to
// which the context can be rolled back.
type Snapshot int

// Context is an in-memory host context. Reads of unwritten keys yield the
// zero word; log entries are kept in emission order. Modifications are
// tracked on an undo stack so the all-or-nothing commit of the surrounding
// environment can be simulated by taking a snapshot before an invocation
// and restoring it if the invocation is aborted.
//
// A Context is not safe for concurrent use; the real environment serializes
// invocations and so does any correct use of this simulation.
type Context struct {
	storage map[token.Key]token.Word
	logs    []token.Log
	undo    []func()
}

// NewContext creates an empty in-memory host context.
func NewContext() *Context {
	return &Context{
		storage: map[token.Key]token.Word{},
	}
}

func (c *Context) GetStorage(key token.Key) token.Word {
	return c.storage[key]
}

func (c *Context) SetStorage(key token.Key, value token.Word) {
	original, existed := c.storage[key]
	c.storage[key] = value
	c.undo = append(c.undo, func() {
		if existed {
			c.storage[key] = original
		} else {
			delete(c.storage, key)
		}
	})
}

func (c *Context) EmitLog(log token.Log) {
	length := len(c.logs)
	c.logs = append(c.logs, log)
	c.undo = append(c.undo, func() { c.logs = c.logs[:length] })
}

func (c *Context) GetLogs() []token.Log {
	return slices.Clone(c.logs)
}

// CreateSnapshot captures the current state of the context.
func (c *Context) CreateSnapshot() Snapshot {
	return Snapshot(len(c.undo))
}

// RestoreSnapshot reverts all storage writes and log emissions performed
// since the given snapshot was taken.
func (c *Context) RestoreSnapshot(snapshot Snapshot) {
	for len(c.undo) > int(snapshot) {
		c.undo[len(c.undo)-1]()
		c.undo = c.undo[:len(c.undo)-1]
	}
}
