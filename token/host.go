// Copyright (c) 2026 Ledgerware
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at ledgerware.dev/bsl11.
//
// Change Date: 2030-8-1
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package token

//go:generate mockgen -source host.go -destination host_mock.go -package token

// HostContext is the interface through which contract code interacts with
// its execution environment. The environment provides a durable key/value
// store of fixed-width words and an append-only structured log. It is the
// environment's responsibility to serialize invocations and to apply the
// writes of one invocation all-or-nothing; contract code performs no
// synchronization of its own.
type HostContext interface {
	// GetStorage returns the word stored under the given key, or the zero
	// word for keys that have never been written.
	GetStorage(Key) Word

	// SetStorage durably stores the given word under the given key. The
	// write is visible to all later reads within the same and subsequent
	// invocations.
	SetStorage(Key, Word)

	// EmitLog appends the given log entry to the environment's log. Logs
	// are write-only telemetry; emitting one has no effect on storage.
	EmitLog(Log)

	// GetLogs returns all log entries emitted so far, in emission order.
	GetLogs() []Log
}

// Address represents the 160-bit (20 bytes) address of an account.
type Address [20]byte

// Key represents the 256-bit (32 bytes) key of a storage slot.
type Key [32]byte

// Word represents an arbitrary 256-bit (32 byte) word of storage.
type Word [32]byte

// Value represents a 256-bit unsigned token amount in big-endian order.
type Value [32]byte

// Hash represents the 256-bit (32 bytes) hash of an event signature, an
// indexed event field, or similar cryptographic summary information.
type Hash [32]byte

// Log is the type summarizing a log entry emitted as a side effect of a
// contract execution. Topics are separately matchable; Data carries the
// non-indexed payload.
type Log struct {
	Topics []Hash
	Data   []byte
}
