// Copyright (c) 2026 Ledgerware
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at ledgerware.dev/bsl11.
//
// Change Date: 2030-8-1
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package ledger implements the accounting core of a fixed-supply fungible
// token: balance bookkeeping, direct and delegated transfers, and allowance
// management, all projected onto the flat key/value store of the execution
// environment.
//
// Every operation is a single read-validate-write sequence. All reads happen
// before any write, so a rejected operation leaves every touched slot
// unchanged. Rejections are ordinary outcomes signaled by a false return
// value, never errors.
package ledger

import "github.com/ledgerware/tokencore/token"

// Ledger provides the token operations on top of a host context. It holds no
// state of its own; all state lives in the host's key/value store.
type Ledger struct {
	host token.HostContext
}

// New creates a ledger operating on the given host context.
func New(host token.HostContext) *Ledger {
	return &Ledger{host: host}
}

// Constructor initializes the ledger by recording the total supply,
// assigning the full supply to the creating sender, and recording the sender
// as the owner. The environment must call it exactly once per contract
// lifetime; the ledger itself does not guard against re-invocation. The
// supply is not validated, zero and the maximum representable value are both
// accepted. No event is emitted.
func (l *Ledger) Constructor(sender token.Address, totalSupply token.Value) {
	l.host.SetStorage(totalSupplyKey, token.Word(totalSupply))
	l.host.SetStorage(balanceKey(sender), token.Word(totalSupply))
	l.host.SetStorage(ownerKey, addressWord(sender))
}

// TotalSupply returns the total supply recorded at construction.
func (l *Ledger) TotalSupply() token.Value {
	return token.Value(l.host.GetStorage(totalSupplyKey))
}

// Owner returns the address that initialized the ledger. The owner is
// recorded for informational purposes and gates no operation.
func (l *Ledger) Owner() token.Address {
	return wordAddress(l.host.GetStorage(ownerKey))
}

// BalanceOf returns the balance of the given address, zero for addresses
// never involved in a transfer.
func (l *Ledger) BalanceOf(owner token.Address) token.Value {
	return token.Value(l.host.GetStorage(balanceKey(owner)))
}

// Allowance returns the remaining amount the spender may withdraw from the
// owner's balance, zero if no approval was granted.
func (l *Ledger) Allowance(owner, spender token.Address) token.Value {
	return token.Value(l.host.GetStorage(allowanceKey(owner, spender)))
}

// Transfer moves amount from the sender's balance to the recipient's. The
// call is rejected, returning false without any state change or event, if
// the amount is zero or exceeds the sender's balance. On success a Transfer
// event is emitted and true is returned.
func (l *Ledger) Transfer(sender, to token.Address, amount token.Value) bool {
	senderBalance := l.BalanceOf(sender)
	recipientBalance := l.BalanceOf(to)
	if amount.IsZero() || senderBalance.Cmp(amount) < 0 {
		return false
	}

	// A self-transfer maps both slots onto the same key; the symmetric
	// subtract/add cancels, so the slot is left untouched.
	if sender != to {
		l.host.SetStorage(balanceKey(sender), token.Word(token.Sub(senderBalance, amount)))
		l.host.SetStorage(balanceKey(to), token.Word(token.Add(recipientBalance, amount)))
	}
	emitTransfer(l.host, sender, to, amount)
	return true
}

// Approve sets the spender's allowance on the sender's balance to the given
// value, overwriting any prior allowance. A second approval replaces rather
// than adds to the first; callers issuing concurrent approvals must account
// for this themselves. Emits an Approval event and always returns true.
func (l *Ledger) Approve(sender, spender token.Address, value token.Value) bool {
	l.host.SetStorage(allowanceKey(sender, spender), token.Word(value))
	emitApproval(l.host, sender, spender, value)
	return true
}

// TransferFrom moves amount from one balance to another on behalf of the
// sender, consuming the sender's allowance on the source address. The call
// is rejected, returning false without any state change or event, if the
// allowance or the source balance is insufficient or the amount is zero.
// On success the allowance is reduced by the amount, a Transfer event is
// emitted, and true is returned.
func (l *Ledger) TransferFrom(sender, from, to token.Address, amount token.Value) bool {
	key := allowanceKey(from, sender)
	allowed := token.Value(l.host.GetStorage(key))
	fromBalance := l.BalanceOf(from)
	recipientBalance := l.BalanceOf(to)
	if allowed.Cmp(amount) < 0 || amount.IsZero() || fromBalance.Cmp(amount) < 0 {
		return false
	}

	l.host.SetStorage(key, token.Word(token.Sub(allowed, amount)))
	if from != to {
		l.host.SetStorage(balanceKey(from), token.Word(token.Sub(fromBalance, amount)))
		l.host.SetStorage(balanceKey(to), token.Word(token.Add(recipientBalance, amount)))
	}
	emitTransfer(l.host, from, to, amount)
	return true
}
