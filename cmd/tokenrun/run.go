// Copyright (c) 2026 Ledgerware
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at ledgerware.dev/bsl11.
//
// Change Date: 2030-8-1
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"

	"github.com/ledgerware/tokencore/env"
	"github.com/ledgerware/tokencore/ledger"
	"github.com/ledgerware/tokencore/token"
)

var RunCmd = cli.Command{
	Action:    doRun,
	Name:      "run",
	Usage:     "Execute a token scenario against a fresh in-memory environment",
	ArgsUsage: "<scenario.json>",
}

// scenario describes one ledger lifetime: a construction followed by a
// sequence of operations. Addresses and values are 0x-prefixed fixed-width
// hex strings.
type scenario struct {
	Owner       token.Address `json:"owner"`
	TotalSupply token.Value   `json:"totalSupply"`
	Operations  []operation   `json:"operations"`
}

type operation struct {
	Kind    string        `json:"kind"` // transfer | approve | transferFrom
	Sender  token.Address `json:"sender"`
	From    token.Address `json:"from,omitempty"`
	To      token.Address `json:"to,omitempty"`
	Spender token.Address `json:"spender,omitempty"`
	Amount  token.Value   `json:"amount"`
}

func doRun(context *cli.Context) error {
	if context.Args().Len() < 1 {
		return fmt.Errorf("missing scenario file argument")
	}
	data, err := os.ReadFile(context.Args().Get(0))
	if err != nil {
		return fmt.Errorf("failed to read scenario: %w", err)
	}
	var s scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to decode scenario: %w", err)
	}
	return runScenario(s, os.Stdout)
}

func runScenario(s scenario, out io.Writer) error {
	context := env.NewContext()
	l := ledger.New(context)
	l.Constructor(s.Owner, s.TotalSupply)

	touched := map[token.Address]struct{}{s.Owner: {}}
	for i, op := range s.Operations {
		var accepted bool
		switch op.Kind {
		case "transfer":
			accepted = l.Transfer(op.Sender, op.To, op.Amount)
			touched[op.Sender] = struct{}{}
			touched[op.To] = struct{}{}
		case "approve":
			accepted = l.Approve(op.Sender, op.Spender, op.Amount)
		case "transferFrom":
			accepted = l.TransferFrom(op.Sender, op.From, op.To, op.Amount)
			touched[op.From] = struct{}{}
			touched[op.To] = struct{}{}
		default:
			return fmt.Errorf("unknown operation kind %q in operation %d", op.Kind, i)
		}

		outcome := "ok"
		if !accepted {
			outcome = "rejected"
		}
		fmt.Fprintf(out, "%4d %-12s %s\n", i, op.Kind, outcome)
	}

	addresses := maps.Keys(touched)
	slices.SortFunc(addresses, func(a, b token.Address) int {
		return bytes.Compare(a[:], b[:])
	})

	fmt.Fprintf(out, "\nfinal balances:\n")
	sum := new(uint256.Int)
	for _, address := range addresses {
		balance := l.BalanceOf(address)
		sum.Add(sum, balance.ToUint256())
		fmt.Fprintf(out, "  %v  %v\n", address, balance)
	}

	fmt.Fprintf(out, "\ntotal supply: %v\n", l.TotalSupply())
	fmt.Fprintf(out, "events emitted: %d\n", len(context.GetLogs()))
	if sum.Cmp(s.TotalSupply.ToUint256()) != 0 {
		return fmt.Errorf("value not conserved: balances sum to %v, supply is %v", sum, s.TotalSupply)
	}
	fmt.Fprintf(out, "value conserved\n")
	return nil
}
