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
	"encoding/binary"
	"fmt"
	"time"

	"github.com/dsnet/golib/unitconv"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"
	"pgregory.net/rand"

	"github.com/ledgerware/tokencore/env"
	"github.com/ledgerware/tokencore/ledger"
	"github.com/ledgerware/tokencore/token"
)

var BenchCmd = cli.Command{
	Action: doBench,
	Name:   "bench",
	Usage:  "Replay randomized operation sequences and report throughput",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "operations",
			Usage: "number of operations to execute",
			Value: 1_000_000,
		},
		&cli.IntFlag{
			Name:  "accounts",
			Usage: "number of distinct accounts",
			Value: 100,
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "seed for the random number generator",
		},
	},
}

func doBench(context *cli.Context) error {
	operations := context.Int("operations")
	if operations <= 0 {
		return fmt.Errorf("number of operations must be positive")
	}
	accountCount := context.Int("accounts")
	if accountCount < 2 {
		return fmt.Errorf("at least two accounts are required")
	}

	accounts := make([]token.Address, accountCount)
	for i := range accounts {
		binary.BigEndian.PutUint64(accounts[i][12:], uint64(i+1))
	}

	supply := token.NewValue(1 << 40)
	hostContext := env.NewContext()
	l := ledger.New(hostContext)
	l.Constructor(accounts[0], supply)

	rnd := rand.New(context.Uint64("seed"))
	start := time.Now()
	accepted := 0
	for i := 0; i < operations; i++ {
		from := accounts[rnd.Intn(len(accounts))]
		to := accounts[rnd.Intn(len(accounts))]
		amount := token.NewValue(uint64(rnd.Intn(1000) + 1))
		if l.Transfer(from, to, amount) {
			accepted++
		}
	}
	elapsed := time.Since(start)

	sum := new(uint256.Int)
	for _, account := range accounts {
		sum.Add(sum, l.BalanceOf(account).ToUint256())
	}
	if sum.Cmp(supply.ToUint256()) != 0 {
		return fmt.Errorf("value not conserved: balances sum to %v, supply is %v", sum, supply)
	}

	rate := float64(operations) / elapsed.Seconds()
	fmt.Printf(
		"executed %d operations (%d accepted) in %v, ~%s operations per second\n",
		operations, accepted, elapsed.Round(time.Millisecond),
		unitconv.FormatPrefix(rate, unitconv.SI, 1),
	)
	fmt.Printf("events emitted: %d, value conserved\n", len(hostContext.GetLogs()))
	return nil
}
