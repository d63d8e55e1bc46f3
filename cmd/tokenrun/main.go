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
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "tokenrun",
		Usage:     "Token Ledger Scenario Driver",
		Copyright: "(c) 2026 Ledgerware",
		Flags:     []cli.Flag{},
		Commands: []*cli.Command{
			&RunCmd,
			&BenchCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
