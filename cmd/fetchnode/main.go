// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// fetchnode runs the item fetcher reactor standalone: it opens a LevelDB
// storage collaborator, boots the three per-kind engines, and answers
// inbound get-request/get-response frames handed to it by a transport.
// Wiring an actual peer-to-peer transport is left to the embedding node;
// this binary exists to exercise the config/CLI/logging plumbing.
package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/abeychain/fetchnode/log"
	"github.com/abeychain/fetchnode/p2p"
	"github.com/abeychain/fetchnode/reactor"
	"github.com/abeychain/fetchnode/storage"
)

const clientIdentifier = "fetchnode"

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	dataDirFlag = cli.StringFlag{
		Name:  "datadir",
		Usage: "Directory for the LevelDB storage collaborator",
	}
	peerTimeoutFlag = cli.IntFlag{
		Name:  "peer.timeout",
		Usage: "Seconds to wait for a peer's reply before treating it as absent",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=crit,1=error,2=warn,3=info,4=debug,5=trace",
		Value: 3,
	}

	dumpConfigCommand = cli.Command{
		Action:    dumpConfig,
		Name:      "dumpconfig",
		Usage:     "Show configuration values",
		ArgsUsage: "",
		Flags:     []cli.Flag{configFileFlag, dataDirFlag, peerTimeoutFlag},
	}
)

func main() {
	app := cli.NewApp()
	app.Name = clientIdentifier
	app.Usage = "standalone item fetcher node"
	app.Flags = []cli.Flag{configFileFlag, dataDirFlag, peerTimeoutFlag, verbosityFlag}
	app.Commands = []cli.Command{dumpConfigCommand}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	log.Verbosity(log.Lvl(ctx.GlobalInt(verbosityFlag.Name)))

	cfg := makeConfig(ctx)

	coll, err := storage.OpenLevelDB(cfg.Storage.DataDir, cfg.Storage.CacheEntries)
	if err != nil {
		return err
	}
	defer coll.Close()

	r := reactor.New(coll, noopSender{}, cfg.Fetcher)
	r.Start()
	defer r.Stop()

	log.Info("fetchnode started", "datadir", cfg.Storage.DataDir, "peer_timeout", cfg.Fetcher.PeerTimeout())
	select {}
}

// noopSender is the default PeerSender until this binary is wired to a
// real peer-to-peer transport; it logs what it would have sent.
type noopSender struct{}

func (noopSender) Send(peer p2p.NodeID, payload []byte) error {
	log.Debug("no transport wired, dropping outbound frame", "peer", peer, "bytes", len(payload))
	return nil
}
