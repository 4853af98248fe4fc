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

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"gopkg.in/urfave/cli.v1"

	"github.com/abeychain/fetchnode/fetcher"
)

// tomlSettings makes TOML keys match Go struct field names verbatim,
// the same normalization cmd/gabey/config.go applies.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string { return key },
	FieldToKey:    func(rt reflect.Type, field string) string { return field },
	MissingField: func(rt reflect.Type, field string) error {
		link := ""
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// storageConfig names where the node's LevelDB store lives and how big
// its read-through cache is.
type storageConfig struct {
	DataDir      string `toml:",omitempty"`
	CacheEntries int    `toml:",omitempty"`
}

// fetchnodeConfig is the top-level TOML document: the fetch controller's
// own config plus this command's storage settings.
type fetchnodeConfig struct {
	Fetcher fetcher.Config
	Storage storageConfig
}

func defaultConfig() fetchnodeConfig {
	return fetchnodeConfig{
		Fetcher: fetcher.DefaultConfig,
		Storage: storageConfig{
			DataDir:      "./fetchnode-data",
			CacheEntries: 1024,
		},
	}
}

func loadConfig(file string, cfg *fetchnodeConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// dumpConfig is the dumpconfig command: print the effective config as TOML.
func dumpConfig(ctx *cli.Context) error {
	cfg := makeConfig(ctx)
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	io.WriteString(os.Stdout, "# Note: this is the effective configuration after flags and file are applied.\n\n")
	os.Stdout.Write(out)
	return nil
}

func makeConfig(ctx *cli.Context) fetchnodeConfig {
	cfg := defaultConfig()
	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if ctx.GlobalIsSet(dataDirFlag.Name) {
		cfg.Storage.DataDir = ctx.GlobalString(dataDirFlag.Name)
	}
	if ctx.GlobalIsSet(peerTimeoutFlag.Name) {
		cfg.Fetcher.GetFromPeerTimeoutSeconds = uint64(ctx.GlobalInt(peerTimeoutFlag.Name))
	}
	return cfg
}
