package main

import (
	"fmt"
	"path/filepath"

	"github.com/btcsuite/btcutil"
	flags "github.com/jessevdk/go-flags"

	"github.com/bitblockproject/bitblock/checkpoints"
)

var defaultDataDir = btcutil.AppDataDir("bitblock", false)

type config struct {
	DataDir       string `long:"datadir" description:"Directory holding the node's data, including the block index db"`
	LogDir        string `long:"logdir" description:"Directory to log output. Defaults to <datadir>/logs"`
	DebugLevel    string `long:"debuglevel" description:"Logging level (trace, debug, info, warn, error, critical)"`
	TestNet       bool   `long:"testnet" description:"Use the test network"`
	NoCheckpoints bool   `long:"nocheckpoints" description:"Disable checkpoint enforcement. Checkpoints are on by default"`
}

// loadConfig parses command-line options and returns the config plus the
// remaining arguments (the subcommand and its operands).
func loadConfig(args []string) (*config, []string, error) {
	cfg := config{
		DataDir:    defaultDataDir,
		DebugLevel: "info",
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	cfg.DataDir = filepath.Join(cfg.DataDir, cfg.params().Name)
	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(cfg.DataDir, "logs")
	}

	if len(remaining) == 0 {
		return nil, nil, fmt.Errorf("no command given")
	}
	return &cfg, remaining, nil
}

// params returns the checkpoint parameters for the configured network.
func (c *config) params() *checkpoints.Params {
	if c.TestNet {
		return &checkpoints.TestNetParams
	}
	return &checkpoints.MainNetParams
}

// indexDBPath is where the block index database lives under the datadir.
func (c *config) indexDBPath() string {
	return filepath.Join(c.DataDir, "blockindex")
}
