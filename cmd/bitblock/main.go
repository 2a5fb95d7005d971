package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/bitblockproject/bitblock/chain"
	"github.com/bitblockproject/bitblock/checkpoints"
)

var helpMsg = `
Usage: bitblock [OPTIONS] COMMAND

Query the node's checkpoint table and stored block index.

COMMANDS:
  check HEIGHT HASH   test a block against the checkpoint table; exits
                      nonzero if the block contradicts a checkpoint
  status              show the checkpoint state against the local index
  progress            estimate verification progress at the index tip

OPTIONS:
  --datadir=PATH      node data directory
  --testnet           use the test network
  --nocheckpoints     disable checkpoint enforcement
  --debuglevel=LEVEL  trace, debug, info, warn, error, critical
`

func main() {
	cfg, args, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, helpMsg)
		os.Exit(1)
	}

	if err := initLogging(cfg.LogDir, cfg.DebugLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLogging()

	oracle, err := checkpoints.New(&checkpoints.Config{
		Params:             cfg.params(),
		DisableCheckpoints: cfg.NoCheckpoints,
	})
	if err != nil {
		log.Criticalf("bad checkpoint config: %v", err)
		os.Exit(1)
	}

	switch args[0] {
	case "check":
		err = checkCmd(oracle, args[1:])
	case "status":
		err = statusCmd(oracle, cfg)
	case "progress":
		err = progressCmd(oracle, cfg)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		fmt.Fprint(os.Stderr, helpMsg)
		os.Exit(1)
	}
	if err != nil {
		log.Errorf("%s: %v", args[0], err)
		os.Exit(1)
	}
}

func checkCmd(oracle *checkpoints.Oracle, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("check needs HEIGHT and HASH")
	}
	height, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("bad height %q: %w", args[0], err)
	}
	hash, err := chainhash.NewHashFromStr(args[1])
	if err != nil {
		return fmt.Errorf("bad hash %q: %w", args[1], err)
	}

	if !oracle.CheckBlock(int32(height), hash) {
		return fmt.Errorf("block %v at height %d contradicts a checkpoint",
			hash, height)
	}
	fmt.Printf("block %v at height %d is consistent with the checkpoint table\n",
		hash, height)
	return nil
}

func statusCmd(oracle *checkpoints.Oracle, cfg *config) error {
	index, err := loadIndex(cfg)
	if err != nil {
		return err
	}

	hardened, err := oracle.LatestHardenedCheckpoint()
	if err != nil {
		return err
	}
	fmt.Printf("latest hardened checkpoint: %v\n", hardened)
	fmt.Printf("total blocks estimate:      %d\n", oracle.TotalBlocksEstimate())

	if last := oracle.LastCheckpoint(index); last != nil {
		fmt.Printf("last checkpoint held:       %v (height %d)\n",
			&last.Hash, last.Height)
	} else {
		fmt.Println("last checkpoint held:       none")
	}
	fmt.Printf("last available checkpoint:  %v\n",
		oracle.LastAvailableCheckpoint(index))
	return nil
}

func progressCmd(oracle *checkpoints.Oracle, cfg *config) error {
	index, err := loadIndex(cfg)
	if err != nil {
		return err
	}

	tip := index.Tip()
	if tip == nil {
		fmt.Println("verification progress: 0.0 (no main chain tip)")
		return nil
	}
	fmt.Printf("verification progress: %.4f at height %d\n",
		oracle.GuessVerificationProgress(tip), tip.Height)
	return nil
}

func loadIndex(cfg *config) (*chain.MemIndex, error) {
	store, err := chain.OpenIndexStore(cfg.indexDBPath())
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.LoadIndex()
}
