package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"

	"github.com/bitblockproject/bitblock/chain"
	"github.com/bitblockproject/bitblock/checkpoints"
)

var (
	logRotator *rotator.Rotator

	log btclog.Logger
)

// logWriter duplicates log output to stdout and the rotating log file.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// initLogging wires up the subsystem loggers and the rotating log file.
// Must be called before anything logs; closeLogging flushes on exit.
func initLogging(logDir, level string) error {
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	r, err := rotator.New(filepath.Join(logDir, "bitblock.log"), 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("create log rotator: %w", err)
	}
	logRotator = r

	lvl, ok := btclog.LevelFromString(level)
	if !ok {
		return fmt.Errorf("invalid debuglevel %q", level)
	}

	backend := btclog.NewBackend(logWriter{})
	log = backend.Logger("BTBL")
	ckptLog := backend.Logger("CKPT")
	chainLog := backend.Logger("CHAN")
	for _, logger := range []btclog.Logger{log, ckptLog, chainLog} {
		logger.SetLevel(lvl)
	}

	checkpoints.UseLogger(ckptLog)
	chain.UseLogger(chainLog)
	return nil
}

func closeLogging() {
	if logRotator != nil {
		logRotator.Close()
	}
}
