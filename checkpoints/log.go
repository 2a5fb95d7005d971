package checkpoints

import "github.com/btcsuite/btclog"

// log is a logger that is initialized with no output filters. The
// package does no logging by default until the caller requests it.
var log = btclog.Disabled

// DisableLog disables all library log output. Logging output is disabled
// by default until UseLogger is called.
func DisableLog() {
	log = btclog.Disabled
}

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger btclog.Logger) {
	log = logger
}
