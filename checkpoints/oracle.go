package checkpoints

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/lightningnetwork/lnd/clock"

	"github.com/bitblockproject/bitblock/chain"
)

// sigcheckVerificationFactor is how many times we expect transactions
// after the last checkpoint to be slower to verify. This number is a
// compromise, as it can't be accurate for every system. When reindexing
// from a fast disk with a slow CPU, it can be up to 20, while when
// downloading from a slow network with a fast multicore CPU, it won't
// be much higher than 1.
const sigcheckVerificationFactor = 5.0

const secondsPerDay = 86400.0

// Config tells New which network's table to enforce and whether to
// enforce it at all. There is no ambient state: the oracle only ever
// reads what it was constructed with.
type Config struct {
	// Params selects the network and carries its checkpoint table.
	Params *Params

	// DisableCheckpoints turns checkpoint enforcement and the
	// progress-bar height estimate off. Default is enforcement on.
	DisableCheckpoints bool

	// Clock supplies "now" for the progress estimator. Nil means the
	// system clock.
	Clock clock.Clock
}

// Oracle answers checkpoint queries against an immutable per-network
// table. All methods are pure reads; a single Oracle is safe for any
// number of concurrent callers.
type Oracle struct {
	params   Params
	byHeight map[int32]*chainhash.Hash
	disabled bool
	clock    clock.Clock
}

// New validates cfg's checkpoint table and returns an oracle over it.
// The table must have strictly increasing, non-negative heights, and
// must be non-empty on mainnet.
func New(cfg *Config) (*Oracle, error) {
	if cfg == nil || cfg.Params == nil {
		return nil, errBadTable("no params given")
	}
	params := *cfg.Params

	if params.GenesisHash == nil {
		return nil, errBadTable("%s: no genesis hash", params.Net)
	}
	if params.Net == MainNet && len(params.Checkpoints) == 0 {
		return nil, errBadTable("mainnet table must not be empty")
	}

	byHeight := make(map[int32]*chainhash.Hash, len(params.Checkpoints))
	prevHeight := int32(-1)
	for _, cp := range params.Checkpoints {
		if cp.Height < 0 {
			return nil, errBadTable("%s: negative height %d",
				params.Net, cp.Height)
		}
		if cp.Height <= prevHeight {
			return nil, errBadTable(
				"%s: height %d out of order after %d",
				params.Net, cp.Height, prevHeight)
		}
		if cp.Hash == nil {
			return nil, errBadTable("%s: nil hash at height %d",
				params.Net, cp.Height)
		}
		byHeight[cp.Height] = cp.Hash
		prevHeight = cp.Height
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.NewDefaultClock()
	}

	log.Debugf("checkpoint oracle for %s: %d checkpoints, tip height %d, "+
		"enforcement %v", params.Net, len(params.Checkpoints),
		prevHeight, !cfg.DisableCheckpoints)

	return &Oracle{
		params:   params,
		byHeight: byHeight,
		disabled: cfg.DisableCheckpoints,
		clock:    clk,
	}, nil
}

// enforced reports whether the table is actually being checked against:
// testnet has no checkpoints, and enforcement can be configured off.
func (o *Oracle) enforced() bool {
	return o.params.Net != TestNet && !o.disabled
}

// CheckBlock reports whether a block at the given height is acceptable.
// A height with no checkpoint always passes; a checkpointed height
// passes only for the pinned hash, no matter how much work the
// candidate chain carries.
func (o *Oracle) CheckBlock(height int32, hash *chainhash.Hash) bool {
	if !o.enforced() {
		return true
	}

	want, ok := o.byHeight[height]
	if !ok {
		return true
	}
	if hash != nil && *hash == *want {
		return true
	}
	log.Warnf("block %v at height %d does not match checkpoint %v",
		hash, height, want)
	return false
}

// GuessVerificationProgress estimates how far along validation is at the
// given block, as a fraction in [0, 1]. Work is modeled as 1 unit per
// transaction before the last checkpoint and sigcheckVerificationFactor
// units per transaction after it, since post-checkpoint verification
// still does full signature checking. A nil node means nothing has been
// verified yet.
func (o *Oracle) GuessVerificationProgress(node *chain.IndexNode) float64 {
	if node == nil {
		return 0.0
	}

	now := o.clock.Now().Unix()
	data := &o.params.Calibration

	// Amount of work done before node, and the estimated work left
	// after it.
	var workBefore, workAfter float64

	if node.ChainTxCount <= data.TransactionCount {
		cheapBefore := float64(node.ChainTxCount)
		cheapAfter := float64(data.TransactionCount - node.ChainTxCount)
		expensiveAfter := float64(now-data.LastCheckpointTime) /
			secondsPerDay * data.TransactionsPerDay
		workBefore = cheapBefore
		workAfter = cheapAfter + expensiveAfter*sigcheckVerificationFactor
	} else {
		cheapBefore := float64(data.TransactionCount)
		expensiveBefore := float64(node.ChainTxCount - data.TransactionCount)
		expensiveAfter := float64(now-node.Time) /
			secondsPerDay * data.TransactionsPerDay
		workBefore = cheapBefore + expensiveBefore*sigcheckVerificationFactor
		workAfter = expensiveAfter * sigcheckVerificationFactor
	}

	return workBefore / (workBefore + workAfter)
}

// TotalBlocksEstimate returns the height of the highest checkpoint, for
// use as a sync progress-bar denominator. 0 when checkpoints aren't
// enforced. Not consensus-relevant.
func (o *Oracle) TotalBlocksEstimate() int32 {
	if !o.enforced() {
		return 0
	}
	return o.params.Checkpoints[len(o.params.Checkpoints)-1].Height
}

// LastCheckpoint returns the newest checkpoint whose block is present in
// the given index, or nil if the index holds none of them (a pruned or
// partially synced node) or checkpoints aren't enforced.
func (o *Oracle) LastCheckpoint(index chain.Index) *chain.IndexNode {
	if !o.enforced() {
		return nil
	}

	cps := o.params.Checkpoints
	for i := len(cps) - 1; i >= 0; i-- {
		if node := index.LookupNode(cps[i].Hash); node != nil {
			return node
		}
	}
	return nil
}

// LastAvailableCheckpoint returns the hash of the newest checkpoint that
// is both present in the index and on the main chain, falling back to
// the genesis hash when none qualify. Unlike LastCheckpoint it ignores
// the disable flag and the testnet exemption: pruning decisions keyed
// off this must not widen because enforcement was switched off.
func (o *Oracle) LastAvailableCheckpoint(index chain.Index) *chainhash.Hash {
	cps := o.params.Checkpoints
	for i := len(cps) - 1; i >= 0; i-- {
		node := index.LookupNode(cps[i].Hash)
		if node != nil && node.InMainChain() {
			return cps[i].Hash
		}
	}
	return o.params.GenesisHash
}

// LatestHardenedCheckpoint returns the hash of the highest checkpoint in
// the active table, with no index or main-chain check and no respect for
// the disable flag. Callers wanting a safety-checked answer should use
// LastCheckpoint or LastAvailableCheckpoint instead.
func (o *Oracle) LatestHardenedCheckpoint() (*chainhash.Hash, error) {
	cps := o.params.Checkpoints
	if len(cps) == 0 {
		return nil, errEmptyTable(o.params.Net)
	}
	return cps[len(cps)-1].Hash, nil
}
