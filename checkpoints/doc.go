/*
Package checkpoints is the checkpoint oracle of a full node: a small
trusted table of (height, hash) pairs hard-coded per network.

The oracle answers three kinds of question:

	1) is this candidate block consistent with known-good history?
	   (CheckBlock - the anti-reorg gate)
	2) how far along is initial sync? (GuessVerificationProgress,
	   TotalBlocksEstimate - UI reporting only)
	3) what's the newest checkpoint the node actually holds?
	   (LastCheckpoint, LastAvailableCheckpoint,
	   LatestHardenedCheckpoint - pruning and reorg depth limits)

Checkpoints are an anti-reorg heuristic, not cryptographic proof. The
oracle never replaces full validation; it only fast-fails chains that
contradict hard-coded history and estimates progress.

Every operation is a pure read over tables fixed at construction, so an
Oracle is safe for concurrent use without locking. The block index it
queries is supplied by the caller on each call and never retained.
*/
package checkpoints
