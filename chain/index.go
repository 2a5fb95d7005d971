package chain

import (
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// IndexNode is one block-index record: everything the rest of the node
// needs to know about a block without loading the block itself. Records
// are built by the sync path and treated as read-only everywhere else.
type IndexNode struct {
	// Hash is the block's id.
	Hash chainhash.Hash

	// Height of the block in the chain it belongs to.
	Height int32

	// Time is the block header's unix timestamp.
	Time int64

	// ChainTxCount is the running total of transactions from genesis
	// through this block.
	ChainTxCount uint64

	// MainChain marks whether the block is part of the current best
	// chain, as opposed to a stale fork.
	MainChain bool
}

// InMainChain reports whether the block sits on the current best chain.
func (n *IndexNode) InMainChain() bool {
	return n.MainChain
}

// Index is read-only lookup into a block index. Implementations must be
// safe for concurrent readers; callers hand an Index to queries per call
// and keep ownership of it.
type Index interface {
	// LookupNode returns the record for the given block hash, or nil
	// if the hash isn't known locally.
	LookupNode(hash *chainhash.Hash) *IndexNode
}

// MemIndex is an in-memory block index keyed by hash. Reads can run
// concurrently with the sync loop appending new records.
type MemIndex struct {
	mtx   sync.RWMutex
	nodes map[chainhash.Hash]*IndexNode
}

// NewMemIndex returns an empty in-memory index.
func NewMemIndex() *MemIndex {
	return &MemIndex{
		nodes: make(map[chainhash.Hash]*IndexNode),
	}
}

// AddNode inserts or replaces the record for the node's hash.
func (m *MemIndex) AddNode(node *IndexNode) {
	m.mtx.Lock()
	m.nodes[node.Hash] = node
	m.mtx.Unlock()
}

// LookupNode returns the record for the given hash, nil if absent.
func (m *MemIndex) LookupNode(hash *chainhash.Hash) *IndexNode {
	m.mtx.RLock()
	node := m.nodes[*hash]
	m.mtx.RUnlock()
	return node
}

// Tip returns the highest main-chain record, nil if the index holds no
// main-chain blocks.
func (m *MemIndex) Tip() *IndexNode {
	m.mtx.RLock()
	var tip *IndexNode
	for _, node := range m.nodes {
		if !node.MainChain {
			continue
		}
		if tip == nil || node.Height > tip.Height {
			tip = node
		}
	}
	m.mtx.RUnlock()
	return tip
}

// NodeCount returns how many records the index holds.
func (m *MemIndex) NodeCount() int {
	m.mtx.RLock()
	count := len(m.nodes)
	m.mtx.RUnlock()
	return count
}
