package chain

import (
	"sync"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

func testHash(b byte) *chainhash.Hash {
	var h chainhash.Hash
	h[0] = b
	return &h
}

func TestMemIndexLookup(t *testing.T) {
	index := NewMemIndex()

	if got := index.LookupNode(testHash(1)); got != nil {
		t.Errorf("lookup in empty index: got %v, want nil", got)
	}

	node := &IndexNode{Hash: *testHash(1), Height: 10, MainChain: true}
	index.AddNode(node)

	if got := index.LookupNode(testHash(1)); got != node {
		t.Errorf("lookup: got %v, want %v", got, node)
	}
	if got := index.LookupNode(testHash(2)); got != nil {
		t.Errorf("lookup of unknown hash: got %v, want nil", got)
	}
	if got := index.NodeCount(); got != 1 {
		t.Errorf("node count: got %d, want 1", got)
	}

	// Adding the same hash again replaces the record, as happens when a
	// block moves between the main chain and a fork.
	index.AddNode(&IndexNode{Hash: *testHash(1), Height: 10, MainChain: false})
	if index.LookupNode(testHash(1)).InMainChain() {
		t.Error("replaced record still reports main chain")
	}
	if got := index.NodeCount(); got != 1 {
		t.Errorf("node count after replace: got %d, want 1", got)
	}
}

func TestMemIndexTip(t *testing.T) {
	index := NewMemIndex()

	if got := index.Tip(); got != nil {
		t.Errorf("tip of empty index: got %v, want nil", got)
	}

	index.AddNode(&IndexNode{Hash: *testHash(1), Height: 1, MainChain: true})
	index.AddNode(&IndexNode{Hash: *testHash(2), Height: 2, MainChain: true})
	// A fork block above the main tip must not win.
	index.AddNode(&IndexNode{Hash: *testHash(3), Height: 3, MainChain: false})

	tip := index.Tip()
	if tip == nil || tip.Height != 2 {
		t.Errorf("tip: got %v, want main-chain height 2", tip)
	}
}

// TestMemIndexConcurrentReads hammers lookups while a writer appends,
// mirroring queries racing the sync loop. Run with -race.
func TestMemIndexConcurrentReads(t *testing.T) {
	index := NewMemIndex()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 256; i++ {
			index.AddNode(&IndexNode{
				Hash:      *testHash(byte(i)),
				Height:    int32(i),
				MainChain: true,
			})
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 256; i++ {
				node := index.LookupNode(testHash(byte(i)))
				if node != nil && node.Height != int32(i) {
					t.Errorf("hash %d resolved to height %d",
						i, node.Height)
				}
			}
		}()
	}
	wg.Wait()
}
