package chain

import (
	"path/filepath"
	"testing"
)

func TestIndexStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockindex")

	store, err := OpenIndexStore(path)
	if err != nil {
		t.Fatalf("OpenIndexStore: %v", err)
	}

	nodes := []*IndexNode{
		{Hash: *testHash(1), Height: 0, Time: 1400000000,
			ChainTxCount: 1, MainChain: true},
		{Hash: *testHash(2), Height: 1000, Time: 1403925464,
			ChainTxCount: 25000, MainChain: true},
		{Hash: *testHash(3), Height: 1001, Time: 1403930000,
			ChainTxCount: 25010, MainChain: false},
	}
	if err := store.PutNodes(nodes); err != nil {
		t.Fatalf("PutNodes: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopen and make sure the loaded index answers like the original.
	store, err = OpenIndexStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()

	index, err := store.LoadIndex()
	if err != nil {
		t.Fatalf("LoadIndex: %v", err)
	}
	if got := index.NodeCount(); got != len(nodes) {
		t.Fatalf("loaded %d records, want %d", got, len(nodes))
	}

	for _, want := range nodes {
		got := index.LookupNode(&want.Hash)
		if got == nil {
			t.Fatalf("node %v missing after reload", want.Hash)
		}
		if *got != *want {
			t.Errorf("node %v loaded as %+v, want %+v",
				want.Hash, got, want)
		}
	}
}

func TestIndexStorePutReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockindex")

	store, err := OpenIndexStore(path)
	if err != nil {
		t.Fatalf("OpenIndexStore: %v", err)
	}
	defer store.Close()

	node := &IndexNode{Hash: *testHash(7), Height: 7, MainChain: true}
	if err := store.PutNodes([]*IndexNode{node}); err != nil {
		t.Fatalf("PutNodes: %v", err)
	}

	// A reorg rewrites the record under the same key.
	node = &IndexNode{Hash: *testHash(7), Height: 7, MainChain: false}
	if err := store.PutNodes([]*IndexNode{node}); err != nil {
		t.Fatalf("PutNodes: %v", err)
	}

	index, err := store.LoadIndex()
	if err != nil {
		t.Fatalf("LoadIndex: %v", err)
	}
	if got := index.NodeCount(); got != 1 {
		t.Fatalf("loaded %d records, want 1", got)
	}
	if index.LookupNode(testHash(7)).InMainChain() {
		t.Error("rewritten record still reports main chain")
	}
}
