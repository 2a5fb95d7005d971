package checkpoints

import (
	"testing"
)

// TestCompiledInParams makes sure the shipped tables construct cleanly;
// a bad literal should never survive to a release.
func TestCompiledInParams(t *testing.T) {
	for _, params := range []*Params{&MainNetParams, &TestNetParams} {
		if _, err := New(&Config{Params: params}); err != nil {
			t.Errorf("%s params rejected: %v", params.Name, err)
		}
	}
}

func TestMainNetGenesisCheckpoint(t *testing.T) {
	// The height 0 entry pins genesis itself, so the two literals must
	// agree.
	cp := MainNetParams.Checkpoints[0]
	if cp.Height != 0 {
		t.Fatalf("first mainnet checkpoint at height %d, want 0", cp.Height)
	}
	if *cp.Hash != *MainNetParams.GenesisHash {
		t.Errorf("height 0 checkpoint %v does not pin genesis %v",
			cp.Hash, MainNetParams.GenesisHash)
	}
}

func TestMainNetHardenedCheckpoint(t *testing.T) {
	o, err := New(&Config{Params: &MainNetParams})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	hardened, err := o.LatestHardenedCheckpoint()
	if err != nil {
		t.Fatalf("LatestHardenedCheckpoint: %v", err)
	}
	last := MainNetParams.Checkpoints[len(MainNetParams.Checkpoints)-1]
	if *hardened != *last.Hash {
		t.Errorf("hardened checkpoint %v, want %v", hardened, last.Hash)
	}
	if got := o.TotalBlocksEstimate(); got != last.Height {
		t.Errorf("total blocks estimate %d, want %d", got, last.Height)
	}
}
