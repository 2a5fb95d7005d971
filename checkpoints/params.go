package checkpoints

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Network is which chain the node is running on. It's fixed at startup
// and selects which checkpoint table and calibration the oracle uses.
type Network uint8

const (
	// MainNet is the production network.
	MainNet Network = iota

	// TestNet is the public test network. Checkpoint enforcement is
	// switched off there, so its table can be trivial.
	TestNet
)

// String returns the network name as used in config files and datadir paths.
func (n Network) String() string {
	switch n {
	case MainNet:
		return "mainnet"
	case TestNet:
		return "testnet"
	}
	return "unknown"
}

// Checkpoint pins a block hash to a height. Blocks at a checkpointed
// height that don't match the pinned hash are rejected no matter how
// much work their chain claims.
//
// What makes a good checkpoint block?
// + Is surrounded by blocks with reasonable timestamps
//   (no blocks before with a timestamp after, none after with
//    timestamp before)
// + Contains no strange transactions
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// Calibration is sync-progress metadata tied to the highest checkpoint
// of a table. Only the progress estimator reads it.
type Calibration struct {
	// LastCheckpointTime is the unix timestamp of the last checkpoint
	// block.
	LastCheckpointTime int64

	// TransactionCount is the total number of transactions between
	// genesis and the last checkpoint block.
	TransactionCount uint64

	// TransactionsPerDay is the estimated number of transactions per
	// day after the last checkpoint.
	TransactionsPerDay float64
}

// Params bundles everything network-specific the oracle needs. The
// compiled-in instances below are the deploy-time source of truth;
// changing a checkpoint means shipping a release.
type Params struct {
	Name        string
	Net         Network
	GenesisHash *chainhash.Hash

	// Checkpoints, ordered from oldest to newest.
	Checkpoints []Checkpoint

	Calibration Calibration
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash. It only differs from the one available in chainhash in
// that it panics on an error since it will only be called with hard-coded,
// and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

// MainNetParams are the production network parameters.
var MainNetParams = Params{
	Name:        "mainnet",
	Net:         MainNet,
	GenesisHash: newHashFromStr("00000076d84c62af64353f3b59d8515191ee9f27e56d9c8422b1964aa6d16715"),
	Checkpoints: []Checkpoint{
		{0, newHashFromStr("00000076d84c62af64353f3b59d8515191ee9f27e56d9c8422b1964aa6d16715")},
		{1000, newHashFromStr("00000dd11391efd43db7bbbe1de4c07cd82ec207b4074464256bc4d9deaa18c4")},
		{2000, newHashFromStr("0000002f154e014512f4e621aef1af30f38fe2f2de995819877468a432067dce")},
		{3000, newHashFromStr("000000002cb5bc53bfd466f66a61a6437a7bfdd490e7c75637bf190f0329c6a4")},
		{4000, newHashFromStr("000000001a14bd8ddaff31c518af4734183f5f45ddc3ccd8eb05531f0e8358a6")},
		{5000, newHashFromStr("00000000626014b6a0ff0895f586c99d6fdf4a1b9e61f58fac1280c6b8b1a159")},
		{6000, newHashFromStr("0000000012ab31fbdf4d7ca8bbf12cc63aaa19c4bc6f71fc49690ce0d2847902")},
		{7000, newHashFromStr("000000000083394cff579c43017e58108f1e762e66cbd77b207aec198a8f7fd6")},
		{7387, newHashFromStr("0000000000ff52a2bf06e724e846f5cc7a85b9f43ede7adc89b289564a3e724d")},
	},
	Calibration: Calibration{
		LastCheckpointTime: 1403925464, // unix time of block 7387
		TransactionCount:   25000,      // the tx=... number in the SetBestChain log lines
		TransactionsPerDay: 800.0,
	},
}

// TestNetParams are the test network parameters. The single zero-hash
// entry is a placeholder; CheckBlock never enforces it on testnet.
var TestNetParams = Params{
	Name:        "testnet",
	Net:         TestNet,
	GenesisHash: newHashFromStr("0000002a8f1e58b84d8f3c0e1c0f476b0ccca70452d84b1f41259a2d0a724d13"),
	Checkpoints: []Checkpoint{
		{44, new(chainhash.Hash)},
	},
	Calibration: Calibration{
		LastCheckpointTime: 1393373461,
		TransactionCount:   3000,
		TransactionsPerDay: 30,
	},
}
