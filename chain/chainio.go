package chain

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// indexRecordSize is height + time + chain tx count + flags.
const indexRecordSize = 4 + 8 + 8 + 1

const mainChainFlag = 1 << 0

// IndexStore persists block-index records in a leveldb database keyed
// by block hash. The sync path writes batches as blocks connect; on
// startup the whole thing is loaded back into a MemIndex.
type IndexStore struct {
	db *leveldb.DB
}

// OpenIndexStore opens (creating if needed) the index database at path.
func OpenIndexStore(path string) (*IndexStore, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{})
	if err != nil {
		return nil, fmt.Errorf("open index db %s: %w", path, err)
	}
	return &IndexStore{db: db}, nil
}

// Close flushes and closes the underlying database.
func (s *IndexStore) Close() error {
	return s.db.Close()
}

// PutNodes writes the given records in a single batch.
func (s *IndexStore) PutNodes(nodes []*IndexNode) error {
	batch := new(leveldb.Batch)
	for _, node := range nodes {
		batch.Put(node.Hash[:], serializeIndexNode(node))
	}
	err := s.db.Write(batch, nil)
	if err != nil {
		return fmt.Errorf("write index batch: %w", err)
	}
	log.Debugf("wrote %d index records", len(nodes))
	return nil
}

// LoadIndex reads every record in the store into a fresh MemIndex.
func (s *IndexStore) LoadIndex() (*MemIndex, error) {
	index := NewMemIndex()

	iter := s.db.NewIterator(nil, nil)
	for iter.Next() {
		var hash chainhash.Hash
		if len(iter.Key()) != chainhash.HashSize {
			iter.Release()
			return nil, fmt.Errorf("bad index key length %d", len(iter.Key()))
		}
		copy(hash[:], iter.Key())

		node, err := deserializeIndexNode(hash, iter.Value())
		if err != nil {
			iter.Release()
			return nil, err
		}
		index.AddNode(node)
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("iterate index db: %w", err)
	}

	log.Infof("loaded %d block index records", index.NodeCount())
	return index, nil
}

func serializeIndexNode(node *IndexNode) []byte {
	var buf [indexRecordSize]byte
	binary.BigEndian.PutUint32(buf[0:4], uint32(node.Height))
	binary.BigEndian.PutUint64(buf[4:12], uint64(node.Time))
	binary.BigEndian.PutUint64(buf[12:20], node.ChainTxCount)
	if node.MainChain {
		buf[20] |= mainChainFlag
	}
	return buf[:]
}

func deserializeIndexNode(hash chainhash.Hash, b []byte) (*IndexNode, error) {
	if len(b) != indexRecordSize {
		return nil, fmt.Errorf("bad index record length %d for %s",
			len(b), hash)
	}
	return &IndexNode{
		Hash:         hash,
		Height:       int32(binary.BigEndian.Uint32(b[0:4])),
		Time:         int64(binary.BigEndian.Uint64(b[4:12])),
		ChainTxCount: binary.BigEndian.Uint64(b[12:20]),
		MainChain:    b[20]&mainChainFlag != 0,
	}, nil
}
