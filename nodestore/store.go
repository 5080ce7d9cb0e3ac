// Package nodestore keeps a pebble database of ENS names keyed by their
// namehash, so a node seen on chain can be mapped back to a readable name.
package nodestore

import (
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"ens-nodes/ens"
)

// ErrNotFound is returned when no record is stored for a node.
var ErrNotFound = errors.New("node not found")

var recordPrefix = []byte("n")

// Record is the stored form of a hashed name.
type Record struct {
	Name      string
	Node      common.Hash
	Parent    common.Hash
	LabelHash common.Hash
}

// Store is a name database backed by pebble.
type Store struct {
	db *pebble.DB
}

// Open opens or creates the store in dir.
func Open(dir string) (*Store, error) {
	return open(dir, &pebble.Options{})
}

// OpenInMemory returns a store that lives in memory only.
func OpenInMemory() (*Store, error) {
	return open("", &pebble.Options{FS: vfs.NewMem()})
}

func open(dir string, opts *pebble.Options) (*Store, error) {
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open node store %q", dir)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func recordKey(node common.Hash) []byte {
	key := make([]byte, 0, len(recordPrefix)+common.HashLength)
	key = append(key, recordPrefix...)
	return append(key, node[:]...)
}

// NewRecord hashes name and builds its record.
func NewRecord(name string) (*Record, error) {
	if name == "" {
		return nil, errors.Wrap(ens.ErrInvalidName, "the root has no record")
	}
	node, err := ens.NameHash(name)
	if err != nil {
		return nil, err
	}
	parent, err := ens.NameHash(ens.Parent(name))
	if err != nil {
		return nil, err
	}
	labelHash, err := ens.LabelHash(ens.Labels(name)[0])
	if err != nil {
		return nil, err
	}
	return &Record{Name: name, Node: node, Parent: parent, LabelHash: labelHash}, nil
}

// Put stores a record for name and for every one of its ancestors, and
// returns the record of name itself.
func (s *Store) Put(name string) (*Record, error) {
	batch := s.db.NewBatch()
	defer batch.Close()

	var first *Record
	for n := name; n != ""; n = ens.Parent(n) {
		rec, err := NewRecord(n)
		if err != nil {
			return nil, err
		}
		val, err := rlp.EncodeToBytes(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "encode record %q", n)
		}
		if err := batch.Set(recordKey(rec.Node), val, nil); err != nil {
			return nil, errors.WithStack(err)
		}
		if first == nil {
			first = rec
		}
		log.Trace("Staged node record", "name", n, "node", rec.Node)
	}
	if first == nil {
		return nil, errors.Wrap(ens.ErrInvalidName, "the root has no record")
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		return nil, errors.Wrapf(err, "commit records for %q", name)
	}
	log.Debug("Stored node records", "name", name, "node", first.Node)
	return first, nil
}

// Get returns the record stored for node.
func (s *Store) Get(node common.Hash) (*Record, error) {
	val, closer, err := s.db.Get(recordKey(node))
	if err == pebble.ErrNotFound {
		return nil, errors.Wrapf(ErrNotFound, "%s", node.Hex())
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", node.Hex())
	}
	// pebble reuses val once closer is closed
	buf := append([]byte(nil), val...)
	closer.Close()

	var rec Record
	if err := rlp.DecodeBytes(buf, &rec); err != nil {
		return nil, errors.Wrapf(err, "decode record %s", node.Hex())
	}
	return &rec, nil
}

// Iterate calls fn for every stored record in node order. It stops at the
// first error fn returns.
func (s *Store) Iterate(fn func(*Record) error) error {
	it, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: recordPrefix,
		UpperBound: prefixEnd(recordPrefix),
	})
	if err != nil {
		return errors.WithStack(err)
	}
	defer it.Close()

	for it.First(); it.Valid(); it.Next() {
		if len(it.Key()) != len(recordPrefix)+common.HashLength {
			continue
		}
		var rec Record
		if err := rlp.DecodeBytes(it.Value(), &rec); err != nil {
			return errors.Wrapf(err, "decode record %x", it.Key()[len(recordPrefix):])
		}
		if err := fn(&rec); err != nil {
			return err
		}
	}
	return errors.Wrap(it.Error(), "iterate records")
}

// Count returns the number of stored records.
func (s *Store) Count() (int, error) {
	n := 0
	err := s.Iterate(func(*Record) error {
		n++
		return nil
	})
	return n, err
}

// prefixEnd returns the smallest key greater than every key starting with
// prefix, or nil if prefix is all 0xff.
func prefixEnd(prefix []byte) []byte {
	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i] != 0xff {
			end := make([]byte, i+1)
			copy(end, prefix[:i+1])
			end[i]++
			return end
		}
	}
	return nil
}
