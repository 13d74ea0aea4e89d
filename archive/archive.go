// Package archive keeps export snapshots in a BadgerDB store, keyed by
// snapshot ID, so generated mazes can be listed and reopened later.
//
// Errors:
//
//	ErrNotFound - no snapshot under the requested ID.
//	ErrNoDir    - on-disk mode without a directory.
//	export.ErrCorrupt - a stored value failed to decode.
package archive

import (
	"errors"
	"fmt"
	"iter"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/labyrinth/export"
)

// Sentinel errors for archive.
var (
	// ErrNotFound indicates an unknown snapshot ID.
	ErrNotFound = errors.New("archive: snapshot not found")

	// ErrNoDir indicates on-disk mode without Options.Dir.
	ErrNoDir = errors.New("archive: directory is required for on-disk mode")
)

// prefix namespaces snapshot keys.
const prefix = "snapshot:"

// Options configures an Archive.
type Options struct {
	// Dir holds the data files. Required unless InMemory.
	Dir string

	// InMemory keeps everything in memory.
	InMemory bool

	// Logger receives badger's messages. Nil discards them.
	Logger badger.Logger
}

// Archive is a snapshot store. It is safe for concurrent use.
type Archive struct {
	db *badger.DB
}

// Open opens or creates the archive described by o.
func Open(o Options) (*Archive, error) {
	if !o.InMemory && o.Dir == "" {
		return nil, ErrNoDir
	}
	opts := badger.DefaultOptions(o.Dir)
	if o.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	logger := o.Logger
	if logger == nil {
		logger = quiet{}
	}
	db, err := badger.Open(opts.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("archive: open: %w", err)
	}
	return &Archive{db: db}, nil
}

// Put stores s under its ID, replacing any previous snapshot with that ID.
func (a *Archive) Put(s *export.Snapshot) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := export.Marshal(s)
	if err != nil {
		return err
	}
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(s.ID), data)
	})
}

// Get loads the snapshot stored under id.
func (a *Archive) Get(id string) (*export.Snapshot, error) {
	var data []byte
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return export.Unmarshal(data)
}

// Delete removes the snapshot under id. Unknown IDs are not an error.
func (a *Archive) Delete(id string) error {
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key(id))
	})
}

// IDs yields every stored snapshot ID in lexicographic order.
func (a *Archive) IDs() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		p := []byte(prefix)
		err := a.db.View(func(txn *badger.Txn) error {
			opts := badger.DefaultIteratorOptions
			opts.PrefetchValues = false
			opts.Prefix = p
			it := txn.NewIterator(opts)
			defer it.Close()
			for it.Seek(p); it.ValidForPrefix(p); it.Next() {
				if !yield(string(it.Item().Key()[len(p):]), nil) {
					return nil
				}
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

// Close releases the store.
func (a *Archive) Close() error {
	return a.db.Close()
}

func key(id string) []byte { return []byte(prefix + id) }

// quiet discards badger's log output.
type quiet struct{}

func (quiet) Errorf(string, ...interface{})   {}
func (quiet) Warningf(string, ...interface{}) {}
func (quiet) Infof(string, ...interface{})    {}
func (quiet) Debugf(string, ...interface{})   {}
