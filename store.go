package bbx

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/dgraph-io/badger"
)

//Store persists the sale's committed writes in commit order so the ledger
//can be reconstructed after a restart
type Store interface {
	CreateTx(writable bool) Tx
	Close() (err error)
}

//Tx is an ACID interaction with the store
type Tx interface {
	Append(w *Write) (err error)
	Log(f func(w *Write) error) (err error)

	Commit() (err error)
	Discard()
}

//BadgerStore is a badger backed store implementation
type BadgerStore struct {
	db *badger.DB
}

//BadgerTx is a transaction on the badger store
type BadgerTx struct {
	btx *badger.Txn
}

//Append the write to the log, keyed by its commit time so lexicographic key
//order is commit order
func (tx *BadgerTx) Append(w *Write) (err error) {
	if w.TimeCommit == 0 {
		return fmt.Errorf("bbx: refusing to append uncommitted write")
	}

	buf := bytes.NewBuffer(nil)
	if err = gob.NewEncoder(buf).Encode(w); err != nil {
		return fmt.Errorf("bbx: failed to encode write: %v", err)
	}

	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, w.TimeCommit)
	err = tx.btx.Set(k, buf.Bytes())
	if err != nil {
		return fmt.Errorf("bbx: failed to set write data: %v", err)
	}

	return
}

//Log calls 'f' for every stored write in commit order
func (tx *BadgerTx) Log(f func(w *Write) error) (err error) {
	opt := badger.DefaultIteratorOptions
	opt.PrefetchSize = 10

	iter := tx.btx.NewIterator(opt)
	defer iter.Close()

	for iter.Rewind(); iter.Valid(); iter.Next() {
		d, err := iter.Item().Value()
		if err != nil {
			return fmt.Errorf("bbx: failed to read write value: %v", err)
		}

		w := &Write{}
		if err = gob.NewDecoder(bytes.NewReader(d)).Decode(w); err != nil {
			return fmt.Errorf("bbx: failed to decode write data: %v", err)
		}

		err = f(w)
		if err != nil {
			return err
		}
	}

	return
}

//Discard any tx resources
func (tx *BadgerTx) Discard() { tx.btx.Discard() }

//Commit the transaction
func (tx *BadgerTx) Commit() (err error) { return tx.btx.Commit(nil) }

//NewBadgerStore creates a badger powered store
func NewBadgerStore(dir string) (s *BadgerStore, err error) {
	s = &BadgerStore{}

	opts := badger.DefaultOptions
	opts.Dir = dir
	opts.ValueDir = dir
	s.db, err = badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("bbx: failed to open db: %v", err)
	}

	return
}

//CreateTx sets up the transaction
func (s *BadgerStore) CreateTx(writable bool) (tx Tx) {
	return &BadgerTx{btx: s.db.NewTransaction(writable)}
}

//Close the store, releasing any open resources
func (s *BadgerStore) Close() (err error) {
	return s.db.Close()
}

//TempBadgerStore returns a temporary store that is fully cleaned up when the
//'clean' func is called. The database is not closed prior to removal and it
//panics if any operation fails, so it is mostly useful for testing.
func TempBadgerStore() (s *BadgerStore, clean func()) {
	dir, err := ioutil.TempDir("", "bbx_")
	if err != nil {
		panic("failed to create tempdir: " + err.Error())
	}

	s, err = NewBadgerStore(dir)
	if err != nil {
		panic("failed to create store: " + err.Error())
	}

	return s, func() {
		err = os.RemoveAll(dir)
		if err != nil {
			panic("failed to remove dir: " + err.Error())
		}
	}
}
