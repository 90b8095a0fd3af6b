package ssi

import (
	iradix "github.com/hashicorp/go-immutable-radix"
)

//Committer can commit a transaction using just its transportable data portion
type Committer interface {
	Commit(txd *TxData) (err error)
}

//TxData is the transportable portion of a transaction: the logical times it
//started and committed at together with the rows it read and wrote
type TxData struct {
	TimeStart  uint64
	TimeCommit uint64
	ReadRows   KeySet
	WriteRows  KeyChangeSet
}

//Tx is a transaction on a point-in-time snapshot of the database
type Tx struct {
	c        Committer
	snapshot *iradix.Txn
	data     *TxData
}

//Set row 'k' to value 'v'
func (tx *Tx) Set(k, v []byte) {
	tx.data.WriteRows.Add(k, v)

	//copy both key and value, the caller may reuse its buffers after we return
	//while the snapshot keeps a reference
	kd := make([]byte, len(k))
	copy(kd, k)
	vd := make([]byte, len(v))
	copy(vd, v)

	tx.snapshot.Insert(kd, vd)
}

//Del removes row 'k'. It is written as a nil change so the deletion replays
//and conflicts exactly like any other write.
func (tx *Tx) Del(k []byte) {
	tx.data.WriteRows.Add(k, nil)

	kd := make([]byte, len(k))
	copy(kd, k)
	tx.snapshot.Delete(kd)
}

//Get the value at row 'k', returns nil if the row doesn't exist
func (tx *Tx) Get(k []byte) (v []byte) {
	tx.data.ReadRows.Add(k)
	vraw, ok := tx.snapshot.Get(k)
	if !ok || vraw == nil {
		return nil
	}

	v = make([]byte, len(vraw.([]byte)))
	copy(v, vraw.([]byte))
	return
}

//Data returns the underlying transaction data, suitable for transport
func (tx *Tx) Data() *TxData { return tx.data }

//Commit the transaction
func (tx *Tx) Commit() error {
	return tx.c.Commit(tx.Data())
}
