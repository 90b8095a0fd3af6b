package ssi

import (
	iradix "github.com/hashicorp/go-immutable-radix"
)

//DB is an in-memory database that provides serializable snapshot isolation
//over an immutable radix tree. All transaction starts and commits are
//serialized through a single loop so commits observe a total order.
type DB struct {
	txReqs     chan *txReq
	commitReqs chan *commitReq

	oracle *Oracle
	store  *iradix.Tree
}

//NewDB sets up the database
func NewDB() (db *DB) {
	db = &DB{
		txReqs:     make(chan *txReq),
		commitReqs: make(chan *commitReq),

		oracle: NewOracle(),
		store:  iradix.New(),
	}

	go func() {
		for {
			select {
			case req := <-db.txReqs:
				tx := &Tx{
					c:        db,
					snapshot: db.store.Txn(), //point-in-time copy
					data: &TxData{
						TimeStart: db.oracle.Curr(),
						ReadRows:  make(KeySet),
						WriteRows: make(KeyChangeSet),
					},
				}

				req.tx <- tx
			case req := <-db.commitReqs:

				//ask the oracle for a commit timestamp
				tc := db.oracle.Commit(req.rr, req.rw.KeySet(), req.ts)
				if tc == 0 {
					req.tc <- tc //no commit time, must be a conflict
					break
				}

				//no conflict, apply the changes for new reads to observe
				for _, change := range req.rw {
					if change.V == nil {
						db.store, _, _ = db.store.Delete(change.K)
						continue
					}

					db.store, _, _ = db.store.Insert(change.K, change.V)
				}

				req.tc <- tc
			}
		}
	}()

	return
}

//NewTx creates a new transaction
func (db *DB) NewTx() *Tx {
	req := &txReq{tx: make(chan *Tx)}
	db.txReqs <- req
	return <-req.tx
}

//Commit a transaction with just its data portion. Commits without writes are
//no-ops, commits that read rows written since their snapshot return ErrConflict.
func (db *DB) Commit(txd *TxData) (err error) {
	if len(txd.WriteRows) < 1 {
		return nil //nothing to commit
	}

	req := &commitReq{
		tc: make(chan uint64),
		rr: txd.ReadRows,
		rw: txd.WriteRows,
		ts: txd.TimeStart,
	}

	db.commitReqs <- req
	txd.TimeCommit = <-req.tc
	if txd.TimeCommit == 0 {
		return ErrConflict
	}

	return
}

//txReq is sent when a user requests a new transaction
type txReq struct {
	tx chan *Tx
}

//commitReq is sent when a user wants to commit a transaction
type commitReq struct {
	rw KeyChangeSet
	rr KeySet

	ts uint64
	tc chan uint64
}
