package bbx

import (
	"bytes"
	"encoding/binary"
	"sort"

	"golang.org/x/crypto/sha3"

	"github.com/advanderveer/bbx/ssi"
)

//WID uniquely identifies a write
type WID [32]byte

//Bytes returns the underlying bytes as a slice
func (id WID) Bytes() []byte { return id[:] }

//Write encodes one operation's committed modifications to the sale keyspace.
//Writes are persisted in commit order and replaying them reconstructs the
//exact ledger state.
type Write struct {
	*ssi.TxData
}

//Hash the write. Rows are hashed in sorted key order so the id does not
//depend on map iteration.
func (w *Write) Hash() (id WID) {
	h := sha3.New256()
	binary.Write(h, binary.BigEndian, w.TimeStart)
	binary.Write(h, binary.BigEndian, w.TimeCommit)

	rr := make([]ssi.KH, 0, len(w.ReadRows))
	for k := range w.ReadRows {
		rr = append(rr, k)
	}

	sort.Slice(rr, func(i, j int) bool {
		return bytes.Compare(rr[i][:], rr[j][:]) < 0
	})

	for _, k := range rr {
		binary.Write(h, binary.BigEndian, k[:])
	}

	wr := make([]ssi.KH, 0, len(w.WriteRows))
	for k := range w.WriteRows {
		wr = append(wr, k)
	}

	sort.Slice(wr, func(i, j int) bool {
		return bytes.Compare(wr[i][:], wr[j][:]) < 0
	})

	for _, k := range wr {
		binary.Write(h, binary.BigEndian, k[:])
		binary.Write(h, binary.BigEndian, w.WriteRows[k].K)
		binary.Write(h, binary.BigEndian, w.WriteRows[k].V)
	}

	copy(id[:], h.Sum(nil))
	return
}
