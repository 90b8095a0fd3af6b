package bbx

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"

	"golang.org/x/crypto/ed25519"
)

//PK is a fixed-size public key identity
type PK [32]byte

//Bytes returns the underlying bytes as a slice
func (pk PK) Bytes() []byte { return pk[:] }

//TxID uniquely identifies one transaction of an identity
type TxID [32]byte

//Bytes returns the underlying bytes as a slice
func (id TxID) Bytes() []byte { return id[:] }

//TxCtx carries the transaction-local values an operation executes under. All
//of them are fixed and known the moment the transaction is made, none depend
//on future chain state, which is what makes the committed seed unsteerable.
type TxCtx struct {
	Caller PK
	Seq    uint64
	TxID   TxID
	TimeUs uint64

	//Signature over the digest of the canonical context fields, signed by
	//the caller so an engine can refuse contexts that were tampered with
	Signature [ed25519.SignatureSize]byte
}

//canon serializes the context fields in fixed order: {Seq, Caller, TxID, TimeUs}
func (ctx *TxCtx) canon() (d []byte) {
	d = make([]byte, 8, 8+32+32+8)
	binary.BigEndian.PutUint64(d, ctx.Seq)
	d = append(d, ctx.Caller[:]...)
	d = append(d, ctx.TxID[:]...)

	tb := make([]byte, 8)
	binary.BigEndian.PutUint64(tb, ctx.TimeUs)
	return append(d, tb...)
}

//Digest hashes the canonical serialization of the context
func (ctx *TxCtx) Digest() [32]byte {
	return Digest(ctx.canon())
}

//Verify checks that the context was signed by the caller it names
func (ctx *TxCtx) Verify() (ok bool) {
	d := ctx.Digest()
	return ed25519.Verify(ed25519.PublicKey(ctx.Caller[:]), d[:], ctx.Signature[:])
}

//Identity represents a unique participant or operator
type Identity struct {
	mu     sync.Mutex
	name   string
	seq    uint64
	signPK ed25519.PublicKey
	signSK ed25519.PrivateKey
}

//NewIdentity will start a new identity from the provided identity bytes, if
//nil random bytes are used
func NewIdentity(rndid []byte) (idn *Identity) {
	idn = &Identity{}

	var err error
	rndr := rand.Reader
	if rndid != nil {
		rb := make([]byte, 64)
		copy(rb, rndid)
		copy(rb[32:], rndid)
		rndr = bytes.NewReader(rb)
	}

	idn.signPK, idn.signSK, err = ed25519.GenerateKey(rndr)
	if err != nil {
		panic("bbx: failed to generate signing keys: " + err.Error())
	}

	return
}

//PK returns the public key that identifies this identity
func (idn *Identity) PK() (pk PK) {
	copy(pk[:], idn.signPK)
	return
}

//Tx mints the context for this identity's next transaction: it draws the next
//sequence number, derives a transaction id that is unique for this identity
//and sequence, and signs the whole context.
func (idn *Identity) Tx(timeUs uint64) (ctx *TxCtx) {
	idn.mu.Lock()
	defer idn.mu.Unlock()
	idn.seq++

	ctx = &TxCtx{Caller: idn.PK(), Seq: idn.seq, TimeUs: timeUs}

	seqb := make([]byte, 8)
	binary.BigEndian.PutUint64(seqb, ctx.Seq)
	tb := make([]byte, 8)
	binary.BigEndian.PutUint64(tb, ctx.TimeUs)
	ctx.TxID = TxID(Digest(ctx.Caller[:], seqb, tb))

	d := ctx.Digest()
	copy(ctx.Signature[:], ed25519.Sign(idn.signSK, d[:]))
	return
}

//SetName allows for showing a memorable name when this identity is printed
func (idn *Identity) SetName(name string) {
	idn.mu.Lock()
	defer idn.mu.Unlock()
	idn.name = name
}

//String returns a human readable identity
func (idn *Identity) String() string {
	idn.mu.Lock()
	defer idn.mu.Unlock()
	if idn.name != "" {
		return idn.name
	}

	return fmt.Sprintf("%.4x", idn.signPK)
}
