package ssi

import (
	"crypto/sha256"
	"fmt"
)

//KH is a fixed-size cryptographic hash of a row key
type KH [sha256.Size]byte

//Change represents a single row write, a nil V marks a deletion
type Change struct {
	K []byte
	V []byte
}

//KeyChangeSet holds the rows a transaction wants to write
type KeyChangeSet map[KH]*Change

//KeySet returns just the keys of the change set, without values
func (kcs KeyChangeSet) KeySet() (ks KeySet) {
	ks = make(KeySet, len(kcs))
	for k := range kcs {
		ks[k] = struct{}{}
	}

	return
}

//Add a write to the change set, overwriting any pending write to the same key
func (kcs KeyChangeSet) Add(k, v []byte) {
	kcs[keyHash(k)] = &Change{K: k, V: v}
}

//KeySet holds the rows a transaction has read
type KeySet map[KH]struct{}

//Add a key to the set
func (ks KeySet) Add(k []byte) {
	ks[keyHash(k)] = struct{}{}
}

func keyHash(k []byte) (kh KH) {
	//hash collisions cover more than one actual key which can only cause
	//extra conflicts on commit, never fewer, so they are harmless here
	h := sha256.New()
	n, err := h.Write(k)
	if err != nil || n != len(k) {
		panic(fmt.Sprintf("ssi: failed to hash row key (n: %d, len: %d): %v", n, len(k), err))
	}

	copy(kh[:], h.Sum(nil))
	return
}
