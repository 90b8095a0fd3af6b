package chain

import (
	"sync"

	"golang.org/x/crypto/sha3"
)

//MemChain implements an oracle over headers that live purely in memory. Each
//produced header mixes in the hash of its predecessor so the entropy of a
//future header cannot be known before it is produced.
type MemChain struct {
	headers []*Header
	mu      sync.RWMutex
}

//NewMemChain creates an empty in-memory chain, positions start at 1 with the
//first produced header
func NewMemChain() *MemChain {
	return &MemChain{}
}

//Produce appends the header for the next position and returns it
func (c *MemChain) Produce(timeUs uint64) (h *Header) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h = &Header{
		Height: uint64(len(c.headers)) + 1,
		TimeUs: timeUs,
	}

	if len(c.headers) > 0 {
		prev := c.headers[len(c.headers)-1].Hash()
		h.Mix = sha3.Sum256(append(prev[:], h.Canon()...))
	} else {
		h.Mix = sha3.Sum256(h.Canon())
	}

	c.headers = append(c.headers, h)
	return
}

//ProduceN produces 'n' headers in a row, handy to advance to a position
func (c *MemChain) ProduceN(n int, timeUs uint64) {
	for i := 0; i < n; i++ {
		c.Produce(timeUs)
	}
}

//Head returns the position of the last produced header
func (c *MemChain) Head() (pos uint64, err error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.headers) < 1 {
		return 0, ErrNoHead
	}

	return c.headers[len(c.headers)-1].Height, nil
}

//HeaderAt returns the header at position 'pos' if it was produced
func (c *MemChain) HeaderAt(pos uint64) (h *Header, err error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if pos < 1 || pos > uint64(len(c.headers)) {
		return nil, ErrNoHeader
	}

	return c.headers[pos-1], nil
}
