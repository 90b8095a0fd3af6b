//Package chain provides the external position and header oracle that the box
//engine draws its revealed randomness from. The engine only ever observes the
//chain, it never writes to it.
package chain

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"
)

var (
	//ErrNoHead is returned when the current chain position cannot be determined
	ErrNoHead = errors.New("no chain head")

	//ErrNoHeader is returned when a position has no produced header (yet)
	ErrNoHeader = errors.New("no header at position")
)

//Header is the canonically serializable record produced at a chain position.
//The Mix field carries the per-header entropy that is unknowable before the
//header is produced.
type Header struct {
	Height uint64
	TimeUs uint64
	Mix    [32]byte
}

//Canon serializes the header fields in fixed order with fixed widths. Two
//implementations that disagree on these bytes disagree on every outcome
//derived from them, so the encoding is append-only by contract.
func (h *Header) Canon() (d []byte) {
	d = make([]byte, 8+8+32)
	binary.BigEndian.PutUint64(d, h.Height)
	binary.BigEndian.PutUint64(d[8:], h.TimeUs)
	copy(d[16:], h.Mix[:])
	return
}

//Hash the canonical serialization of the header
func (h *Header) Hash() (id [32]byte) {
	return sha3.Sum256(h.Canon())
}

func (h *Header) String() string {
	return fmt.Sprintf("%.4x-%d", h.Mix[:4], h.Height)
}

//Oracle reads the external chain. Both calls must be answered fresh on every
//operation, the absent cases are explicit errors instead of empty values.
type Oracle interface {
	//Head returns the current chain position
	Head() (pos uint64, err error)

	//HeaderAt returns the header produced at position 'pos'
	HeaderAt(pos uint64) (h *Header, err error)
}
