package vault

import (
	"sync"

	"github.com/advanderveer/bbx"
)

//Mem is a vault implementation that lives purely in memory
type Mem struct {
	mu sync.RWMutex
	rs map[bbx.PK][]*bbx.Reward
}

//NewMem creates an in-memory vault
func NewMem() *Mem {
	return &Mem{rs: make(map[bbx.PK][]*bbx.Reward)}
}

//Issue appends the reward to its owner's slots
func (v *Mem) Issue(r *bbx.Reward) (err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rs[r.Owner] = append(v.rs[r.Owner], r)
	return
}

//Rewards returns all rewards issued to the owner in issue order
func (v *Mem) Rewards(owner bbx.PK) (rs []*bbx.Reward, err error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append(rs, v.rs[owner]...), nil
}
