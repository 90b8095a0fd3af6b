//Package agent wires a chain oracle, the transactional sale state, a write
//log and a vault into one running blind box sale.
package agent

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/advanderveer/bbx"
	"github.com/advanderveer/bbx/chain"
	"github.com/advanderveer/bbx/vault"
)

//Agent hosts one sale on behalf of the operator identity
type Agent struct {
	conf   *Conf
	clock  bbx.Clock
	oracle chain.Oracle
	store  bbx.Store
	vault  bbx.Vault
	engine *bbx.Engine
}

//New allocates the agent. With a data dir configured the write log and the
//vault are durable and a restarted agent replays the sale it hosted before.
func New(cfg *Conf, oracle chain.Oracle) (a *Agent, err error) {
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Operator.SetName(cfg.Name)
	a = &Agent{conf: cfg, clock: bbx.NewWallClock(), oracle: oracle}

	if cfg.DataDir != "" {
		sdir := filepath.Join(cfg.DataDir, "log")
		vdir := filepath.Join(cfg.DataDir, "vault")
		for _, dir := range []string{sdir, vdir} {
			if err = os.MkdirAll(dir, 0700); err != nil {
				return nil, errors.Wrap(err, "failed to create data dir")
			}
		}

		if a.store, err = bbx.NewBadgerStore(sdir); err != nil {
			return nil, errors.Wrap(err, "failed to open write log")
		}

		if a.vault, err = vault.NewBolt(vdir); err != nil {
			return nil, errors.Wrap(err, "failed to open vault")
		}
	} else {
		a.vault = vault.NewMem()
	}

	a.engine, err = bbx.NewEngine(cfg.Operator.PK(), oracle, a.store, a.vault)
	if err != nil {
		return nil, errors.Wrap(err, "failed to setup engine")
	}

	return
}

//Open the sale with the configured capacity and windows
func (a *Agent) Open() (err error) {
	return a.engine.Open(
		a.conf.Operator.Tx(a.clock.ReadUs()),
		a.conf.Capacity,
		a.conf.RequestDeadline,
		a.conf.ClaimOpenAt,
	)
}

//Request a voucher on behalf of the participant identity
func (a *Agent) Request(idn *bbx.Identity) (v *bbx.Voucher, err error) {
	return a.engine.Request(idn.Tx(a.clock.ReadUs()))
}

//Claim the participant's pending voucher for a reward
func (a *Agent) Claim(idn *bbx.Identity) (r *bbx.Reward, err error) {
	return a.engine.Claim(idn.Tx(a.clock.ReadUs()))
}

//Sale returns the current ledger row
func (a *Agent) Sale() (s *bbx.Sale, err error) {
	return a.engine.Sale()
}

//Rewards lists everything issued to the participant so far
func (a *Agent) Rewards(idn *bbx.Identity) (rs []*bbx.Reward, err error) {
	return a.vault.Rewards(idn.PK())
}

//Close the agent, releasing the stores
func (a *Agent) Close() (err error) {
	if a.store != nil {
		if err = a.store.Close(); err != nil {
			return errors.Wrap(err, "failed to close write log")
		}
	}

	if c, ok := a.vault.(interface{ Close() error }); ok {
		if err = c.Close(); err != nil {
			return errors.Wrap(err, "failed to close vault")
		}
	}

	return
}
