//Package vault stores issued rewards keyed by their owner. Rewards are
//append-only, once issued they are never mutated or removed.
package vault

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"io/ioutil"
	"path/filepath"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"

	"github.com/advanderveer/bbx"
)

var bucketRewards = []byte{0x00}

//Bolt is a vault implementation that uses the bolt db
type Bolt struct {
	dir string
	bdb *bolt.DB
}

//NewBolt will initialize a bolt backed vault, the directory must exist
func NewBolt(dir string) (v *Bolt, err error) {
	v = &Bolt{dir: dir}

	v.bdb, err = bolt.Open(filepath.Join(dir, "vault.bolt"), 0600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "vault: failed to open or create database file")
	}

	if err = v.bdb.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketRewards)
		return err
	}); err != nil {
		return nil, errors.Wrap(err, "vault: failed to create rewards bucket")
	}

	return
}

//MustTempBolt will create a bolt vault in a temporary directory, it panics
//on failure so it is mostly useful for testing
func MustTempBolt() *Bolt {
	tmpd, err := ioutil.TempDir("", "bbx_vault_")
	if err != nil {
		panic("vault: " + err.Error())
	}

	v, err := NewBolt(tmpd)
	if err != nil {
		panic("vault: " + err.Error())
	}

	return v
}

//Issue appends the reward to its owner's slots
func (v *Bolt) Issue(r *bbx.Reward) (err error) {
	buf := bytes.NewBuffer(nil)
	if err = gob.NewEncoder(buf).Encode(r); err != nil {
		return errors.Wrap(err, "vault: failed to encode reward")
	}

	if err = v.bdb.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket(bucketRewards).CreateBucketIfNotExists(r.Owner.Bytes())
		if err != nil {
			return err
		}

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}

		k := make([]byte, 8)
		binary.BigEndian.PutUint64(k, seq)
		return b.Put(k, buf.Bytes())
	}); err != nil {
		return errors.Wrap(err, "vault: failed to put reward")
	}

	return
}

//Rewards returns all rewards issued to the owner in issue order
func (v *Bolt) Rewards(owner bbx.PK) (rs []*bbx.Reward, err error) {
	if err = v.bdb.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketRewards).Bucket(owner.Bytes())
		if b == nil {
			return nil //no rewards issued to this owner
		}

		return b.ForEach(func(k, d []byte) error {
			r := &bbx.Reward{}
			if err := gob.NewDecoder(bytes.NewReader(d)).Decode(r); err != nil {
				return err
			}

			rs = append(rs, r)
			return nil
		})
	}); err != nil {
		return nil, errors.Wrap(err, "vault: failed to read rewards")
	}

	return
}

//Close the vault, releasing the database file
func (v *Bolt) Close() (err error) {
	return v.bdb.Close()
}
