package agent

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/advanderveer/bbx"
)

//Conf configures the agent
type Conf struct {
	//Name shows up when the operator identity is printed
	Name string `yaml:"name"`

	//DataDir is where the write log and the vault live, leave empty to keep
	//everything in memory
	DataDir string `yaml:"data_dir"`

	//Capacity is the maximum number of vouchers the sale will grant
	Capacity uint64 `yaml:"capacity"`

	//RequestDeadline is the chain position after which requests close
	RequestDeadline uint64 `yaml:"request_deadline"`

	//ClaimOpenAt is the chain position at which claims open
	ClaimOpenAt uint64 `yaml:"claim_open_at"`

	//Operator is the identity that will open the sale
	Operator *bbx.Identity `yaml:"-"`
}

//DefaultConf returns sensible defaults
func DefaultConf() *Conf {
	return &Conf{
		Name:            "box-sale",
		Capacity:        100,
		RequestDeadline: 5,
		ClaimOpenAt:     10,
		Operator:        bbx.NewIdentity(nil),
	}
}

//LoadConf reads yaml from 'r' on top of the defaults
func LoadConf(r io.Reader) (cfg *Conf, err error) {
	cfg = DefaultConf()
	if err = yaml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode conf")
	}

	return cfg, cfg.Validate()
}

//LoadConfFile reads yaml conf from the file at 'path'
func LoadConfFile(path string) (cfg *Conf, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open conf file")
	}

	defer f.Close()
	return LoadConf(f)
}

//Validate returns an error if the conf doesn't describe a workable sale
func (cfg *Conf) Validate() (err error) {
	if cfg.Capacity < 1 {
		return errors.New("sale capacity must be at least 1")
	}

	if cfg.ClaimOpenAt < cfg.RequestDeadline {
		return errors.New("claims cannot open before the request deadline")
	}

	if cfg.Operator == nil {
		return errors.New("no operator identity configured")
	}

	return
}
