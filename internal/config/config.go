package config

import (
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf
	Version string      `json:",default=0.3.0"`
	Store   StoreConfig `json:"store,optional"`
	Auth    AuthConfig  `json:"auth,optional"`
}

type StoreConfig struct {
	// DataSource accepts sqlite paths (file:..., sqlite:///...) or a
	// postgres URL; empty falls back to data/couchserver.db.
	DataSource string `json:"datasource,optional"`
}

type AuthConfig struct {
	// Secret keys the username digest/cipher and the token signer.
	// COUCHSERVER_SECRET overrides it at startup.
	Secret string `json:"secret,optional"`
}
