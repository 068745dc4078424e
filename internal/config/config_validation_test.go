package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfigValidate(t *testing.T) {
	ok := &StructuredConfig{Workers: Workers{AutosaveInterval: 30 * time.Second}}
	assert.NoError(t, ok.validate())

	bad := &StructuredConfig{Workers: Workers{AutosaveInterval: -time.Second}}
	assert.ErrorIs(t, bad.validate(), ErrInvalidWorkerConfigs)
}

func TestServerConfigValidate(t *testing.T) {
	valid := func() *ServerConfig {
		return &ServerConfig{
			App:     App{TokenSignKey: "key", TokenIssuer: "issuer"},
			Storage: Storage{DB: DB{DSN: "postgres://localhost/sketchkeep"}},
		}
	}

	assert.NoError(t, valid().validate())

	noDSN := valid()
	noDSN.Storage.DB.DSN = ""
	assert.ErrorIs(t, noDSN.validate(), ErrInvalidStorageConfigs)

	noKey := valid()
	noKey.App.TokenSignKey = ""
	assert.ErrorIs(t, noKey.validate(), ErrInvalidAppConfigs)

	noIssuer := valid()
	noIssuer.App.TokenIssuer = ""
	assert.ErrorIs(t, noIssuer.validate(), ErrInvalidAppConfigs)
}

func TestClientConfigValidate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			App:     ClientApp{Token: "bearer"},
			Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: 15 * time.Second},
		}
	}

	assert.NoError(t, valid().validate())

	noAddress := valid()
	noAddress.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, noAddress.validate(), ErrInvalidAdapterConfigs)

	noToken := valid()
	noToken.App.Token = ""
	assert.ErrorIs(t, noToken.validate(), ErrInvalidAppConfigs)
}
