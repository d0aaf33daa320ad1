package authenticator_test

import (
	"testing"
	"time"

	"github.com/fitstride-lab/backend/config"
	"github.com/fitstride-lab/backend/pkg/authenticator"
	"github.com/stretchr/testify/require"
)

type tokenInfo struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
}

func TestJWT(t *testing.T) {
	engine := authenticator.NewTokenEngine[tokenInfo]("secret", config.TokenConfigs{
		Name:       "access_token",
		Expiration: time.Minute,
	})

	token, err := engine.Generate("user1", tokenInfo{ID: "user1", Handle: "runner"})
	require.Nil(t, err)

	info, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, tokenInfo{ID: "user1", Handle: "runner"}, info)
}

func TestJWTExpiration(t *testing.T) {
	engine := authenticator.NewTokenEngine[tokenInfo]("secret", config.TokenConfigs{
		Name:       "access_token",
		Expiration: time.Nanosecond,
	})

	token, err := engine.Generate("user1", tokenInfo{ID: "user1"})
	require.Nil(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	cfg := config.TokenConfigs{Name: "access_token", Expiration: time.Minute}

	engine := authenticator.NewTokenEngine[tokenInfo]("secret", cfg)
	token, err := engine.Generate("user1", tokenInfo{ID: "user1"})
	require.Nil(t, err)

	other := authenticator.NewTokenEngine[tokenInfo]("another-secret", cfg)
	_, err = other.Verify(token)
	require.Error(t, err)
}
