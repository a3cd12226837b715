package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-metrics-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func newTestConfig(t *testing.T, password string, ttl time.Duration) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return &config.Config{
		Auth: config.Auth{
			Secret:               "segredo-de-teste",
			OperatorUser:         "admin",
			OperatorPasswordHash: string(hash),
			TokenTTL:             ttl,
		},
	}
}

func TestService_Login(t *testing.T) {
	cfg := newTestConfig(t, "senha-correta", time.Hour)
	service := NewService(cfg)

	tests := []struct {
		name        string
		username    string
		password    string
		expectError error
	}{
		{
			name:     "Credenciais corretas devem emitir um token",
			username: "admin",
			password: "senha-correta",
		},
		{
			name:        "Usuário desconhecido deve ser rejeitado",
			username:    "intruso",
			password:    "senha-correta",
			expectError: ErrInvalidCredentials,
		},
		{
			name:        "Senha incorreta deve ser rejeitada",
			username:    "admin",
			password:    "senha-errada",
			expectError: ErrInvalidCredentials,
		},
		{
			name:        "Senha vazia deve ser rejeitada",
			username:    "admin",
			password:    "",
			expectError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.Login(tt.username, tt.password)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	cfg := newTestConfig(t, "senha-correta", time.Hour)
	service := NewService(cfg)

	t.Run("Token emitido pelo Login deve ser aceito", func(t *testing.T) {
		token, err := service.Login("admin", "senha-correta")
		assert.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("Token adulterado deve ser rejeitado", func(t *testing.T) {
		claims, err := service.ValidateToken("token.invalido.qualquer")
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Token assinado com outro segredo deve ser rejeitado", func(t *testing.T) {
		otherCfg := newTestConfig(t, "senha-correta", time.Hour)
		otherCfg.Auth.Secret = "outro-segredo"
		otherService := NewService(otherCfg)

		token, err := otherService.Login("admin", "senha-correta")
		assert.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Token expirado deve ser rejeitado com o erro específico", func(t *testing.T) {
		expiredCfg := newTestConfig(t, "senha-correta", -time.Hour)
		expiredService := NewService(expiredCfg)

		token, err := expiredService.Login("admin", "senha-correta")
		assert.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.Nil(t, claims)
	})
}
