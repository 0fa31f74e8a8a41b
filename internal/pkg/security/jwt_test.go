package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "admin@grupoprotect.com.br", []string{"ADMIN"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), claims.AdminID)
	assert.Equal(t, "admin@grupoprotect.com.br", claims.Email)
	assert.Equal(t, []string{"ADMIN"}, claims.Roles)
	assert.Equal(t, "ProtectAdmin", claims.Issuer)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateToken_TamperedSignature(t *testing.T) {
	token, err := GenerateToken(1, "a@b.com", []string{"ADMIN"})
	assert.NoError(t, err)

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "." + "AAAA"
	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}

func TestExtractSignature(t *testing.T) {
	token, err := GenerateToken(1, "a@b.com", nil)
	assert.NoError(t, err)

	signature, err := ExtractSignature(token)
	assert.NoError(t, err)
	assert.Equal(t, strings.Split(token, ".")[2], signature)

	_, err = ExtractSignature("malformed")
	assert.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("senha123")
	assert.NoError(t, err)
	assert.NotEqual(t, "senha123", hash)

	assert.NoError(t, CheckPasswordHash("senha123", hash))
	assert.Error(t, CheckPasswordHash("errada", hash))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}
