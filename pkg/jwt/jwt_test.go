package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/assettrack-console/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "42"
	testIssuer = "assettrack-test"
)

func TestJWT_GenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "jdoe", "OPERATOR", testIssuer, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, "OPERATOR", claims.Role)
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "jdoe", "ADMIN", testIssuer, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestJWT_Decode_SinSecreto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "jdoe", "ADMIN", testIssuer, time.Hour)
	require.NoError(t, err)

	claims, err := pkgjwt.Decode(tok, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, testUserID, claims.UserID)
}

func TestJWT_Decode_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "jdoe", "ADMIN", testIssuer, time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Decode(tok, time.Now().Add(2*time.Minute))
	assert.ErrorIs(t, err, pkgjwt.ErrExpired)
}

func TestJWT_Decode_Malformado(t *testing.T) {
	_, err := pkgjwt.Decode("token.invalido.aqui", time.Now())
	assert.Error(t, err)

	_, err = pkgjwt.Decode("", time.Now())
	assert.Error(t, err)
}
