package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyadi/ecosort/models"
)

const (
	testIssuer  = "ecosort-test"
	testSignKey = "test-sign-key"
)

func TestGenerateSessionToken_RoundTrip(t *testing.T) {
	identity := models.Identity{UserID: 42, Username: "budi", Role: models.RoleAccount}

	token, err := GenerateSessionToken(testIssuer, identity, time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseSessionToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, identity, parsed.Identity)
}

func TestGenerateSessionToken_AdminRoundTrip(t *testing.T) {
	identity := models.AdminIdentity("admin")

	token, err := GenerateSessionToken(testIssuer, identity, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseSessionToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.True(t, parsed.Identity.IsAdmin())
	assert.Equal(t, models.AdminUserID, parsed.Identity.UserID)
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	identity := models.Identity{UserID: 1}

	_, err := GenerateSessionToken("", identity, time.Hour, testSignKey)
	assert.Error(t, err)

	_, err = GenerateSessionToken(testIssuer, identity, 0, testSignKey)
	assert.Error(t, err)

	_, err = GenerateSessionToken(testIssuer, identity, time.Hour, "")
	assert.Error(t, err)
}

func TestValidateAndParseSessionToken_WrongKey(t *testing.T) {
	identity := models.Identity{UserID: 1, Username: "budi", Role: models.RoleAccount}
	token, err := GenerateSessionToken(testIssuer, identity, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseSessionToken(token.SignedString, "other-key", testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseSessionToken_WrongIssuer(t *testing.T) {
	identity := models.Identity{UserID: 1, Username: "budi", Role: models.RoleAccount}
	token, err := GenerateSessionToken(testIssuer, identity, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseSessionToken(token.SignedString, testSignKey, "someone-else")
	assert.Error(t, err)
}

func TestValidateAndParseSessionToken_Expired(t *testing.T) {
	identity := models.Identity{UserID: 1, Username: "budi", Role: models.RoleAccount}
	token, err := GenerateSessionToken(testIssuer, identity, -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseSessionToken(token.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseSessionToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseSessionToken("not.a.token", testSignKey, testIssuer)
	assert.Error(t, err)
}
