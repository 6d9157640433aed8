package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSignAndVerify(t *testing.T) {
	token, err := Sign(testSecret, "sias.chess@krea.ac.in", "Chess Club Rep", time.Hour)
	require.NoError(t, err)

	v := NewVerifier(testSecret, nil, nil)
	ident, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "sias.chess@krea.ac.in", ident.Email)
	assert.Equal(t, "Chess Club Rep", ident.Name)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := Sign("other-secret", "a@b.c", "", time.Hour)
	require.NoError(t, err)

	v := NewVerifier(testSecret, nil, nil)
	_, err = v.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	token, err := Sign(testSecret, "a@b.c", "", -time.Minute)
	require.NoError(t, err)

	v := NewVerifier(testSecret, nil, nil)
	_, err = v.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	v := NewVerifier(testSecret, nil, nil)
	_, err := v.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAllowed(t *testing.T) {
	v := NewVerifier(testSecret,
		[]string{"sias.runclub@krea.edu.in"},
		[]string{"sias22@krea.ac.in"},
	)

	assert.True(t, v.Allowed("sias.runclub@krea.edu.in"))
	assert.True(t, v.Allowed("SIAS.RUNCLUB@krea.edu.in"))
	assert.True(t, v.Allowed("somebody.sias22@krea.ac.in"))
	assert.False(t, v.Allowed("stranger@gmail.com"))
	assert.False(t, v.Allowed(""))
}

func TestAllowed_NoRestrictions(t *testing.T) {
	v := NewVerifier(testSecret, nil, nil)
	assert.True(t, v.Allowed("anyone@anywhere.org"))
}
