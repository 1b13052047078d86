package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicswipe/internal/model"
)

func TestStartSessionAndValidate(t *testing.T) {
	svc := NewAuthService("test-secret")

	resp, err := svc.StartSession(&model.StartSessionRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.UserID)
	assert.NotEmpty(t, resp.Token)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, claims.UserID)
}

func TestStartSessionDeviceIDIsStable(t *testing.T) {
	svc := NewAuthService("test-secret")

	first, err := svc.StartSession(&model.StartSessionRequest{DeviceID: "device-abc"})
	require.NoError(t, err)
	second, err := svc.StartSession(&model.StartSessionRequest{DeviceID: "device-abc"})
	require.NoError(t, err)
	other, err := svc.StartSession(&model.StartSessionRequest{DeviceID: "device-xyz"})
	require.NoError(t, err)

	assert.Equal(t, first.UserID, second.UserID)
	assert.NotEqual(t, first.UserID, other.UserID)
}

func TestStartSessionAnonymousIDsDiffer(t *testing.T) {
	svc := NewAuthService("test-secret")

	a, err := svc.StartSession(nil)
	require.NoError(t, err)
	b, err := svc.StartSession(nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.UserID, b.UserID)
}

func TestValidateTokenRejectsGarbageAndWrongKey(t *testing.T) {
	svc := NewAuthService("test-secret")

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	otherSvc := NewAuthService("different-secret")
	resp, err := otherSvc.StartSession(nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
