package mock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sis-remapper/ledcore/internal/framebuffer"
	"github.com/sis-remapper/ledcore/internal/sdk"
	"github.com/sis-remapper/ledcore/internal/sdk/mock"
)

func TestConnectDeliversInitialConnectedState(t *testing.T) {
	a := mock.New()
	var got []sdk.SessionState
	require.NoError(t, a.Connect(func(s sdk.SessionState) { got = append(got, s) }))
	assert.Equal(t, []sdk.SessionState{sdk.Connected}, got)
}

func TestPushForwardsFurtherTransitions(t *testing.T) {
	a := mock.New()
	var got []sdk.SessionState
	require.NoError(t, a.Connect(func(s sdk.SessionState) { got = append(got, s) }))
	a.Push(sdk.ConnectionLost)
	a.Push(sdk.Connected)
	assert.Equal(t, []sdk.SessionState{sdk.Connected, sdk.ConnectionLost, sdk.Connected}, got)
}

func TestSetLedColorsRecordsUploads(t *testing.T) {
	a := mock.New()
	colors := []framebuffer.LedColor{{Id: 1, Color: [4]uint8{1, 2, 3, 4}}}
	require.NoError(t, a.SetLedColors("kb0", colors))
	require.Len(t, a.Uploads, 1)
	assert.Equal(t, "kb0", a.Uploads[0].DeviceId)
	assert.Equal(t, colors, a.Uploads[0].Colors)
}

func TestSetLedColorsReturnsConfiguredError(t *testing.T) {
	a := mock.New()
	a.UploadErr = assert.AnError
	err := a.SetLedColors("kb0", nil)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, a.Uploads)
}

func TestCloseMarksClosed(t *testing.T) {
	a := mock.New()
	require.NoError(t, a.Close())
	assert.True(t, a.Closed())
}
