package netconfig

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the address lookup:
// - NewAddrLookup defaults to en0 then en1 and honors explicit interfaces
// - Nonexistent interfaces fall through to the sentinel error
// - The mock records calls and returns its configured address or error

func TestNewAddrLookup_DefaultInterfaces(t *testing.T) {
	t.Parallel()

	lookup, ok := NewAddrLookup().(*ipconfigLookup)
	require.True(t, ok)
	assert.Equal(t, []string{"en0", "en1"}, lookup.interfaces)
}

func TestNewAddrLookup_ExplicitInterfaces(t *testing.T) {
	t.Parallel()

	lookup, ok := NewAddrLookup("utun3").(*ipconfigLookup)
	require.True(t, ok)
	assert.Equal(t, []string{"utun3"}, lookup.interfaces)
}

func TestIpconfigLookup_NoAddressFound(t *testing.T) {
	t.Parallel()

	// Test: an interface that cannot exist exhausts the list
	lookup := NewAddrLookup("swiftmap-no-such-interface-0")
	_, err := lookup.LocalAddr()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoLocalAddr)
}

func TestMockAddrLookup(t *testing.T) {
	t.Parallel()

	mock := NewMockAddrLookup()
	addr, err := mock.LocalAddr()
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.20", addr)
	assert.Equal(t, 1, mock.Calls)

	mock.Err = errors.New("interface down")
	_, err = mock.LocalAddr()
	require.Error(t, err)
	assert.Equal(t, 2, mock.Calls)
}
