package netconfig

// MockAddrLookup is a mock implementation of AddrLookup for testing.
type MockAddrLookup struct {
	Addr  string
	Err   error
	Calls int
}

// NewMockAddrLookup creates a mock resolving to a fixed LAN address.
func NewMockAddrLookup() *MockAddrLookup {
	return &MockAddrLookup{Addr: "192.168.1.20"}
}

func (m *MockAddrLookup) LocalAddr() (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Addr, nil
}
