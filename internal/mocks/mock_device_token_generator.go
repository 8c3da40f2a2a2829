package mocks

// MockDeviceTokenGenerator implements domain.DeviceTokenGenerator for testing
type MockDeviceTokenGenerator struct {
	GenerateFunc func() string

	GenerateCalls int
}

// NewMockDeviceTokenGenerator creates a generator returning a fixed token
func NewMockDeviceTokenGenerator() *MockDeviceTokenGenerator {
	return &MockDeviceTokenGenerator{}
}

// Generate returns a device token
func (m *MockDeviceTokenGenerator) Generate() string {
	m.GenerateCalls++
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	// Default behavior: fixed token
	return "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
}
