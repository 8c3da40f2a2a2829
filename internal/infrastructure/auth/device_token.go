package auth

import (
	"github.com/google/uuid"

	"github.com/willcheung/robinhood-export-function/domain"
)

// DeviceTokenGeneratorImpl implements domain.DeviceTokenGenerator.
// The brokerage correlates challenge responses to the login attempt that
// triggered them through this value, so a fresh token is generated per
// fresh-login attempt and then persisted for continuity.
type DeviceTokenGeneratorImpl struct{}

// NewDeviceTokenGenerator creates a new device token generator
func NewDeviceTokenGenerator() domain.DeviceTokenGenerator {
	return &DeviceTokenGeneratorImpl{}
}

// Generate returns 16 random bytes rendered as hyphenated hex in
// 8-4-4-4-12 grouping. Uniqueness is not required, unpredictability is.
func (g *DeviceTokenGeneratorImpl) Generate() string {
	return uuid.NewString()
}
