package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/willcheung/robinhood-export-function/domain"
)

// SessionCacheDB implements domain.SessionCache using GORM
type SessionCacheDB struct {
	db *gorm.DB
}

// DBSessionRecord represents the database model for SessionRecord (with GORM tags)
type DBSessionRecord struct {
	Username     string    `gorm:"primaryKey;size:255"`
	AccessToken  string    `gorm:"column:access_token"`
	TokenType    string    `gorm:"column:token_type;size:32"`
	RefreshToken string    `gorm:"column:refresh_token"`
	DeviceToken  string    `gorm:"column:device_token;size:64"`
	ExpiresAt    time.Time `gorm:"column:expires_at"`
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBSessionRecord) TableName() string {
	return "sessions"
}

// NewDBSessionCache creates a new database-backed session cache
func NewDBSessionCache(db *gorm.DB) domain.SessionCache {
	return &SessionCacheDB{db: db}
}

// Get implements domain.SessionCache
func (r *SessionCacheDB) Get(ctx context.Context, username string) (*domain.SessionRecord, error) {
	var dbRecord DBSessionRecord
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&dbRecord).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return r.dbToDomain(&dbRecord), nil
}

// Put implements domain.SessionCache
func (r *SessionCacheDB) Put(ctx context.Context, record *domain.SessionRecord) error {
	dbRecord := r.domainToDB(record)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			UpdateAll: true,
		}).
		Create(dbRecord).Error
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}

// Delete implements domain.SessionCache
func (r *SessionCacheDB) Delete(ctx context.Context, username string) error {
	err := r.db.WithContext(ctx).Where("username = ?", username).Delete(&DBSessionRecord{}).Error
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}

func (r *SessionCacheDB) domainToDB(record *domain.SessionRecord) *DBSessionRecord {
	return &DBSessionRecord{
		Username:     record.Username,
		AccessToken:  record.AccessToken,
		TokenType:    record.TokenType,
		RefreshToken: record.RefreshToken,
		DeviceToken:  record.DeviceToken,
		ExpiresAt:    record.ExpiresAt,
	}
}

func (r *SessionCacheDB) dbToDomain(dbRecord *DBSessionRecord) *domain.SessionRecord {
	return &domain.SessionRecord{
		Username:     dbRecord.Username,
		AccessToken:  dbRecord.AccessToken,
		TokenType:    dbRecord.TokenType,
		RefreshToken: dbRecord.RefreshToken,
		DeviceToken:  dbRecord.DeviceToken,
		ExpiresAt:    dbRecord.ExpiresAt,
	}
}
