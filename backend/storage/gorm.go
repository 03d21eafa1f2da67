package storage

import (
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// StateBlob is the single-row-per-key table the GormStore writes. The state
// stays one opaque JSON document; the database is only a byte store here.
type StateBlob struct {
	Key  string         `gorm:"primaryKey"`
	Data datatypes.JSON `gorm:"not null"`
}

// GormStore implements BlobStore on a relational database, for setups where
// the tracker state should live alongside other data instead of a local file.
type GormStore struct {
	db *gorm.DB
}

// OpenGorm connects to postgres and migrates the blob table.
func OpenGorm(host, port, user, password, name string) (*GormStore, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, name)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&StateBlob{}); err != nil {
		return nil, err
	}

	return &GormStore{db: db}, nil
}

func (s *GormStore) Load() ([]byte, bool, error) {
	var blob StateBlob
	err := s.db.First(&blob, "key = ?", StateKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(blob.Data), true, nil
}

func (s *GormStore) Save(data []byte) error {
	blob := StateBlob{Key: StateKey, Data: datatypes.JSON(data)}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&blob).Error
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
