package db

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoredBlob is one independently keyed opaque text blob. The application
// state (history, goal, preferences) round-trips through these rows; the
// schema knows nothing about their contents.
type StoredBlob struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Content   string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (StoredBlob) TableName() string {
	return "stored_blobs"
}

type BlobRepository struct {
	database *gorm.DB
}

func NewBlobRepository(database *gorm.DB) *BlobRepository {
	return &BlobRepository{database: database}
}

// Get returns the blob content and whether the key exists at all.
func (repo *BlobRepository) Get(key string) (string, bool, error) {
	blob := StoredBlob{}
	result := repo.database.Where("key = ?", key).Limit(1).Find(&blob)
	if result.Error != nil {
		return "", false, result.Error
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return blob.Content, true, nil
}

// Set writes the blob, inserting or overwriting in place.
func (repo *BlobRepository) Set(key string, content string) error {
	blob := StoredBlob{
		Key:       key,
		Content:   content,
		UpdatedAt: time.Now().UTC(),
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&blob).Error
}

func (repo *BlobRepository) Delete(key string) error {
	return repo.database.Where("key = ?", key).Delete(&StoredBlob{}).Error
}
