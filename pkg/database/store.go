package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is one persisted key/value row. The whole collection behind a
// logical key (stock, sales, customers, khataEntries, ...) lives in a
// single JSON value, mirroring the backup file layout.
type Document struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// DocumentStore implements store.Store on top of the documents table.
type DocumentStore struct {
	db *gorm.DB
}

func NewDocumentStore(db *gorm.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) Load(key string, dest any) (bool, error) {
	var doc Document
	if err := s.db.Where("key = ?", key).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(doc.Value), dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *DocumentStore) Save(key string, value any) error {
	return s.SaveAll(map[string]any{key: value})
}

// SaveAll upserts every key inside one transaction, so a multi-collection
// mutation is durably applied as a unit or not at all.
func (s *DocumentStore) SaveAll(values map[string]any) error {
	docs := make([]Document, 0, len(values))
	for key, value := range values {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		docs = append(docs, Document{Key: key, Value: string(raw)})
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, doc := range docs {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&doc).Error
			if err != nil {
				return fmt.Errorf("save %s: %w", doc.Key, err)
			}
		}
		return nil
	})
}

func (s *DocumentStore) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.db.Where("key IN ?", keys).Delete(&Document{}).Error; err != nil {
		return fmt.Errorf("delete keys: %w", err)
	}
	return nil
}
