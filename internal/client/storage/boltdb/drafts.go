package boltdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/codeclimb/internal/client/storage"
)

// Compile-time check that Storage implements DraftStorage
var _ storage.DraftStorage = (*Storage)(nil)

// draftKey строит ключ кеша: "<listID>/<problemID>".
// Нулевой паддинг id дает стабильный порядок обхода курсором.
func draftKey(listID string, problemID int) []byte {
	return []byte(fmt.Sprintf("%s/%010d", listID, problemID))
}

// draftPrefix префикс всех ключей одного списка
func draftPrefix(listID string) []byte {
	return []byte(listID + "/")
}

// SaveDraft сохраняет или заменяет закешированный draft
func (s *Storage) SaveDraft(ctx context.Context, draft *storage.CachedDraft) error {
	if draft == nil {
		return fmt.Errorf("draft is nil")
	}

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}
		return bucket.Put(draftKey(draft.ListID, draft.ProblemID), data)
	})
}

// PendingDrafts возвращает все закешированные drafts списка
func (s *Storage) PendingDrafts(ctx context.Context, listID string) ([]*storage.CachedDraft, error) {
	var drafts []*storage.CachedDraft

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		prefix := draftPrefix(listID)
		cursor := bucket.Cursor()
		for k, v := cursor.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = cursor.Next() {
			var draft storage.CachedDraft
			if err := json.Unmarshal(v, &draft); err != nil {
				return fmt.Errorf("failed to unmarshal draft %q: %w", k, err)
			}
			drafts = append(drafts, &draft)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return drafts, nil
}

// DeleteDraft удаляет закешированный draft. Отсутствие не считается ошибкой.
func (s *Storage) DeleteDraft(ctx context.Context, listID string, problemID int) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}
		return bucket.Delete(draftKey(listID, problemID))
	})
}
