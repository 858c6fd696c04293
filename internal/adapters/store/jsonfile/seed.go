package jsonfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/ai-accounts-manager/internal/domain"
)

// seed writes the starter catalogue on first use. Each collection is seeded
// independently and only while its file is entirely absent, so an existing
// store is never overwritten.
func (s *Store) seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	missing, err := s.collectionMissing(productsFile)
	if err != nil {
		return err
	}
	if missing {
		products := seedProducts(s.clock.Now())
		records := make([]productRecord, 0, len(products))
		for _, product := range products {
			records = append(records, productRecordFrom(product))
		}
		if err := s.writeCollection(productsFile, records); err != nil {
			return err
		}
	}

	for _, name := range []string{accountsFile, linksFile} {
		missing, err := s.collectionMissing(name)
		if err != nil {
			return err
		}
		if missing {
			if err := s.writeCollection(name, []struct{}{}); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *Store) collectionMissing(name string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.dir, name))
	if err == nil {
		return false, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}

	return false, fmt.Errorf("stat %s: %w", name, err)
}

func seedProducts(now time.Time) []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "ChatGPT Plus", Description: "OpenAI Advanced Model", CreatedAt: now},
		{ID: "2", Name: "Claude Pro", Description: "Anthropic AI", CreatedAt: now},
		{ID: "3", Name: "Midjourney", Description: "Image Generation", CreatedAt: now},
	}
}
