package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/ai-accounts-manager/internal/domain"
	"github.com/bnema/ai-accounts-manager/internal/ports"
	"github.com/spf13/viper"
)

const (
	configName     = "config"
	configType     = "toml"
	storePathKey   = "store.path"
	storeFileMode  = 0o600
	storeDirMode   = 0o700
	storeConfigDir = ".aim"

	productsFile = "products.json"
	accountsFile = "accounts.json"
	linksFile    = "links.json"
)

// Store keeps each collection as a standalone JSON array file under one
// directory. The array layout matches the web app's localStorage export, so a
// dumped blob drops in unchanged.
type Store struct {
	dir   string
	clock ports.Clock
	mu    *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.StateStore = (*Store)(nil)

func NewStore(cfg *viper.Viper, clock ports.Clock) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultDir := filepath.Join(homeDir, storeConfigDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(defaultDir)
	cfg.SetDefault(storePathKey, defaultDir)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	dir := cfg.GetString(storePathKey)
	if dir == "" {
		return nil, errors.New("store path is empty")
	}
	dir, err = normalizeStorePath(dir)
	if err != nil {
		return nil, err
	}

	s := &Store{dir: dir, clock: clock, mu: lockForPath(dir)}
	if err := s.seed(); err != nil {
		return nil, fmt.Errorf("seed store: %w", err)
	}

	return s, nil
}

func (s *Store) LoadProducts(ctx context.Context) ([]domain.Product, error) {
	var records []productRecord
	if err := s.load(ctx, productsFile, &records); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(records))
	for _, record := range records {
		products = append(products, record.toDomain())
	}

	return products, nil
}

func (s *Store) SaveProducts(ctx context.Context, products []domain.Product) error {
	records := make([]productRecord, 0, len(products))
	for _, product := range products {
		records = append(records, productRecordFrom(product))
	}

	return s.save(ctx, productsFile, records)
}

func (s *Store) LoadAccounts(ctx context.Context) ([]domain.Account, error) {
	var records []accountRecord
	if err := s.load(ctx, accountsFile, &records); err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(records))
	for _, record := range records {
		accounts = append(accounts, record.toDomain())
	}

	return accounts, nil
}

func (s *Store) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	records := make([]accountRecord, 0, len(accounts))
	for _, account := range accounts {
		records = append(records, accountRecordFrom(account))
	}

	return s.save(ctx, accountsFile, records)
}

func (s *Store) LoadLinks(ctx context.Context) ([]domain.Link, error) {
	var records []linkRecord
	if err := s.load(ctx, linksFile, &records); err != nil {
		return nil, err
	}

	links := make([]domain.Link, 0, len(records))
	for _, record := range records {
		links = append(links, record.toDomain())
	}

	return links, nil
}

func (s *Store) SaveLinks(ctx context.Context, links []domain.Link) error {
	records := make([]linkRecord, 0, len(links))
	for _, link := range links {
		records = append(records, linkRecordFrom(link))
	}

	return s.save(ctx, linksFile, records)
}

func (s *Store) load(ctx context.Context, name string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.readCollection(name, out)
}

func (s *Store) save(ctx context.Context, name string, records any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeCollection(name, records)
}

func (s *Store) readCollection(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}

	return nil
}

func (s *Store) writeCollection(name string, records any) error {
	if err := os.MkdirAll(s.dir, storeDirMode); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	target := filepath.Join(s.dir, name)
	tempFile, err := os.CreateTemp(s.dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp %s: %w", name, err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp %s: %w", name, err)
	}

	if err := tempFile.Chmod(storeFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp %s: %w", name, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp %s: %w", name, err)
	}

	if err := os.Rename(tempName, target); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}

	cleanup = false

	if err := os.Chmod(target, storeFileMode); err != nil {
		return fmt.Errorf("chmod %s: %w", name, err)
	}

	return nil
}

func normalizeStorePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve store path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
