package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/ai-accounts-manager/internal/domain"
	"github.com/bnema/ai-accounts-manager/internal/ports"
	"github.com/google/uuid"
)

// Service owns the three collections in memory and is the sole writer of the
// state store. Every mutation computes the new collections, persists the ones
// that changed, then commits to memory and republishes the full snapshot to
// subscribers. A failed persist leaves the in-memory state untouched.
type Service struct {
	store ports.StateStore
	clock ports.Clock
	newID func() string

	mu          sync.Mutex
	state       Snapshot
	subscribers []func(Snapshot)
}

func NewService(ctx context.Context, store ports.StateStore, clock ports.Clock) (*Service, error) {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	products, err := store.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	accounts, err := store.LoadAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	links, err := store.LoadLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load links: %w", err)
	}

	return &Service{
		store: store,
		clock: clock,
		newID: uuid.NewString,
		state: Snapshot{Products: products, Accounts: accounts, Links: links},
	}, nil
}

// Subscribe registers an observer invoked with the full refreshed snapshot
// after every successful mutation. Callbacks run synchronously with the
// service lock held: they must not call back into the service. The snapshot
// is a clone, so reading it never requires another service call.
func (s *Service) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers = append(s.subscribers, fn)
}

// Snapshot returns a copy of the current collections.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.clone()
}

func (s *Service) AddProduct(ctx context.Context, name, description string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := domain.NewProduct(domain.ProductID(s.newID()), name, description, s.clock.Now())

	products := append(cloneSlice(s.state.Products), product)
	if err := s.store.SaveProducts(ctx, products); err != nil {
		return domain.Product{}, fmt.Errorf("save products: %w", err)
	}

	s.state.Products = products
	s.notifyLocked()

	return product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id domain.ProductID, name, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := cloneSlice(s.state.Products)
	found := false
	for i := range products {
		if products[i].ID == id {
			products[i].Name = name
			products[i].Description = description
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	if err := s.store.SaveProducts(ctx, products); err != nil {
		return fmt.Errorf("save products: %w", err)
	}

	s.state.Products = products
	s.notifyLocked()

	return nil
}

// DeleteProduct removes the product and every link that references it.
// Accounts are left untouched so they can be re-linked later.
func (s *Service) DeleteProduct(ctx context.Context, id domain.ProductID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]domain.Product, 0, len(s.state.Products))
	found := false
	for _, product := range s.state.Products {
		if product.ID == id {
			found = true
			continue
		}
		products = append(products, product)
	}
	if !found {
		return nil
	}

	links := make([]domain.Link, 0, len(s.state.Links))
	for _, link := range s.state.Links {
		if link.ProductID == id {
			continue
		}
		links = append(links, link)
	}

	if err := s.store.SaveProducts(ctx, products); err != nil {
		return fmt.Errorf("save products: %w", err)
	}
	if err := s.store.SaveLinks(ctx, links); err != nil {
		return fmt.Errorf("save links: %w", err)
	}

	s.state.Products = products
	s.state.Links = links
	s.notifyLocked()

	return nil
}

// LinkAccountToProduct binds an email to a product. The account is looked up
// by exact email and created when absent; linking an already-linked email to
// the same product is a silent no-op.
func (s *Service) LinkAccountToProduct(ctx context.Context, productID domain.ProductID, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := s.state.Accounts
	target, ok := s.state.accountByEmail(email)
	accountCreated := false
	if !ok {
		target = domain.NewAccount(domain.AccountID(s.newID()), email, s.clock.Now())
		accounts = append(cloneSlice(accounts), target)
		accountCreated = true
	}

	linkCreated := false
	links := s.state.Links
	if _, ok := s.state.linkFor(productID, target.ID); !ok {
		links = append(cloneSlice(links), domain.Link{
			ID:        domain.LinkID(s.newID()),
			ProductID: productID,
			AccountID: target.ID,
		})
		linkCreated = true
	}

	if !accountCreated && !linkCreated {
		return nil
	}

	if accountCreated {
		if err := s.store.SaveAccounts(ctx, accounts); err != nil {
			return fmt.Errorf("save accounts: %w", err)
		}
	}
	if linkCreated {
		if err := s.store.SaveLinks(ctx, links); err != nil {
			return fmt.Errorf("save links: %w", err)
		}
	}

	s.state.Accounts = accounts
	s.state.Links = links
	s.notifyLocked()

	return nil
}

// UnlinkAccount removes one relation record. The underlying account persists
// regardless of how many other links it still has.
func (s *Service) UnlinkAccount(ctx context.Context, relationID domain.LinkID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	links := make([]domain.Link, 0, len(s.state.Links))
	found := false
	for _, link := range s.state.Links {
		if link.ID == relationID {
			found = true
			continue
		}
		links = append(links, link)
	}
	if !found {
		return nil
	}

	if err := s.store.SaveLinks(ctx, links); err != nil {
		return fmt.Errorf("save links: %w", err)
	}

	s.state.Links = links
	s.notifyLocked()

	return nil
}

// StartCooldown puts the account into cooldown for the given number of whole
// days. Restarting an already-cooling-down account overwrites its timers.
func (s *Service) StartCooldown(ctx context.Context, accountID domain.AccountID, days int) error {
	if !domain.ValidCooldownDays(days) {
		return domain.ErrInvalidCooldownDays
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutateAccountLocked(ctx, accountID, func(account domain.Account) (domain.Account, error) {
		return account.StartCooldown(s.clock.Now(), days)
	})
}

// ResetCooldown returns the account to active unconditionally.
func (s *Service) ResetCooldown(ctx context.Context, accountID domain.AccountID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutateAccountLocked(ctx, accountID, func(account domain.Account) (domain.Account, error) {
		return account.ResetCooldown(), nil
	})
}

func (s *Service) mutateAccountLocked(ctx context.Context, accountID domain.AccountID, mutate func(domain.Account) (domain.Account, error)) error {
	accounts := cloneSlice(s.state.Accounts)
	found := false
	for i := range accounts {
		if accounts[i].ID != accountID {
			continue
		}

		mutated, err := mutate(accounts[i])
		if err != nil {
			return err
		}
		accounts[i] = mutated
		found = true
		break
	}
	if !found {
		return nil
	}

	if err := s.store.SaveAccounts(ctx, accounts); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}

	s.state.Accounts = accounts
	s.notifyLocked()

	return nil
}

func (s *Service) notifyLocked() {
	snapshot := s.state.clone()
	for _, fn := range s.subscribers {
		fn(snapshot)
	}
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
