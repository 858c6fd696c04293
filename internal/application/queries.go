package application

import (
	"github.com/bnema/ai-accounts-manager/internal/domain"
)

// Snapshot is the full collection set as of one observation. Derivations over
// it are pure and recomputed on every read.
type Snapshot struct {
	Products []domain.Product
	Accounts []domain.Account
	Links    []domain.Link
}

// LinkedAccounts derives the enriched accounts for one product, in link
// insertion order. Links whose account cannot be resolved are dropped.
func (s Snapshot) LinkedAccounts(productID domain.ProductID) []domain.EnrichedAccount {
	byID := make(map[domain.AccountID]domain.Account, len(s.Accounts))
	for _, account := range s.Accounts {
		byID[account.ID] = account
	}

	enriched := make([]domain.EnrichedAccount, 0)
	for _, link := range s.Links {
		if link.ProductID != productID {
			continue
		}
		account, ok := byID[link.AccountID]
		if !ok {
			continue
		}
		enriched = append(enriched, domain.EnrichedAccount{Account: account, RelationID: link.ID})
	}

	return enriched
}

// Product looks up a product by id.
func (s Snapshot) Product(id domain.ProductID) (domain.Product, bool) {
	for _, product := range s.Products {
		if product.ID == id {
			return product, true
		}
	}

	return domain.Product{}, false
}

// Account looks up an account by id.
func (s Snapshot) Account(id domain.AccountID) (domain.Account, bool) {
	for _, account := range s.Accounts {
		if account.ID == id {
			return account, true
		}
	}

	return domain.Account{}, false
}

// LinkCount counts the links bound to one product.
func (s Snapshot) LinkCount(productID domain.ProductID) int {
	count := 0
	for _, link := range s.Links {
		if link.ProductID == productID {
			count++
		}
	}

	return count
}

func (s Snapshot) accountByEmail(email string) (domain.Account, bool) {
	for _, account := range s.Accounts {
		if account.Email == email {
			return account, true
		}
	}

	return domain.Account{}, false
}

func (s Snapshot) linkFor(productID domain.ProductID, accountID domain.AccountID) (domain.Link, bool) {
	for _, link := range s.Links {
		if link.ProductID == productID && link.AccountID == accountID {
			return link, true
		}
	}

	return domain.Link{}, false
}

func (s Snapshot) clone() Snapshot {
	return Snapshot{
		Products: cloneSlice(s.Products),
		Accounts: cloneSlice(s.Accounts),
		Links:    cloneSlice(s.Links),
	}
}
