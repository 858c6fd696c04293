package ports

import (
	"context"

	"github.com/bnema/ai-accounts-manager/internal/domain"
)

// StateStore persists the three collections as independent blobs. Loading an
// absent collection yields an empty slice; every save rewrites the full
// collection.
type StateStore interface {
	LoadProducts(ctx context.Context) ([]domain.Product, error)
	SaveProducts(ctx context.Context, products []domain.Product) error

	LoadAccounts(ctx context.Context) ([]domain.Account, error)
	SaveAccounts(ctx context.Context, accounts []domain.Account) error

	LoadLinks(ctx context.Context) ([]domain.Link, error)
	SaveLinks(ctx context.Context, links []domain.Link) error
}
