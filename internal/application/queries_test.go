package application_test

import (
	"testing"
	"time"

	"github.com/bnema/ai-accounts-manager/internal/application"
	"github.com/bnema/ai-accounts-manager/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkedAccountsFollowsLinkInsertionOrder(t *testing.T) {
	t.Parallel()

	createdAt := time.UnixMilli(1_760_000_000_000).UTC()
	snapshot := application.Snapshot{
		Accounts: []domain.Account{
			domain.NewAccount("acc-a", "a@example.com", createdAt),
			domain.NewAccount("acc-b", "b@example.com", createdAt),
		},
		Links: []domain.Link{
			{ID: "rel-1", ProductID: "p-1", AccountID: "acc-b"},
			{ID: "rel-2", ProductID: "p-2", AccountID: "acc-a"},
			{ID: "rel-3", ProductID: "p-1", AccountID: "acc-a"},
		},
	}

	enriched := snapshot.LinkedAccounts("p-1")
	require.Len(t, enriched, 2)
	assert.Equal(t, domain.LinkID("rel-1"), enriched[0].RelationID)
	assert.Equal(t, "b@example.com", enriched[0].Email)
	assert.Equal(t, domain.LinkID("rel-3"), enriched[1].RelationID)
	assert.Equal(t, "a@example.com", enriched[1].Email)
}

func TestLinkedAccountsDropsUnresolvableLinks(t *testing.T) {
	t.Parallel()

	createdAt := time.UnixMilli(1_760_000_000_000).UTC()
	snapshot := application.Snapshot{
		Accounts: []domain.Account{
			domain.NewAccount("acc-a", "a@example.com", createdAt),
		},
		Links: []domain.Link{
			{ID: "rel-1", ProductID: "p-1", AccountID: "acc-gone"},
			{ID: "rel-2", ProductID: "p-1", AccountID: "acc-a"},
		},
	}

	enriched := snapshot.LinkedAccounts("p-1")
	require.Len(t, enriched, 1)
	assert.Equal(t, domain.LinkID("rel-2"), enriched[0].RelationID)
}

func TestLinkedAccountsEmptyForUnknownProduct(t *testing.T) {
	t.Parallel()

	assert.Empty(t, application.Snapshot{}.LinkedAccounts("p-404"))
}

func TestLinkCount(t *testing.T) {
	t.Parallel()

	snapshot := application.Snapshot{
		Links: []domain.Link{
			{ID: "rel-1", ProductID: "p-1", AccountID: "acc-a"},
			{ID: "rel-2", ProductID: "p-1", AccountID: "acc-b"},
			{ID: "rel-3", ProductID: "p-2", AccountID: "acc-a"},
		},
	}

	assert.Equal(t, 2, snapshot.LinkCount("p-1"))
	assert.Equal(t, 1, snapshot.LinkCount("p-2"))
	assert.Equal(t, 0, snapshot.LinkCount("p-3"))
}
