package jsonfile

import (
	"time"

	"github.com/bnema/ai-accounts-manager/internal/domain"
)

// Wire records mirror the web app's storage blobs field for field: camelCase
// keys, epoch-millisecond timestamps, explicit nulls for cleared countdown
// timers.

type productRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"createdAt"`
}

type accountRecord struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Status           string `json:"status"`
	CountdownStartAt *int64 `json:"countdownStartAt"`
	CountdownEndAt   *int64 `json:"countdownEndAt"`
	CreatedAt        int64  `json:"createdAt"`
}

type linkRecord struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	AccountID string `json:"accountId"`
}

func productRecordFrom(product domain.Product) productRecord {
	return productRecord{
		ID:          string(product.ID),
		Name:        product.Name,
		Description: product.Description,
		CreatedAt:   product.CreatedAt.UnixMilli(),
	}
}

func (r productRecord) toDomain() domain.Product {
	return domain.Product{
		ID:          domain.ProductID(r.ID),
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   fromMillis(r.CreatedAt),
	}
}

func accountRecordFrom(account domain.Account) accountRecord {
	return accountRecord{
		ID:               string(account.ID),
		Email:            account.Email,
		Status:           string(account.Status),
		CountdownStartAt: toMillisPtr(account.CountdownStartAt),
		CountdownEndAt:   toMillisPtr(account.CountdownEndAt),
		CreatedAt:        account.CreatedAt.UnixMilli(),
	}
}

func (r accountRecord) toDomain() domain.Account {
	return domain.Account{
		ID:               domain.AccountID(r.ID),
		Email:            r.Email,
		Status:           domain.AccountStatus(r.Status),
		CountdownStartAt: fromMillisPtr(r.CountdownStartAt),
		CountdownEndAt:   fromMillisPtr(r.CountdownEndAt),
		CreatedAt:        fromMillis(r.CreatedAt),
	}
}

func linkRecordFrom(link domain.Link) linkRecord {
	return linkRecord{
		ID:        string(link.ID),
		ProductID: string(link.ProductID),
		AccountID: string(link.AccountID),
	}
}

func (r linkRecord) toDomain() domain.Link {
	return domain.Link{
		ID:        domain.LinkID(r.ID),
		ProductID: domain.ProductID(r.ProductID),
		AccountID: domain.AccountID(r.AccountID),
	}
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func fromMillisPtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}

	t := fromMillis(*ms)
	return &t
}

func toMillisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}

	ms := t.UnixMilli()
	return &ms
}
