package domain

// LinkID identifies a product/account relation record.
type LinkID string

// Link expresses "this account may be used for this product". At most one
// link exists per (ProductID, AccountID) pair.
type Link struct {
	ID        LinkID
	ProductID ProductID
	AccountID AccountID
}

// EnrichedAccount is an account annotated with the link that bound it to one
// product's display context. Derived on read, never persisted.
type EnrichedAccount struct {
	Account
	RelationID LinkID
}
