package query

import (
	"fmt"

	"github.com/QuentinI/iroha-go-sdk/pkg/data"
)

// FindDomainByIDQuery looks up a single domain.
type FindDomainByIDQuery struct {
	ID data.DomainID
}

// FindDomainByID builds the lookup from a domain name.
func FindDomainByID(name string) (FindDomainByIDQuery, error) {
	id, err := data.NewDomainID(name)
	if err != nil {
		return FindDomainByIDQuery{}, err
	}
	return FindDomainByIDQuery{ID: id}, nil
}

// Kind returns the wire tag of the query.
func (q FindDomainByIDQuery) Kind() string { return "FindDomainById" }

// Body returns the payload placed under the wire tag.
func (q FindDomainByIDQuery) Body() any { return map[string]any{"id": q.ID} }

// Validate checks the query's operands.
func (q FindDomainByIDQuery) Validate() error {
	if q.ID.IsZero() {
		return fmt.Errorf("find domain requires an ID")
	}
	return nil
}

// FindAccountByIDQuery looks up a single account.
type FindAccountByIDQuery struct {
	ID data.AccountID
}

// FindAccountByID builds the lookup from the "name@domain" form.
func FindAccountByID(accountID string) (FindAccountByIDQuery, error) {
	id, err := data.ParseAccountID(accountID)
	if err != nil {
		return FindAccountByIDQuery{}, err
	}
	return FindAccountByIDQuery{ID: id}, nil
}

// Kind returns the wire tag of the query.
func (q FindAccountByIDQuery) Kind() string { return "FindAccountById" }

// Body returns the payload placed under the wire tag.
func (q FindAccountByIDQuery) Body() any { return map[string]any{"id": q.ID} }

// Validate checks the query's operands.
func (q FindAccountByIDQuery) Validate() error {
	if q.ID.IsZero() {
		return fmt.Errorf("find account requires an ID")
	}
	return nil
}

// FindAssetByIDQuery looks up a single asset.
type FindAssetByIDQuery struct {
	ID data.AssetID
}

// FindAssetByID builds the lookup from either textual asset ID form.
func FindAssetByID(assetID string) (FindAssetByIDQuery, error) {
	id, err := data.ParseAssetID(assetID)
	if err != nil {
		return FindAssetByIDQuery{}, err
	}
	return FindAssetByIDQuery{ID: id}, nil
}

// Kind returns the wire tag of the query.
func (q FindAssetByIDQuery) Kind() string { return "FindAssetById" }

// Body returns the payload placed under the wire tag.
func (q FindAssetByIDQuery) Body() any { return map[string]any{"id": q.ID} }

// Validate checks the query's operands.
func (q FindAssetByIDQuery) Validate() error {
	if q.ID.IsZero() {
		return fmt.Errorf("find asset requires an ID")
	}
	return nil
}

// FindAllDomainsQuery lists every domain visible to the requester.
type FindAllDomainsQuery struct{}

// Kind returns the wire tag of the query.
func (q FindAllDomainsQuery) Kind() string { return "FindAllDomains" }

// Body returns the payload placed under the wire tag.
func (q FindAllDomainsQuery) Body() any { return map[string]any{} }

// Validate checks the query's operands.
func (q FindAllDomainsQuery) Validate() error { return nil }

// FindAccountAssetsQuery lists the assets held by an account.
type FindAccountAssetsQuery struct {
	Account data.AccountID
}

// FindAccountAssets builds the listing from the "name@domain" form.
func FindAccountAssets(accountID string) (FindAccountAssetsQuery, error) {
	id, err := data.ParseAccountID(accountID)
	if err != nil {
		return FindAccountAssetsQuery{}, err
	}
	return FindAccountAssetsQuery{Account: id}, nil
}

// Kind returns the wire tag of the query.
func (q FindAccountAssetsQuery) Kind() string { return "FindAccountAssets" }

// Body returns the payload placed under the wire tag.
func (q FindAccountAssetsQuery) Body() any { return map[string]any{"account_id": q.Account} }

// Validate checks the query's operands.
func (q FindAccountAssetsQuery) Validate() error {
	if q.Account.IsZero() {
		return fmt.Errorf("find account assets requires an account")
	}
	return nil
}
