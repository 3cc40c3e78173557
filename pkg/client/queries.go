package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/QuentinI/iroha-go-sdk/pkg/query"
)

// runQuery signs a query with the client's key pair, submits it through
// torii, and decodes the result into out.
func (c *Client) runQuery(ctx context.Context, q query.Query, out any) error {
	request, err := query.Sign(q, c.account, c.keyPair)
	if err != nil {
		return err
	}

	raw, err := c.torii.SubmitQuery(ctx, request)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", q.Kind(), err)
	}
	return nil
}

// FindDomainByID looks up a domain by its textual name.
func (c *Client) FindDomainByID(ctx context.Context, name string) (query.Domain, error) {
	find, err := query.FindDomainByID(name)
	if err != nil {
		return query.Domain{}, err
	}

	var domain query.Domain
	if err := c.runQuery(ctx, find, &domain); err != nil {
		return query.Domain{}, err
	}
	return domain, nil
}

// FindAccountByID looks up an account by its "name@domain" form.
func (c *Client) FindAccountByID(ctx context.Context, accountID string) (query.Account, error) {
	find, err := query.FindAccountByID(accountID)
	if err != nil {
		return query.Account{}, err
	}

	var account query.Account
	if err := c.runQuery(ctx, find, &account); err != nil {
		return query.Account{}, err
	}
	return account, nil
}

// FindAssetByID looks up an asset by its textual form, e.g.
// "rose##alice@wonderland".
func (c *Client) FindAssetByID(ctx context.Context, assetID string) (query.Asset, error) {
	find, err := query.FindAssetByID(assetID)
	if err != nil {
		return query.Asset{}, err
	}

	var asset query.Asset
	if err := c.runQuery(ctx, find, &asset); err != nil {
		return query.Asset{}, err
	}
	return asset, nil
}

// FindAllDomains lists every domain registered on the peer.
func (c *Client) FindAllDomains(ctx context.Context) ([]query.Domain, error) {
	var domains []query.Domain
	if err := c.runQuery(ctx, query.FindAllDomainsQuery{}, &domains); err != nil {
		return nil, err
	}
	return domains, nil
}

// FindAccountAssets lists the assets held by an account.
func (c *Client) FindAccountAssets(ctx context.Context, accountID string) ([]query.Asset, error) {
	find, err := query.FindAccountAssets(accountID)
	if err != nil {
		return nil, err
	}

	var assets []query.Asset
	if err := c.runQuery(ctx, find, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}
