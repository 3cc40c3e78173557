package client

import (
	"context"

	"github.com/QuentinI/iroha-go-sdk/pkg/crypto"
	"github.com/QuentinI/iroha-go-sdk/pkg/data"
	"github.com/QuentinI/iroha-go-sdk/pkg/events"
	"github.com/QuentinI/iroha-go-sdk/pkg/isi"
)

// RegisterDomain submits a domain registration and returns the transaction
// hash.
func (c *Client) RegisterDomain(ctx context.Context, name string) (crypto.Hash, error) {
	register, err := isi.RegisterDomain(name)
	if err != nil {
		return crypto.Hash{}, err
	}
	return c.SubmitInstructions(ctx, register)
}

// RegisterDomainBlocking registers a domain and waits for commitment.
func (c *Client) RegisterDomainBlocking(
	ctx context.Context,
	name string,
) (events.PipelineEvent, error) {
	register, err := isi.RegisterDomain(name)
	if err != nil {
		return events.PipelineEvent{}, err
	}
	return c.SubmitInstructionsBlocking(ctx, register)
}

// RegisterAccount submits an account registration. When no signatories are
// given the client's own public key is used, matching the common bootstrap
// flow of registering sub-accounts controlled by the same operator.
func (c *Client) RegisterAccount(
	ctx context.Context,
	accountID string,
	signatories ...crypto.PublicKey,
) (crypto.Hash, error) {
	if len(signatories) == 0 {
		signatories = []crypto.PublicKey{c.keyPair.PublicKey()}
	}
	register, err := isi.RegisterAccount(accountID, signatories...)
	if err != nil {
		return crypto.Hash{}, err
	}
	return c.SubmitInstructions(ctx, register)
}

// RegisterAccountBlocking registers an account and waits for commitment.
func (c *Client) RegisterAccountBlocking(
	ctx context.Context,
	accountID string,
	signatories ...crypto.PublicKey,
) (events.PipelineEvent, error) {
	if len(signatories) == 0 {
		signatories = []crypto.PublicKey{c.keyPair.PublicKey()}
	}
	register, err := isi.RegisterAccount(accountID, signatories...)
	if err != nil {
		return events.PipelineEvent{}, err
	}
	return c.SubmitInstructionsBlocking(ctx, register)
}

// RegisterAssetDefinition submits an asset definition registration.
func (c *Client) RegisterAssetDefinition(
	ctx context.Context,
	definitionID string,
	valueType data.AssetValueType,
	mintable data.Mintable,
) (crypto.Hash, error) {
	register, err := isi.RegisterAssetDefinition(definitionID, valueType, mintable)
	if err != nil {
		return crypto.Hash{}, err
	}

	hash, err := c.SubmitInstructions(ctx, register)
	if err != nil {
		return crypto.Hash{}, err
	}
	c.rememberDefinition(register.AssetDefinition.ID, register.AssetDefinition.EffectiveMintable())
	return hash, nil
}

// RegisterAssetDefinitionBlocking registers an asset definition and waits
// for commitment.
func (c *Client) RegisterAssetDefinitionBlocking(
	ctx context.Context,
	definitionID string,
	valueType data.AssetValueType,
	mintable data.Mintable,
) (events.PipelineEvent, error) {
	hash, err := c.RegisterAssetDefinition(ctx, definitionID, valueType, mintable)
	if err != nil {
		return events.PipelineEvent{}, err
	}
	return c.WaitForTransaction(ctx, hash)
}

// MintAsset submits a quantity mint. Mints against definitions this client
// knows to be unmintable fail before submission.
func (c *Client) MintAsset(
	ctx context.Context,
	amount uint32,
	assetID string,
) (crypto.Hash, error) {
	mint, err := isi.MintQuantity(amount, assetID)
	if err != nil {
		return crypto.Hash{}, err
	}
	if err := c.checkMintAllowed(mint.Destination.Definition); err != nil {
		return crypto.Hash{}, err
	}

	hash, err := c.SubmitInstructions(ctx, mint)
	if err != nil {
		return crypto.Hash{}, err
	}
	c.recordMint(mint.Destination.Definition)
	return hash, nil
}

// MintAssetBlocking mints and waits for commitment.
func (c *Client) MintAssetBlocking(
	ctx context.Context,
	amount uint32,
	assetID string,
) (events.PipelineEvent, error) {
	hash, err := c.MintAsset(ctx, amount, assetID)
	if err != nil {
		return events.PipelineEvent{}, err
	}
	return c.WaitForTransaction(ctx, hash)
}

// BurnAsset submits a quantity burn.
func (c *Client) BurnAsset(
	ctx context.Context,
	amount uint32,
	assetID string,
) (crypto.Hash, error) {
	burn, err := isi.BurnQuantity(amount, assetID)
	if err != nil {
		return crypto.Hash{}, err
	}
	return c.SubmitInstructions(ctx, burn)
}

// BurnAssetBlocking burns and waits for commitment.
func (c *Client) BurnAssetBlocking(
	ctx context.Context,
	amount uint32,
	assetID string,
) (events.PipelineEvent, error) {
	hash, err := c.BurnAsset(ctx, amount, assetID)
	if err != nil {
		return events.PipelineEvent{}, err
	}
	return c.WaitForTransaction(ctx, hash)
}

// TransferAsset submits a quantity transfer to another account.
func (c *Client) TransferAsset(
	ctx context.Context,
	amount uint32,
	sourceAssetID string,
	destinationAccountID string,
) (crypto.Hash, error) {
	transfer, err := isi.TransferQuantity(amount, sourceAssetID, destinationAccountID)
	if err != nil {
		return crypto.Hash{}, err
	}
	return c.SubmitInstructions(ctx, transfer)
}

// TransferAssetBlocking transfers and waits for commitment.
func (c *Client) TransferAssetBlocking(
	ctx context.Context,
	amount uint32,
	sourceAssetID string,
	destinationAccountID string,
) (events.PipelineEvent, error) {
	hash, err := c.TransferAsset(ctx, amount, sourceAssetID, destinationAccountID)
	if err != nil {
		return events.PipelineEvent{}, err
	}
	return c.WaitForTransaction(ctx, hash)
}

// SetAccountKeyValue writes a metadata entry on an account.
func (c *Client) SetAccountKeyValue(
	ctx context.Context,
	accountID, key string,
	value any,
) (crypto.Hash, error) {
	setKV, err := isi.SetAccountKeyValue(accountID, key, value)
	if err != nil {
		return crypto.Hash{}, err
	}
	return c.SubmitInstructions(ctx, setKV)
}

// SetAccountKeyValueBlocking writes an account metadata entry and waits for
// commitment.
func (c *Client) SetAccountKeyValueBlocking(
	ctx context.Context,
	accountID, key string,
	value any,
) (events.PipelineEvent, error) {
	hash, err := c.SetAccountKeyValue(ctx, accountID, key, value)
	if err != nil {
		return events.PipelineEvent{}, err
	}
	return c.WaitForTransaction(ctx, hash)
}

// SetAssetKeyValue writes a metadata entry on a store asset.
func (c *Client) SetAssetKeyValue(
	ctx context.Context,
	assetID, key string,
	value any,
) (crypto.Hash, error) {
	setKV, err := isi.SetAssetKeyValue(assetID, key, value)
	if err != nil {
		return crypto.Hash{}, err
	}
	return c.SubmitInstructions(ctx, setKV)
}

// SetAssetKeyValueBlocking writes a store asset metadata entry and waits for
// commitment.
func (c *Client) SetAssetKeyValueBlocking(
	ctx context.Context,
	assetID, key string,
	value any,
) (events.PipelineEvent, error) {
	hash, err := c.SetAssetKeyValue(ctx, assetID, key, value)
	if err != nil {
		return events.PipelineEvent{}, err
	}
	return c.WaitForTransaction(ctx, hash)
}
