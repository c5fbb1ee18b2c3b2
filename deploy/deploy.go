// Package deploy provides ContentVault contract deployment routine.
package deploy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for ContentVault contract deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to the
	// blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// TokenPrm groups deployment parameters of the Subscription token contract.
type TokenPrm struct {
	Common CommonDeployPrm

	// Administrator of the token allowed to mint, withdraw and tick epochs.
	Admin util.Uint160

	// Minimal subscription activation payment.
	SubscriptionFee int64
}

// RegistryPrm groups deployment parameters of the Registry contract.
type RegistryPrm struct {
	Common CommonDeployPrm

	// Administrator of the registry allowed to remove any content.
	Admin util.Uint160
}

// Prm groups all parameters of the ContentVault deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	LocalAccount *wallet.Account

	Token    TokenPrm
	Registry RegistryPrm
}

// Contracts groups addresses of the deployed ContentVault contracts.
type Contracts struct {
	Token    util.Uint160
	Registry util.Uint160
}

const deployPollInterval = time.Second

// Deploy deploys ContentVault contracts to the Neo network represented by
// given Prm.Blockchain. The Subscription token contract goes first, the
// Registry contract follows it; both contract addresses are precalculated
// from the sender and mutually wired through deployment arguments.
// Contracts that are already on the chain are left untouched.
//
// Deploy aborts only by context or when a fatal error occurs.
func Deploy(ctx context.Context, prm Prm) (Contracts, error) {
	var res Contracts

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return res, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	sender := prm.LocalAccount.ScriptHash()
	res.Token = state.CreateContractHash(sender, prm.Token.Common.NEF.Checksum, prm.Token.Common.Manifest.Name)
	res.Registry = state.CreateContractHash(sender, prm.Registry.Common.NEF.Checksum, prm.Registry.Common.Manifest.Name)

	prm.Logger.Info("deploying Subscription token contract...",
		zap.Stringer("address", res.Token))

	err = syncContract(ctx, prm.Logger, prm.Blockchain, act, res.Token, prm.Token.Common,
		[]any{prm.Token.Admin, res.Registry, prm.Token.SubscriptionFee})
	if err != nil {
		return res, fmt.Errorf("deploy Subscription token contract: %w", err)
	}

	prm.Logger.Info("deploying Registry contract...",
		zap.Stringer("address", res.Registry))

	err = syncContract(ctx, prm.Logger, prm.Blockchain, act, res.Registry, prm.Registry.Common,
		[]any{prm.Registry.Admin, res.Token})
	if err != nil {
		return res, fmt.Errorf("deploy Registry contract: %w", err)
	}

	return res, nil
}

// syncContract deploys the contract if it is not on the chain yet and waits
// until its state becomes available.
func syncContract(ctx context.Context, l *zap.Logger, b Blockchain, act *actor.Actor, addr util.Uint160, prm CommonDeployPrm, deployArgs []any) error {
	alreadyDeployed, err := isDeployed(b, addr)
	if err != nil {
		return err
	}
	if alreadyDeployed {
		l.Info("contract is already on the chain, skip deployment", zap.Stringer("address", addr))
		return nil
	}

	txHash, vub, err := management.New(act).Deploy(&prm.NEF, &prm.Manifest, deployArgs)
	if err != nil {
		return fmt.Errorf("send contract deployment transaction: %w", err)
	}

	l.Info("contract deployment transaction sent, waiting for persistence...",
		zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for contract deployment: %w", ctx.Err())
		case <-time.After(deployPollInterval):
		}

		alreadyDeployed, err = isDeployed(b, addr)
		if err != nil {
			return err
		}
		if alreadyDeployed {
			return nil
		}

		height, err := b.GetBlockCount()
		if err != nil {
			return fmt.Errorf("get chain height: %w", err)
		}
		if height > vub {
			return fmt.Errorf("contract deployment transaction %s expired at height %d", txHash, vub)
		}
	}
}

func isDeployed(b Blockchain, addr util.Uint160) (bool, error) {
	_, err := b.GetContractStateByHash(addr)
	if err == nil {
		return true, nil
	}
	if strings.Contains(err.Error(), "Unknown contract") {
		return false, nil
	}
	return false, fmt.Errorf("get contract state by address: %w", err)
}
