// Command vault-cli is a thin client for the ContentVault contracts. It wires
// the rpc wrappers to a remote Neo RPC node and exposes registry and
// subscription operations as subcommands.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/contentvault/contentvault-contract/rpc/registry"
	"github.com/contentvault/contentvault-contract/rpc/subscription"
	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "Path to the NEP-6 wallet (required for state-changing commands)")
	walletPassword := flag.String("password", "", "Password of the wallet account")
	registryAddr := flag.String("registry", "", "Address of the Registry contract (LE hex)")
	tokenAddr := flag.String("token", "", "Address of the Subscription token contract (LE hex)")

	flag.Usage = usage
	flag.Parse()

	if *neoRPCEndpoint == "" {
		log.Fatal("missing Neo RPC endpoint")
	}
	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	err := run(*neoRPCEndpoint, *walletPath, *walletPassword, *registryAddr, *tokenAddr, flag.Args())
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: vault-cli -rpc <endpoint> [options] <command> [args]

Registry commands (require -registry):
  register-identity <proof-hex> <platform>
  add-content <id> <title> <description> <hash-hex> <payment>
  share-file <id> <recipient-address> <encrypted>
  get-content <id>
  verify <id> <hash-hex>
  delete-content <id>

Subscription commands (require -token):
  activate <payment> <duration-epochs>
  balance <address>
  epoch

Content IDs are accepted and printed in base58.

Options:
`)
	flag.PrintDefaults()
}

func run(endpoint, walletPath, password, registryAddr, tokenAddr string, args []string) error {
	c, err := rpcclient.New(context.Background(), endpoint, rpcclient.Options{})
	if err != nil {
		return fmt.Errorf("init RPC client: %w", err)
	}
	defer c.Close()

	cmd, args := args[0], args[1:]

	switch cmd {
	case "register-identity", "add-content", "share-file", "delete-content", "activate":
		acc, err := unlockAccount(walletPath, password)
		if err != nil {
			return err
		}
		act, err := actor.NewSimple(c, acc)
		if err != nil {
			return fmt.Errorf("init transaction sender: %w", err)
		}
		return runMutator(act, acc.ScriptHash(), registryAddr, tokenAddr, cmd, args)
	default:
		return runReader(invoker.New(c, nil), registryAddr, tokenAddr, cmd, args)
	}
}

func runMutator(act *actor.Actor, sender util.Uint160, registryAddr, tokenAddr, cmd string, args []string) error {
	switch cmd {
	case "register-identity":
		if len(args) != 2 {
			return fmt.Errorf("usage: register-identity <proof-hex> <platform>")
		}
		proof, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("decode proof: %w", err)
		}
		reg, err := registryContract(act, registryAddr)
		if err != nil {
			return err
		}
		txHash, vub, err := reg.RegisterIdentity(sender, proof, args[1])
		return await(act, txHash, vub, err)
	case "add-content":
		if len(args) != 5 {
			return fmt.Errorf("usage: add-content <id> <title> <description> <hash-hex> <payment>")
		}
		id, err := decodeContentID(args[0])
		if err != nil {
			return err
		}
		contentHash, err := util.Uint256DecodeStringLE(args[3])
		if err != nil {
			return fmt.Errorf("decode content hash: %w", err)
		}
		payment, ok := new(big.Int).SetString(args[4], 10)
		if !ok {
			return fmt.Errorf("invalid payment %q", args[4])
		}
		reg, err := registryContract(act, registryAddr)
		if err != nil {
			return err
		}
		txHash, vub, err := reg.AddContent(sender, id, args[1], args[2], contentHash, payment)
		return await(act, txHash, vub, err)
	case "share-file":
		if len(args) != 3 {
			return fmt.Errorf("usage: share-file <id> <recipient-address> <encrypted>")
		}
		id, err := decodeContentID(args[0])
		if err != nil {
			return err
		}
		recipient, err := address.StringToUint160(args[1])
		if err != nil {
			return fmt.Errorf("decode recipient address: %w", err)
		}
		reg, err := registryContract(act, registryAddr)
		if err != nil {
			return err
		}
		txHash, vub, err := reg.ShareFile(sender, id, recipient, args[2] == "true")
		return await(act, txHash, vub, err)
	case "delete-content":
		if len(args) != 1 {
			return fmt.Errorf("usage: delete-content <id>")
		}
		id, err := decodeContentID(args[0])
		if err != nil {
			return err
		}
		reg, err := registryContract(act, registryAddr)
		if err != nil {
			return err
		}
		txHash, vub, err := reg.DeleteContent(id)
		return await(act, txHash, vub, err)
	case "activate":
		if len(args) != 2 {
			return fmt.Errorf("usage: activate <payment> <duration-epochs>")
		}
		payment, ok := new(big.Int).SetString(args[0], 10)
		if !ok {
			return fmt.Errorf("invalid payment %q", args[0])
		}
		duration, ok := new(big.Int).SetString(args[1], 10)
		if !ok {
			return fmt.Errorf("invalid duration %q", args[1])
		}
		token, err := tokenContract(act, tokenAddr)
		if err != nil {
			return err
		}
		txHash, vub, err := token.ActivateSubscription(sender, payment, duration)
		return await(act, txHash, vub, err)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func runReader(inv *invoker.Invoker, registryAddr, tokenAddr, cmd string, args []string) error {
	switch cmd {
	case "get-content":
		if len(args) != 1 {
			return fmt.Errorf("usage: get-content <id>")
		}
		id, err := decodeContentID(args[0])
		if err != nil {
			return err
		}
		reg, err := registryReader(inv, registryAddr)
		if err != nil {
			return err
		}
		cnt, err := reg.GetContent(id)
		if err != nil {
			return fmt.Errorf("get content: %w", err)
		}
		fmt.Printf("id: %s\ntitle: %s\ndescription: %s\nowner: %s\nhash: %s\n",
			base58.Encode(cnt.ID), cnt.Title, cnt.Description,
			address.Uint160ToString(cnt.Owner), cnt.Hash.StringLE())
		return nil
	case "verify":
		if len(args) != 2 {
			return fmt.Errorf("usage: verify <id> <hash-hex>")
		}
		id, err := decodeContentID(args[0])
		if err != nil {
			return err
		}
		contentHash, err := util.Uint256DecodeStringLE(args[1])
		if err != nil {
			return fmt.Errorf("decode content hash: %w", err)
		}
		reg, err := registryReader(inv, registryAddr)
		if err != nil {
			return err
		}
		ok, err := reg.VerifyBinary(id, contentHash)
		if err != nil {
			return fmt.Errorf("verify binary: %w", err)
		}
		fmt.Println(ok)
		return nil
	case "balance":
		if len(args) != 1 {
			return fmt.Errorf("usage: balance <address>")
		}
		acc, err := address.StringToUint160(args[0])
		if err != nil {
			return fmt.Errorf("decode address: %w", err)
		}
		token, err := tokenReader(inv, tokenAddr)
		if err != nil {
			return err
		}
		balance, err := token.BalanceOf(acc)
		if err != nil {
			return fmt.Errorf("get balance: %w", err)
		}
		fmt.Println(balance)
		return nil
	case "epoch":
		token, err := tokenReader(inv, tokenAddr)
		if err != nil {
			return err
		}
		epoch, err := token.Epoch()
		if err != nil {
			return fmt.Errorf("get epoch: %w", err)
		}
		fmt.Println(epoch)
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func registryContract(act *actor.Actor, addr string) (*registry.Contract, error) {
	h, err := contractHash(addr, "registry")
	if err != nil {
		return nil, err
	}
	return registry.New(act, h), nil
}

func registryReader(inv *invoker.Invoker, addr string) (*registry.ContractReader, error) {
	h, err := contractHash(addr, "registry")
	if err != nil {
		return nil, err
	}
	return registry.NewReader(inv, h), nil
}

func tokenContract(act *actor.Actor, addr string) (*subscription.Contract, error) {
	h, err := contractHash(addr, "token")
	if err != nil {
		return nil, err
	}
	return subscription.New(act, h), nil
}

func tokenReader(inv *invoker.Invoker, addr string) (*subscription.ContractReader, error) {
	h, err := contractHash(addr, "token")
	if err != nil {
		return nil, err
	}
	return subscription.NewReader(inv, h), nil
}

func contractHash(addr, name string) (util.Uint160, error) {
	if addr == "" {
		return util.Uint160{}, fmt.Errorf("missing %s contract address", name)
	}
	h, err := util.Uint160DecodeStringLE(addr)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("decode %s contract address: %w", name, err)
	}
	return h, nil
}

func unlockAccount(walletPath, password string) (*wallet.Account, error) {
	if walletPath == "" {
		return nil, fmt.Errorf("missing wallet path")
	}
	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}
	acc := w.GetAccount(w.GetChangeAddress())
	if acc == nil {
		return nil, fmt.Errorf("no suitable account in wallet")
	}
	err = acc.Decrypt(password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("unlock account: %w", err)
	}
	return acc, nil
}

// decodeContentID accepts a base58-encoded 32-byte content identifier.
func decodeContentID(s string) ([]byte, error) {
	id, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decode content ID: %w", err)
	}
	if len(id) != util.Uint256Size {
		return nil, fmt.Errorf("invalid content ID length %d", len(id))
	}
	return id, nil
}

// await sends the transaction described by the triple returned from a
// contract mutator and blocks until it is accepted to the chain.
func await(act *actor.Actor, txHash util.Uint256, vub uint32, err error) error {
	if err != nil {
		return fmt.Errorf("send transaction: %w", err)
	}
	log.Printf("transaction %s sent, waiting for acceptance (vub %d)...", txHash.StringLE(), vub)
	_, err = act.Wait(txHash, vub, nil)
	if err != nil {
		return fmt.Errorf("wait for transaction %s: %w", txHash.StringLE(), err)
	}
	log.Println("transaction accepted")
	return nil
}
