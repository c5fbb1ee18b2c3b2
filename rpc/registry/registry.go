// Package registry contains RPC wrappers for the ContentVault Registry
// contract.
package registry

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// Identity is a contract-specific registry.Identity type used by its methods.
type Identity struct {
	Owner    util.Uint160
	Proof    []byte
	Platform string
}

// Content is a contract-specific registry.Content type used by its methods.
type Content struct {
	ID          []byte
	Title       string
	Description string
	Owner       util.Uint160
	Hash        util.Uint256
}

// FileShare is a contract-specific registry.FileShare type used by its methods.
type FileShare struct {
	ID        []byte
	Owner     util.Uint160
	Recipient util.Uint160
	Encrypted bool
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// GetContent invokes `getContent` method of contract.
func (c *ContractReader) GetContent(id []byte) (*Content, error) {
	return itemToContent(unwrap.Item(c.invoker.Call(c.hash, "getContent", id)))
}

// GetIdentity invokes `getIdentity` method of contract.
func (c *ContractReader) GetIdentity(owner util.Uint160) (*Identity, error) {
	return itemToIdentity(unwrap.Item(c.invoker.Call(c.hash, "getIdentity", owner)))
}

// GetFileShare invokes `getFileShare` method of contract.
func (c *ContractReader) GetFileShare(id []byte) (*FileShare, error) {
	return itemToFileShare(unwrap.Item(c.invoker.Call(c.hash, "getFileShare", id)))
}

// VerifyBinary invokes `verifyBinary` method of contract.
func (c *ContractReader) VerifyBinary(id []byte, hash util.Uint256) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "verifyBinary", id, hash))
}

// Contents invokes `contents` method of contract.
func (c *ContractReader) Contents() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "contents"))
}

// ContentsExpanded is similar to Contents (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) ContentsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "contents", _numOfIteratorItems))
}

// SharesOf invokes `sharesOf` method of contract.
func (c *ContractReader) SharesOf(owner util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "sharesOf", owner))
}

// SharesOfExpanded is similar to SharesOf (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators.
func (c *ContractReader) SharesOfExpanded(owner util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "sharesOf", _numOfIteratorItems, owner))
}

// Admin invokes `admin` method of contract.
func (c *ContractReader) Admin() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "admin"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// RegisterIdentity creates a transaction invoking `registerIdentity` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterIdentity(owner util.Uint160, proof []byte, platform string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerIdentity", owner, proof, platform)
}

// RegisterIdentityTransaction creates a transaction invoking `registerIdentity` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterIdentityTransaction(owner util.Uint160, proof []byte, platform string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerIdentity", owner, proof, platform)
}

// RegisterIdentityUnsigned creates a transaction invoking `registerIdentity` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterIdentityUnsigned(owner util.Uint160, proof []byte, platform string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerIdentity", nil, owner, proof, platform)
}

// AddContent creates a transaction invoking `addContent` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddContent(owner util.Uint160, id []byte, title string, description string, hash util.Uint256, payment *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addContent", owner, id, title, description, hash, payment)
}

// AddContentTransaction creates a transaction invoking `addContent` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddContentTransaction(owner util.Uint160, id []byte, title string, description string, hash util.Uint256, payment *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addContent", owner, id, title, description, hash, payment)
}

// AddContentUnsigned creates a transaction invoking `addContent` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
func (c *Contract) AddContentUnsigned(owner util.Uint160, id []byte, title string, description string, hash util.Uint256, payment *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addContent", nil, owner, id, title, description, hash, payment)
}

// ShareFile creates a transaction invoking `shareFile` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ShareFile(owner util.Uint160, id []byte, recipient util.Uint160, encrypted bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "shareFile", owner, id, recipient, encrypted)
}

// ShareFileTransaction creates a transaction invoking `shareFile` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ShareFileTransaction(owner util.Uint160, id []byte, recipient util.Uint160, encrypted bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "shareFile", owner, id, recipient, encrypted)
}

// ShareFileUnsigned creates a transaction invoking `shareFile` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
func (c *Contract) ShareFileUnsigned(owner util.Uint160, id []byte, recipient util.Uint160, encrypted bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "shareFile", nil, owner, id, recipient, encrypted)
}

// DeleteContent creates a transaction invoking `deleteContent` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DeleteContent(id []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deleteContent", id)
}

// DeleteContentTransaction creates a transaction invoking `deleteContent` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DeleteContentTransaction(id []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deleteContent", id)
}

// DeleteContentUnsigned creates a transaction invoking `deleteContent` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
func (c *Contract) DeleteContentUnsigned(id []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deleteContent", nil, id)
}

func itemToContent(item stackitem.Item, err error) (*Content, error) {
	if err != nil {
		return nil, err
	}
	res := new(Content)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Content from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Content) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.ID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Title, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Title: %w", err)
	}

	index++
	res.Description, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	index++
	res.Owner, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.Hash, err = itemToUint256(arr[index])
	if err != nil {
		return fmt.Errorf("field Hash: %w", err)
	}

	return nil
}

func itemToIdentity(item stackitem.Item, err error) (*Identity, error) {
	if err != nil {
		return nil, err
	}
	res := new(Identity)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Identity from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Identity) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Owner, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.Proof, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Proof: %w", err)
	}

	index++
	res.Platform, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Platform: %w", err)
	}

	return nil
}

func itemToFileShare(item stackitem.Item, err error) (*FileShare, error) {
	if err != nil {
		return nil, err
	}
	res := new(FileShare)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of FileShare from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *FileShare) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.ID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Owner, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.Recipient, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Recipient: %w", err)
	}

	index++
	res.Encrypted, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Encrypted: %w", err)
	}

	return nil
}

func itemToString(item stackitem.Item) (string, error) {
	b, err := item.TryBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.New("not a UTF-8 string")
	}
	return string(b), nil
}

func itemToUint160(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	return util.Uint160DecodeBytesBE(b)
}

func itemToUint256(item stackitem.Item) (util.Uint256, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint256{}, err
	}
	return util.Uint256DecodeBytesBE(b)
}
