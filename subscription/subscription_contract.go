package subscription

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/contentvault/contentvault-contract/common"
	cst "github.com/contentvault/contentvault-contract/subscription/subscriptionconst"
)

type (
	// Token holds all token info.
	Token struct {
		// Ticker symbol
		Symbol string
		// Amount of decimals
		Decimals int
		// Storage key for circulation value
		CirculationKey string
	}

	// Account stores the token balance of a single address.
	Account struct {
		// Active balance
		Balance int
	}

	// Subscription stores the pro-subscription state of a single holder.
	Subscription struct {
		Active    bool
		ExpiresAt int
	}
)

const (
	symbol      = "VAULT"
	decimals    = 8
	circulation = "VaultSupply"

	adminKey            = "tokenAdmin"
	registryContractKey = "registryScriptHash"
	feeKey              = "subscriptionFee"
	feePoolKey          = "subscriptionPool"
	epochKey            = "currentEpoch"

	balancePrefix      = 'b'
	subscriptionPrefix = 's'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		admin        interop.Hash160
		addrRegistry interop.Hash160
		fee          int
	})

	if len(args.admin) != interop.Hash160Len {
		panic("incorrect administrator address length")
	}
	if len(args.addrRegistry) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}
	if args.fee <= 0 {
		panic(cst.ErrInvalidFee)
	}

	storage.Put(ctx, adminKey, args.admin)
	storage.Put(ctx, registryContractKey, args.addrRegistry)
	storage.Put(ctx, feeKey, args.fee)
	storage.Put(ctx, epochKey, 0)

	runtime.Log("subscription contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("subscription contract updated")
}

// Symbol is a NEP-17 standard method that returns the token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of the
// token balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the total amount
// of the token in circulation.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns the token balance of
// the specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers tokens from one
// account to another. Can be invoked only by the account owner.
//
// Produces Transfer and TransferX notifications. TransferX notification
// will have empty details field.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	return token.transfer(ctx, from, to, amount, false, nil)
}

// TransferX transfers tokens from one account to another with attached
// transfer details. Can be invoked by the administrator or by the
// registry contract, which uses it to forward content payments.
//
// Produces Transfer and TransferX notifications.
func TransferX(from, to interop.Hash160, amount int, details []byte) {
	ctx := storage.GetContext()

	caller := runtime.GetCallingScriptHash()
	if !common.FromKnownContract(ctx, caller, registryContractKey) {
		admin := storage.Get(ctx, adminKey).(interop.Hash160)
		common.CheckAdminWitness(admin)
	}

	result := token.transfer(ctx, from, to, amount, true, details)
	if !result {
		panic("can't transfer tokens")
	}

	runtime.Log("successfully transferred tokens")
}

// Mint transfers tokens to the user account from an empty account and
// increases the total supply. Can be invoked by the administrator only.
//
// Produces Mint, Transfer and TransferX notifications.
func Mint(to interop.Hash160, amount int) {
	if amount <= 0 {
		panic(cst.ErrInvalidAmount)
	}

	ctx := storage.GetContext()
	admin := storage.Get(ctx, adminKey).(interop.Hash160)
	common.CheckAdminWitness(admin)

	ok := token.transfer(ctx, nil, to, amount, true, nil)
	if !ok {
		panic("can't transfer tokens")
	}

	supply := token.getSupply(ctx)
	supply = supply + amount
	storage.Put(ctx, token.CirculationKey, supply)
	runtime.Log("tokens were minted")
	runtime.Notify("Mint", to, amount)
}

// Withdraw pays the specified amount out of the accumulated subscription
// fee pool to the given account. Can be invoked by the administrator
// only. Withdrawing more than the pool holds faults with
// ErrFeePoolExceeded.
//
// Produces Withdraw, Transfer and TransferX notifications.
func Withdraw(to interop.Hash160, amount int) {
	if amount <= 0 {
		panic(cst.ErrInvalidAmount)
	}

	ctx := storage.GetContext()
	admin := storage.Get(ctx, adminKey).(interop.Hash160)
	common.CheckAdminWitness(admin)

	pool := getFeePool(ctx)
	if pool < amount {
		panic(cst.ErrFeePoolExceeded)
	}

	storage.Put(ctx, feePoolKey, pool-amount)

	ok := token.transfer(ctx, nil, to, amount, true, nil)
	if !ok {
		panic("can't transfer tokens")
	}

	runtime.Log("fee pool withdrawal")
	runtime.Notify("Withdraw", to, amount)
}

// ActivateSubscription creates a pro subscription of the owner that
// expires after the given number of epochs. The payment must not be below
// the configured fee; it is debited from the owner's token balance and
// accumulated in the fee pool. An existing subscription is overwritten,
// not extended.
//
// Produces SubscriptionActivated, Transfer and TransferX notifications.
func ActivateSubscription(owner interop.Hash160, payment int, durationEpochs int) {
	if durationEpochs <= 0 {
		panic(cst.ErrInvalidDuration)
	}

	ctx := storage.GetContext()
	common.CheckOwnerWitness(owner)

	fee := storage.Get(ctx, feeKey).(int)
	if payment < fee {
		panic(cst.ErrInsufficientPayment)
	}

	epoch := getEpoch(ctx)
	details := common.SubscriptionFeeTransferDetails(epoch)

	ok := token.transfer(ctx, owner, nil, payment, true, details)
	if !ok {
		panic(cst.ErrInsufficientBalance)
	}

	pool := getFeePool(ctx)
	storage.Put(ctx, feePoolKey, pool+payment)

	expiresAt := epoch + durationEpochs
	key := append([]byte{subscriptionPrefix}, owner...)
	common.SetSerialized(ctx, key, Subscription{
		Active:    true,
		ExpiresAt: expiresAt,
	})

	runtime.Log("subscription activated")
	runtime.Notify("SubscriptionActivated", owner, expiresAt)
}

// IsProActive returns true if the owner has an active subscription that
// expires strictly after the given epoch. A missing record is inactive.
func IsProActive(owner interop.Hash160, epoch int) bool {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, append([]byte{subscriptionPrefix}, owner...))
	if data == nil {
		return false
	}

	sub := std.Deserialize(data.([]byte)).(Subscription)

	return sub.Active && sub.ExpiresAt > epoch
}

// SubscriptionOf returns the Subscription record of the owner. If the
// record doesn't exist, it panics with ErrSubscriptionNotFound.
func SubscriptionOf(owner interop.Hash160) Subscription {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, append([]byte{subscriptionPrefix}, owner...))
	if data == nil {
		panic(cst.ErrSubscriptionNotFound)
	}

	return std.Deserialize(data.([]byte)).(Subscription)
}

// Epoch returns the current epoch number.
func Epoch() int {
	ctx := storage.GetReadOnlyContext()
	return getEpoch(ctx)
}

// NewEpoch advances the epoch counter. Can be invoked by the
// administrator only; the counter moves forward only.
//
// Produces NewEpoch notification.
func NewEpoch(epochNum int) {
	ctx := storage.GetContext()
	admin := storage.Get(ctx, adminKey).(interop.Hash160)
	common.CheckAdminWitness(admin)

	current := getEpoch(ctx)
	if epochNum <= current {
		panic(cst.ErrInvalidEpoch)
	}

	storage.Put(ctx, epochKey, epochNum)
	runtime.Notify("NewEpoch", epochNum)
}

// Fee returns the subscription activation fee.
func Fee() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, feeKey).(int)
}

// SetFee changes the subscription activation fee. Can be invoked by the
// administrator only.
func SetFee(fee int) {
	if fee <= 0 {
		panic(cst.ErrInvalidFee)
	}

	ctx := storage.GetContext()
	admin := storage.Get(ctx, adminKey).(interop.Hash160)
	common.CheckAdminWitness(admin)

	storage.Put(ctx, feeKey, fee)
}

// FeePool returns the amount of tokens accumulated from subscription
// payments and not yet withdrawn.
func FeePool() int {
	ctx := storage.GetReadOnlyContext()
	return getFeePool(ctx)
}

// Admin returns the administrator address of the token.
func Admin() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, adminKey).(interop.Hash160)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, t.CirculationKey)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

// balanceOf gets the token balance of a specific address.
func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	acc := getAccount(ctx, holder)

	return acc.Balance
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, adminOp bool, details []byte) bool {
	amountFrom, ok := t.canTransfer(ctx, from, to, amount, adminOp)
	if !ok {
		return false
	}

	if len(from) == interop.Hash160Len {
		if amountFrom.Balance == amount {
			storage.Delete(ctx, balanceKey(from))
		} else {
			amountFrom.Balance = amountFrom.Balance - amount // neo-go#953
			common.SetSerialized(ctx, balanceKey(from), amountFrom)
		}
	}

	if len(to) == interop.Hash160Len {
		amountTo := getAccount(ctx, to)
		amountTo.Balance = amountTo.Balance + amount // neo-go#953
		common.SetSerialized(ctx, balanceKey(to), amountTo)
	}

	runtime.Notify("Transfer", from, to, amount)
	runtime.Notify("TransferX", from, to, amount, details)

	return true
}

// canTransfer returns the account state it can transfer from.
func (t Token) canTransfer(ctx storage.Context, from, to interop.Hash160, amount int, adminOp bool) (Account, bool) {
	var (
		emptyAcc = Account{}
	)

	if amount < 0 {
		return emptyAcc, false
	}

	if !adminOp {
		if len(to) != interop.Hash160Len || !isUsableAddress(from) {
			runtime.Log("bad script hashes")
			return emptyAcc, false
		}
	} else if len(from) == 0 {
		return emptyAcc, true
	}

	amountFrom := getAccount(ctx, from)
	if amountFrom.Balance < amount {
		runtime.Log("not enough tokens")
		return emptyAcc, false
	}

	// return amountFrom value back to transfer, reduces extra Get
	return amountFrom, true
}

// isUsableAddress checks if the sender is either the correct NEO address or SC address.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if common.BytesEqual(callingScriptHash, addr) {
			return true
		}
	}

	return false
}

func getAccount(ctx storage.Context, holder interop.Hash160) Account {
	data := storage.Get(ctx, balanceKey(holder))
	if data != nil {
		return std.Deserialize(data.([]byte)).(Account)
	}

	return Account{}
}

func getFeePool(ctx storage.Context) int {
	pool := storage.Get(ctx, feePoolKey)
	if pool != nil {
		return pool.(int)
	}

	return 0
}

func getEpoch(ctx storage.Context) int {
	epoch := storage.Get(ctx, epochKey)
	if epoch != nil {
		return epoch.(int)
	}

	return 0
}

func balanceKey(holder interop.Hash160) []byte {
	return append([]byte{balancePrefix}, holder...)
}
