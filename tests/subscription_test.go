package tests

import (
	"testing"

	"github.com/contentvault/contentvault-contract/common"
	"github.com/contentvault/contentvault-contract/subscription/subscriptionconst"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

func TestToken_Version(t *testing.T) {
	_, cToken := newVaultInvokers(t)
	cToken.Invoke(t, common.Version, "version")
}

func TestToken_Info(t *testing.T) {
	_, cToken := newVaultInvokers(t)

	cToken.Invoke(t, "VAULT", "symbol")
	cToken.Invoke(t, 8, "decimals")
	cToken.Invoke(t, 0, "totalSupply")
	cToken.Invoke(t, subscriptionFee, "fee")
	cToken.Invoke(t, stackitem.NewBuffer(cToken.CommitteeHash.BytesBE()), "admin")
}

func TestToken_Mint(t *testing.T) {
	_, cToken := newVaultInvokers(t)

	acc := cToken.NewAccount(t)
	cToken.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), int64(1000))

	cToken.Invoke(t, 1000, "balanceOf", acc.ScriptHash())
	cToken.Invoke(t, 1000, "totalSupply")

	t.Run("not an administrator", func(t *testing.T) {
		cToken.WithSigners(acc).InvokeFail(t, common.ErrAdminWitnessFailed,
			"mint", acc.ScriptHash(), int64(1000))
	})

	t.Run("non-positive amount", func(t *testing.T) {
		cToken.InvokeFail(t, subscriptionconst.ErrInvalidAmount, "mint", acc.ScriptHash(), int64(0))
	})
}

func TestToken_Transfer(t *testing.T) {
	_, cToken := newVaultInvokers(t)

	from := cToken.NewAccount(t)
	to := cToken.NewAccount(t)
	cToken.Invoke(t, stackitem.Null{}, "mint", from.ScriptHash(), int64(1000))

	cFrom := cToken.WithSigners(from)
	cFrom.Invoke(t, stackitem.NewBool(true), "transfer",
		from.ScriptHash(), to.ScriptHash(), int64(300), nil)

	cToken.Invoke(t, 700, "balanceOf", from.ScriptHash())
	cToken.Invoke(t, 300, "balanceOf", to.ScriptHash())

	t.Run("insufficient balance", func(t *testing.T) {
		cFrom.Invoke(t, stackitem.NewBool(false), "transfer",
			from.ScriptHash(), to.ScriptHash(), int64(10000), nil)
	})

	t.Run("missing sender witness", func(t *testing.T) {
		cToken.WithSigners(to).Invoke(t, stackitem.NewBool(false), "transfer",
			from.ScriptHash(), to.ScriptHash(), int64(100), nil)
	})
}

func TestToken_TransferX(t *testing.T) {
	_, cToken := newVaultInvokers(t)

	from := cToken.NewAccount(t)
	to := cToken.NewAccount(t)
	cToken.Invoke(t, stackitem.Null{}, "mint", from.ScriptHash(), int64(1000))

	// The administrator moves tokens without the sender witness.
	cToken.Invoke(t, stackitem.Null{}, "transferX",
		from.ScriptHash(), to.ScriptHash(), int64(400), []byte("details"))

	cToken.Invoke(t, 600, "balanceOf", from.ScriptHash())
	cToken.Invoke(t, 400, "balanceOf", to.ScriptHash())

	t.Run("not an administrator", func(t *testing.T) {
		cToken.WithSigners(from).InvokeFail(t, common.ErrAdminWitnessFailed, "transferX",
			from.ScriptHash(), to.ScriptHash(), int64(100), []byte{})
	})

	t.Run("insufficient balance", func(t *testing.T) {
		cToken.InvokeFail(t, "can't transfer tokens", "transferX",
			from.ScriptHash(), to.ScriptHash(), int64(10000), []byte{})
	})
}

func TestToken_ActivateSubscription(t *testing.T) {
	_, cToken := newVaultInvokers(t)

	acc := cToken.NewAccount(t)
	cAcc := cToken.WithSigners(acc)
	cToken.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), int64(1000))
	cToken.Invoke(t, stackitem.Null{}, "newEpoch", int64(10))

	t.Run("payment below fee", func(t *testing.T) {
		cAcc.InvokeFail(t, subscriptionconst.ErrInsufficientPayment, "activateSubscription",
			acc.ScriptHash(), int64(subscriptionFee-1), int64(30))
	})

	t.Run("non-positive duration", func(t *testing.T) {
		cAcc.InvokeFail(t, subscriptionconst.ErrInvalidDuration, "activateSubscription",
			acc.ScriptHash(), int64(150), int64(0))
	})

	t.Run("missing owner witness", func(t *testing.T) {
		cToken.InvokeFail(t, common.ErrOwnerWitnessFailed, "activateSubscription",
			acc.ScriptHash(), int64(150), int64(30))
	})

	t.Run("insufficient balance", func(t *testing.T) {
		poor := cToken.NewAccount(t)
		cToken.WithSigners(poor).InvokeFail(t, subscriptionconst.ErrInsufficientBalance,
			"activateSubscription", poor.ScriptHash(), int64(150), int64(30))
	})

	// Epoch 10 plus 30 epochs of subscription.
	cAcc.Invoke(t, stackitem.Null{}, "activateSubscription",
		acc.ScriptHash(), int64(150), int64(30))

	cToken.Invoke(t, stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(true),
		stackitem.Make(40),
	}), "subscriptionOf", acc.ScriptHash())

	cToken.Invoke(t, 850, "balanceOf", acc.ScriptHash())
	cToken.Invoke(t, 150, "feePool")

	// Active strictly before the expiration epoch.
	cToken.Invoke(t, stackitem.NewBool(true), "isProActive", acc.ScriptHash(), int64(39))
	cToken.Invoke(t, stackitem.NewBool(false), "isProActive", acc.ScriptHash(), int64(40))

	t.Run("no subscription record", func(t *testing.T) {
		stranger := cToken.NewAccount(t)
		cToken.Invoke(t, stackitem.NewBool(false), "isProActive", stranger.ScriptHash(), int64(10))
		cToken.InvokeFail(t, subscriptionconst.ErrSubscriptionNotFound, "subscriptionOf", stranger.ScriptHash())
	})

	t.Run("re-activation overwrites expiration", func(t *testing.T) {
		cAcc.Invoke(t, stackitem.Null{}, "activateSubscription",
			acc.ScriptHash(), int64(150), int64(5))

		cToken.Invoke(t, stackitem.NewStruct([]stackitem.Item{
			stackitem.Make(true),
			stackitem.Make(15),
		}), "subscriptionOf", acc.ScriptHash())
	})
}

func TestToken_Withdraw(t *testing.T) {
	_, cToken := newVaultInvokers(t)

	acc := cToken.NewAccount(t)
	cToken.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), int64(1000))
	cToken.WithSigners(acc).Invoke(t, stackitem.Null{}, "activateSubscription",
		acc.ScriptHash(), int64(150), int64(30))
	cToken.Invoke(t, 150, "feePool")

	t.Run("not an administrator", func(t *testing.T) {
		cToken.WithSigners(acc).InvokeFail(t, common.ErrAdminWitnessFailed,
			"withdraw", acc.ScriptHash(), int64(100))
	})

	t.Run("withdraw exceeds pool", func(t *testing.T) {
		cToken.InvokeFail(t, subscriptionconst.ErrFeePoolExceeded,
			"withdraw", cToken.CommitteeHash, int64(200))
	})

	cToken.Invoke(t, stackitem.Null{}, "withdraw", cToken.CommitteeHash, int64(100))
	cToken.Invoke(t, 50, "feePool")
	cToken.Invoke(t, 100, "balanceOf", cToken.CommitteeHash)
}

func TestToken_NewEpoch(t *testing.T) {
	_, cToken := newVaultInvokers(t)

	cToken.Invoke(t, 0, "epoch")

	cToken.Invoke(t, stackitem.Null{}, "newEpoch", int64(5))
	cToken.Invoke(t, 5, "epoch")

	t.Run("monotonic counter", func(t *testing.T) {
		cToken.InvokeFail(t, subscriptionconst.ErrInvalidEpoch, "newEpoch", int64(5))
		cToken.InvokeFail(t, subscriptionconst.ErrInvalidEpoch, "newEpoch", int64(3))
	})

	t.Run("not an administrator", func(t *testing.T) {
		acc := cToken.NewAccount(t)
		cToken.WithSigners(acc).InvokeFail(t, common.ErrAdminWitnessFailed, "newEpoch", int64(10))
	})
}

func TestToken_SetFee(t *testing.T) {
	_, cToken := newVaultInvokers(t)

	acc := cToken.NewAccount(t)
	cAcc := cToken.WithSigners(acc)
	cToken.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), int64(1000))

	cToken.Invoke(t, stackitem.Null{}, "setFee", int64(200))
	cToken.Invoke(t, 200, "fee")

	// The old fee is no longer enough.
	cAcc.InvokeFail(t, subscriptionconst.ErrInsufficientPayment, "activateSubscription",
		acc.ScriptHash(), int64(subscriptionFee), int64(30))

	t.Run("not an administrator", func(t *testing.T) {
		cAcc.InvokeFail(t, common.ErrAdminWitnessFailed, "setFee", int64(300))
	})

	t.Run("non-positive fee", func(t *testing.T) {
		cToken.InvokeFail(t, subscriptionconst.ErrInvalidFee, "setFee", int64(0))
	})
}
