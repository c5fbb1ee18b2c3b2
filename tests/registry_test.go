package tests

import (
	"testing"

	"github.com/contentvault/contentvault-contract/common"
	"github.com/contentvault/contentvault-contract/registry/registryconst"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Version(t *testing.T) {
	cReg, _ := newVaultInvokers(t)
	cReg.Invoke(t, common.Version, "version")
}

func TestRegistry_RegisterIdentity(t *testing.T) {
	cReg, _ := newVaultInvokers(t)

	acc := cReg.NewAccount(t)
	cAcc := cReg.WithSigners(acc)

	proof := randomBytes(32)
	cAcc.Invoke(t, stackitem.Null{}, "registerIdentity", acc.ScriptHash(), proof, "github")

	cReg.Invoke(t, stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(acc.ScriptHash().BytesBE()),
		stackitem.Make(proof),
		stackitem.Make("github"),
	}), "getIdentity", acc.ScriptHash())

	t.Run("double registration", func(t *testing.T) {
		cAcc.InvokeFail(t, registryconst.ErrIdentityExists, "registerIdentity",
			acc.ScriptHash(), randomBytes(32), "twitter")
	})

	t.Run("missing owner witness", func(t *testing.T) {
		stranger := cReg.NewAccount(t)
		cReg.WithSigners(stranger).InvokeFail(t, common.ErrOwnerWitnessFailed, "registerIdentity",
			acc.ScriptHash(), randomBytes(32), "github")
	})

	t.Run("empty proof", func(t *testing.T) {
		stranger := cReg.NewAccount(t)
		cReg.WithSigners(stranger).InvokeFail(t, registryconst.ErrInvalidProof, "registerIdentity",
			stranger.ScriptHash(), []byte{}, "github")
	})

	t.Run("unknown identity", func(t *testing.T) {
		stranger := cReg.NewAccount(t)
		cReg.InvokeFail(t, registryconst.ErrIdentityNotFound, "getIdentity", stranger.ScriptHash())
	})
}

func TestRegistry_AddContent(t *testing.T) {
	cReg, cToken := newVaultInvokers(t)

	acc := cReg.NewAccount(t)
	cAcc := cReg.WithSigners(acc)
	registerIdentity(t, cReg, acc)

	id := randomBytes(32)
	hash := randomBytes(32)
	cAcc.Invoke(t, stackitem.Null{}, "addContent",
		acc.ScriptHash(), id, "report", "quarterly report", hash, int64(0))

	cReg.Invoke(t, stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(id),
		stackitem.Make("report"),
		stackitem.Make("quarterly report"),
		stackitem.Make(acc.ScriptHash().BytesBE()),
		stackitem.Make(hash),
	}), "getContent", id)

	t.Run("occupied ID", func(t *testing.T) {
		cAcc.InvokeFail(t, registryconst.ErrContentExists, "addContent",
			acc.ScriptHash(), id, "other", "", randomBytes(32), int64(0))
	})

	t.Run("unregistered owner", func(t *testing.T) {
		stranger := cReg.NewAccount(t)
		cReg.WithSigners(stranger).InvokeFail(t, registryconst.ErrNotAuthenticated, "addContent",
			stranger.ScriptHash(), randomBytes(32), "report", "", randomBytes(32), int64(0))
	})

	t.Run("invalid content ID", func(t *testing.T) {
		cAcc.InvokeFail(t, registryconst.ErrInvalidContentID, "addContent",
			acc.ScriptHash(), randomBytes(10), "report", "", randomBytes(32), int64(0))
	})

	t.Run("payment without balance", func(t *testing.T) {
		cAcc.InvokeFail(t, "can't transfer tokens", "addContent",
			acc.ScriptHash(), randomBytes(32), "report", "", randomBytes(32), int64(50))
	})

	t.Run("payment forwarded to administrator", func(t *testing.T) {
		cToken.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), int64(200))

		cAcc.Invoke(t, stackitem.Null{}, "addContent",
			acc.ScriptHash(), randomBytes(32), "paid report", "", randomBytes(32), int64(50))

		cToken.Invoke(t, 150, "balanceOf", acc.ScriptHash())
		cToken.Invoke(t, 50, "balanceOf", cToken.CommitteeHash)
	})
}

func TestRegistry_ShareFile(t *testing.T) {
	cReg, _ := newVaultInvokers(t)

	acc := cReg.NewAccount(t)
	recipient := cReg.NewAccount(t)
	cAcc := cReg.WithSigners(acc)
	registerIdentity(t, cReg, acc)

	id := randomBytes(32)
	cAcc.Invoke(t, stackitem.Null{}, "shareFile",
		acc.ScriptHash(), id, recipient.ScriptHash(), true)

	cReg.Invoke(t, stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(id),
		stackitem.Make(acc.ScriptHash().BytesBE()),
		stackitem.Make(recipient.ScriptHash().BytesBE()),
		stackitem.Make(true),
	}), "getFileShare", id)

	t.Run("occupied ID", func(t *testing.T) {
		cAcc.InvokeFail(t, registryconst.ErrShareExists, "shareFile",
			acc.ScriptHash(), id, recipient.ScriptHash(), false)
	})

	t.Run("unregistered owner", func(t *testing.T) {
		stranger := cReg.NewAccount(t)
		cReg.WithSigners(stranger).InvokeFail(t, registryconst.ErrNotAuthenticated, "shareFile",
			stranger.ScriptHash(), randomBytes(32), recipient.ScriptHash(), false)
	})

	t.Run("unknown share", func(t *testing.T) {
		cReg.InvokeFail(t, registryconst.ErrShareNotFound, "getFileShare", randomBytes(32))
	})

	t.Run("shares index", func(t *testing.T) {
		id2 := randomBytes(32)
		cAcc.Invoke(t, stackitem.Null{}, "shareFile",
			acc.ScriptHash(), id2, recipient.ScriptHash(), false)

		s, err := cReg.TestInvoke(t, "sharesOf", acc.ScriptHash())
		require.NoError(t, err)

		iter := s.Pop().Value().(*storage.Iterator)
		ids := iteratorToArray(iter)
		require.Len(t, ids, 2)
		require.Contains(t, ids, stackitem.Make(id))
		require.Contains(t, ids, stackitem.Make(id2))
	})
}

func TestRegistry_VerifyBinary(t *testing.T) {
	cReg, _ := newVaultInvokers(t)

	acc := cReg.NewAccount(t)
	cAcc := cReg.WithSigners(acc)
	registerIdentity(t, cReg, acc)

	id := randomBytes(32)
	hash := randomBytes(32)
	cAcc.Invoke(t, stackitem.Null{}, "addContent",
		acc.ScriptHash(), id, "binary", "", hash, int64(0))

	cReg.Invoke(t, stackitem.NewBool(true), "verifyBinary", id, hash)
	cReg.Invoke(t, stackitem.NewBool(false), "verifyBinary", id, randomBytes(32))

	cReg.InvokeFail(t, registryconst.ErrContentNotFound, "verifyBinary", randomBytes(32), hash)
}

func TestRegistry_DeleteContent(t *testing.T) {
	cReg, _ := newVaultInvokers(t)

	acc := cReg.NewAccount(t)
	cAcc := cReg.WithSigners(acc)
	registerIdentity(t, cReg, acc)

	id := randomBytes(32)
	cAcc.Invoke(t, stackitem.Null{}, "addContent",
		acc.ScriptHash(), id, "removable", "", randomBytes(32), int64(0))

	t.Run("stranger can't remove", func(t *testing.T) {
		stranger := cReg.NewAccount(t)
		cReg.WithSigners(stranger).InvokeFail(t, registryconst.ErrAccessDenied, "deleteContent", id)
	})

	cAcc.Invoke(t, stackitem.Null{}, "deleteContent", id)
	cReg.InvokeFail(t, registryconst.ErrContentNotFound, "getContent", id)

	t.Run("administrator can remove", func(t *testing.T) {
		id2 := randomBytes(32)
		cAcc.Invoke(t, stackitem.Null{}, "addContent",
			acc.ScriptHash(), id2, "removable", "", randomBytes(32), int64(0))

		cReg.Invoke(t, stackitem.Null{}, "deleteContent", id2)
		cReg.InvokeFail(t, registryconst.ErrContentNotFound, "getContent", id2)
	})

	t.Run("unknown content", func(t *testing.T) {
		cReg.InvokeFail(t, registryconst.ErrContentNotFound, "deleteContent", randomBytes(32))
	})
}

func TestRegistry_Contents(t *testing.T) {
	cReg, _ := newVaultInvokers(t)

	acc := cReg.NewAccount(t)
	cAcc := cReg.WithSigners(acc)
	registerIdentity(t, cReg, acc)

	for i := 0; i < 3; i++ {
		cAcc.Invoke(t, stackitem.Null{}, "addContent",
			acc.ScriptHash(), randomBytes(32), "item", "", randomBytes(32), int64(0))
	}

	s, err := cReg.TestInvoke(t, "contents")
	require.NoError(t, err)

	iter := s.Pop().Value().(*storage.Iterator)
	require.Len(t, iteratorToArray(iter), 3)
}

func TestRegistry_Admin(t *testing.T) {
	cReg, _ := newVaultInvokers(t)
	cReg.Invoke(t, stackitem.NewBuffer(cReg.CommitteeHash.BytesBE()), "admin")
}
