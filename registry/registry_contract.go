package registry

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/contentvault/contentvault-contract/common"
	cst "github.com/contentvault/contentvault-contract/registry/registryconst"
)

type (
	// Identity is a per-address record asserting that its owner has
	// completed an external authentication flow.
	Identity struct {
		Owner    interop.Hash160
		Proof    []byte
		Platform string
	}

	// Content describes a single published content record.
	Content struct {
		ID          []byte
		Title       string
		Description string
		Owner       interop.Hash160
		Hash        interop.Hash256
	}

	// FileShare grants one recipient access to a file owned by Owner.
	FileShare struct {
		ID        []byte
		Owner     interop.Hash160
		Recipient interop.Hash160
		Encrypted bool
	}
)

const (
	adminKey         = "registryAdmin"
	tokenContractKey = "tokenScriptHash"

	identityPrefix   = 'i'
	contentPrefix    = 'c'
	sharePrefix      = 'f'
	ownerSharePrefix = 'o'

	contentIDSize = interop.Hash256Len
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		admin     interop.Hash160
		addrToken interop.Hash160
	})

	if len(args.admin) != interop.Hash160Len {
		panic("incorrect administrator address length")
	}
	if len(args.addrToken) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	storage.Put(ctx, adminKey, args.admin)
	storage.Put(ctx, tokenContractKey, args.addrToken)

	runtime.Log("registry contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("registry contract updated")
}

// RegisterIdentity creates an Identity record for the owner address. Each
// address can register exactly once; a repeated call faults with
// ErrIdentityExists. Must be invoked by the owner.
//
// Produces IdentityRegistered notification.
func RegisterIdentity(owner interop.Hash160, proof []byte, platform string) {
	if len(owner) != interop.Hash160Len {
		panic(cst.ErrInvalidOwner)
	}
	if len(proof) == 0 {
		panic(cst.ErrInvalidProof)
	}

	common.CheckOwnerWitness(owner)

	ctx := storage.GetContext()
	key := append([]byte{identityPrefix}, owner...)
	if storage.Get(ctx, key) != nil {
		panic(cst.ErrIdentityExists)
	}

	common.SetSerialized(ctx, key, Identity{
		Owner:    owner,
		Proof:    proof,
		Platform: platform,
	})

	runtime.Log("registered new identity")
	runtime.Notify("IdentityRegistered", owner, platform)
}

// AddContent creates a Content record under the given ID. The owner must
// have a registered identity and sign the invocation. A non-zero payment
// is forwarded to the administrator via the subscription token contract.
// Occupied IDs are rejected with ErrContentExists, never overwritten.
//
// Produces ContentAdded notification.
func AddContent(owner interop.Hash160, id []byte, title, description string, hash interop.Hash256, payment int) {
	if len(owner) != interop.Hash160Len {
		panic(cst.ErrInvalidOwner)
	}
	if len(id) != contentIDSize {
		panic(cst.ErrInvalidContentID)
	}
	if len(hash) != interop.Hash256Len {
		panic(cst.ErrInvalidHash)
	}
	if payment < 0 {
		panic(cst.ErrInvalidPayment)
	}

	ctx := storage.GetContext()
	requireIdentity(ctx, owner)
	common.CheckOwnerWitness(owner)

	key := append([]byte{contentPrefix}, id...)
	if storage.Get(ctx, key) != nil {
		panic(cst.ErrContentExists)
	}

	if payment > 0 {
		admin := storage.Get(ctx, adminKey).(interop.Hash160)
		tokenContractAddr := storage.Get(ctx, tokenContractKey).(interop.Hash160)
		details := common.ContentFeeTransferDetails(id)

		contract.Call(tokenContractAddr, "transferX", contract.All,
			owner, admin, payment, details)
	}

	common.SetSerialized(ctx, key, Content{
		ID:          id,
		Title:       title,
		Description: description,
		Owner:       owner,
		Hash:        hash,
	})

	runtime.Log("added new content")
	runtime.Notify("ContentAdded", id, title, owner)
}

// ShareFile creates a FileShare record granting the recipient access to
// the file with the given ID. The owner must have a registered identity
// and sign the invocation. Occupied IDs are rejected with ErrShareExists.
//
// Produces FileShared notification.
func ShareFile(owner interop.Hash160, id []byte, recipient interop.Hash160, encrypted bool) {
	if len(owner) != interop.Hash160Len {
		panic(cst.ErrInvalidOwner)
	}
	if len(recipient) != interop.Hash160Len {
		panic(cst.ErrInvalidRecipient)
	}
	if len(id) != contentIDSize {
		panic(cst.ErrInvalidContentID)
	}

	ctx := storage.GetContext()
	requireIdentity(ctx, owner)
	common.CheckOwnerWitness(owner)

	key := append([]byte{sharePrefix}, id...)
	if storage.Get(ctx, key) != nil {
		panic(cst.ErrShareExists)
	}

	common.SetSerialized(ctx, key, FileShare{
		ID:        id,
		Owner:     owner,
		Recipient: recipient,
		Encrypted: encrypted,
	})

	indexKey := append([]byte{ownerSharePrefix}, owner...)
	indexKey = append(indexKey, id...)
	storage.Put(ctx, indexKey, id)

	runtime.Log("shared file")
	runtime.Notify("FileShared", id, owner, recipient)
}

// GetContent returns the Content record stored under the given ID. If the
// content doesn't exist, it panics with ErrContentNotFound.
func GetContent(id []byte) Content {
	if len(id) != contentIDSize {
		panic(cst.ErrInvalidContentID)
	}

	ctx := storage.GetReadOnlyContext()
	return getContent(ctx, append([]byte{contentPrefix}, id...))
}

// GetIdentity returns the Identity record of the given address. If the
// identity doesn't exist, it panics with ErrIdentityNotFound.
func GetIdentity(owner interop.Hash160) Identity {
	if len(owner) != interop.Hash160Len {
		panic(cst.ErrInvalidOwner)
	}

	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, append([]byte{identityPrefix}, owner...))
	if data == nil {
		panic(cst.ErrIdentityNotFound)
	}

	return std.Deserialize(data.([]byte)).(Identity)
}

// GetFileShare returns the FileShare record stored under the given ID. If
// the share doesn't exist, it panics with ErrShareNotFound.
func GetFileShare(id []byte) FileShare {
	if len(id) != contentIDSize {
		panic(cst.ErrInvalidContentID)
	}

	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, append([]byte{sharePrefix}, id...))
	if data == nil {
		panic(cst.ErrShareNotFound)
	}

	return std.Deserialize(data.([]byte)).(FileShare)
}

// VerifyBinary compares the stored integrity hash of the content with the
// provided one and returns the equality result. No hashing is performed,
// the caller is trusted to hash the binary itself. If the content doesn't
// exist, it panics with ErrContentNotFound.
func VerifyBinary(id []byte, hash interop.Hash256) bool {
	if len(id) != contentIDSize {
		panic(cst.ErrInvalidContentID)
	}

	ctx := storage.GetReadOnlyContext()
	cnt := getContent(ctx, append([]byte{contentPrefix}, id...))

	return common.BytesEqual(cnt.Hash, hash)
}

// DeleteContent removes the Content record stored under the given ID.
// Removal is allowed for the record owner and for the administrator;
// anyone else faults with ErrAccessDenied. If the content doesn't exist,
// it panics with ErrContentNotFound.
//
// Produces ContentRemoved notification.
func DeleteContent(id []byte) {
	if len(id) != contentIDSize {
		panic(cst.ErrInvalidContentID)
	}

	ctx := storage.GetContext()
	key := append([]byte{contentPrefix}, id...)
	cnt := getContent(ctx, key)

	admin := storage.Get(ctx, adminKey).(interop.Hash160)
	if !runtime.CheckWitness(cnt.Owner) && !runtime.CheckWitness(admin) {
		panic(cst.ErrAccessDenied)
	}

	storage.Delete(ctx, key)

	runtime.Log("removed content")
	runtime.Notify("ContentRemoved", id, cnt.Owner)
}

// Contents returns an iterator over all stored Content records.
func Contents() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{contentPrefix}, storage.ValuesOnly|storage.DeserializeValues)
}

// SharesOf returns an iterator over IDs of all file shares created by the
// given owner.
func SharesOf(owner interop.Hash160) iterator.Iterator {
	if len(owner) != interop.Hash160Len {
		panic(cst.ErrInvalidOwner)
	}

	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, append([]byte{ownerSharePrefix}, owner...), storage.ValuesOnly)
}

// Admin returns the administrator address of the registry.
func Admin() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, adminKey).(interop.Hash160)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func requireIdentity(ctx storage.Context, owner interop.Hash160) {
	if storage.Get(ctx, append([]byte{identityPrefix}, owner...)) == nil {
		panic(cst.ErrNotAuthenticated)
	}
}

func getContent(ctx storage.Context, key []byte) Content {
	data := storage.Get(ctx, key)
	if data == nil {
		panic(cst.ErrContentNotFound)
	}

	return std.Deserialize(data.([]byte)).(Content)
}
