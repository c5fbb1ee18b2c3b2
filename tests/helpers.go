package tests

import (
	"math/rand"
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

const (
	registryPath = "../registry"
	tokenPath    = "../subscription"

	// Subscription activation fee the token contract is deployed with.
	subscriptionFee = 100
)

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// deployVaultContracts deploys the Subscription token and the Registry
// contracts wired to each other. Both contract addresses are known in
// advance from the compiled artifacts, so each of them receives the other's
// address in deployment arguments. The committee plays the administrator
// role in both contracts.
func deployVaultContracts(t *testing.T, e *neotest.Executor) (util.Uint160, util.Uint160) {
	ctrToken := neotest.CompileFile(t, e.CommitteeHash, tokenPath, path.Join(tokenPath, "config.yml"))
	ctrRegistry := neotest.CompileFile(t, e.CommitteeHash, registryPath, path.Join(registryPath, "config.yml"))

	e.DeployContract(t, ctrToken, []any{e.CommitteeHash, ctrRegistry.Hash, int64(subscriptionFee)})
	e.DeployContract(t, ctrRegistry, []any{e.CommitteeHash, ctrToken.Hash})

	return ctrRegistry.Hash, ctrToken.Hash
}

func newVaultInvokers(t *testing.T) (*neotest.ContractInvoker, *neotest.ContractInvoker) {
	e := newExecutor(t)
	regHash, tokenHash := deployVaultContracts(t, e)
	return e.CommitteeInvoker(regHash), e.CommitteeInvoker(tokenHash)
}

// registerIdentity creates an identity for the signer and returns the
// random proof it was registered with.
func registerIdentity(t *testing.T, cReg *neotest.ContractInvoker, s neotest.Signer) []byte {
	proof := randomBytes(32)
	cReg.WithSigners(s).Invoke(t, stackitem.Null{}, "registerIdentity", s.ScriptHash(), proof, "github")
	return proof
}

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

func randomBytes(n int) []byte {
	a := make([]byte, n)
	rand.Read(a) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return a
}
