package keeper

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tm-db"

	"github.com/plexfi/plexlock/codec"
	"github.com/plexfi/plexlock/store"
	sdk "github.com/plexfi/plexlock/types"
	"github.com/plexfi/plexlock/x/bank"
	"github.com/plexfi/plexlock/x/plexlock/types"
)

var (
	testAuthority = sdk.AccAddressFromBytes([]byte("authority-----------"))
	testAlice     = sdk.AccAddressFromBytes([]byte("alice---------------"))
	testBob       = sdk.AccAddressFromBytes([]byte("bob-----------------"))
	testTreasury  = sdk.AccAddressFromBytes([]byte("treasury------------"))

	testBase    = sdk.Symbol("cvx")
	testReceipt = sdk.Symbol("plcvx")
	testReward  = sdk.Symbol("crv")
)

// genesisTime sits exactly on an epoch boundary so tests can reason about
// epoch arithmetic with plain offsets.
var genesisTime = time.Unix(types.DefaultEpochDuration*1000, 0).UTC()

type testEnv struct {
	ctx      sdk.Context
	cdc      *codec.Codec
	keeper   Keeper
	bank     bank.Keeper
	gateway  *mockLockGateway
	splitter *mockFeeSplitter
	registry *mockVoteRegistry
	claimer  *mockRewardClaimer
	vault    *mockCompoundVault
}

func newTestEnv(t *testing.T) *testEnv {
	cdc := codec.New()
	types.RegisterCodec(cdc)

	db := dbm.NewMemDB()
	ms := store.NewMultiStore(db)
	bankKey := sdk.NewKVStoreKey(bank.StoreKey)
	plexKey := sdk.NewKVStoreKey(types.StoreKey)

	bk := bank.NewKeeper(cdc, bankKey)
	ctx := sdk.NewContext(ms, genesisTime, nil)

	gateway := &mockLockGateway{
		bank: bk,
		addr: sdk.AccAddressFromBytes([]byte("lock-gateway--------")),
	}
	splitter := &mockFeeSplitter{
		bank: bk,
		addr: testTreasury,
	}
	registry := &mockVoteRegistry{}
	claimer := &mockRewardClaimer{bank: bk}
	vault := &mockCompoundVault{
		addr: sdk.AccAddressFromBytes([]byte("compound-vault------")),
	}

	k := NewKeeper(cdc, plexKey, bk, Collaborators{
		LockGateway:   gateway,
		FeeSplitter:   splitter,
		VoteRegistry:  registry,
		RewardClaimer: claimer,
		CompoundVault: vault,
	})

	params := types.DefaultParams()
	params.Authority = testAuthority
	k.SetParams(ctx, params)

	require.NoError(t, bk.MintTokens(ctx, testAlice, testBase, sdk.NewInt(1000000)))
	require.NoError(t, bk.MintTokens(ctx, testBob, testBase, sdk.NewInt(1000000)))

	return &testEnv{
		ctx:      ctx,
		cdc:      cdc,
		keeper:   k,
		bank:     bk,
		gateway:  gateway,
		splitter: splitter,
		registry: registry,
		claimer:  claimer,
		vault:    vault,
	}
}

func requireErrCode(t *testing.T, err sdk.Error, code sdk.CodeType) {
	t.Helper()
	require.NotNil(t, err)
	require.Equal(t, code, err.Code())
}

// advance moves block time forward.
func (env *testEnv) advance(d time.Duration) {
	env.ctx = env.ctx.WithBlockTime(env.ctx.BlockTime().Add(d))
}

func (env *testEnv) advanceEpochs(n int64) {
	env.advance(time.Duration(n*types.DefaultEpochDuration) * time.Second)
}

//----------------------------------------
// mock collaborators
//
// The mocks move real bank balances so the engine's custody accounting is
// exercised, not just its bookkeeping.

type mockLockGateway struct {
	bank bank.Keeper
	addr sdk.AccAddress

	entries []types.LockEntry
	rewards []types.RewardAccrual

	lockDuration int64
	failLock     bool
}

func (m *mockLockGateway) Lock(ctx sdk.Context, amount sdk.Int) error {
	if m.failLock {
		return errors.New("gateway rejected lock")
	}
	if err := m.bank.SendTokens(ctx, types.ModuleAddress, m.addr, testBase, amount); err != nil {
		return errors.Wrap(err, "lock transfer")
	}
	dur := m.lockDuration
	if dur == 0 {
		dur = types.DefaultMaxRedemptionTime
	}
	m.entries = append(m.entries, types.LockEntry{
		Amount:     amount,
		UnlockTime: ctx.BlockTime().Unix() + dur,
	})
	return nil
}

func (m *mockLockGateway) ProcessExpiredLocks(ctx sdk.Context) (sdk.Int, error) {
	now := ctx.BlockTime().Unix()
	freed := sdk.ZeroInt()
	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.UnlockTime <= now {
			freed = freed.Add(e.Amount)
		} else {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	if freed.IsPositive() {
		if err := m.bank.SendTokens(ctx, m.addr, types.ModuleAddress, testBase, freed); err != nil {
			return sdk.ZeroInt(), err
		}
	}
	return freed, nil
}

func (m *mockLockGateway) LockedBalances(ctx sdk.Context) (total, unlockable, locked sdk.Int, entries []types.LockEntry) {
	now := ctx.BlockTime().Unix()
	total, unlockable, locked = sdk.ZeroInt(), sdk.ZeroInt(), sdk.ZeroInt()
	for _, e := range m.entries {
		total = total.Add(e.Amount)
		if e.UnlockTime <= now {
			unlockable = unlockable.Add(e.Amount)
		} else {
			locked = locked.Add(e.Amount)
		}
	}
	return total, unlockable, locked, m.entries
}

func (m *mockLockGateway) ClaimableRewards(ctx sdk.Context) []types.RewardAccrual {
	return m.rewards
}

func (m *mockLockGateway) ClaimRewards(ctx sdk.Context) error {
	for _, r := range m.rewards {
		if err := m.bank.MintTokens(ctx, types.ModuleAddress, r.Token, r.Amount); err != nil {
			return err
		}
	}
	m.rewards = nil
	return nil
}

// accrue queues a pending reward on the gateway.
func (m *mockLockGateway) accrue(token sdk.Symbol, amount sdk.Int) {
	m.rewards = append(m.rewards, types.RewardAccrual{Token: token, Amount: amount})
}

type mockFeeSplitter struct {
	bank bank.Keeper
	addr sdk.AccAddress

	received map[sdk.Symbol]sdk.Int
	fail     bool
}

func (m *mockFeeSplitter) Distribute(ctx sdk.Context, from sdk.AccAddress, token sdk.Symbol, amount sdk.Int) error {
	if m.fail {
		return errors.New("splitter unavailable")
	}
	if err := m.bank.SendTokens(ctx, from, m.addr, token, amount); err != nil {
		return err
	}
	if m.received == nil {
		m.received = make(map[sdk.Symbol]sdk.Int)
	}
	prev, ok := m.received[token]
	if !ok {
		prev = sdk.ZeroInt()
	}
	m.received[token] = prev.Add(amount)
	return nil
}

type mockVoteRegistry struct {
	space    string
	delegate sdk.AccAddress
	fail     bool
}

func (m *mockVoteRegistry) SetDelegate(ctx sdk.Context, space string, delegate sdk.AccAddress) error {
	if m.fail {
		return errors.New("registry unavailable")
	}
	m.space = space
	m.delegate = delegate
	return nil
}

func (m *mockVoteRegistry) ClearDelegate(ctx sdk.Context, space string) error {
	if m.fail {
		return errors.New("registry unavailable")
	}
	m.space = space
	m.delegate = nil
	return nil
}

type mockRewardClaimer struct {
	bank bank.Keeper

	// paidOverride, when non-nil, is returned instead of the requested
	// amount. Lets tests exercise partial and zero payouts.
	paidOverride *sdk.Int
	fail         bool
}

func (m *mockRewardClaimer) Claim(ctx sdk.Context, token sdk.Symbol, index uint64, account sdk.AccAddress, amount sdk.Int, proof [][]byte) (sdk.Int, error) {
	if m.fail {
		return sdk.ZeroInt(), errors.New("claim rejected")
	}
	paid := amount
	if m.paidOverride != nil {
		paid = *m.paidOverride
	}
	if paid.IsPositive() {
		if err := m.bank.MintTokens(ctx, account, token, paid); err != nil {
			return sdk.ZeroInt(), err
		}
	}
	return paid, nil
}

type mockCompoundVault struct {
	addr sdk.AccAddress

	deposits map[string]sdk.Int
}

func (m *mockCompoundVault) Deposit(ctx sdk.Context, assets sdk.Int, receiver sdk.AccAddress) error {
	if m.deposits == nil {
		m.deposits = make(map[string]sdk.Int)
	}
	prev, ok := m.deposits[receiver.String()]
	if !ok {
		prev = sdk.ZeroInt()
	}
	m.deposits[receiver.String()] = prev.Add(assets)
	return nil
}
