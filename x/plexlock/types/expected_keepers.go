package types

import (
	sdk "github.com/plexfi/plexlock/types"
)

// LockEntry is one schedule entry inside the lock gateway: amount locked
// under a specific expiry.
type LockEntry struct {
	Amount     sdk.Int `json:"amount"`
	UnlockTime int64   `json:"unlock_time"`
}

// RewardAccrual is one pending reward reported by the lock gateway.
type RewardAccrual struct {
	Token  sdk.Symbol `json:"token"`
	Amount sdk.Int    `json:"amount"`
}

// LockGateway is the external facility that holds the pooled base asset in
// time-locked, reward-accruing positions. The engine is its sole mutating
// caller; returned values are treated as untrusted but deterministic.
type LockGateway interface {
	// Lock locks amount of the base asset from the engine's custody.
	Lock(ctx sdk.Context, amount sdk.Int) error

	// ProcessExpiredLocks releases every expired entry and returns the
	// freed amount. A zero return is a valid outcome.
	ProcessExpiredLocks(ctx sdk.Context) (sdk.Int, error)

	// LockedBalances reports the engine's aggregate position and its
	// per-entry schedule.
	LockedBalances(ctx sdk.Context) (total, unlockable, locked sdk.Int, entries []LockEntry)

	// ClaimableRewards lists rewards accrued to the engine's position.
	ClaimableRewards(ctx sdk.Context) []RewardAccrual

	// ClaimRewards pays all claimable rewards into the engine's custody.
	ClaimRewards(ctx sdk.Context) error
}

// FeeSplitter receives every protocol fee the engine collects.
type FeeSplitter interface {
	Distribute(ctx sdk.Context, from sdk.AccAddress, token sdk.Symbol, amount sdk.Int) error
}

// VoteRegistry delegates the pooled position's voting rights.
type VoteRegistry interface {
	SetDelegate(ctx sdk.Context, space string, delegate sdk.AccAddress) error
	ClearDelegate(ctx sdk.Context, space string) error
}

// RewardClaimer verifies a merkle proof and pays out the proven reward. It
// returns the amount actually received.
type RewardClaimer interface {
	Claim(ctx sdk.Context, token sdk.Symbol, index uint64, account sdk.AccAddress, amount sdk.Int, proof [][]byte) (sdk.Int, error)
}

// CompoundVault receives receipt tokens minted on compounding deposits and
// stakes them on the depositor's behalf.
type CompoundVault interface {
	Deposit(ctx sdk.Context, assets sdk.Int, receiver sdk.AccAddress) error
}

// BankKeeper is the internal token ledger surface the engine needs.
type BankKeeper interface {
	GetBalance(ctx sdk.Context, addr sdk.AccAddress, symbol sdk.Symbol) sdk.Int
	GetSupply(ctx sdk.Context, symbol sdk.Symbol) sdk.Int
	MintTokens(ctx sdk.Context, addr sdk.AccAddress, symbol sdk.Symbol, amount sdk.Int) sdk.Error
	BurnTokens(ctx sdk.Context, addr sdk.AccAddress, symbol sdk.Symbol, amount sdk.Int) sdk.Error
	SendTokens(ctx sdk.Context, from, to sdk.AccAddress, symbol sdk.Symbol, amount sdk.Int) sdk.Error
	IterateBalances(ctx sdk.Context, symbol sdk.Symbol, cb func(addr sdk.AccAddress, balance sdk.Int) (stop bool))
}
