package keeper

import (
	"fmt"

	"github.com/plexfi/plexlock/codec"
	sdk "github.com/plexfi/plexlock/types"
	"github.com/plexfi/plexlock/x/plexlock/types"
)

// Collaborators bundles the external contracts the engine drives. The
// engine is their sole authorized mutating caller.
type Collaborators struct {
	LockGateway   types.LockGateway
	FeeSplitter   types.FeeSplitter
	VoteRegistry  types.VoteRegistry
	RewardClaimer types.RewardClaimer
	CompoundVault types.CompoundVault
}

type Keeper struct {
	storeKey sdk.StoreKey
	cdc      *codec.Codec
	bank     types.BankKeeper
	ext      *Collaborators

	// inCall implements the global reentrancy lock: a nested entry into
	// any keeper operation is rejected, not queued.
	inCall *bool
}

func NewKeeper(cdc *codec.Codec, key sdk.StoreKey, bank types.BankKeeper, ext Collaborators) Keeper {
	inCall := false
	return Keeper{
		storeKey: key,
		cdc:      cdc,
		bank:     bank,
		ext:      &ext,
		inCall:   &inCall,
	}
}

// SetCollaborator rewires one external contract. Used by the host process
// after a SetContract or migration; state under way is unaffected.
func (k Keeper) SetCollaborator(kind types.ContractKind, c interface{}) {
	switch kind {
	case types.ContractLockGateway:
		k.ext.LockGateway = c.(types.LockGateway)
	case types.ContractFeeSplitter:
		k.ext.FeeSplitter = c.(types.FeeSplitter)
	case types.ContractVoteRegistry:
		k.ext.VoteRegistry = c.(types.VoteRegistry)
	case types.ContractRewardClaimer:
		k.ext.RewardClaimer = c.(types.RewardClaimer)
	case types.ContractCompoundVault:
		k.ext.CompoundVault = c.(types.CompoundVault)
	}
}

//----------------------------------------
// guards

func (k Keeper) enterCall() sdk.Error {
	if *k.inCall {
		return types.ErrReentrancy()
	}
	*k.inCall = true
	return nil
}

func (k Keeper) exitCall() {
	*k.inCall = false
}

func (k Keeper) IsPaused(ctx sdk.Context) bool {
	return ctx.KVStore(k.storeKey).Has(types.PausedKey)
}

func (k Keeper) whenNotPaused(ctx sdk.Context) sdk.Error {
	if k.IsPaused(ctx) {
		return types.ErrPaused()
	}
	return nil
}

func (k Keeper) whenPaused(ctx sdk.Context) sdk.Error {
	if !k.IsPaused(ctx) {
		return types.ErrNotPaused()
	}
	return nil
}

func (k Keeper) requireAuthority(ctx sdk.Context, from sdk.AccAddress) sdk.Error {
	authority := k.GetParams(ctx).Authority
	if authority.Empty() || !authority.Equals(from) {
		return sdk.ErrUnauthorized(fmt.Sprintf("%s is not the authority", from))
	}
	return nil
}

//----------------------------------------
// params

func (k Keeper) GetParams(ctx sdk.Context) (params types.Params) {
	bz := ctx.KVStore(k.storeKey).Get(types.ParamsKey)
	if len(bz) == 0 {
		return types.DefaultParams()
	}
	k.cdc.MustUnmarshalBinaryBare(bz, &params)
	return
}

func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	ctx.KVStore(k.storeKey).Set(types.ParamsKey, k.cdc.MustMarshalBinaryBare(params))
}

// SetFee adjusts one fee parameter; authority only.
func (k Keeper) SetFee(ctx sdk.Context, from sdk.AccAddress, kind types.FeeKind, value uint64) sdk.Error {
	if err := k.requireAuthority(ctx, from); err != nil {
		return err
	}
	params := k.GetParams(ctx)
	switch kind {
	case types.FeeRedemptionMax:
		if value < params.RedemptionFeeMin {
			return types.ErrInvalidFee(fmt.Sprintf("max fee %d below min %d", value, params.RedemptionFeeMin))
		}
		params.RedemptionFeeMax = value
	case types.FeeRedemptionMin:
		if value > params.RedemptionFeeMax {
			return types.ErrInvalidFee(fmt.Sprintf("min fee %d above max %d", value, params.RedemptionFeeMax))
		}
		params.RedemptionFeeMin = value
	case types.FeeReward:
		params.RewardFeePercent = value
	default:
		return types.ErrInvalidFeeKind(kind)
	}
	k.SetParams(ctx, params)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetFee,
		sdk.NewAttribute(types.AttributeKeyKind, kind.String()),
		sdk.NewAttribute(types.AttributeKeyValue, fmt.Sprintf("%d", value)),
	))
	return nil
}

// SetExternalContract records the on-record address of one collaborator;
// the host process is responsible for rewiring the implementation.
func (k Keeper) SetExternalContract(ctx sdk.Context, from sdk.AccAddress, kind types.ContractKind, address sdk.AccAddress) sdk.Error {
	if err := k.requireAuthority(ctx, from); err != nil {
		return err
	}
	if !kind.IsValid() {
		return types.ErrInvalidContractKind(kind)
	}
	ctx.KVStore(k.storeKey).Set(types.ContractAddressKey(kind), address.Bytes())

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetContract,
		sdk.NewAttribute(types.AttributeKeyKind, kind.String()),
		sdk.NewAttribute(types.AttributeKeyValue, address.String()),
	))
	return nil
}

func (k Keeper) GetExternalContract(ctx sdk.Context, kind types.ContractKind) sdk.AccAddress {
	return sdk.AccAddressFromBytes(ctx.KVStore(k.storeKey).Get(types.ContractAddressKey(kind)))
}

// SetPauseState flips the global pause flag; authority only.
func (k Keeper) SetPauseState(ctx sdk.Context, from sdk.AccAddress, paused bool) sdk.Error {
	if err := k.requireAuthority(ctx, from); err != nil {
		return err
	}
	store := ctx.KVStore(k.storeKey)
	if paused {
		store.Set(types.PausedKey, []byte{1})
	} else {
		store.Delete(types.PausedKey)
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetPauseState,
		sdk.NewAttribute(types.AttributeKeyPaused, fmt.Sprintf("%t", paused)),
	))
	return nil
}

// ForcePauseState writes the pause flag without an authority check. Only
// genesis initialization may use it.
func (k Keeper) ForcePauseState(ctx sdk.Context, paused bool) {
	store := ctx.KVStore(k.storeKey)
	if paused {
		store.Set(types.PausedKey, []byte{1})
	} else {
		store.Delete(types.PausedKey)
	}
}

//----------------------------------------
// vote delegation

func (k Keeper) SetDelegate(ctx sdk.Context, from, delegate sdk.AccAddress) sdk.Error {
	if err := k.requireAuthority(ctx, from); err != nil {
		return err
	}
	space := k.GetParams(ctx).DelegationSpace
	if err := k.ext.VoteRegistry.SetDelegate(ctx, space, delegate); err != nil {
		return types.ErrExternalFailure("set delegate", err)
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetDelegate,
		sdk.NewAttribute(types.AttributeKeySpace, space),
		sdk.NewAttribute(types.AttributeKeyDelegate, delegate.String()),
	))
	return nil
}

func (k Keeper) ClearDelegate(ctx sdk.Context, from sdk.AccAddress) sdk.Error {
	if err := k.requireAuthority(ctx, from); err != nil {
		return err
	}
	space := k.GetParams(ctx).DelegationSpace
	if err := k.ext.VoteRegistry.ClearDelegate(ctx, space); err != nil {
		return types.ErrExternalFailure("clear delegate", err)
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeClearDelegate,
		sdk.NewAttribute(types.AttributeKeySpace, space),
	))
	return nil
}

//----------------------------------------
// store helpers

func (k Keeper) getInt(ctx sdk.Context, key []byte) (ret sdk.Int) {
	bz := ctx.KVStore(k.storeKey).Get(key)
	if len(bz) == 0 {
		return sdk.ZeroInt()
	}
	k.cdc.MustUnmarshalBinaryBare(bz, &ret)
	return
}

func (k Keeper) setInt(ctx sdk.Context, key []byte, v sdk.Int) {
	store := ctx.KVStore(k.storeKey)
	if v.IsZero() {
		store.Delete(key)
		return
	}
	store.Set(key, k.cdc.MustMarshalBinaryBare(v))
}

func (k Keeper) getUint64(ctx sdk.Context, key []byte) uint64 {
	bz := ctx.KVStore(k.storeKey).Get(key)
	if len(bz) == 0 {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

func (k Keeper) setUint64(ctx sdk.Context, key []byte, v uint64) {
	ctx.KVStore(k.storeKey).Set(key, sdk.Uint64ToBigEndian(v))
}
