package keeper

import (
	sdk "github.com/plexfi/plexlock/types"
	"github.com/plexfi/plexlock/x/plexlock/types"
)

// EmergencyUnlock force-processes every expired gateway lock without
// relocking anything. Only available while paused: it exists for
// decommissioning a failed gateway, not for routine operation.
func (k Keeper) EmergencyUnlock(ctx sdk.Context, from sdk.AccAddress) sdk.Error {
	if err := k.enterCall(); err != nil {
		return err
	}
	defer k.exitCall()
	if err := k.requireAuthority(ctx, from); err != nil {
		return err
	}
	if err := k.whenPaused(ctx); err != nil {
		return err
	}
	ctx, commit := ctx.CacheContext()

	unlocked, err := k.ext.LockGateway.ProcessExpiredLocks(ctx)
	if err != nil {
		return types.ErrExternalFailure("emergency unlock", err)
	}

	ctx.Logger().WithField("unlocked", unlocked.String()).Warn("emergency unlock")
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeEmergencyUnlock,
		sdk.NewAttribute(types.AttributeKeyAssets, unlocked.String()),
	))
	commit()
	return nil
}

// SetMigration records the migration target for a subsequent token sweep.
func (k Keeper) SetMigration(ctx sdk.Context, from, target sdk.AccAddress) sdk.Error {
	if err := k.enterCall(); err != nil {
		return err
	}
	defer k.exitCall()
	if err := k.requireAuthority(ctx, from); err != nil {
		return err
	}
	if err := k.whenPaused(ctx); err != nil {
		return err
	}

	ctx.KVStore(k.storeKey).Set(types.MigrationTargetKey, target.Bytes())

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetMigration,
		sdk.NewAttribute(types.AttributeKeyTarget, target.String()),
	))
	return nil
}

func (k Keeper) GetMigrationTarget(ctx sdk.Context) sdk.AccAddress {
	return sdk.AccAddressFromBytes(ctx.KVStore(k.storeKey).Get(types.MigrationTargetKey))
}

// EmergencyMigrateTokens sweeps the engine's full balance of each named
// token to the migration target. Per-epoch ledgers are not carried over:
// this is capital preservation, not state migration.
func (k Keeper) EmergencyMigrateTokens(ctx sdk.Context, from sdk.AccAddress, tokens []sdk.Symbol) sdk.Error {
	if err := k.enterCall(); err != nil {
		return err
	}
	defer k.exitCall()
	if err := k.requireAuthority(ctx, from); err != nil {
		return err
	}
	if err := k.whenPaused(ctx); err != nil {
		return err
	}
	ctx, commit := ctx.CacheContext()

	target := k.GetMigrationTarget(ctx)
	if target.Empty() {
		return types.ErrNoMigrationTarget()
	}

	for _, token := range tokens {
		balance := k.bank.GetBalance(ctx, types.ModuleAddress, token)
		if !balance.IsPositive() {
			continue
		}
		if err := k.bank.SendTokens(ctx, types.ModuleAddress, target, token, balance); err != nil {
			return err
		}

		ctx.Logger().WithField("token", token).WithField("amount", balance.String()).
			Warn("emergency token migration")
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeMigrateTokens,
			sdk.NewAttribute(types.AttributeKeyTarget, target.String()),
			sdk.NewAttribute(types.AttributeKeyToken, token.String()),
			sdk.NewAttribute(types.AttributeKeyAssets, balance.String()),
		))
	}
	commit()
	return nil
}
