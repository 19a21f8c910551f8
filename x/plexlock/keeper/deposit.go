package keeper

import (
	sdk "github.com/plexfi/plexlock/types"
	"github.com/plexfi/plexlock/x/plexlock/types"
)

// Deposit pulls the base asset from the caller, locks it through the
// gateway and mints receipt tokens 1:1. With shouldCompound the receipt
// tokens go to the compound vault, credited to the receiver there.
func (k Keeper) Deposit(ctx sdk.Context, from, receiver sdk.AccAddress, assets sdk.Int, shouldCompound bool) sdk.Error {
	if err := k.enterCall(); err != nil {
		return err
	}
	defer k.exitCall()
	if err := k.whenNotPaused(ctx); err != nil {
		return err
	}
	ctx, commit := ctx.CacheContext()

	params := k.GetParams(ctx)
	if err := k.bank.SendTokens(ctx, from, types.ModuleAddress, params.BaseSymbol, assets); err != nil {
		return err
	}
	if err := k.ext.LockGateway.Lock(ctx, assets); err != nil {
		return types.ErrExternalFailure("lock", err)
	}

	mintTo := receiver
	if shouldCompound {
		vault := k.GetExternalContract(ctx, types.ContractCompoundVault)
		if vault.Empty() {
			return sdk.ErrInvalidAddress("compound vault not configured")
		}
		mintTo = vault
	}
	if err := k.bank.MintTokens(ctx, mintTo, params.ReceiptSymbol, assets); err != nil {
		return err
	}
	if shouldCompound {
		if err := k.ext.CompoundVault.Deposit(ctx, assets, receiver); err != nil {
			return types.ErrExternalFailure("compound vault deposit", err)
		}
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeDeposit,
		sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
		sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
		sdk.NewAttribute(types.AttributeKeyAssets, assets.String()),
	))
	commit()
	return nil
}
