package plexlock

import (
	sdk "github.com/plexfi/plexlock/types"
	"github.com/plexfi/plexlock/x/plexlock/keeper"
	"github.com/plexfi/plexlock/x/plexlock/types"
)

// NewHandler routes messages to the keeper. Every message runs with a fresh
// event manager so the result carries only its own events.
func NewHandler(k keeper.Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		ctx = ctx.WithEventManager(sdk.NewEventManager())
		var err sdk.Error
		switch msg := msg.(type) {
		case types.MsgDeposit:
			err = k.Deposit(ctx, msg.From, msg.Receiver, msg.Assets, msg.ShouldCompound)
		case types.MsgInitiateRedemptions:
			err = k.InitiateRedemptions(ctx, msg.From, msg.Receiver, msg.FuturesKind, msg.LockIndexes, msg.Assets)
		case types.MsgRedeem:
			err = k.Redeem(ctx, msg.From, msg.Receiver, msg.UnlockTimes, msg.Assets)
		case types.MsgStake:
			err = k.Stake(ctx, msg.From, msg.Receiver, msg.Rounds, msg.FuturesKind, msg.Assets)
		case types.MsgUnstake:
			err = k.Unstake(ctx, msg.From, msg.Receiver, msg.StakeExpiry, msg.Assets)
		case types.MsgEpochMaintenance:
			err = k.PerformEpochMaintenance(ctx)
		case types.MsgClaimExternalReward:
			err = k.ClaimExternalReward(ctx, msg.From, msg.Token, msg.Index, msg.Amount, msg.Proof)
		case types.MsgClaimSnapshotRewards:
			err = k.ClaimSnapshotRewards(ctx, msg.From, msg.Receiver, msg.Epoch, msg.RewardIndexes)
		case types.MsgClaimFuturesRewards:
			err = k.ClaimFuturesRewards(ctx, msg.From, msg.Receiver, msg.Epoch)
		case types.MsgExchangeFutures:
			err = k.ExchangeFutures(ctx, msg.From, msg.Receiver, msg.Epoch, msg.Amount, msg.Kind)
		case types.MsgRelock:
			err = k.Relock(ctx)
		case types.MsgSetFee:
			err = k.SetFee(ctx, msg.From, msg.Kind, msg.Value)
		case types.MsgSetContract:
			err = k.SetExternalContract(ctx, msg.From, msg.Kind, msg.Address)
		case types.MsgSetPauseState:
			err = k.SetPauseState(ctx, msg.From, msg.Paused)
		case types.MsgSetDelegate:
			err = k.SetDelegate(ctx, msg.From, msg.Delegate)
		case types.MsgClearDelegate:
			err = k.ClearDelegate(ctx, msg.From)
		case types.MsgUnlock:
			err = k.EmergencyUnlock(ctx, msg.From)
		case types.MsgSetMigration:
			err = k.SetMigration(ctx, msg.From, msg.Target)
		case types.MsgMigrateTokens:
			err = k.EmergencyMigrateTokens(ctx, msg.From, msg.Tokens)
		default:
			return sdk.ErrUnknownRequest("unrecognized plexlock message type").Result()
		}
		if err != nil {
			return err.Result()
		}
		return sdk.Result{Events: ctx.EventManager().Events()}
	}
}
