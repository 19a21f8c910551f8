package keeper

import (
	"strconv"

	sdk "github.com/plexfi/plexlock/types"
	"github.com/plexfi/plexlock/x/plexlock/types"
)

// Querier resolves read-only state queries addressed by path segments.
type Querier func(ctx sdk.Context, path []string) ([]byte, sdk.Error)

func NewQuerier(k Keeper) Querier {
	return func(ctx sdk.Context, path []string) ([]byte, sdk.Error) {
		if len(path) == 0 {
			return nil, sdk.ErrUnknownRequest("empty query path")
		}
		switch path[0] {
		case types.QueryParams:
			return queryParams(ctx, k)
		case types.QueryCurrentEpoch:
			return marshalResult(types.QueryCurrentEpochResponse{Epoch: k.CurrentEpoch(ctx)})
		case types.QueryEpoch:
			return queryEpoch(ctx, k, path[1:])
		case types.QueryOutstanding:
			return marshalResult(types.QueryOutstandingResponse{Outstanding: k.OutstandingRedemptions(ctx)})
		case types.QueryObligations:
			return queryObligations(ctx, k)
		case types.QuerySnapshotID:
			return marshalResult(types.QuerySnapshotIDResponse{SnapshotID: k.CurrentSnapshotID(ctx)})
		case types.QueryRedemptionNote:
			return queryRedemptionNote(ctx, k, path[1:])
		case types.QueryFutures:
			return queryFutures(ctx, k, path[1:])
		case types.QueryStakePool:
			return queryStakePool(ctx, k, path[1:])
		default:
			return nil, sdk.ErrUnknownRequest("unknown plexlock query path: " + path[0])
		}
	}
}

func marshalResult(v interface{}) ([]byte, sdk.Error) {
	bz, err := types.ModuleCdc.MarshalJSONIndent(v, "", "  ")
	if err != nil {
		return nil, sdk.ErrInternal(err.Error())
	}
	return bz, nil
}

func queryParams(ctx sdk.Context, k Keeper) ([]byte, sdk.Error) {
	return marshalResult(k.GetParams(ctx))
}

func queryEpoch(ctx sdk.Context, k Keeper, args []string) ([]byte, sdk.Error) {
	if len(args) != 1 {
		return nil, sdk.ErrUnknownRequest("expected epoch argument")
	}
	epoch, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, sdk.ErrUnknownRequest("invalid epoch: " + args[0])
	}
	record := k.GetEpochRecord(ctx, epoch)
	if record == nil {
		return nil, types.ErrUnknownEpoch(epoch)
	}
	return marshalResult(record)
}

func queryObligations(ctx sdk.Context, k Keeper) ([]byte, sdk.Error) {
	resp := types.QueryObligationsResponse{Obligations: []types.ObligationEntry{}}
	k.IterateRedemptionObligations(ctx, func(unlockTime int64, obligation sdk.Int) bool {
		resp.Obligations = append(resp.Obligations, types.ObligationEntry{
			UnlockTime: unlockTime,
			Obligation: obligation,
		})
		return false
	})
	return marshalResult(resp)
}

func queryRedemptionNote(ctx sdk.Context, k Keeper, args []string) ([]byte, sdk.Error) {
	if len(args) != 2 {
		return nil, sdk.ErrUnknownRequest("expected unlock time and address")
	}
	unlockTime, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, sdk.ErrUnknownRequest("invalid unlock time: " + args[0])
	}
	addr, addrErr := sdk.AccAddressFromHex(args[1])
	if addrErr != nil {
		return nil, sdk.ErrInvalidAddress(args[1])
	}
	return marshalResult(types.QueryBalanceResponse{Balance: k.RedemptionNoteBalance(ctx, unlockTime, addr)})
}

func queryFutures(ctx sdk.Context, k Keeper, args []string) ([]byte, sdk.Error) {
	if len(args) != 3 {
		return nil, sdk.ErrUnknownRequest("expected kind, epoch and address")
	}
	var kind types.FuturesKind
	switch args[0] {
	case "vote":
		kind = types.FuturesVote
	case "reward":
		kind = types.FuturesReward
	default:
		return nil, sdk.ErrUnknownRequest("invalid futures kind: " + args[0])
	}
	epoch, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return nil, sdk.ErrUnknownRequest("invalid epoch: " + args[1])
	}
	addr, addrErr := sdk.AccAddressFromHex(args[2])
	if addrErr != nil {
		return nil, sdk.ErrInvalidAddress(args[2])
	}
	return marshalResult(types.QueryBalanceResponse{Balance: k.FuturesBalance(ctx, kind, epoch, addr)})
}

func queryStakePool(ctx sdk.Context, k Keeper, args []string) ([]byte, sdk.Error) {
	if len(args) != 1 {
		return nil, sdk.ErrUnknownRequest("expected expiry argument")
	}
	expiry, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, sdk.ErrUnknownRequest("invalid expiry: " + args[0])
	}
	pool := k.GetStakePool(ctx, expiry)
	if pool == nil {
		return nil, sdk.ErrUnknownRequest("no stake pool at expiry " + args[0])
	}
	return marshalResult(pool)
}
