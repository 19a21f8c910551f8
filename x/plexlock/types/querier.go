package types

import (
	sdk "github.com/plexfi/plexlock/types"
)

const (
	QueryParams         = "params"
	QueryCurrentEpoch   = "current-epoch"
	QueryEpoch          = "epoch"
	QueryOutstanding    = "outstanding"
	QueryObligations    = "obligations"
	QuerySnapshotID     = "snapshot-id"
	QueryRedemptionNote = "redemption-note"
	QueryFutures        = "futures"
	QueryStakePool      = "stake-pool"
)

type QueryCurrentEpochResponse struct {
	Epoch int64 `json:"epoch"`
}

type QueryOutstandingResponse struct {
	Outstanding sdk.Int `json:"outstanding"`
}

type ObligationEntry struct {
	UnlockTime int64   `json:"unlock_time"`
	Obligation sdk.Int `json:"obligation"`
}

type QueryObligationsResponse struct {
	Obligations []ObligationEntry `json:"obligations"`
}

type QuerySnapshotIDResponse struct {
	SnapshotID uint64 `json:"snapshot_id"`
}

type QueryBalanceResponse struct {
	Balance sdk.Int `json:"balance"`
}
