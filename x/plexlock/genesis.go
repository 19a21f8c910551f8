package plexlock

import (
	"github.com/pkg/errors"

	sdk "github.com/plexfi/plexlock/types"
	"github.com/plexfi/plexlock/x/plexlock/keeper"
	"github.com/plexfi/plexlock/x/plexlock/types"
)

// GenesisState holds the module state written at chain start.
type GenesisState struct {
	Params types.Params `json:"params"`
	Paused bool         `json:"paused"`
}

func NewGenesisState(params types.Params, paused bool) GenesisState {
	return GenesisState{Params: params, Paused: paused}
}

func DefaultGenesisState() GenesisState {
	return GenesisState{Params: types.DefaultParams()}
}

func ValidateGenesis(data GenesisState) error {
	if err := data.Params.Validate(); err != nil {
		return errors.Wrap(err, "invalid plexlock params")
	}
	return nil
}

func InitGenesis(ctx sdk.Context, k keeper.Keeper, data GenesisState) {
	k.SetParams(ctx, data.Params)
	if data.Paused {
		k.ForcePauseState(ctx, true)
	}
}

func ExportGenesis(ctx sdk.Context, k keeper.Keeper) GenesisState {
	return GenesisState{
		Params: k.GetParams(ctx),
		Paused: k.IsPaused(ctx),
	}
}
