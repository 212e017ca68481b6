package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/wormhole-foundation/wormhole-ibc/types"
)

// InitGenesis initializes the gateway state from a genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, state types.GenesisState) {
	if state.VersionInfo != nil {
		k.SetVersionInfo(ctx, *state.VersionInfo)
	}
	if state.ReceiverAddress != "" {
		k.SetReceiverAddress(ctx, state.ReceiverAddress)
	}
}

// ExportGenesis exports the gateway state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	state := types.DefaultGenesisState()
	if info, found := k.GetVersionInfo(ctx); found {
		state.VersionInfo = &info
	}
	if address, found := k.GetReceiverAddress(ctx); found {
		state.ReceiverAddress = address
	}
	return state
}
