package keeper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wormhole-foundation/wormhole-ibc/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	f := setupKeeper(t)

	state := types.GenesisState{
		VersionInfo:     &types.VersionInfo{Contract: types.ContractName, Version: "1.0.0"},
		ReceiverAddress: testReceiver,
	}
	require.NoError(t, state.Validate())

	f.keeper.InitGenesis(f.ctx, state)

	exported := f.keeper.ExportGenesis(f.ctx)
	require.Equal(t, &state, exported)
}

func TestGenesisEmpty(t *testing.T) {
	f := setupKeeper(t)

	f.keeper.InitGenesis(f.ctx, *types.DefaultGenesisState())

	exported := f.keeper.ExportGenesis(f.ctx)
	require.Nil(t, exported.VersionInfo)
	require.Empty(t, exported.ReceiverAddress)
}
