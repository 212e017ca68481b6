package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wormhole-foundation/wormhole-ibc/types"
)

func TestVersionInfoValidateUpgrade(t *testing.T) {
	testCases := []struct {
		name     string
		stored   types.VersionInfo
		target   types.VersionInfo
		expError error
	}{
		{
			name:   "patch upgrade",
			stored: types.NewVersionInfo("wormhole-ibc", "1.0.0"),
			target: types.NewVersionInfo("wormhole-ibc", "1.0.1"),
		},
		{
			name:   "major upgrade",
			stored: types.NewVersionInfo("wormhole-ibc", "1.9.3"),
			target: types.NewVersionInfo("wormhole-ibc", "2.0.0"),
		},
		{
			name:   "prerelease ordered before release",
			stored: types.NewVersionInfo("wormhole-ibc", "1.1.0-rc.1"),
			target: types.NewVersionInfo("wormhole-ibc", "1.1.0"),
		},
		{
			name:     "different contract name",
			stored:   types.NewVersionInfo("wormchain-ibc-receiver", "1.0.0"),
			target:   types.NewVersionInfo("wormhole-ibc", "2.0.0"),
			expError: types.ErrVersionMismatch,
		},
		{
			name:     "equal versions",
			stored:   types.NewVersionInfo("wormhole-ibc", "1.0.0"),
			target:   types.NewVersionInfo("wormhole-ibc", "1.0.0"),
			expError: types.ErrVersionNotNewer,
		},
		{
			name:     "downgrade",
			stored:   types.NewVersionInfo("wormhole-ibc", "1.2.0"),
			target:   types.NewVersionInfo("wormhole-ibc", "1.1.9"),
			expError: types.ErrVersionNotNewer,
		},
		{
			name:     "malformed stored version",
			stored:   types.NewVersionInfo("wormhole-ibc", "one.two.three"),
			target:   types.NewVersionInfo("wormhole-ibc", "1.0.0"),
			expError: types.ErrVersionParse,
		},
		{
			name:     "malformed target version",
			stored:   types.NewVersionInfo("wormhole-ibc", "1.0.0"),
			target:   types.NewVersionInfo("wormhole-ibc", "1.0"),
			expError: types.ErrVersionParse,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.stored.ValidateUpgrade(tc.target)
			if tc.expError != nil {
				require.ErrorIs(t, err, tc.expError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGenesisStateValidate(t *testing.T) {
	require.NoError(t, types.DefaultGenesisState().Validate())

	valid := types.GenesisState{
		VersionInfo:     &types.VersionInfo{Contract: "wormhole-ibc", Version: "1.0.0"},
		ReceiverAddress: "abcd",
	}
	require.NoError(t, valid.Validate())

	malformed := types.GenesisState{
		VersionInfo: &types.VersionInfo{Contract: "wormhole-ibc", Version: "latest"},
	}
	require.ErrorIs(t, malformed.Validate(), types.ErrVersionParse)

	unnamed := types.GenesisState{
		VersionInfo: &types.VersionInfo{Version: "1.0.0"},
	}
	require.Error(t, unnamed.Validate())
}
