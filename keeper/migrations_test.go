package keeper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wormhole-foundation/wormhole-ibc/types"
)

func TestMigrate(t *testing.T) {
	target := types.NewVersionInfo(types.ContractName, "1.1.0")

	testCases := []struct {
		name     string
		stored   *types.VersionInfo
		expError error
	}{
		{
			name:   "success",
			stored: &types.VersionInfo{Contract: types.ContractName, Version: "1.0.0"},
		},
		{
			name:     "no version record",
			expError: types.ErrVersionMismatch,
		},
		{
			name:     "differently named contract",
			stored:   &types.VersionInfo{Contract: "crates.io:some-other-contract", Version: "1.0.0"},
			expError: types.ErrVersionMismatch,
		},
		{
			name:     "equal version",
			stored:   &types.VersionInfo{Contract: types.ContractName, Version: "1.1.0"},
			expError: types.ErrVersionNotNewer,
		},
		{
			name:     "stored version is newer",
			stored:   &types.VersionInfo{Contract: types.ContractName, Version: "2.0.0"},
			expError: types.ErrVersionNotNewer,
		},
		{
			name:     "malformed stored version",
			stored:   &types.VersionInfo{Contract: types.ContractName, Version: "not-a-version"},
			expError: types.ErrVersionParse,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := setupKeeper(t)
			if tc.stored != nil {
				f.keeper.SetVersionInfo(f.ctx, *tc.stored)
			}

			_, err := NewMigrator(f.keeper).migrateTo(f.ctx, target)

			if tc.expError != nil {
				require.ErrorIs(t, err, tc.expError)
				require.Zero(t, f.wormhole.migrateCalls)
				if tc.stored != nil {
					info, found := f.keeper.GetVersionInfo(f.ctx)
					require.True(t, found)
					require.Equal(t, *tc.stored, info)
				}
				return
			}

			require.NoError(t, err)
			require.Equal(t, 1, f.wormhole.migrateCalls)

			info, found := f.keeper.GetVersionInfo(f.ctx)
			require.True(t, found)
			require.Equal(t, target, info)
		})
	}
}

func TestMigrateCoreFailurePropagates(t *testing.T) {
	f := setupKeeper(t)
	f.keeper.SetVersionInfo(f.ctx, types.NewVersionInfo(types.ContractName, "0.9.0"))
	f.wormhole.migrateErr = errors.New("core migration rejected")

	_, err := NewMigrator(f.keeper).Migrate(f.ctx)
	require.ErrorIs(t, err, types.ErrCoreDelegation)
}

func TestMigrateFromInstantiatedVersion(t *testing.T) {
	f := setupKeeper(t)
	f.keeper.SetVersionInfo(f.ctx, types.NewVersionInfo(types.ContractName, "1.0.0"))

	_, err := NewMigrator(f.keeper).Migrate(f.ctx)
	require.NoError(t, err)

	info, _ := f.keeper.GetVersionInfo(f.ctx)
	require.Equal(t, types.ContractVersion, info.Version)
}
