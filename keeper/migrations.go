package keeper

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/wormhole-foundation/wormhole-ibc/types"
)

// Migrator is a struct for handling in-place store migrations.
type Migrator struct {
	keeper Keeper
}

// NewMigrator returns a new Migrator.
func NewMigrator(keeper Keeper) Migrator {
	return Migrator{keeper: keeper}
}

// Migrate upgrades the stored version record to the compiled-in contract
// version and runs the core bridge migration hook. The upgrade only proceeds
// from a record with the same name and a strictly older version.
func (m Migrator) Migrate(ctx sdk.Context) (types.Response, error) {
	return m.migrateTo(ctx, types.NewVersionInfo(types.ContractName, types.ContractVersion))
}

func (m Migrator) migrateTo(ctx sdk.Context, target types.VersionInfo) (types.Response, error) {
	stored, found := m.keeper.GetVersionInfo(ctx)
	if !found {
		return types.Response{}, errorsmod.Wrap(types.ErrVersionMismatch, "no version record stored")
	}

	if err := stored.ValidateUpgrade(target); err != nil {
		return types.Response{}, err
	}

	m.keeper.SetVersionInfo(ctx, target)
	m.keeper.Logger(ctx).Info("migrated contract version", "from", stored.Version, "to", target.Version)

	res, err := m.keeper.wormholeKeeper.Migrate(ctx)
	if err != nil {
		return types.Response{}, errorsmod.Wrapf(types.ErrCoreDelegation, "wormhole core migration failed: %s", err)
	}
	return res, nil
}
