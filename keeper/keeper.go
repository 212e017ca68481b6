package keeper

import (
	"encoding/json"

	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/wormhole-foundation/wormhole-ibc/types"
)

// Keeper defines the wormhole IBC gateway keeper. All persistent state lives
// under the module store; every collaborator is injected so it can be
// substituted in tests.
type Keeper struct {
	storeService corestore.KVStoreService

	wormholeKeeper types.WormholeKeeper
	channelKeeper  types.ChannelKeeper
	ics4Wrapper    types.ICS4Wrapper
}

// NewKeeper creates a new gateway Keeper instance
func NewKeeper(
	storeService corestore.KVStoreService,
	wormholeKeeper types.WormholeKeeper,
	channelKeeper types.ChannelKeeper,
	ics4Wrapper types.ICS4Wrapper,
) Keeper {
	return Keeper{
		storeService:   storeService,
		wormholeKeeper: wormholeKeeper,
		channelKeeper:  channelKeeper,
		ics4Wrapper:    ics4Wrapper,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// GetVersionInfo returns the persisted contract version record.
func (k Keeper) GetVersionInfo(ctx sdk.Context) (types.VersionInfo, bool) {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.ContractVersionKey)
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return types.VersionInfo{}, false
	}

	var info types.VersionInfo
	if err := json.Unmarshal(bz, &info); err != nil {
		panic(err)
	}
	return info, true
}

// SetVersionInfo overwrites the persisted contract version record.
func (k Keeper) SetVersionInfo(ctx sdk.Context, info types.VersionInfo) {
	bz, err := json.Marshal(info)
	if err != nil {
		panic(err)
	}
	if err := k.storeService.OpenKVStore(ctx).Set(types.ContractVersionKey, bz); err != nil {
		panic(err)
	}
}

// GetReceiverAddress returns the registered counterparty receiver address.
func (k Keeper) GetReceiverAddress(ctx sdk.Context) (string, bool) {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.ReceiverAddressKey)
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return "", false
	}
	return string(bz), true
}

// SetReceiverAddress overwrites the registered counterparty receiver address.
func (k Keeper) SetReceiverAddress(ctx sdk.Context, address string) {
	if err := k.storeService.OpenKVStore(ctx).Set(types.ReceiverAddressKey, []byte(address)); err != nil {
		panic(err)
	}
}
