package keeper

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/wormhole-foundation/wormhole-ibc/types"
)

// emitModuleEvent emits the generic message event identifying the module.
func (k Keeper) emitModuleEvent(ctx sdk.Context) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	)
}

// emitRegisterChainEvent emits the chain registration event.
func (k Keeper) emitRegisterChainEvent(ctx sdk.Context, chain, address string) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeRegisterChain,
			sdk.NewAttribute(types.AttributeKeyChain, chain),
			sdk.NewAttribute(types.AttributeKeyEmitterAddress, address),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// emitPublishEvent emits the outbound relay event.
func (k Keeper) emitPublishEvent(ctx sdk.Context, channelID string, sequence uint64, blockHeight int64) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePublish,
			sdk.NewAttribute(types.AttributeKeyChannelID, channelID),
			sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(sequence, 10)),
			sdk.NewAttribute(types.AttributeKeyBlockHeight, strconv.FormatInt(blockHeight, 10)),
		),
	)
}
