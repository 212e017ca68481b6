package keeper

import (
	"strconv"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	"github.com/wormhole-foundation/wormhole-ibc/types"
)

// ResolveChannel returns the first channel whose counterparty port is bound
// to the given receiver contract. Channel topology can change between calls,
// so the live channel list must be queried fresh on every relay.
func ResolveChannel(channels []channeltypes.IdentifiedChannel, receiverAddress string) (channeltypes.IdentifiedChannel, error) {
	counterpartyPort := types.CounterpartyPortPrefix + receiverAddress
	for _, channel := range channels {
		if channel.Counterparty.PortId == counterpartyPort {
			return channel, nil
		}
	}
	return channeltypes.IdentifiedChannel{}, errorsmod.Wrapf(types.ErrChannelNotFound,
		"no channel connecting to receiver contract %s", receiverAddress)
}

// postMessage executes the core bridge PostMessage call and relays its
// response, annotated with ordering metadata, over the channel connecting to
// the registered counterparty receiver.
func (k Keeper) postMessage(ctx sdk.Context, info types.MessageInfo, msg types.PostMessage) (types.Response, error) {
	receiverAddress, found := k.GetReceiverAddress(ctx)
	if !found {
		return types.Response{}, types.ErrReceiverNotRegistered
	}

	channel, err := ResolveChannel(k.channelKeeper.GetAllChannels(ctx), receiverAddress)
	if err != nil {
		return types.Response{}, err
	}

	blockHeight := ctx.BlockHeight()
	// the transaction index is absent for calls triggered outside transaction
	// boundaries, e.g. block-level hooks
	txIndex, insideTx := types.TxIndexFromContext(ctx)

	res, err := k.wormholeKeeper.PostMessage(ctx, info, msg.Message, msg.Nonce)
	if err != nil {
		return types.Response{}, errorsmod.Wrapf(types.ErrCoreDelegation, "wormhole core execution failed: %s", err)
	}

	if insideTx {
		res = res.AddAttribute(types.AttributeKeyTxIndex, strconv.FormatUint(uint64(txIndex), 10))
	}
	res = res.AddAttribute(types.AttributeKeyBlockHeight, strconv.FormatInt(blockHeight, 10))

	data, err := types.NewPublishPacket(res).GetBytes()
	if err != nil {
		return types.Response{}, err
	}

	timeoutTimestamp := uint64(ctx.BlockTime().Add(types.PacketLifetime).UnixNano())
	sequence, err := k.ics4Wrapper.SendPacket(ctx, channel.PortId, channel.ChannelId, clienttypes.ZeroHeight(), timeoutTimestamp, data)
	if err != nil {
		return types.Response{}, errorsmod.Wrapf(err, "failed to send packet on channel %s", channel.ChannelId)
	}

	k.Logger(ctx).Info("relayed message", "channel_id", channel.ChannelId, "sequence", sequence)
	k.emitPublishEvent(ctx, channel.ChannelId, sequence, blockHeight)

	return res.AddAttribute(types.AttributeKeySequence, strconv.FormatUint(sequence, 10)), nil
}
