package keeper

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/wormhole-foundation/wormhole-ibc/types"
)

// Instantiate writes the contract version record, runs the core bridge
// instantiation hook and reports the gateway's identity attributes.
func (k Keeper) Instantiate(ctx sdk.Context, info types.MessageInfo) (types.Response, error) {
	k.SetVersionInfo(ctx, types.NewVersionInfo(types.ContractName, types.ContractVersion))

	res, err := k.wormholeKeeper.Instantiate(ctx, info)
	if err != nil {
		return types.Response{}, errorsmod.Wrapf(types.ErrCoreDelegation, "wormhole core instantiation failed: %s", err)
	}

	k.emitModuleEvent(ctx)
	return res.
		AddAttribute(types.AttributeKeyAction, types.AttributeValueInstantiate).
		AddAttribute(types.AttributeKeyOwner, info.Sender).
		AddAttribute(types.AttributeKeyVersion, types.ContractVersion), nil
}

// Execute dispatches an execute message to its handler. Exactly one variant
// of the union must be set.
func (k Keeper) Execute(ctx sdk.Context, info types.MessageInfo, msg types.ExecuteMsg) (types.Response, error) {
	if err := msg.ValidateBasic(); err != nil {
		return types.Response{}, err
	}

	switch {
	case msg.SubmitUpdateChainConnection != nil:
		return k.SubmitUpdateChainConnection(ctx, info, msg.SubmitUpdateChainConnection.VAAs)
	case msg.SubmitUpdateWormchainReceiverVAA != nil:
		return k.SubmitUpdateChainConnection(ctx, info, [][]byte{msg.SubmitUpdateWormchainReceiverVAA.VAA})
	case msg.Core != nil:
		return k.executeCore(ctx, info, *msg.Core)
	}
	return types.Response{}, types.ErrUnknownMessage
}

func (k Keeper) executeCore(ctx sdk.Context, info types.MessageInfo, msg types.CoreExecuteMsg) (types.Response, error) {
	switch {
	case msg.SubmitVAA != nil:
		res, err := k.wormholeKeeper.SubmitVAA(ctx, info, msg.SubmitVAA.VAA)
		if err != nil {
			return types.Response{}, errorsmod.Wrapf(types.ErrCoreDelegation, "failed core submit_vaa execution: %s", err)
		}
		return res, nil
	case msg.PostMessage != nil:
		return k.postMessage(ctx, info, *msg.PostMessage)
	}
	return types.Response{}, types.ErrUnknownMessage
}
