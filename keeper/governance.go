package keeper

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/wormhole-foundation/wormhole/sdk/vaa"

	"github.com/wormhole-foundation/wormhole-ibc/types"
)

// SubmitUpdateChainConnection processes governance VAAs strictly in order.
// Writes are staged on a cached context and committed only after the whole
// batch succeeds, so the first failure leaves no partial state behind.
func (k Keeper) SubmitUpdateChainConnection(ctx sdk.Context, info types.MessageInfo, vaas [][]byte) (types.Response, error) {
	cacheCtx, writeCache := ctx.CacheContext()

	res := types.NewResponse()
	for _, raw := range vaas {
		var err error
		res, err = k.submitGovernanceVAA(cacheCtx, info, raw)
		if err != nil {
			return types.Response{}, err
		}
	}

	writeCache()
	return res, nil
}

func (k Keeper) submitGovernanceVAA(ctx sdk.Context, info types.MessageInfo, raw []byte) (types.Response, error) {
	attestation, err := k.wormholeKeeper.ParseAndVerifyVAA(ctx, raw, ctx.BlockTime())
	if err != nil {
		return types.Response{}, errorsmod.Wrapf(types.ErrAttestationInvalid, "%s", err)
	}

	// hard authentication boundary: only the fixed governance authority may
	// trigger state changes
	if attestation.EmitterChain != types.GovernanceChain || attestation.EmitterAddress != types.GovernanceEmitter {
		return types.Response{}, errorsmod.Wrapf(types.ErrUntrustedEmitter,
			"chain %d, address %s", attestation.EmitterChain, attestation.EmitterAddress.String())
	}

	packet, err := types.ParseGovernancePacket(attestation.Payload)
	if err != nil {
		return types.Response{}, err
	}

	// this governance domain is chain agnostic
	if packet.Chain != vaa.ChainIDUnset {
		return types.Response{}, errorsmod.Wrapf(types.ErrWrongTargetChain, "chain %d", packet.Chain)
	}

	switch action := packet.Action.(type) {
	case types.RegisterChain:
		return k.registerChain(ctx, info, action)
	default:
		return types.Response{}, errorsmod.Wrapf(types.ErrUnsupportedGovernanceAction, "%T", action)
	}
}

func (k Keeper) registerChain(ctx sdk.Context, info types.MessageInfo, action types.RegisterChain) (types.Response, error) {
	if action.Chain != types.ReceiverChain {
		return types.Response{}, errorsmod.Wrapf(types.ErrWrongChainRegistration, "chain %d", action.Chain)
	}

	address, err := types.DecodeReceiverAddress(action.EmitterAddress)
	if err != nil {
		return types.Response{}, err
	}

	k.SetReceiverAddress(ctx, address)
	k.Logger(ctx).Info("registered counterparty receiver", "chain", action.Chain.String(), "address", address)
	k.emitRegisterChainEvent(ctx, action.Chain.String(), address)

	event := types.NewEvent(types.EventTypeRegisterChain).
		AddAttribute(types.AttributeKeyChain, action.Chain.String()).
		AddAttribute(types.AttributeKeyEmitterAddress, address)

	return types.NewResponse().
		AddAttribute(types.AttributeKeyAction, types.AttributeValueSubmitUpdateVAA).
		AddAttribute(types.AttributeKeyOwner, info.Sender).
		AddEvent(event), nil
}
