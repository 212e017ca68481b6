package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Wormhole IBC gateway sentinel errors
var (
	ErrVersionMismatch             = errorsmod.Register(ModuleName, 2, "can only migrate from the same contract type")
	ErrVersionParse                = errorsmod.Register(ModuleName, 3, "malformed semantic version")
	ErrVersionNotNewer             = errorsmod.Register(ModuleName, 4, "cannot migrate to the same or an older version")
	ErrAttestationInvalid          = errorsmod.Register(ModuleName, 5, "vaa verification failed")
	ErrUntrustedEmitter            = errorsmod.Register(ModuleName, 6, "vaa not issued by the governance authority")
	ErrPayloadDecode               = errorsmod.Register(ModuleName, 7, "failed to decode governance packet")
	ErrWrongTargetChain            = errorsmod.Register(ModuleName, 8, "governance vaa is for another chain")
	ErrWrongChainRegistration      = errorsmod.Register(ModuleName, 9, "registration does not name the receiver chain")
	ErrAddressDecode               = errorsmod.Register(ModuleName, 10, "emitter address is not valid utf-8")
	ErrUnsupportedGovernanceAction = errorsmod.Register(ModuleName, 11, "unsupported governance action")
	ErrReceiverNotRegistered       = errorsmod.Register(ModuleName, 12, "no counterparty receiver registered")
	ErrChannelNotFound             = errorsmod.Register(ModuleName, 13, "no channel connecting to the receiver contract")
	ErrCoreDelegation              = errorsmod.Register(ModuleName, 14, "core bridge delegation failed")
	ErrUnknownMessage              = errorsmod.Register(ModuleName, 15, "unknown execute message")
)
