package types

import (
	errorsmod "cosmossdk.io/errors"
)

// ExecuteMsg is the execute entry point of the gateway, a tagged union with
// exactly one variant set.
type ExecuteMsg struct {
	// SubmitUpdateChainConnection processes one or more governance VAAs as a
	// batch. If processing any VAA returns an error the entire submission is
	// aborted and none of the VAAs are committed.
	SubmitUpdateChainConnection *SubmitUpdateChainConnection `json:"submit_update_chain_connection,omitempty"`
	// SubmitUpdateWormchainReceiverVAA processes a single governance VAA.
	SubmitUpdateWormchainReceiverVAA *SubmitUpdateWormchainReceiverVAA `json:"submit_update_wormchain_receiver_vaa,omitempty"`
	// Core passes a message through to the core bridge.
	Core *CoreExecuteMsg `json:"core_execute_msg,omitempty"`
}

// SubmitUpdateChainConnection carries governance VAAs in wormhole wire format.
type SubmitUpdateChainConnection struct {
	VAAs [][]byte `json:"vaas"`
}

// SubmitUpdateWormchainReceiverVAA carries one governance VAA in wormhole
// wire format.
type SubmitUpdateWormchainReceiverVAA struct {
	VAA []byte `json:"vaa"`
}

// CoreExecuteMsg is the subset of the core bridge execute surface the gateway
// forwards, a tagged union with exactly one variant set.
type CoreExecuteMsg struct {
	SubmitVAA   *SubmitVAA   `json:"submit_vaa,omitempty"`
	PostMessage *PostMessage `json:"post_message,omitempty"`
}

// SubmitVAA submits a signed VAA to the core bridge unchanged.
type SubmitVAA struct {
	VAA []byte `json:"vaa"`
}

// PostMessage publishes a message through the core bridge. The gateway relays
// the resulting response over IBC.
type PostMessage struct {
	Message []byte `json:"message"`
	Nonce   uint32 `json:"nonce"`
}

// ValidateBasic checks that exactly one variant of the union is set.
func (m ExecuteMsg) ValidateBasic() error {
	set := 0
	if m.SubmitUpdateChainConnection != nil {
		set++
	}
	if m.SubmitUpdateWormchainReceiverVAA != nil {
		set++
	}
	if m.Core != nil {
		set++
	}
	if set != 1 {
		return errorsmod.Wrapf(ErrUnknownMessage, "expected exactly one variant, got %d", set)
	}
	if m.Core != nil {
		return m.Core.ValidateBasic()
	}
	return nil
}

// ValidateBasic checks that exactly one variant of the union is set.
func (m CoreExecuteMsg) ValidateBasic() error {
	set := 0
	if m.SubmitVAA != nil {
		set++
	}
	if m.PostMessage != nil {
		set++
	}
	if set != 1 {
		return errorsmod.Wrapf(ErrUnknownMessage, "expected exactly one core variant, got %d", set)
	}
	return nil
}
