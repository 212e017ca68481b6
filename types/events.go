package types

// Wormhole IBC gateway events
const (
	EventTypeRegisterChain = "RegisterChain"
	EventTypePublish       = "publish"

	AttributeKeyChannelID = "channel_id"

	AttributeKeyAction         = "action"
	AttributeKeyOwner          = "owner"
	AttributeKeyVersion        = "version"
	AttributeKeyChain          = "chain"
	AttributeKeyEmitterAddress = "emitter_address"
	AttributeKeyBlockHeight    = "message.block_height"
	AttributeKeyTxIndex        = "message.tx_index"
	AttributeKeySequence       = "message.sequence"

	AttributeValueInstantiate     = "instantiate"
	AttributeValueSubmitUpdateVAA = "submit_update_vaa"
)
