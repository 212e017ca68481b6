package types

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
)

// WormholeIbcPacketMsg is the message sent over the IBC channel to the
// counterparty receiver contract.
type WormholeIbcPacketMsg struct {
	Publish *PublishMsg `json:"publish,omitempty"`
}

// PublishMsg wraps the enriched core bridge response for transport.
type PublishMsg struct {
	Msg Response `json:"msg"`
}

// NewPublishPacket returns the packet envelope for a relayed response.
func NewPublishPacket(msg Response) WormholeIbcPacketMsg {
	return WormholeIbcPacketMsg{Publish: &PublishMsg{Msg: msg}}
}

// GetBytes returns the JSON encoding of the packet for SendPacket.
func (p WormholeIbcPacketMsg) GetBytes() ([]byte, error) {
	bz, err := json.Marshal(p)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to marshal packet data")
	}
	return bz, nil
}
