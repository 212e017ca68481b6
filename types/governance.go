package types

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"

	errorsmod "cosmossdk.io/errors"

	"github.com/wormhole-foundation/wormhole/sdk/vaa"
)

// governanceModule is the 32-byte module discriminator of bridge governance
// packets, the ASCII module name left padded with zeros.
const governanceModule = "TokenBridge"

const (
	actionRegisterChain   byte = 1
	actionContractUpgrade byte = 2
)

// addressLen is the fixed length of on-wire addresses in governance packets.
const addressLen = 32

// GovernancePacket is a decoded governance instruction: a target chain scope
// and one action. The zero chain means the instruction applies to all chains.
type GovernancePacket struct {
	Chain  vaa.ChainID
	Action GovernanceAction
}

// GovernanceAction is a closed set of governance instructions. The gateway
// executes RegisterChain; all other actions decode but are rejected by the
// handler.
type GovernanceAction interface {
	isGovernanceAction()
}

// RegisterChain binds a counterparty chain to its receiver contract address.
type RegisterChain struct {
	Chain          vaa.ChainID
	EmitterAddress [addressLen]byte
}

// ContractUpgrade authorizes a code upgrade of the bridge contract. Decoded
// for completeness, never executed by the gateway.
type ContractUpgrade struct {
	NewContract [addressLen]byte
}

func (RegisterChain) isGovernanceAction()   {}
func (ContractUpgrade) isGovernanceAction() {}

// moduleBytes returns the padded module discriminator.
func moduleBytes() []byte {
	padded := make([]byte, addressLen)
	copy(padded[addressLen-len(governanceModule):], governanceModule)
	return padded
}

// ParseGovernancePacket decodes a governance packet from a trusted VAA
// payload. The payload must consist of the 32-byte module discriminator, one
// action byte, the big-endian target chain and the exact action body.
func ParseGovernancePacket(payload []byte) (GovernancePacket, error) {
	const headerLen = addressLen + 1 + 2

	if len(payload) < headerLen {
		return GovernancePacket{}, errorsmod.Wrapf(ErrPayloadDecode, "payload too short: %d bytes", len(payload))
	}
	if !bytes.Equal(payload[:addressLen], moduleBytes()) {
		return GovernancePacket{}, errorsmod.Wrap(ErrPayloadDecode, "wrong governance module")
	}

	action := payload[addressLen]
	chain := vaa.ChainID(binary.BigEndian.Uint16(payload[addressLen+1 : headerLen]))
	body := payload[headerLen:]

	packet := GovernancePacket{Chain: chain}
	switch action {
	case actionRegisterChain:
		if len(body) != 2+addressLen {
			return GovernancePacket{}, errorsmod.Wrapf(ErrPayloadDecode, "register chain body must be %d bytes, got %d", 2+addressLen, len(body))
		}
		registration := RegisterChain{Chain: vaa.ChainID(binary.BigEndian.Uint16(body[:2]))}
		copy(registration.EmitterAddress[:], body[2:])
		packet.Action = registration
	case actionContractUpgrade:
		if len(body) != addressLen {
			return GovernancePacket{}, errorsmod.Wrapf(ErrPayloadDecode, "contract upgrade body must be %d bytes, got %d", addressLen, len(body))
		}
		upgrade := ContractUpgrade{}
		copy(upgrade.NewContract[:], body)
		packet.Action = upgrade
	default:
		return GovernancePacket{}, errorsmod.Wrapf(ErrPayloadDecode, "unknown action %d", action)
	}
	return packet, nil
}

// Serialize encodes the packet in the bridge governance wire format.
func (p GovernancePacket) Serialize() []byte {
	buf := &bytes.Buffer{}
	buf.Write(moduleBytes())

	switch action := p.Action.(type) {
	case RegisterChain:
		buf.WriteByte(actionRegisterChain)
		_ = binary.Write(buf, binary.BigEndian, uint16(p.Chain))
		_ = binary.Write(buf, binary.BigEndian, uint16(action.Chain))
		buf.Write(action.EmitterAddress[:])
	case ContractUpgrade:
		buf.WriteByte(actionContractUpgrade)
		_ = binary.Write(buf, binary.BigEndian, uint16(p.Chain))
		buf.Write(action.NewContract[:])
	}
	return buf.Bytes()
}

// DecodeReceiverAddress interprets a fixed-length emitter address field as a
// UTF-8 contract address, stripping the left zero padding.
func DecodeReceiverAddress(raw [addressLen]byte) (string, error) {
	trimmed := bytes.TrimLeft(raw[:], "\x00")
	if len(trimmed) == 0 {
		return "", errorsmod.Wrap(ErrAddressDecode, "empty address")
	}
	if !utf8.Valid(trimmed) {
		return "", errorsmod.Wrap(ErrAddressDecode, "invalid utf-8")
	}
	return string(trimmed), nil
}
