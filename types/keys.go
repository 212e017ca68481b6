package types

import (
	"time"

	"github.com/wormhole-foundation/wormhole/sdk/vaa"
)

const (
	// ModuleName defines the wormhole IBC gateway module name
	ModuleName = "wormholeibc"

	// StoreKey is the store key string for the gateway module
	StoreKey = ModuleName

	// ContractName identifies the persisted version record. Migrations from a
	// record carrying a different name are rejected.
	ContractName = "wormhole-ibc"

	// ContractVersion is the version written on instantiation and targeted by
	// migrations.
	ContractVersion = "1.1.0"

	// CounterpartyPortPrefix is the port prefix under which the counterparty
	// receiver contract is bound on the remote chain.
	CounterpartyPortPrefix = "wasm."

	// PacketLifetime bounds delivery of a relayed packet. The timeout
	// timestamp of every outbound packet is the current block time plus this
	// duration.
	PacketLifetime = time.Hour
)

const (
	// GovernanceChain is the only emitter chain accepted for governance VAAs.
	GovernanceChain = vaa.ChainIDSolana

	// ReceiverChain is the chain this gateway relays to. RegisterChain
	// actions must name it.
	ReceiverChain = vaa.ChainIDWormchain
)

// GovernanceEmitter is the only emitter address accepted for governance VAAs,
// together with GovernanceChain the fixed governance authority.
var GovernanceEmitter = vaa.Address{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04,
}

var (
	// ContractVersionKey defines the key under which the version record is stored
	ContractVersionKey = []byte{0x01}
	// ReceiverAddressKey defines the key under which the registered counterparty
	// receiver address is stored
	ReceiverAddressKey = []byte{0x02}
)
