package types

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	"github.com/wormhole-foundation/wormhole/sdk/vaa"
)

// WormholeKeeper defines the expected core bridge: the generic message
// posting and attestation verification machine the gateway delegates to.
type WormholeKeeper interface {
	// Instantiate runs the core bridge instantiation hook.
	Instantiate(ctx sdk.Context, info MessageInfo) (Response, error)
	// ParseAndVerifyVAA checks the signatures and quorum of a raw VAA against
	// the guardian set active at blockTime and returns the parsed attestation.
	ParseAndVerifyVAA(ctx sdk.Context, vaaBytes []byte, blockTime time.Time) (*vaa.VAA, error)
	// SubmitVAA executes a core bridge VAA submission.
	SubmitVAA(ctx sdk.Context, info MessageInfo, vaaBytes []byte) (Response, error)
	// PostMessage publishes a message through the core bridge.
	PostMessage(ctx sdk.Context, info MessageInfo, message []byte, nonce uint32) (Response, error)
	// Migrate runs the core bridge migration hook.
	Migrate(ctx sdk.Context) (Response, error)
}

// ChannelKeeper defines the expected IBC channel keeper
type ChannelKeeper interface {
	GetAllChannels(ctx sdk.Context) []channeltypes.IdentifiedChannel
}

// ICS4Wrapper defines the expected packet sending interface
type ICS4Wrapper interface {
	SendPacket(
		ctx sdk.Context,
		sourcePort string,
		sourceChannel string,
		timeoutHeight clienttypes.Height,
		timeoutTimestamp uint64,
		data []byte,
	) (uint64, error)
}
