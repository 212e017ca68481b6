package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/wormhole-foundation/wormhole/sdk/vaa"

	"github.com/wormhole-foundation/wormhole-ibc/types"
)

var _ types.QueryServer = Keeper{}

// ChainConnection returns the registered counterparty receiver address for a
// chain identifier.
func (k Keeper) ChainConnection(c context.Context, req *types.QueryChainConnectionRequest) (*types.QueryChainConnectionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	if vaa.ChainID(req.ChainId) != types.ReceiverChain {
		return nil, status.Errorf(codes.NotFound, "no connection registered for chain %d", req.ChainId)
	}

	address, found := k.GetReceiverAddress(ctx)
	if !found {
		return nil, status.Error(codes.NotFound, "no counterparty receiver registered")
	}
	return &types.QueryChainConnectionResponse{ConnectionId: []byte(address)}, nil
}
