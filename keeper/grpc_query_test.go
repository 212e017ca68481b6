package keeper

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/wormhole-foundation/wormhole-ibc/types"
)

func TestChainConnection(t *testing.T) {
	f := setupKeeper(t)
	f.keeper.SetReceiverAddress(f.ctx, testReceiver)

	res, err := f.keeper.ChainConnection(f.ctx, &types.QueryChainConnectionRequest{
		ChainId: uint16(types.ReceiverChain),
	})
	require.NoError(t, err)
	require.Equal(t, []byte(testReceiver), res.ConnectionId)
}

func TestChainConnectionEmptyRequest(t *testing.T) {
	f := setupKeeper(t)

	_, err := f.keeper.ChainConnection(f.ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestChainConnectionUnknownChain(t *testing.T) {
	f := setupKeeper(t)
	f.keeper.SetReceiverAddress(f.ctx, testReceiver)

	_, err := f.keeper.ChainConnection(f.ctx, &types.QueryChainConnectionRequest{ChainId: 1})
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestChainConnectionNotRegistered(t *testing.T) {
	f := setupKeeper(t)

	_, err := f.keeper.ChainConnection(f.ctx, &types.QueryChainConnectionRequest{
		ChainId: uint16(types.ReceiverChain),
	})
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestChainConnectionIdempotent(t *testing.T) {
	f := setupKeeper(t)
	f.keeper.SetReceiverAddress(f.ctx, testReceiver)

	req := &types.QueryChainConnectionRequest{ChainId: uint16(types.ReceiverChain)}
	first, err := f.keeper.ChainConnection(f.ctx, req)
	require.NoError(t, err)
	second, err := f.keeper.ChainConnection(f.ctx, req)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
