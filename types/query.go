package types

import (
	"context"
)

// QueryChainConnectionRequest asks for the registered counterparty receiver
// address of a chain.
type QueryChainConnectionRequest struct {
	ChainId uint16 `json:"chain_id"`
}

// QueryChainConnectionResponse returns the registered receiver address bytes.
type QueryChainConnectionResponse struct {
	ConnectionId []byte `json:"connection_id"`
}

// QueryServer is the query surface of the gateway.
type QueryServer interface {
	// ChainConnection is side effect free and always reflects the latest
	// committed registration.
	ChainConnection(ctx context.Context, req *QueryChainConnectionRequest) (*QueryChainConnectionResponse, error)
}
