package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

type txIndexKey struct{}

// WithTxIndex returns a context annotated with the index of the transaction
// currently executing. The host sets it for calls running inside a
// transaction; calls triggered by block-level hooks carry no index.
func WithTxIndex(ctx sdk.Context, index uint32) sdk.Context {
	return ctx.WithValue(txIndexKey{}, index)
}

// TxIndexFromContext returns the transaction index of the current call, if
// the call executes inside a transaction.
func TxIndexFromContext(ctx sdk.Context) (uint32, bool) {
	index, ok := ctx.Value(txIndexKey{}).(uint32)
	return index, ok
}
