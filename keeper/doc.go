/*
Package keeper implements the wormhole IBC gateway: it authenticates
governance VAAs issued by the fixed governance authority, applies the chain
registration they authorize, resolves the IBC channel connecting to the
registered counterparty receiver contract and relays core bridge responses
over that channel annotated with ordering metadata.

The core bridge itself (signature verification, message posting) is an
external collaborator injected as types.WormholeKeeper; all other
dependencies (channel directory, packet transport) are injected the same way.
Each call is one atomic unit of work: any failure aborts the call and leaves
persisted state unchanged, and batch VAA submissions stage their writes on a
cached context committed only after every VAA in the batch succeeds.
*/
package keeper
