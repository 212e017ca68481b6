package types

import (
	errorsmod "cosmossdk.io/errors"
)

// GenesisState holds the two persisted singletons of the gateway.
type GenesisState struct {
	VersionInfo     *VersionInfo `json:"version_info,omitempty"`
	ReceiverAddress string       `json:"receiver_address,omitempty"`
}

// DefaultGenesisState returns an empty genesis state. The version record is
// written by instantiation rather than genesis by default.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{}
}

// Validate checks the genesis state for well-formedness.
func (gs GenesisState) Validate() error {
	if gs.VersionInfo != nil {
		if gs.VersionInfo.Contract == "" {
			return errorsmod.Wrap(ErrVersionMismatch, "empty contract name")
		}
		if _, err := canonicalVersion(gs.VersionInfo.Version); err != nil {
			return err
		}
	}
	return nil
}
