package types

import (
	errorsmod "cosmossdk.io/errors"
	"golang.org/x/mod/semver"
)

// VersionInfo is the persisted contract name and semantic version record. It
// is written at instantiation and overwritten only by a successful migration.
type VersionInfo struct {
	Contract string `json:"contract"`
	Version  string `json:"version"`
}

// NewVersionInfo returns a version record for the given name and version.
func NewVersionInfo(contract, version string) VersionInfo {
	return VersionInfo{Contract: contract, Version: version}
}

// ValidateUpgrade reports whether migrating from the stored record to the
// target record is allowed: the names must match and the target version must
// be strictly newer under semantic version ordering.
func (v VersionInfo) ValidateUpgrade(target VersionInfo) error {
	if v.Contract != target.Contract {
		return errorsmod.Wrapf(ErrVersionMismatch, "stored %q, expected %q", v.Contract, target.Contract)
	}

	stored, err := canonicalVersion(v.Version)
	if err != nil {
		return errorsmod.Wrap(err, "could not parse saved contract version")
	}
	next, err := canonicalVersion(target.Version)
	if err != nil {
		return errorsmod.Wrap(err, "could not parse new contract version")
	}

	if semver.Compare(next, stored) <= 0 {
		return errorsmod.Wrapf(ErrVersionNotNewer, "stored %s, target %s", v.Version, target.Version)
	}
	return nil
}

// canonicalVersion validates a bare semantic version ("1.2.3") and returns it
// in the "v"-prefixed form golang.org/x/mod/semver operates on.
func canonicalVersion(version string) (string, error) {
	prefixed := "v" + version
	// semver.IsValid accepts shorthand like "v1"; the stored record must be a
	// full major.minor.patch version.
	if !semver.IsValid(prefixed) || semver.Canonical(prefixed) != prefixed {
		return "", errorsmod.Wrapf(ErrVersionParse, "%q", version)
	}
	return prefixed, nil
}
