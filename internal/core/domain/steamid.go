package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// steamIDBase is the SteamID64 value of account id 0.
const steamIDBase = 76561197960265728

const canonicalPrefix = "STEAM_1:"
const legacyPrefix = "STEAM_0:"

var ErrInvalidSteamID = errors.New("invalid steam id")

var canonicalPattern = regexp.MustCompile(`^STEAM_1:[01]:[0-9]+$`)

// ToCanonical converts a numeric SteamID64 string to the canonical
// STEAM_1:X:Y form. Values below the SteamID64 base offset have no
// account id and are rejected.
func ToCanonical(steamID64 string) (string, error) {
	n, err := strconv.ParseUint(steamID64, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a steamid64", ErrInvalidSteamID, steamID64)
	}
	if n < steamIDBase {
		return "", fmt.Errorf("%w: %q is below the steamid64 base", ErrInvalidSteamID, steamID64)
	}
	accountID := n - steamIDBase
	return fmt.Sprintf("STEAM_1:%d:%d", accountID%2, accountID/2), nil
}

// RepairLegacyPrefix rewrites the first STEAM_0: prefix to STEAM_1:.
// The remainder is not validated. Idempotent for already-canonical ids.
func RepairLegacyPrefix(id string) string {
	if strings.HasPrefix(id, legacyPrefix) {
		return strings.Replace(id, legacyPrefix, canonicalPrefix, 1)
	}
	return id
}

// NormalizeSteamID accepts a SteamID in any of the three supported
// encodings (SteamID64, STEAM_0:X:Y, STEAM_1:X:Y) and returns the
// canonical form. Strict mode additionally requires the X:Y suffix to be
// well formed; the permissive mode reproduces the legacy behaviour of
// accepting whatever the prefix repair yields.
func NormalizeSteamID(input string, strict bool) (string, error) {
	id := input
	switch {
	case strings.HasPrefix(input, canonicalPrefix):
	default:
		canonical, err := ToCanonical(input)
		if err == nil {
			return canonical, nil
		}
		id = RepairLegacyPrefix(input)
	}

	if strict && !canonicalPattern.MatchString(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSteamID, input)
	}
	return id, nil
}
