package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRole is returned when a node reports a role name outside the
// known vocabulary.
var ErrUnknownRole = errors.New("unknown node role")

// Role is an Elasticsearch node role.
type Role int

const (
	// RoleUnknown is the zero value and is only returned alongside ErrUnknownRole.
	RoleUnknown Role = iota
	// RoleBlank is an empty role entry. It is accepted and contributes no letter.
	RoleBlank
	RoleDataCold
	RoleData
	RoleDataFrozen
	RoleDataHot
	RoleIngest
	RoleML
	RoleMaster
	RoleRemoteClusterClient
	RoleDataContent
	RoleTransform
	RoleDataWarm
	RoleVotingOnly
)

// Role letters, as used by _cat/nodes.
const (
	LetterCold    = "c"
	LetterHot     = "h"
	LetterContent = "s"
	LetterWarm    = "w"
)

var roleByName = map[string]Role{
	"":                      RoleBlank,
	"data_cold":             RoleDataCold,
	"data":                  RoleData,
	"data_frozen":           RoleDataFrozen,
	"data_hot":              RoleDataHot,
	"ingest":                RoleIngest,
	"ml":                    RoleML,
	"master":                RoleMaster,
	"remote_cluster_client": RoleRemoteClusterClient,
	"data_content":          RoleDataContent,
	"transform":             RoleTransform,
	"data_warm":             RoleDataWarm,
	"voting_only":           RoleVotingOnly,
}

var roleLetter = map[Role]string{
	RoleBlank:               "",
	RoleDataCold:            LetterCold,
	RoleData:                "d",
	RoleDataFrozen:          "f",
	RoleDataHot:             LetterHot,
	RoleIngest:              "i",
	RoleML:                  "l",
	RoleMaster:              "m",
	RoleRemoteClusterClient: "r",
	RoleDataContent:         LetterContent,
	RoleTransform:           "t",
	RoleDataWarm:            LetterWarm,
	RoleVotingOnly:          "v",
}

// ParseRole maps a role name from /_nodes/stats to a Role.
func ParseRole(name string) (Role, error) {
	r, ok := roleByName[name]
	if !ok {
		return RoleUnknown, fmt.Errorf("%w: %q", ErrUnknownRole, name)
	}
	return r, nil
}

// Letter returns the single-letter code of r. RoleBlank and RoleUnknown have none.
func (r Role) Letter() string {
	return roleLetter[r]
}

// ShortenRoles compacts a role list into its letter codes in list order,
// e.g. ["data_hot", "ingest"] becomes "hi". A node without roles yields "",
// which serializes as null.
func ShortenRoles(names []string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		r, err := ParseRole(name)
		if err != nil {
			return "", err
		}
		b.WriteString(r.Letter())
	}
	return b.String(), nil
}

// IsNonHotTier reports whether a compacted role string places a node in the
// cold or warm tier without also making it hot or content. Indexing on such
// a node points at misrouted writes.
func IsNonHotTier(roles string) bool {
	coolTier := strings.Contains(roles, LetterCold) || strings.Contains(roles, LetterWarm)
	hotTier := strings.Contains(roles, LetterHot) || strings.Contains(roles, LetterContent)
	return coolTier && !hotTier
}
