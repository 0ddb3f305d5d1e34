// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"regexp"
	"strconv"
)

// Tree is a family tree (genealogical dataset). Users hold an independent
// role in every tree.
type Tree struct {
	TreeID int64  `json:"tree_id"`
	Name   string `json:"name"`
	Title  string `json:"title"`

	// Email is the address notifications "from the tree" are sent from.
	Email string `json:"email"`
}

// Role is the permission tier a user holds in one tree.
type Role string

const (
	RoleNone   Role = "none"
	RoleAccess Role = "access"
	RoleEdit   Role = "edit"
	RoleAccept Role = "accept"
	RoleAdmin  Role = "admin"
)

// Roles lists every role in ascending order.
var Roles = []Role{RoleNone, RoleAccess, RoleEdit, RoleAccept, RoleAdmin}

var roleLabels = map[Role]string{
	RoleNone:   "Visitor",
	RoleAccess: "Member",
	RoleEdit:   "Editor",
	RoleAccept: "Moderator",
	RoleAdmin:  "Manager",
}

// ParseRole returns the role named s. ok is false for unknown names.
func ParseRole(s string) (Role, bool) {
	for _, r := range Roles {
		if string(r) == s {
			return r, true
		}
	}
	return RoleNone, false
}

// Rank is the position of r in the ordered role list. Unknown roles rank as
// [RoleNone].
func (r Role) Rank() int {
	for i, role := range Roles {
		if role == r {
			return i
		}
	}
	return 0
}

// AtLeast reports whether r grants everything other grants.
func (r Role) AtLeast(other Role) bool {
	return r.Rank() >= other.Rank()
}

// Label is the human readable role name.
func (r Role) Label() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return roleLabels[RoleNone]
}

// Stored tree-scoped user preference keys.
const (
	TreePrefRole                   = "canedit"
	TreePrefIndividual             = "gedcomid"
	TreePrefRelationshipPathLength = "RELATIONSHIP_PATH_LENGTH"
)

// MaxRelationshipPathLength bounds the privacy distance a restricted user can see.
const MaxRelationshipPathLength = 10

// TreeUserPreferences are the preferences one user holds in one tree.
type TreeUserPreferences struct {
	TreeID int64
	Role   Role

	// IndividualXref links the user to an individual record of the tree.
	IndividualXref string

	// RelationshipPathLength is nil when unset. It is only meaningful while
	// IndividualXref is set.
	RelationshipPathLength *int
}

// TreeUserPreferencesFromSettings decodes stored tree-scoped settings.
func TreeUserPreferencesFromSettings(treeID int64, settings map[string]string) TreeUserPreferences {
	prefs := TreeUserPreferences{
		TreeID:         treeID,
		Role:           RoleNone,
		IndividualXref: settings[TreePrefIndividual],
	}

	if role, ok := ParseRole(settings[TreePrefRole]); ok {
		prefs.Role = role
	}

	if v, err := strconv.Atoi(settings[TreePrefRelationshipPathLength]); err == nil {
		prefs.RelationshipPathLength = &v
	}

	return prefs
}

var xrefPattern = regexp.MustCompile(`^[A-Za-z0-9:_.-]{1,20}$`)

// ValidXref reports whether s looks like a record identifier.
func ValidXref(s string) bool {
	return xrefPattern.MatchString(s)
}
