// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "", "abc123")
	assert.Equal(t, AppBuildInfo{Version: "1.2.0", Date: "N/A", Commit: "abc123"}, info)
	assert.Equal(t, "Build version: 1.2.0\nBuild date: N/A\nBuild commit: abc123", info.String())
}

// ─────────────────────────────────────────────
// block settings
// ─────────────────────────────────────────────

func TestParseBlockNum(t *testing.T) {
	tests := map[string]int{
		"5":      5,
		" 7 ":    7,
		"1":      MinBlockNum,
		"10000":  MaxBlockNum,
		"0":      DefaultBlockNum,
		"10001":  DefaultBlockNum,
		"-3":     DefaultBlockNum,
		"twelve": DefaultBlockNum,
		"":       DefaultBlockNum,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseBlockNum(in), in)
	}
}

func TestParseInfoStyle(t *testing.T) {
	assert.Equal(t, InfoStyleList, ParseInfoStyle("list"))
	assert.Equal(t, InfoStyleTable, ParseInfoStyle("table"))
	assert.Equal(t, DefaultBlockInfoStyle, ParseInfoStyle("cloud"))
	assert.Equal(t, DefaultBlockInfoStyle, ParseInfoStyle(""))
}

func TestBlockSettings_FromMapAndMerge(t *testing.T) {
	assert.Equal(t, DefaultBlockSettings(), BlockSettingsFromMap(nil))

	stored := BlockSettingsFromMap(map[string]string{BlockSettingNum: "3", BlockSettingInfoStyle: "list"})
	assert.Equal(t, BlockSettings{Num: 3, InfoStyle: InfoStyleList}, stored)

	merged := stored.Merge(map[string]string{BlockSettingNum: "", BlockSettingInfoStyle: "table"})
	assert.Equal(t, BlockSettings{Num: 3, InfoStyle: InfoStyleTable}, merged)

	merged = stored.Merge(map[string]string{BlockSettingNum: "bogus"})
	assert.Equal(t, DefaultBlockNum, merged.Num)
}

func TestBlock_PageType(t *testing.T) {
	treeID, userID := int64(1), int64(2)
	assert.Equal(t, PageTree, Block{TreeID: &treeID}.PageType())
	assert.Equal(t, PageUser, Block{UserID: &userID}.PageType())
}

// ─────────────────────────────────────────────
// module access
// ─────────────────────────────────────────────

func TestParseAccessLevel(t *testing.T) {
	for _, level := range AccessLevels {
		got, ok := ParseAccessLevel(strconv.Itoa(int(level)))
		require.True(t, ok)
		assert.Equal(t, level, got)
	}

	for _, bad := range []string{"", "3", "-2", "members"} {
		_, ok := ParseAccessLevel(bad)
		assert.False(t, ok, bad)
	}
}

func TestAccessLevel_Label(t *testing.T) {
	assert.Equal(t, "Hide from everyone", AccessHide.Label())
	assert.Equal(t, "Show to visitors", AccessVisitors.Label())
	assert.Equal(t, "7", AccessLevel(7).Label())
}

func TestModuleAccessField_RoundTrip(t *testing.T) {
	key := ModuleAccessKey{ModuleName: "family-book-chart", TreeID: 12}
	assert.Equal(t, "access-family-book-chart-12", key.FormField())

	got, ok := ParseModuleAccessField(key.FormField())
	require.True(t, ok)
	assert.Equal(t, key, got)

	for _, bad := range []string{"pedigree-1", "access-", "access-pedigree", "access-pedigree-", "access--1", "access-pedigree-x"} {
		_, ok := ParseModuleAccessField(bad)
		assert.False(t, ok, bad)
	}
}

// ─────────────────────────────────────────────
// trees and roles
// ─────────────────────────────────────────────

func TestRole(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleEdit))
	assert.True(t, RoleEdit.AtLeast(RoleEdit))
	assert.False(t, RoleAccess.AtLeast(RoleAccept))
	assert.Equal(t, 0, Role("bogus").Rank())

	r, ok := ParseRole("accept")
	require.True(t, ok)
	assert.Equal(t, RoleAccept, r)
	assert.Equal(t, "Moderator", r.Label())

	_, ok = ParseRole("owner")
	assert.False(t, ok)
	assert.Equal(t, "Visitor", Role("owner").Label())
}

func TestTreeUserPreferencesFromSettings(t *testing.T) {
	prefs := TreeUserPreferencesFromSettings(3, map[string]string{
		TreePrefRole:                   "edit",
		TreePrefIndividual:             "I1",
		TreePrefRelationshipPathLength: "4",
	})
	assert.Equal(t, int64(3), prefs.TreeID)
	assert.Equal(t, RoleEdit, prefs.Role)
	assert.Equal(t, "I1", prefs.IndividualXref)
	require.NotNil(t, prefs.RelationshipPathLength)
	assert.Equal(t, 4, *prefs.RelationshipPathLength)

	empty := TreeUserPreferencesFromSettings(3, nil)
	assert.Equal(t, RoleNone, empty.Role)
	assert.Nil(t, empty.RelationshipPathLength)
}

func TestValidXref(t *testing.T) {
	assert.True(t, ValidXref("I123"))
	assert.True(t, ValidXref("X:1_a.b-c"))
	assert.False(t, ValidXref(""))
	assert.False(t, ValidXref("I 1"))
	assert.False(t, ValidXref("<script>"))
	assert.False(t, ValidXref("ABCDEFGHIJKLMNOPQRSTU"))
}

func TestActor_IsManager(t *testing.T) {
	tree := &Tree{TreeID: 1}

	var nobody *Actor
	assert.False(t, nobody.IsManager(tree))
	assert.True(t, (&Actor{IsAdmin: true}).IsManager(nil))
	assert.True(t, (&Actor{Roles: map[int64]Role{1: RoleAdmin}}).IsManager(tree))
	assert.False(t, (&Actor{Roles: map[int64]Role{1: RoleAccept}}).IsManager(tree))
	assert.False(t, (&Actor{Roles: map[int64]Role{1: RoleAdmin}}).IsManager(nil))
}

func TestRequestContext_Actor(t *testing.T) {
	assert.False(t, RequestContext{}.Authenticated())
	assert.Zero(t, RequestContext{}.ActorID())

	rc := RequestContext{Actor: &Actor{UserID: 9}}
	assert.True(t, rc.Authenticated())
	assert.Equal(t, int64(9), rc.ActorID())
}

// ─────────────────────────────────────────────
// user preferences
// ─────────────────────────────────────────────

func TestUserPreferences(t *testing.T) {
	prefs := UserPreferencesFromSettings(map[string]string{
		PrefLanguage:           "fr",
		PrefVerified:           "1",
		PrefVerifiedByAdmin:    "yes",
		PrefCanAdmin:           "0",
		PrefRegTimestamp:       "1700000000",
		PrefAdminUsersPageSize: "50",
	})

	assert.Equal(t, "fr", prefs.Language)
	assert.True(t, prefs.CanSignIn())
	assert.False(t, prefs.CanAdmin)
	assert.Equal(t, 50, prefs.AdminUsersPageSize)
	assert.Equal(t, time.Unix(1700000000, 0), prefs.Registered())
	assert.Equal(t, prefs.Registered(), prefs.LastActivity())

	prefs.SessionTime = 1710000000
	assert.Equal(t, time.Unix(1710000000, 0), prefs.LastActivity())

	settings := prefs.Settings()
	assert.Equal(t, "1", settings[PrefVerifiedByAdmin])
	assert.Equal(t, "0", settings[PrefCanAdmin])
	assert.NotContains(t, settings, PrefRegTimestamp)
	assert.NotContains(t, settings, PrefAdminUsersPageSize)

	defaults := UserPreferencesFromSettings(map[string]string{PrefAdminUsersPageSize: "-5", PrefSessionTime: "x"})
	assert.Equal(t, DefaultAdminUsersPageSize, defaults.AdminUsersPageSize)
	assert.Zero(t, defaults.SessionTime)
	assert.False(t, defaults.CanSignIn())
}

func TestFlags(t *testing.T) {
	assert.Equal(t, "1", FormatFlag(true))
	assert.Equal(t, "0", FormatFlag(false))
	assert.True(t, ParseFlag("1"))
	assert.True(t, ParseFlag("on"))
	assert.False(t, ParseFlag("0"))
	assert.False(t, ParseFlag(""))
}

func TestUserListRow_RegistrationOverdue(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, UserListRow{RegTimestamp: now.AddDate(0, 0, -8).Unix()}.RegistrationOverdue(now))
	assert.False(t, UserListRow{RegTimestamp: now.AddDate(0, 0, -6).Unix()}.RegistrationOverdue(now))
	assert.False(t, UserListRow{RegTimestamp: now.AddDate(0, 0, -30).Unix(), Verified: true}.RegistrationOverdue(now))
}

func TestSessionToken_SubjectUserID(t *testing.T) {
	token := &SessionToken{RegisteredClaims: jwt.RegisteredClaims{Subject: "42"}, SignedString: "a.b.c"}

	id, err := token.SubjectUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "a.b.c", token.String())

	token.Subject = "admin"
	_, err = token.SubjectUserID()
	assert.Error(t, err)
}
