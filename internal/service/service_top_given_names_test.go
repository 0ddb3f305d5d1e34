// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tree-admin/internal/config"
	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/store"
	"github.com/MKhiriev/go-tree-admin/models"
)

func ptr[T any](v T) *T { return &v }

// Block 10 sits on the smith home page, block 20 on user 5's personal page,
// block 30 belongs to another module.
func newTopNamesFixture(t *testing.T, cfg config.App) (TopGivenNamesService, *memStore) {
	t.Helper()

	m := newMemStore()
	m.trees = []models.Tree{{TreeID: 1, Name: "smith"}, {TreeID: 2, Name: "jones & co"}}
	m.blocks[10] = models.Block{BlockID: 10, TreeID: ptr(int64(1)), ModuleName: TopGivenNamesModule}
	m.blocks[20] = models.Block{BlockID: 20, UserID: ptr(int64(5)), ModuleName: TopGivenNamesModule}
	m.blocks[30] = models.Block{BlockID: 30, TreeID: ptr(int64(1)), ModuleName: "todays_events"}
	m.names[1] = map[models.Sex][]models.GivenNameCount{
		models.SexFemale: {{Name: "Mary", Count: 12}, {Name: "Anne", Count: 7}, {Name: "Rose", Count: 1}},
		models.SexMale:   {{Name: "John", Count: 20}, {Name: "William", Count: 3}},
	}

	return NewTopGivenNamesService(m.storages(), cfg, logger.Nop()), m
}

func TestTopGivenNames_Descriptor(t *testing.T) {
	svc, _ := newTopNamesFixture(t, testAppConfig())

	d := svc.Descriptor()
	assert.Equal(t, TopGivenNamesModule, d.Name)
	assert.Equal(t, "Top given names", d.Title)
	assert.Equal(t, "A list of the most popular given names.", d.Description)
	assert.True(t, d.UserBlock)
	assert.True(t, d.TreeBlock)
	assert.False(t, d.LoadAjax)
}

func TestTopGivenNames_ResolveBlock(t *testing.T) {
	svc, _ := newTopNamesFixture(t, testAppConfig())
	ctx := context.Background()

	block, tree, err := svc.ResolveBlock(ctx, 10, "jones & co")
	require.NoError(t, err)
	assert.Equal(t, models.PageTree, block.PageType())
	assert.Equal(t, "smith", tree.Name, "tree blocks ignore the requested tree")

	block, tree, err = svc.ResolveBlock(ctx, 20, "jones & co")
	require.NoError(t, err)
	assert.Equal(t, models.PageUser, block.PageType())
	assert.Equal(t, "jones & co", tree.Name)

	_, tree, err = svc.ResolveBlock(ctx, 20, "")
	require.NoError(t, err)
	assert.Equal(t, "smith", tree.Name)

	_, _, err = svc.ResolveBlock(ctx, 20, "nowhere")
	assert.ErrorIs(t, err, store.ErrTreeNotFound)

	_, _, err = svc.ResolveBlock(ctx, 30, "")
	assert.ErrorIs(t, err, ErrNotTopGivenNamesBlock)

	_, _, err = svc.ResolveBlock(ctx, 99, "")
	assert.ErrorIs(t, err, store.ErrBlockNotFound)
}

func TestTopGivenNames_ResolveBlock_NoTrees(t *testing.T) {
	svc, m := newTopNamesFixture(t, testAppConfig())
	m.trees = nil

	_, _, err := svc.ResolveBlock(context.Background(), 20, "")
	assert.ErrorIs(t, err, store.ErrTreeNotFound)
}

func TestTopGivenNames_Block(t *testing.T) {
	svc, m := newTopNamesFixture(t, testAppConfig())
	m.blockSettings[10] = map[string]string{models.BlockSettingNum: "2", models.BlockSettingInfoStyle: "list"}

	rc := models.RequestContext{Tree: &m.trees[0], PageType: models.PageTree}

	block, err := svc.Block(context.Background(), rc, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(10), block.BlockID)
	assert.Equal(t, "top-given-names", block.CSSClass)
	assert.Equal(t, "Top 2 given names", block.Title)
	assert.Equal(t, models.BlockSettings{Num: 2, InfoStyle: models.InfoStyleList}, block.Settings)
	assert.Equal(t, []models.GivenNameCount{{Name: "Mary", Count: 12}, {Name: "Anne", Count: 7}}, block.Females)
	assert.Equal(t, []models.GivenNameCount{{Name: "John", Count: 20}, {Name: "William", Count: 3}}, block.Males)
	assert.Empty(t, block.ConfigURL, "visitors cannot configure")
}

func TestTopGivenNames_BlockOverrides(t *testing.T) {
	svc, m := newTopNamesFixture(t, testAppConfig())
	m.blockSettings[10] = map[string]string{models.BlockSettingNum: "2"}
	rc := models.RequestContext{Tree: &m.trees[0], PageType: models.PageTree}

	tests := []struct {
		name      string
		overrides map[string]string
		want      models.BlockSettings
		wantTitle string
	}{
		{name: "none", overrides: nil, want: models.BlockSettings{Num: 2, InfoStyle: models.InfoStyleTable}, wantTitle: "Top 2 given names"},
		{name: "empty values ignored", overrides: map[string]string{models.BlockSettingNum: "", models.BlockSettingInfoStyle: ""}, want: models.BlockSettings{Num: 2, InfoStyle: models.InfoStyleTable}, wantTitle: "Top 2 given names"},
		{name: "single name", overrides: map[string]string{models.BlockSettingNum: "1"}, want: models.BlockSettings{Num: 1, InfoStyle: models.InfoStyleTable}, wantTitle: "Top given name"},
		{name: "invalid num", overrides: map[string]string{models.BlockSettingNum: "0", models.BlockSettingInfoStyle: "grid"}, want: models.BlockSettings{Num: 10, InfoStyle: models.InfoStyleTable}, wantTitle: "Top 10 given names"},
		{name: "large num is grouped", overrides: map[string]string{models.BlockSettingNum: "1000", models.BlockSettingInfoStyle: "list"}, want: models.BlockSettings{Num: 1000, InfoStyle: models.InfoStyleList}, wantTitle: "Top 1,000 given names"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := svc.Block(context.Background(), rc, 10, tt.overrides)
			require.NoError(t, err)
			assert.Equal(t, tt.want, block.Settings)
			assert.Equal(t, tt.wantTitle, block.Title)
		})
	}

	stored, _ := m.BlockSettings(context.Background(), 10)
	assert.Equal(t, map[string]string{models.BlockSettingNum: "2"}, stored, "overrides are never stored")
}

func TestTopGivenNames_TitleFollowsLanguage(t *testing.T) {
	cfg := testAppConfig()
	cfg.Languages = []string{"de"}
	svc, m := newTopNamesFixture(t, cfg)

	block, err := svc.Block(context.Background(), models.RequestContext{Tree: &m.trees[0]}, 10, map[string]string{models.BlockSettingNum: "1000"})
	require.NoError(t, err)
	assert.Equal(t, "Top 1.000 given names", block.Title)
}

func TestTopGivenNames_ConfigURL(t *testing.T) {
	svc, m := newTopNamesFixture(t, testAppConfig())

	admin := &models.Actor{UserID: 1, IsAdmin: true}
	manager := &models.Actor{UserID: 2, Roles: map[int64]models.Role{2: models.RoleAdmin}}
	editor := &models.Actor{UserID: 3, Roles: map[int64]models.Role{2: models.RoleEdit}}
	jones := &m.trees[1]

	tests := []struct {
		name     string
		rc       models.RequestContext
		blockID  int64
		expected string
	}{
		{name: "tree page, administrator", rc: models.RequestContext{Tree: jones, Actor: admin, PageType: models.PageTree}, blockID: 10, expected: "/blocks/10/edit?ged=jones+%26+co"},
		{name: "tree page, tree manager", rc: models.RequestContext{Tree: jones, Actor: manager, PageType: models.PageTree}, blockID: 10, expected: "/blocks/10/edit?ged=jones+%26+co"},
		{name: "tree page, editor", rc: models.RequestContext{Tree: jones, Actor: editor, PageType: models.PageTree}, blockID: 10},
		{name: "tree page, visitor", rc: models.RequestContext{Tree: jones, PageType: models.PageTree}, blockID: 10},
		{name: "user page, member", rc: models.RequestContext{Tree: jones, Actor: editor, PageType: models.PageUser}, blockID: 20, expected: "/blocks/20/edit?ged=jones+%26+co"},
		{name: "user page, visitor", rc: models.RequestContext{Tree: jones, PageType: models.PageUser}, blockID: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := svc.Block(context.Background(), tt.rc, tt.blockID, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, block.ConfigURL)
		})
	}
}

func TestTopGivenNames_BlockWithoutTree(t *testing.T) {
	svc, _ := newTopNamesFixture(t, testAppConfig())

	_, err := svc.Block(context.Background(), models.RequestContext{}, 10, nil)
	assert.ErrorIs(t, err, store.ErrTreeNotFound)
}

// ─────────────────────────────────────────────
// Configure
// ─────────────────────────────────────────────

func TestTopGivenNames_Configure(t *testing.T) {
	tests := []struct {
		name        string
		form        models.BlockConfigForm
		wantOutcome models.Outcome
		want        models.BlockSettings
	}{
		{name: "save", form: models.BlockConfigForm{Save: true, Num: "25", InfoStyle: "list"}, wantOutcome: models.OutcomeUpdated, want: models.BlockSettings{Num: 25, InfoStyle: models.InfoStyleList}},
		{name: "clamped", form: models.BlockConfigForm{Save: true, Num: "10001", InfoStyle: "cloud"}, wantOutcome: models.OutcomeUpdated, want: models.BlockSettings{Num: 10, InfoStyle: models.InfoStyleTable}},
		{name: "not a number", form: models.BlockConfigForm{Save: true, Num: "lots", InfoStyle: "table"}, wantOutcome: models.OutcomeUpdated, want: models.BlockSettings{Num: 10, InfoStyle: models.InfoStyleTable}},
		{name: "display only", form: models.BlockConfigForm{Num: "25", InfoStyle: "list"}, wantOutcome: models.OutcomeIgnored, want: models.BlockSettings{Num: 3, InfoStyle: models.InfoStyleList}},
		{name: "bad token", form: models.BlockConfigForm{Save: true, Token: "forged", Num: "25"}, wantOutcome: models.OutcomeIgnored, want: models.BlockSettings{Num: 3, InfoStyle: models.InfoStyleList}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTopNamesFixture(t, testAppConfig())
			m.blockSettings[10] = map[string]string{models.BlockSettingNum: "3", models.BlockSettingInfoStyle: "list"}

			actor := &models.Actor{UserID: 1, IsAdmin: true}
			rc := models.RequestContext{Tree: &m.trees[0], Actor: actor, PageType: models.PageTree, Token: csrfToken(testHashKey, actor)}
			if tt.form.Token != "" {
				rc.Token = tt.form.Token
			}

			settings, outcome, err := svc.Configure(context.Background(), rc, 10, tt.form)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutcome, outcome)
			assert.Equal(t, tt.want, settings)
		})
	}
}

func TestTopGivenNames_ConfigurePermissions(t *testing.T) {
	svc, m := newTopNamesFixture(t, testAppConfig())

	owner := &models.Actor{UserID: 5}
	stranger := &models.Actor{UserID: 6, Roles: map[int64]models.Role{1: models.RoleAccept}}
	manager := &models.Actor{UserID: 7, Roles: map[int64]models.Role{1: models.RoleAdmin}}
	smith := &m.trees[0]

	tests := []struct {
		name    string
		actor   *models.Actor
		blockID int64
		allowed bool
	}{
		{name: "owner of personal block", actor: owner, blockID: 20, allowed: true},
		{name: "stranger on personal block", actor: stranger, blockID: 20, allowed: false},
		{name: "manager on personal block", actor: manager, blockID: 20, allowed: false},
		{name: "manager of tree block", actor: manager, blockID: 10, allowed: true},
		{name: "moderator of tree block", actor: stranger, blockID: 10, allowed: false},
		{name: "visitor", actor: nil, blockID: 10, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := models.RequestContext{Tree: smith, Actor: tt.actor, Token: csrfToken(testHashKey, tt.actor)}

			_, outcome, err := svc.Configure(context.Background(), rc, tt.blockID, models.BlockConfigForm{Save: true, Num: "4"})
			if !tt.allowed {
				assert.ErrorIs(t, err, ErrForbidden)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.OutcomeUpdated, outcome)
		})
	}
}

func TestTopGivenNames_ConfigureUnknownBlock(t *testing.T) {
	svc, _ := newTopNamesFixture(t, testAppConfig())
	actor := &models.Actor{UserID: 1, IsAdmin: true}

	_, _, err := svc.Configure(context.Background(), models.RequestContext{Actor: actor}, 404, models.BlockConfigForm{})
	assert.ErrorIs(t, err, store.ErrBlockNotFound)
}
