// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tree-admin/internal/service"
	"github.com/MKhiriev/go-tree-admin/internal/store"
	"github.com/MKhiriev/go-tree-admin/models"
)

func treeBlock(id int64) models.Block {
	treeID := testTree.TreeID
	return models.Block{BlockID: id, TreeID: &treeID, ModuleName: service.TopGivenNamesModule}
}

var testBlock = models.TopGivenNamesBlock{
	BlockID:  10,
	CSSClass: "top-given-names",
	Title:    "Top 2 given names",
	Settings: models.BlockSettings{Num: 2, InfoStyle: models.InfoStyleList},
	Females:  []models.GivenNameCount{{Name: "Mary", Count: 12}, {Name: "Anne", Count: 9}},
	Males:    []models.GivenNameCount{{Name: "John", Count: 20}},
}

// ─────────────────────────────────────────────
// Block page
// ─────────────────────────────────────────────

func TestTopGivenNamesBlock(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		wantOverrides map[string]string
		wantLayout    bool
	}{
		{name: "full page", query: "", wantOverrides: map[string]string{}, wantLayout: true},
		{
			name:          "fragment with overrides",
			query:         "?template=0&num=2&infoStyle=list&ged=smith",
			wantOverrides: map[string]string{models.BlockSettingNum: "2", models.BlockSettingInfoStyle: "list"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)

			treeName := ""
			if tt.query != "" {
				treeName = "smith"
			}
			m.blocks.EXPECT().ResolveBlock(gomock.Any(), int64(10), treeName).Return(treeBlock(10), testTree, nil)
			m.blocks.EXPECT().Block(gomock.Any(), gomock.Any(), int64(10), tt.wantOverrides).DoAndReturn(
				func(_ context.Context, rc models.RequestContext, _ int64, _ map[string]string) (models.TopGivenNamesBlock, error) {
					assert.Equal(t, testTree, rc.Tree)
					assert.Equal(t, models.PageTree, rc.PageType)
					assert.Nil(t, rc.Actor)
					return testBlock, nil
				})

			rr := serve(h, httptest.NewRequest(http.MethodGet, "/blocks/10/top-given-names"+tt.query, nil))

			require.Equal(t, http.StatusOK, rr.Code)
			body := rr.Body.String()
			assert.Contains(t, body, "<li>Mary (12)</li>")
			assert.Contains(t, body, "<h2>Top 2 given names</h2>")
			if tt.wantLayout {
				assert.Contains(t, body, "<title>Top 2 given names</title>")
			} else {
				assert.NotContains(t, body, "<html")
			}
		})
	}
}

func TestTopGivenNamesBlock_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(m *serviceMocks)
		wantStatus int
	}{
		{
			name:       "bad id",
			target:     "/blocks/zero/top-given-names",
			setup:      func(*serviceMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "unknown block",
			target: "/blocks/4/top-given-names",
			setup: func(m *serviceMocks) {
				m.blocks.EXPECT().ResolveBlock(gomock.Any(), int64(4), "").Return(models.Block{}, nil, store.ErrBlockNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "other module",
			target: "/blocks/5/top-given-names",
			setup: func(m *serviceMocks) {
				m.blocks.EXPECT().ResolveBlock(gomock.Any(), int64(5), "").Return(treeBlock(5), testTree, nil)
				m.blocks.EXPECT().Block(gomock.Any(), gomock.Any(), int64(5), gomock.Any()).
					Return(models.TopGivenNamesBlock{}, service.ErrNotTopGivenNamesBlock)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tt.setup(m)

			rr := serve(h, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ─────────────────────────────────────────────
// Block settings
// ─────────────────────────────────────────────

func TestBlockEdit_ShowsForm(t *testing.T) {
	h, m := newTestHandler(t)
	m.blocks.EXPECT().ResolveBlock(gomock.Any(), int64(10), "").Return(treeBlock(10), testTree, nil)
	m.blocks.EXPECT().Configure(gomock.Any(), gomock.Any(), int64(10), models.BlockConfigForm{}).
		Return(models.BlockSettings{Num: 7, InfoStyle: models.InfoStyleTable}, models.OutcomeIgnored, nil)
	m.blocks.EXPECT().Descriptor().Return(models.BlockDescriptor{Title: "Top given names"})

	rr := serve(h, withSession(httptest.NewRequest(http.MethodGet, "/blocks/10/edit", nil), adminToken))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `action="/blocks/10/edit?ged=smith"`)
	assert.Contains(t, body, `name="num" value="7"`)
	assert.Contains(t, body, `value="table" checked`)
}

func TestBlockEdit_Saves(t *testing.T) {
	h, m := newTestHandler(t)
	m.blocks.EXPECT().ResolveBlock(gomock.Any(), int64(10), "smith").Return(treeBlock(10), testTree, nil)
	m.blocks.EXPECT().Configure(gomock.Any(), gomock.Any(), int64(10), models.BlockConfigForm{
		Save:      true,
		Token:     testCSRF,
		Num:       "25",
		InfoStyle: "list",
	}).DoAndReturn(func(_ context.Context, rc models.RequestContext, _ int64, _ models.BlockConfigForm) (models.BlockSettings, models.Outcome, error) {
		assert.Equal(t, testAdmin, rc.Actor)
		return models.BlockSettings{Num: 25, InfoStyle: models.InfoStyleList}, models.OutcomeUpdated, nil
	})

	rr := serve(h, withSession(postForm("/blocks/10/edit?ged=smith", url.Values{
		"save":      {"1"},
		"csrf":      {testCSRF},
		"num":       {"25"},
		"infoStyle": {"list"},
	}), adminToken))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/blocks/10/top-given-names?ged=smith", rr.Header().Get("Location"))
}

func TestBlockEdit_Forbidden(t *testing.T) {
	h, m := newTestHandler(t)
	m.blocks.EXPECT().ResolveBlock(gomock.Any(), int64(10), "").Return(treeBlock(10), testTree, nil)
	m.blocks.EXPECT().Configure(gomock.Any(), gomock.Any(), int64(10), gomock.Any()).
		Return(models.BlockSettings{}, models.OutcomeIgnored, service.ErrForbidden)

	rr := serve(h, withSession(postForm("/blocks/10/edit", url.Values{"save": {"1"}}), userToken))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
