// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
)

// InfoStyle is the layout of the top given names block.
type InfoStyle string

const (
	InfoStyleList  InfoStyle = "list"
	InfoStyleTable InfoStyle = "table"
)

// InfoStyles lists the styles in the order the settings form offers them.
var InfoStyles = []InfoStyle{InfoStyleList, InfoStyleTable}

// Block setting keys and bounds.
const (
	BlockSettingNum       = "num"
	BlockSettingInfoStyle = "infoStyle"

	DefaultBlockNum       = 10
	MinBlockNum           = 1
	MaxBlockNum           = 10000
	DefaultBlockInfoStyle = InfoStyleTable
)

// BlockSettings is the typed configuration of one top given names block instance.
type BlockSettings struct {
	Num       int
	InfoStyle InfoStyle
}

// DefaultBlockSettings returns the settings of a block that was never configured.
func DefaultBlockSettings() BlockSettings {
	return BlockSettings{Num: DefaultBlockNum, InfoStyle: DefaultBlockInfoStyle}
}

// ParseBlockNum validates a submitted name count. Values outside
// [MinBlockNum, MaxBlockNum] and non-numbers resolve to [DefaultBlockNum].
func ParseBlockNum(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < MinBlockNum || v > MaxBlockNum {
		return DefaultBlockNum
	}
	return v
}

// ParseInfoStyle validates a submitted layout; unknown values resolve to
// [DefaultBlockInfoStyle].
func ParseInfoStyle(s string) InfoStyle {
	switch InfoStyle(s) {
	case InfoStyleList, InfoStyleTable:
		return InfoStyle(s)
	default:
		return DefaultBlockInfoStyle
	}
}

// BlockSettingsFromMap decodes stored block settings.
func BlockSettingsFromMap(settings map[string]string) BlockSettings {
	s := DefaultBlockSettings()
	if v, ok := settings[BlockSettingNum]; ok {
		s.Num = ParseBlockNum(v)
	}
	if v, ok := settings[BlockSettingInfoStyle]; ok {
		s.InfoStyle = ParseInfoStyle(v)
	}
	return s
}

// Merge returns s with the non-empty overrides applied and validated.
func (s BlockSettings) Merge(overrides map[string]string) BlockSettings {
	if v, ok := overrides[BlockSettingNum]; ok && v != "" {
		s.Num = ParseBlockNum(v)
	}
	if v, ok := overrides[BlockSettingInfoStyle]; ok && v != "" {
		s.InfoStyle = ParseInfoStyle(v)
	}
	return s
}

// BlockConfigForm is a submitted block settings form.
type BlockConfigForm struct {
	Save      bool
	Token     string
	Num       string
	InfoStyle string
}

// Block is one placed block instance. Exactly one of TreeID and UserID is
// set: tree home page blocks belong to a tree, personal page blocks to a user.
type Block struct {
	BlockID    int64
	TreeID     *int64
	UserID     *int64
	ModuleName string
}

// PageType tells which kind of page the block is placed on.
func (b Block) PageType() PageType {
	if b.UserID != nil {
		return PageUser
	}
	return PageTree
}

// BlockDescriptor describes where a block type may be placed.
type BlockDescriptor struct {
	Name        string
	Title       string
	Description string
	UserBlock   bool
	TreeBlock   bool
	LoadAjax    bool
}

// Sex selects the name statistics of one sex.
type Sex string

const (
	SexFemale Sex = "F"
	SexMale   Sex = "M"
)

// GivenNameCount is one row of the precomputed name frequency statistics.
type GivenNameCount struct {
	Name  string
	Count int
}

// TopGivenNamesBlock is everything needed to render one block instance.
type TopGivenNamesBlock struct {
	BlockID   int64
	CSSClass  string
	Title     string
	ConfigURL string
	Settings  BlockSettings
	Females   []GivenNameCount
	Males     []GivenNameCount
}
