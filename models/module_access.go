// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// AccessLevel controls who may see a module in a tree.
type AccessLevel int

const (
	AccessHide     AccessLevel = -1
	AccessManagers AccessLevel = 0
	AccessMembers  AccessLevel = 1
	AccessVisitors AccessLevel = 2
)

// AccessLevels lists the selectable levels in display order.
var AccessLevels = []AccessLevel{AccessVisitors, AccessMembers, AccessManagers, AccessHide}

// ParseAccessLevel parses a submitted level. ok is false for anything that is
// not one of [AccessLevels].
func ParseAccessLevel(s string) (AccessLevel, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	for _, level := range AccessLevels {
		if int(level) == v {
			return level, true
		}
	}
	return 0, false
}

// Label is the human readable level.
func (a AccessLevel) Label() string {
	switch a {
	case AccessVisitors:
		return "Show to visitors"
	case AccessMembers:
		return "Show to members"
	case AccessManagers:
		return "Show to managers"
	case AccessHide:
		return "Hide from everyone"
	default:
		return strconv.Itoa(int(a))
	}
}

// ComponentChart is the module component handled by the chart access matrix.
const ComponentChart = "chart"

// ChartModule describes a chart-capable module.
type ChartModule struct {
	Name          string
	Title         string
	Description   string
	DefaultAccess AccessLevel
}

// ModuleAccessKey identifies one cell of the module access matrix.
type ModuleAccessKey struct {
	ModuleName string
	TreeID     int64
}

const moduleAccessFieldPrefix = "access-"

// FormField is the form field name the cell is submitted under.
func (k ModuleAccessKey) FormField() string {
	return fmt.Sprintf("%s%s-%d", moduleAccessFieldPrefix, k.ModuleName, k.TreeID)
}

// ParseModuleAccessField is the inverse of [ModuleAccessKey.FormField].
// Module names may contain dashes, so the tree id is taken after the last one.
func ParseModuleAccessField(field string) (ModuleAccessKey, bool) {
	rest, ok := strings.CutPrefix(field, moduleAccessFieldPrefix)
	if !ok {
		return ModuleAccessKey{}, false
	}

	i := strings.LastIndex(rest, "-")
	if i <= 0 || i == len(rest)-1 {
		return ModuleAccessKey{}, false
	}

	treeID, err := strconv.ParseInt(rest[i+1:], 10, 64)
	if err != nil {
		return ModuleAccessKey{}, false
	}

	return ModuleAccessKey{ModuleName: rest[:i], TreeID: treeID}, true
}

// ModuleAccessGrant is a stored access level for one matrix cell.
type ModuleAccessGrant struct {
	ModuleAccessKey
	Level AccessLevel
}

// ModuleAccessMatrix is the chart modules × trees grid with the effective level per cell.
type ModuleAccessMatrix struct {
	Modules []ChartModule
	Trees   []Tree
	Levels  map[ModuleAccessKey]AccessLevel
}

// Level returns the effective level of a cell.
func (m ModuleAccessMatrix) Level(moduleName string, treeID int64) AccessLevel {
	return m.Levels[ModuleAccessKey{ModuleName: moduleName, TreeID: treeID}]
}
