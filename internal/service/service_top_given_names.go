// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MKhiriev/go-tree-admin/internal/config"
	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/store"
	"github.com/MKhiriev/go-tree-admin/models"
)

// TopGivenNamesModule is the module name top given names blocks are stored under.
const TopGivenNamesModule = "top_given_names"

// nameThreshold is the minimum number of uses for a name to be listed.
const nameThreshold = 1

type topGivenNamesService struct {
	blockSettingRepository store.BlockSettingRepository
	nameStatsRepository    store.NameStatsRepository
	treeRepository         store.TreeRepository

	hashKey string

	// printer formats the name count in the block title.
	printer *message.Printer

	logger *logger.Logger
}

func NewTopGivenNamesService(storages *store.Storages, cfg config.App, logger *logger.Logger) TopGivenNamesService {
	tag := language.English
	if len(cfg.Languages) > 0 {
		if parsed, err := language.Parse(cfg.Languages[0]); err == nil {
			tag = parsed
		}
	}

	return &topGivenNamesService{
		blockSettingRepository: storages.BlockSettingRepository,
		nameStatsRepository:    storages.NameStatsRepository,
		treeRepository:         storages.TreeRepository,
		hashKey:                cfg.HashKey,
		printer:                message.NewPrinter(tag),
		logger:                 logger,
	}
}

func (s *topGivenNamesService) Descriptor() models.BlockDescriptor {
	return models.BlockDescriptor{
		Name:        TopGivenNamesModule,
		Title:       "Top given names",
		Description: "A list of the most popular given names.",
		UserBlock:   true,
		TreeBlock:   true,
		LoadAjax:    false,
	}
}

func (s *topGivenNamesService) ResolveBlock(ctx context.Context, blockID int64, treeName string) (models.Block, *models.Tree, error) {
	block, err := s.blockSettingRepository.FindBlock(ctx, blockID)
	if err != nil {
		return models.Block{}, nil, err
	}
	if block.ModuleName != TopGivenNamesModule {
		return models.Block{}, nil, ErrNotTopGivenNamesBlock
	}

	var tree models.Tree
	switch {
	case block.TreeID != nil:
		tree, err = s.treeRepository.FindTreeByID(ctx, *block.TreeID)
	case treeName != "":
		tree, err = s.treeRepository.FindTreeByName(ctx, treeName)
	default:
		var trees []models.Tree
		trees, err = s.treeRepository.AllTrees(ctx)
		if err == nil && len(trees) == 0 {
			err = store.ErrTreeNotFound
		}
		if err == nil {
			tree = trees[0]
		}
	}
	if err != nil {
		return models.Block{}, nil, err
	}

	return block, &tree, nil
}

// Block loads the settings of blockID, applies the non-empty overrides and
// lists the most frequent female and male given names of rc.Tree.
func (s *topGivenNamesService) Block(ctx context.Context, rc models.RequestContext, blockID int64, overrides map[string]string) (models.TopGivenNamesBlock, error) {
	log := logger.FromContext(ctx)

	if rc.Tree == nil {
		return models.TopGivenNamesBlock{}, store.ErrTreeNotFound
	}

	stored, err := s.blockSettingRepository.BlockSettings(ctx, blockID)
	if err != nil {
		log.Err(err).Str("func", "topGivenNamesService.Block").Int64("block_id", blockID).Msg("error loading block settings")
		return models.TopGivenNamesBlock{}, fmt.Errorf("error loading block settings: %w", err)
	}
	settings := models.BlockSettingsFromMap(stored).Merge(overrides)

	females, err := s.nameStatsRepository.TopGivenNames(ctx, rc.Tree.TreeID, models.SexFemale, nameThreshold, settings.Num)
	if err != nil {
		return models.TopGivenNamesBlock{}, fmt.Errorf("error loading female names: %w", err)
	}
	males, err := s.nameStatsRepository.TopGivenNames(ctx, rc.Tree.TreeID, models.SexMale, nameThreshold, settings.Num)
	if err != nil {
		return models.TopGivenNamesBlock{}, fmt.Errorf("error loading male names: %w", err)
	}

	block := models.TopGivenNamesBlock{
		BlockID:  blockID,
		CSSClass: strings.ReplaceAll(TopGivenNamesModule, "_", "-"),
		Title:    s.title(settings.Num),
		Settings: settings,
		Females:  females,
		Males:    males,
	}

	if (rc.PageType == models.PageTree && rc.Actor.IsManager(rc.Tree)) ||
		(rc.PageType == models.PageUser && rc.Authenticated()) {
		block.ConfigURL = configURL(blockID, rc.Tree.Name)
	}

	return block, nil
}

func (s *topGivenNamesService) title(num int) string {
	if num == 1 {
		return "Top given name"
	}
	return s.printer.Sprintf("Top %d given names", num)
}

func configURL(blockID int64, treeName string) string {
	return "/blocks/" + strconv.FormatInt(blockID, 10) + "/edit?" + url.Values{"ged": {treeName}}.Encode()
}

// Configure stores the submitted settings when form.Save is set and the
// anti-forgery token is valid, and returns the settings now in effect.
//
// Tree blocks may be configured by the tree's managers, personal page blocks
// by their owner or an administrator; anybody else gets ErrForbidden.
func (s *topGivenNamesService) Configure(ctx context.Context, rc models.RequestContext, blockID int64, form models.BlockConfigForm) (models.BlockSettings, models.Outcome, error) {
	log := logger.FromContext(ctx)

	block, err := s.blockSettingRepository.FindBlock(ctx, blockID)
	if err != nil {
		return models.BlockSettings{}, "", err
	}
	if !canConfigure(rc, block) {
		log.Warn().Str("func", "topGivenNamesService.Configure").Int64("block_id", blockID).Int64("actor", rc.ActorID()).Msg("block configuration denied")
		return models.BlockSettings{}, "", ErrForbidden
	}

	outcome := models.OutcomeIgnored
	if form.Save && validCSRF(s.hashKey, rc) {
		for _, setting := range []struct{ name, value string }{
			{models.BlockSettingNum, strconv.Itoa(models.ParseBlockNum(form.Num))},
			{models.BlockSettingInfoStyle, string(models.ParseInfoStyle(form.InfoStyle))},
		} {
			if err = s.blockSettingRepository.SetBlockSetting(ctx, blockID, setting.name, setting.value); err != nil {
				log.Err(err).Str("func", "topGivenNamesService.Configure").Int64("block_id", blockID).Msg("error storing block setting")
				return models.BlockSettings{}, "", fmt.Errorf("error storing block setting: %w", err)
			}
		}
		outcome = models.OutcomeUpdated
	}

	stored, err := s.blockSettingRepository.BlockSettings(ctx, blockID)
	if err != nil {
		return models.BlockSettings{}, "", fmt.Errorf("error loading block settings: %w", err)
	}

	return models.BlockSettingsFromMap(stored), outcome, nil
}

func canConfigure(rc models.RequestContext, block models.Block) bool {
	if rc.Actor == nil {
		return false
	}
	if block.UserID != nil {
		return rc.Actor.IsAdmin || *block.UserID == rc.Actor.UserID
	}
	return rc.Actor.IsManager(rc.Tree)
}
