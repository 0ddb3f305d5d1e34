// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/models"
)

// unverifiedGrace is how long a new account may stay unverified before it
// is offered for deletion.
const unverifiedGrace = 7 * 24 * time.Hour

// CleanupMonths clamps a requested inactivity threshold; anything outside
// 1..12 is the default of 6 months.
func CleanupMonths(months int) int {
	if months < models.MinCleanupMonths || months > models.MaxCleanupMonths {
		return models.DefaultCleanupMonths
	}
	return months
}

// CleanupThreshold is local midnight of now's date, months months earlier.
// Day overflow normalises like the calendar does: 31 March minus one month
// is 3 March (or 2 March in leap years).
func CleanupThreshold(now time.Time, months int) time.Time {
	return time.Date(now.Year(), now.Month()-time.Month(months), now.Day(), 0, 0, 0, 0, now.Location())
}

// CleanupReport lists, in this order:
//   - verified and approved accounts idle since before the threshold;
//   - accounts still unverified seven days after registering (preselected);
//   - verified accounts an administrator never approved, except the actor.
func (s *userAdminService) CleanupReport(ctx context.Context, rc models.RequestContext, months int, now time.Time) (models.CleanupReport, error) {
	log := logger.FromContext(ctx)

	months = CleanupMonths(months)
	threshold := CleanupThreshold(now, months)

	users, err := s.userRepository.AllUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "userAdminService.CleanupReport").Msg("error loading users")
		return models.CleanupReport{}, fmt.Errorf("error loading users: %w", err)
	}

	var inactive, unverified, notApproved []models.CleanupCandidate
	for _, user := range users {
		settings, settingsErr := s.userSettingRepository.GetSettings(ctx, user.UserID)
		if settingsErr != nil {
			return models.CleanupReport{}, fmt.Errorf("error loading user settings: %w", settingsErr)
		}
		prefs := models.UserPreferencesFromSettings(settings)

		if prefs.Verified && prefs.VerifiedByAdmin && threshold.After(prefs.LastActivity()) {
			inactive = append(inactive, models.CleanupCandidate{
				User:         user,
				Reason:       models.CleanupInactive,
				LastActivity: prefs.LastActivity(),
			})
		}

		if !prefs.Verified && now.Sub(prefs.Registered()) > unverifiedGrace {
			unverified = append(unverified, models.CleanupCandidate{
				User:            user,
				Reason:          models.CleanupUnverified,
				DeleteByDefault: true,
			})
		}

		if user.UserID != rc.ActorID() && prefs.Verified && !prefs.VerifiedByAdmin {
			notApproved = append(notApproved, models.CleanupCandidate{
				User:   user,
				Reason: models.CleanupNotApproved,
			})
		}
	}

	report := models.CleanupReport{Months: months}
	report.Candidates = append(report.Candidates, inactive...)
	report.Candidates = append(report.Candidates, unverified...)
	report.Candidates = append(report.Candidates, notApproved...)

	log.Info().Str("func", "userAdminService.CleanupReport").
		Int("months", months).
		Int("candidates", len(report.Candidates)).
		Msg("cleanup report built")

	return report, nil
}

// CleanupCommit deletes every account whose id is selected, one at a time.
// The actor's own account is never deleted. Without a valid anti-forgery
// token nothing happens.
func (s *userAdminService) CleanupCommit(ctx context.Context, rc models.RequestContext, selected map[int64]bool) ([]string, error) {
	log := logger.FromContext(ctx)

	if !validCSRF(s.hashKey, rc) {
		log.Warn().Str("func", "userAdminService.CleanupCommit").Int64("actor", rc.ActorID()).Msg("anti-forgery token mismatch")
		return nil, nil
	}

	users, err := s.userRepository.AllUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "userAdminService.CleanupCommit").Msg("error loading users")
		return nil, fmt.Errorf("error loading users: %w", err)
	}

	var deleted []string
	for _, user := range users {
		if !selected[user.UserID] || user.UserID == rc.ActorID() {
			continue
		}

		if err = s.deleteUser(ctx, user); err != nil {
			return deleted, err
		}
		deleted = append(deleted, user.UserName)
	}

	return deleted, nil
}
