// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/MKhiriev/go-tree-admin/internal/adapter"
	"github.com/MKhiriev/go-tree-admin/internal/app"
	"github.com/MKhiriev/go-tree-admin/internal/config"
	"github.com/MKhiriev/go-tree-admin/internal/crypto"
	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/store"
	"github.com/MKhiriev/go-tree-admin/internal/validators"
	"github.com/MKhiriev/go-tree-admin/models"
)

// defaultTimeZone preselects the time zone of a new account.
const defaultTimeZone = "UTC"

// userAdminService is the concrete implementation of UserAdminService.
type userAdminService struct {
	userRepository        store.UserRepository
	userSettingRepository store.UserSettingRepository
	treeRepository        store.TreeRepository
	auditLogRepository    store.AuditLogRepository

	mailer    adapter.Mailer
	hasher    crypto.PasswordHasher
	validator validators.Validator

	// hashKey is the HMAC secret anti-forgery tokens are derived from.
	hashKey string

	// themes and languages are the values the edit form offers.
	themes    []string
	languages []string

	// mailFrom is the notification sender used when the tree has no address.
	mailFrom string

	// baseURL is quoted in the approval notification.
	baseURL string

	now    func() time.Time
	logger *logger.Logger
}

func NewUserAdminService(storages *store.Storages, mailer adapter.Mailer, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) UserAdminService {
	return &userAdminService{
		userRepository:        storages.UserRepository,
		userSettingRepository: storages.UserSettingRepository,
		treeRepository:        storages.TreeRepository,
		auditLogRepository:    storages.AuditLogRepository,
		mailer:                mailer,
		hasher:                hasher,
		validator:             validators.NewUserFormValidator(),
		hashKey:               cfg.HashKey,
		themes:                cfg.Themes,
		languages:             cfg.Languages,
		mailFrom:              cfg.MailFrom,
		baseURL:               cfg.BaseURL,
		now:                   time.Now,
		logger:                logger,
	}
}

// ── listing ─────────────────────────────────────────────────────────────────

func (s *userAdminService) ListUsers(ctx context.Context, rc models.RequestContext, query models.UserListQuery) (models.UserListResult, error) {
	log := logger.FromContext(ctx)

	if query.Length > 0 && rc.Actor != nil {
		err := s.userSettingRepository.SetSettings(ctx, rc.Actor.UserID, map[string]string{
			models.PrefAdminUsersPageSize: strconv.Itoa(query.Length),
		})
		if err != nil {
			// the listing itself does not depend on it
			log.Warn().Err(err).Str("func", "userAdminService.ListUsers").Msg("error storing page size")
		}
	}

	rows, filtered, err := s.userRepository.ListUsers(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "userAdminService.ListUsers").Msg("error listing users")
		return models.UserListResult{}, fmt.Errorf("error listing users: %w", err)
	}

	total, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "userAdminService.ListUsers").Msg("error counting users")
		return models.UserListResult{}, fmt.Errorf("error counting users: %w", err)
	}

	return models.UserListResult{
		Draw:            query.Draw,
		RecordsTotal:    total,
		RecordsFiltered: filtered,
		Rows:            rows,
	}, nil
}

func (s *userAdminService) PageSize(ctx context.Context, rc models.RequestContext) (int, error) {
	if rc.Actor == nil {
		return models.DefaultAdminUsersPageSize, nil
	}

	settings, err := s.userSettingRepository.GetSettings(ctx, rc.Actor.UserID)
	if err != nil {
		return 0, fmt.Errorf("error loading user settings: %w", err)
	}

	return models.UserPreferencesFromSettings(settings).AdminUsersPageSize, nil
}

// ── edit form ───────────────────────────────────────────────────────────────

func (s *userAdminService) EditForm(ctx context.Context, userID int64) (models.UserEditView, error) {
	log := logger.FromContext(ctx)

	trees, err := s.treeRepository.AllTrees(ctx)
	if err != nil {
		log.Err(err).Str("func", "userAdminService.EditForm").Msg("error loading trees")
		return models.UserEditView{}, fmt.Errorf("error loading trees: %w", err)
	}

	view := models.UserEditView{
		Trees:           trees,
		TreePreferences: make(map[int64]models.TreeUserPreferences, len(trees)),
		IsNew:           userID == 0,
	}

	if view.IsNew {
		view.Preferences = models.UserPreferencesFromSettings(nil)
		view.Preferences.TimeZone = defaultTimeZone
		if len(s.languages) > 0 {
			view.Preferences.Language = s.languages[0]
		}
		for _, tree := range trees {
			view.TreePreferences[tree.TreeID] = models.TreeUserPreferencesFromSettings(tree.TreeID, nil)
		}
		return view, nil
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.UserEditView{}, err
	}
	user.PasswordHash = ""
	view.User = user

	settings, err := s.userSettingRepository.GetSettings(ctx, userID)
	if err != nil {
		return models.UserEditView{}, fmt.Errorf("error loading user settings: %w", err)
	}
	view.Preferences = models.UserPreferencesFromSettings(settings)

	for _, tree := range trees {
		prefs, prefErr := s.treeRepository.UserPreferences(ctx, tree.TreeID, userID)
		if prefErr != nil {
			return models.UserEditView{}, fmt.Errorf("error loading tree preferences: %w", prefErr)
		}
		view.TreePreferences[tree.TreeID] = models.TreeUserPreferencesFromSettings(tree.TreeID, prefs)
	}

	return view, nil
}

// ── save ────────────────────────────────────────────────────────────────────

// SaveUser creates (form.UserID == 0) or updates an account.
//
// A missing or wrong anti-forgery token yields OutcomeIgnored and changes
// nothing. Validation failures are reported as OutcomeRejected with a
// message; only storage failures are returned as errors.
//
// After the account itself was stored, an approval notification is sent when
// the account is approved for the first time and has never signed in, then
// the preferences and the per-tree settings are written. The actor's own
// administrator flag is never changed.
func (s *userAdminService) SaveUser(ctx context.Context, rc models.RequestContext, form models.UserForm) (models.SaveResult, error) {
	log := logger.FromContext(ctx)

	if !validCSRF(s.hashKey, rc) {
		log.Warn().Str("func", "userAdminService.SaveUser").Int64("actor", rc.ActorID()).Msg("anti-forgery token mismatch")
		return models.SaveResult{Outcome: models.OutcomeIgnored}, nil
	}

	var (
		user     models.User
		previous models.UserPreferences
		result   models.SaveResult
		err      error
	)
	if form.UserID == 0 {
		user, result, err = s.createUser(ctx, form)
	} else {
		user, previous, result, err = s.updateUser(ctx, form)
	}
	if err != nil || result.Outcome == models.OutcomeRejected || result.Outcome == models.OutcomeIgnored {
		return result, err
	}

	if form.Approved && !previous.VerifiedByAdmin && previous.SessionTime == 0 {
		s.notifyApproval(ctx, rc, user)
	}

	settings := models.UserPreferences{
		Theme:           s.validTheme(form.Theme),
		Language:        form.Language,
		TimeZone:        form.TimeZone,
		ContactMethod:   form.ContactMethod,
		Comment:         form.Comment,
		AutoAccept:      form.AutoAccept,
		VisibleOnline:   form.VisibleOnline,
		Verified:        form.Verified,
		VerifiedByAdmin: form.Approved,
		CanAdmin:        form.CanAdmin,
	}.Settings()

	if user.UserID == rc.ActorID() {
		delete(settings, models.PrefCanAdmin)
	}

	if err = s.userSettingRepository.SetSettings(ctx, user.UserID, settings); err != nil {
		log.Err(err).Str("func", "userAdminService.SaveUser").Int64("user_id", user.UserID).Msg("error storing preferences")
		return models.SaveResult{}, fmt.Errorf("error storing preferences: %w", err)
	}

	if err = s.saveTreePreferences(ctx, user.UserID, form.Trees); err != nil {
		log.Err(err).Str("func", "userAdminService.SaveUser").Int64("user_id", user.UserID).Msg("error storing tree preferences")
		return models.SaveResult{}, err
	}

	return result, nil
}

func (s *userAdminService) createUser(ctx context.Context, form models.UserForm) (models.User, models.SaveResult, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, form, validators.FieldUserName, validators.FieldRealName); err != nil {
		return models.User{}, rejected(err), nil
	}

	if _, err := s.userRepository.FindUserByUserName(ctx, form.UserName); err == nil {
		return models.User{}, rejected(store.ErrUserNameAlreadyExists), nil
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, models.SaveResult{}, fmt.Errorf("user search by name failed: %w", err)
	}

	if _, err := s.userRepository.FindUserByEmail(ctx, form.Email); err == nil {
		return models.User{}, rejected(store.ErrEmailAlreadyExists), nil
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, models.SaveResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := s.validator.Validate(ctx, form, validators.FieldPasswordsMatch, validators.FieldPasswordLength); err != nil {
		return models.User{}, rejected(err), nil
	}

	hash, err := s.hasher.Hash(form.Pass1)
	if err != nil {
		log.Err(err).Str("func", "userAdminService.createUser").Msg("error hashing password")
		return models.User{}, models.SaveResult{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.userRepository.CreateUser(ctx, models.User{
		UserName:     form.UserName,
		RealName:     form.RealName,
		Email:        form.Email,
		PasswordHash: hash,
	})
	if err != nil {
		// lost a race against a concurrent registration
		if errors.Is(err, store.ErrUserNameAlreadyExists) || errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, rejected(err), nil
		}
		return models.User{}, models.SaveResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	err = s.userSettingRepository.SetSettings(ctx, user.UserID, map[string]string{
		models.PrefRegTimestamp: strconv.FormatInt(s.now().Unix(), 10),
		models.PrefSessionTime:  "0",
	})
	if err != nil {
		return models.User{}, models.SaveResult{}, fmt.Errorf("error storing registration time: %w", err)
	}

	if err = s.auditLogRepository.AddAuthenticationLog(ctx, "User ->"+user.UserName+"<- created", user.UserID); err != nil {
		return models.User{}, models.SaveResult{}, fmt.Errorf("error writing audit log: %w", err)
	}

	log.Info().Str("func", "userAdminService.createUser").Int64("user_id", user.UserID).Str("user_name", user.UserName).Msg("user created")

	return user, models.SaveResult{
		Outcome: models.OutcomeCreated,
		Message: fmt.Sprintf(app.MsgUserCreated, user.UserName),
		UserID:  user.UserID,
	}, nil
}

// updateUser also returns the preferences the account had before the save.
func (s *userAdminService) updateUser(ctx context.Context, form models.UserForm) (models.User, models.UserPreferences, models.SaveResult, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, form, validators.FieldUserName, validators.FieldRealName); err != nil {
		return models.User{}, models.UserPreferences{}, rejected(err), nil
	}

	existing, err := s.userRepository.FindUserByID(ctx, form.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("func", "userAdminService.updateUser").Int64("user_id", form.UserID).Msg("user to update does not exist")
		return models.User{}, models.UserPreferences{}, models.SaveResult{Outcome: models.OutcomeIgnored}, nil
	}
	if err != nil {
		return models.User{}, models.UserPreferences{}, models.SaveResult{}, fmt.Errorf("user search by id failed: %w", err)
	}

	settings, err := s.userSettingRepository.GetSettings(ctx, existing.UserID)
	if err != nil {
		return models.User{}, models.UserPreferences{}, models.SaveResult{}, fmt.Errorf("error loading user settings: %w", err)
	}

	user := models.User{
		UserID:   existing.UserID,
		UserName: form.UserName,
		RealName: form.RealName,
		Email:    form.Email,
	}

	if err = s.userRepository.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrUserNameAlreadyExists) || errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, models.UserPreferences{}, rejected(err), nil
		}
		return models.User{}, models.UserPreferences{}, models.SaveResult{}, fmt.Errorf("user update ended with error: %w", err)
	}

	message := fmt.Sprintf(app.MsgUserUpdated, user.UserName)

	// A password is only replaced when it was typed twice.
	pwErr := s.validator.Validate(ctx, form, validators.FieldPasswordsMatch, validators.FieldPasswordLength)
	switch {
	case form.Pass1 == "":
	case pwErr != nil:
		log.Info().Str("func", "userAdminService.updateUser").Int64("user_id", user.UserID).Err(pwErr).Msg("password left unchanged")
		message += " " + app.MsgPasswordNotChanged + " " + rejected(pwErr).Message
	default:
		hash, hashErr := s.hasher.Hash(form.Pass1)
		if hashErr != nil {
			return models.User{}, models.UserPreferences{}, models.SaveResult{}, fmt.Errorf("error hashing password: %w", hashErr)
		}
		if err = s.userRepository.SetPassword(ctx, user.UserID, hash); err != nil {
			return models.User{}, models.UserPreferences{}, models.SaveResult{}, err
		}
		log.Info().Str("func", "userAdminService.updateUser").Int64("user_id", user.UserID).Msg("password changed")
	}

	return user, models.UserPreferencesFromSettings(settings), models.SaveResult{
		Outcome: models.OutcomeUpdated,
		Message: message,
		UserID:  user.UserID,
	}, nil
}

func (s *userAdminService) saveTreePreferences(ctx context.Context, userID int64, forms map[int64]models.TreeUserForm) error {
	trees, err := s.treeRepository.AllTrees(ctx)
	if err != nil {
		return fmt.Errorf("error loading trees: %w", err)
	}

	for _, tree := range trees {
		f := forms[tree.TreeID]

		var xref, role, pathLength *string
		if models.ValidXref(f.IndividualXref) {
			xref = &f.IndividualXref
			length := strconv.Itoa(clampPathLength(f.RelationshipPathLength))
			pathLength = &length
		}
		if r, ok := models.ParseRole(f.Role); ok {
			value := string(r)
			role = &value
		}

		for _, pref := range []struct {
			name  string
			value *string
		}{
			{models.TreePrefIndividual, xref},
			{models.TreePrefRole, role},
			{models.TreePrefRelationshipPathLength, pathLength},
		} {
			if err = s.treeRepository.SetUserPreference(ctx, tree.TreeID, userID, pref.name, pref.value); err != nil {
				return fmt.Errorf("error storing tree preference %s: %w", pref.name, err)
			}
		}
	}

	return nil
}

// clampPathLength parses a submitted relationship path length. Anything
// that is not a number within 0..MaxRelationshipPathLength is 0.
func clampPathLength(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > models.MaxRelationshipPathLength {
		return 0
	}
	return v
}

func (s *userAdminService) validTheme(theme string) string {
	if slices.Contains(s.themes, theme) {
		return theme
	}
	return ""
}

// notifyApproval tells the user their account was approved. The mail comes
// from the current tree. Failures are logged and never fail the save.
func (s *userAdminService) notifyApproval(ctx context.Context, rc models.RequestContext, user models.User) {
	log := logger.FromContext(ctx)

	n := approvalNotification(user, rc.Tree, s.mailFrom, s.baseURL)
	if err := s.mailer.Send(ctx, n); err != nil {
		log.Err(err).Str("func", "userAdminService.notifyApproval").Int64("user_id", user.UserID).Msg("approval notification failed")
		return
	}

	log.Info().Str("func", "userAdminService.notifyApproval").Int64("user_id", user.UserID).Msg("approval notification sent")
}

// ── delete ──────────────────────────────────────────────────────────────────

func (s *userAdminService) DeleteUser(ctx context.Context, rc models.RequestContext, userID int64) (models.SaveResult, error) {
	log := logger.FromContext(ctx)

	if !validCSRF(s.hashKey, rc) {
		log.Warn().Str("func", "userAdminService.DeleteUser").Int64("actor", rc.ActorID()).Msg("anti-forgery token mismatch")
		return models.SaveResult{Outcome: models.OutcomeIgnored}, nil
	}

	if userID == rc.ActorID() {
		return models.SaveResult{Outcome: models.OutcomeRejected, Message: app.MsgCannotDeleteSelf}, nil
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.SaveResult{Outcome: models.OutcomeIgnored}, nil
	}
	if err != nil {
		return models.SaveResult{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if err = s.deleteUser(ctx, user); err != nil {
		return models.SaveResult{}, err
	}

	return models.SaveResult{
		Outcome: models.OutcomeDeleted,
		Message: fmt.Sprintf(app.MsgUserDeleted, user.UserName),
		UserID:  user.UserID,
	}, nil
}

// deleteUser writes the audit entry first, so that it names the account
// while it still exists.
func (s *userAdminService) deleteUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	if err := s.auditLogRepository.AddAuthenticationLog(ctx, "Deleted user: "+user.UserName, user.UserID); err != nil {
		return fmt.Errorf("error writing audit log: %w", err)
	}

	if err := s.userRepository.DeleteUser(ctx, user.UserID); err != nil {
		log.Err(err).Str("func", "userAdminService.deleteUser").Int64("user_id", user.UserID).Msg("error deleting user")
		return fmt.Errorf("error deleting user: %w", err)
	}

	log.Info().Str("func", "userAdminService.deleteUser").Int64("user_id", user.UserID).Str("user_name", user.UserName).Msg("user deleted")

	return nil
}

// rejected turns a validation or uniqueness failure into its user-facing result.
func rejected(err error) models.SaveResult {
	msg := app.MsgInvalidDataProvided
	switch {
	case errors.Is(err, store.ErrUserNameAlreadyExists):
		msg = app.MsgDuplicateUserName
	case errors.Is(err, store.ErrEmailAlreadyExists):
		msg = app.MsgDuplicateEmail
	case errors.Is(err, validators.ErrPasswordsDoNotMatch):
		msg = app.MsgPasswordsDoNotMatch
	case errors.Is(err, validators.ErrPasswordTooShort):
		msg = app.MsgPasswordTooShort
	case errors.Is(err, validators.ErrMissingUserName):
		msg = app.MsgMissingUserName
	case errors.Is(err, validators.ErrMissingRealName):
		msg = app.MsgMissingRealName
	}
	return models.SaveResult{Outcome: models.OutcomeRejected, Message: msg}
}
