// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-tree-admin/internal/config"
	"github.com/MKhiriev/go-tree-admin/internal/crypto"
	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/store"
	"github.com/MKhiriev/go-tree-admin/internal/utils"
	"github.com/MKhiriev/go-tree-admin/models"
)

// sessionService is the concrete implementation of SessionService.
// It checks credentials with a PasswordHasher, issues signed session tokens
// and turns a session back into an Actor with its per-tree roles.
type sessionService struct {
	userRepository        store.UserRepository
	userSettingRepository store.UserSettingRepository
	treeRepository        store.TreeRepository

	hasher crypto.PasswordHasher

	// hashKey is the HMAC secret anti-forgery tokens are derived from.
	hashKey string

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued session.
	// Sessions whose issuer does not match this value are rejected.
	tokenIssuer string

	// sessionDuration controls how long a new session remains valid.
	sessionDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewSessionService constructs a new SessionService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewSessionService(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		userRepository:        storages.UserRepository,
		userSettingRepository: storages.UserSettingRepository,
		treeRepository:        storages.TreeRepository,
		hasher:                hasher,
		hashKey:               cfg.HashKey,
		tokenSignKey:          cfg.TokenSignKey,
		tokenIssuer:           cfg.TokenIssuer,
		sessionDuration:       cfg.SessionDuration,
		now:                   time.Now,
		logger:                logger,
	}
}

// SignIn authenticates a user and opens a session.
//
// Unknown user names and wrong passwords both yield ErrWrongPassword.
// Accounts that are not both verified and approved yield
// ErrAccountNotApproved. On success the account's session time is set to
// now.
func (s *sessionService) SignIn(ctx context.Context, userName, password string) (models.SessionToken, error) {
	log := logger.FromContext(ctx)

	if userName == "" || password == "" {
		return models.SessionToken{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("func", "sessionService.SignIn").Str("user_name", userName).Msg("unknown user")
			return models.SessionToken{}, ErrWrongPassword
		}
		log.Err(err).Str("func", "sessionService.SignIn").Msg("user search by name failed")
		return models.SessionToken{}, fmt.Errorf("user search by name failed: %w", err)
	}

	ok, err := s.hasher.Verify(user.PasswordHash, password)
	if err != nil {
		log.Err(err).Str("func", "sessionService.SignIn").Int64("user_id", user.UserID).Msg("unusable password verifier")
		return models.SessionToken{}, ErrWrongPassword
	}
	if !ok {
		log.Warn().Str("func", "sessionService.SignIn").Int64("user_id", user.UserID).Msg("wrong password")
		return models.SessionToken{}, ErrWrongPassword
	}

	settings, err := s.userSettingRepository.GetSettings(ctx, user.UserID)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error loading user settings: %w", err)
	}
	if !models.UserPreferencesFromSettings(settings).CanSignIn() {
		return models.SessionToken{}, ErrAccountNotApproved
	}

	now := s.now()
	if err = s.userSettingRepository.SetSettings(ctx, user.UserID, map[string]string{
		models.PrefSessionTime: strconv.FormatInt(now.Unix(), 10),
	}); err != nil {
		return models.SessionToken{}, fmt.Errorf("error storing session time: %w", err)
	}

	token, err := utils.GenerateSessionToken(s.tokenIssuer, user.UserID, s.sessionDuration, s.tokenSignKey)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("func", "sessionService.SignIn").Int64("user_id", user.UserID).Msg("signed in")

	return token, nil
}

// ParseSession validates a session token and resolves its actor.
//
// Any validation failure (expired, wrong issuer, malformed, account gone) is
// normalised to ErrTokenIsExpiredOrInvalid.
func (s *sessionService) ParseSession(ctx context.Context, tokenString string) (*models.Actor, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return nil, ErrTokenIsExpiredOrInvalid
	}

	actor, err := s.ResolveActor(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return nil, ErrTokenIsExpiredOrInvalid
	}

	return actor, err
}

func (s *sessionService) ResolveActor(ctx context.Context, userID int64) (*models.Actor, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.actor(ctx, user)
}

func (s *sessionService) ResolveActorByName(ctx context.Context, userName string) (*models.Actor, error) {
	user, err := s.userRepository.FindUserByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	return s.actor(ctx, user)
}

func (s *sessionService) ResolveTree(ctx context.Context, treeName string) (*models.Tree, error) {
	if treeName != "" {
		tree, err := s.treeRepository.FindTreeByName(ctx, treeName)
		if err != nil {
			return nil, err
		}
		return &tree, nil
	}

	trees, err := s.treeRepository.AllTrees(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionService.ResolveTree").Msg("error loading trees")
		return nil, fmt.Errorf("error loading trees: %w", err)
	}
	if len(trees) == 0 {
		return nil, nil
	}
	return &trees[0], nil
}

func (s *sessionService) actor(ctx context.Context, user models.User) (*models.Actor, error) {
	log := logger.FromContext(ctx)

	settings, err := s.userSettingRepository.GetSettings(ctx, user.UserID)
	if err != nil {
		log.Err(err).Str("func", "sessionService.actor").Int64("user_id", user.UserID).Msg("error loading user settings")
		return nil, fmt.Errorf("error loading user settings: %w", err)
	}

	trees, err := s.treeRepository.AllTrees(ctx)
	if err != nil {
		log.Err(err).Str("func", "sessionService.actor").Msg("error loading trees")
		return nil, fmt.Errorf("error loading trees: %w", err)
	}

	actor := &models.Actor{
		UserID:   user.UserID,
		UserName: user.UserName,
		IsAdmin:  models.ParseFlag(settings[models.PrefCanAdmin]),
		Roles:    make(map[int64]models.Role, len(trees)),
	}

	for _, tree := range trees {
		prefs, prefErr := s.treeRepository.UserPreferences(ctx, tree.TreeID, user.UserID)
		if prefErr != nil {
			return nil, fmt.Errorf("error loading tree preferences: %w", prefErr)
		}
		actor.Roles[tree.TreeID] = models.TreeUserPreferencesFromSettings(tree.TreeID, prefs).Role
	}

	return actor, nil
}

func (s *sessionService) CSRFToken(actor *models.Actor) string {
	return csrfToken(s.hashKey, actor)
}
