// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/go-tree-admin/internal/store"
	"github.com/MKhiriev/go-tree-admin/models"
)

// ─────────────────────────────────────────────
// Fake: every store repository, in memory
// ─────────────────────────────────────────────

type treePrefKey struct {
	treeID, userID int64
}

type memStore struct {
	mu sync.Mutex

	users    map[int64]models.User
	nextID   int64
	settings map[int64]map[string]string

	trees     []models.Tree
	treePrefs map[treePrefKey]map[string]string

	grants map[string]map[models.ModuleAccessKey]models.AccessLevel

	blocks        map[int64]models.Block
	blockSettings map[int64]map[string]string

	names map[int64]map[models.Sex][]models.GivenNameCount

	// ops records audit entries and deletions in call order.
	ops []string

	// fail makes the named method return the error.
	fail map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		users:         map[int64]models.User{},
		nextID:        1,
		settings:      map[int64]map[string]string{},
		treePrefs:     map[treePrefKey]map[string]string{},
		grants:        map[string]map[models.ModuleAccessKey]models.AccessLevel{},
		blocks:        map[int64]models.Block{},
		blockSettings: map[int64]map[string]string{},
		names:         map[int64]map[models.Sex][]models.GivenNameCount{},
		fail:          map[string]error{},
	}
}

func (m *memStore) storages() *store.Storages {
	return &store.Storages{
		UserRepository:         m,
		UserSettingRepository:  m,
		TreeRepository:         m,
		ModuleAccessRepository: m,
		BlockSettingRepository: m,
		NameStatsRepository:    m,
		AuditLogRepository:     m,
	}
}

// addUser stores a user with settings and returns its id.
func (m *memStore) addUser(name, email string, settings map[string]string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.users[id] = models.User{UserID: id, UserName: name, RealName: strings.ToUpper(name[:1]) + name[1:], Email: email, PasswordHash: "hashed:" + name + "-pw"}
	m.settings[id] = map[string]string{}
	for k, v := range settings {
		m.settings[id][k] = v
	}
	return id
}

func (m *memStore) setting(userID int64, name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.settings[userID][name]
	return v, ok
}

func (m *memStore) treePref(treeID, userID int64, name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.treePrefs[treePrefKey{treeID, userID}][name]
	return v, ok
}

func (m *memStore) failure(method string) error {
	return m.fail[method]
}

// ── UserRepository ──

func (m *memStore) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	if err := m.failure("FindUserByID"); err != nil {
		return models.User{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[userID]; ok {
		return u, nil
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *memStore) FindUserByUserName(_ context.Context, userName string) (models.User, error) {
	if err := m.failure("FindUserByUserName"); err != nil {
		return models.User{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.UserName, userName) {
			return u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *memStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *memStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if err := m.failure("CreateUser"); err != nil {
		return models.User{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user.UserID = m.nextID
	m.nextID++
	m.users[user.UserID] = user
	return user, nil
}

func (m *memStore) UpdateUser(_ context.Context, user models.User) error {
	if err := m.failure("UpdateUser"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.users[user.UserID]
	if !ok {
		return store.ErrNoUserWasFound
	}
	for id, u := range m.users {
		if id != user.UserID && strings.EqualFold(u.UserName, user.UserName) {
			return store.ErrUserNameAlreadyExists
		}
	}
	user.PasswordHash = existing.PasswordHash
	m.users[user.UserID] = user
	return nil
}

func (m *memStore) SetPassword(_ context.Context, userID int64, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := m.users[userID]
	u.PasswordHash = passwordHash
	m.users[userID] = u
	return nil
}

func (m *memStore) DeleteUser(_ context.Context, userID int64) error {
	if err := m.failure("DeleteUser"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, userID)
	delete(m.settings, userID)
	m.ops = append(m.ops, fmt.Sprintf("delete:%d", userID))
	return nil
}

func (m *memStore) AllUsers(_ context.Context) ([]models.User, error) {
	if err := m.failure("AllUsers"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserName < out[j].UserName })
	return out, nil
}

func (m *memStore) CountUsers(_ context.Context) (int, error) {
	if err := m.failure("CountUsers"); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users), nil
}

func (m *memStore) ListUsers(ctx context.Context, query models.UserListQuery) ([]models.UserListRow, int, error) {
	if err := m.failure("ListUsers"); err != nil {
		return nil, 0, err
	}
	users, _ := m.AllUsers(ctx)

	var rows []models.UserListRow
	for _, u := range users {
		if query.Search != "" && !strings.Contains(strings.ToLower(u.UserName), strings.ToLower(query.Search)) {
			continue
		}
		rows = append(rows, models.UserListRow{UserID: u.UserID, UserName: u.UserName, RealName: u.RealName, Email: u.Email})
	}
	return rows, len(rows), nil
}

// ── UserSettingRepository ──

func (m *memStore) GetSettings(_ context.Context, userID int64) (map[string]string, error) {
	if err := m.failure("GetSettings"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]string{}
	for k, v := range m.settings[userID] {
		out[k] = v
	}
	return out, nil
}

func (m *memStore) SetSettings(_ context.Context, userID int64, settings map[string]string) error {
	if err := m.failure("SetSettings"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settings[userID] == nil {
		m.settings[userID] = map[string]string{}
	}
	for k, v := range settings {
		m.settings[userID][k] = v
	}
	return nil
}

// ── TreeRepository ──

func (m *memStore) AllTrees(_ context.Context) ([]models.Tree, error) {
	if err := m.failure("AllTrees"); err != nil {
		return nil, err
	}
	return append([]models.Tree(nil), m.trees...), nil
}

func (m *memStore) FindTreeByID(_ context.Context, treeID int64) (models.Tree, error) {
	for _, t := range m.trees {
		if t.TreeID == treeID {
			return t, nil
		}
	}
	return models.Tree{}, store.ErrTreeNotFound
}

func (m *memStore) FindTreeByName(_ context.Context, name string) (models.Tree, error) {
	for _, t := range m.trees {
		if t.Name == name {
			return t, nil
		}
	}
	return models.Tree{}, store.ErrTreeNotFound
}

func (m *memStore) UserPreferences(_ context.Context, treeID, userID int64) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]string{}
	for k, v := range m.treePrefs[treePrefKey{treeID, userID}] {
		out[k] = v
	}
	return out, nil
}

func (m *memStore) SetUserPreference(_ context.Context, treeID, userID int64, name string, value *string) error {
	if err := m.failure("SetUserPreference"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := treePrefKey{treeID, userID}
	if value == nil {
		delete(m.treePrefs[key], name)
		return nil
	}
	if m.treePrefs[key] == nil {
		m.treePrefs[key] = map[string]string{}
	}
	m.treePrefs[key][name] = *value
	return nil
}

// ── ModuleAccessRepository ──

func (m *memStore) AccessLevels(_ context.Context, component string) ([]models.ModuleAccessGrant, error) {
	if err := m.failure("AccessLevels"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ModuleAccessGrant
	for k, v := range m.grants[component] {
		out = append(out, models.ModuleAccessGrant{ModuleAccessKey: k, Level: v})
	}
	return out, nil
}

func (m *memStore) UpsertAccessLevel(_ context.Context, component string, grant models.ModuleAccessGrant) error {
	if err := m.failure("UpsertAccessLevel"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.grants[component] == nil {
		m.grants[component] = map[models.ModuleAccessKey]models.AccessLevel{}
	}
	m.grants[component][grant.ModuleAccessKey] = grant.Level
	return nil
}

// ── BlockSettingRepository ──

func (m *memStore) FindBlock(_ context.Context, blockID int64) (models.Block, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.blocks[blockID]; ok {
		return b, nil
	}
	return models.Block{}, store.ErrBlockNotFound
}

func (m *memStore) BlockSettings(_ context.Context, blockID int64) (map[string]string, error) {
	if err := m.failure("BlockSettings"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]string{}
	for k, v := range m.blockSettings[blockID] {
		out[k] = v
	}
	return out, nil
}

func (m *memStore) SetBlockSetting(_ context.Context, blockID int64, name, value string) error {
	if err := m.failure("SetBlockSetting"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blockSettings[blockID] == nil {
		m.blockSettings[blockID] = map[string]string{}
	}
	m.blockSettings[blockID][name] = value
	return nil
}

// ── NameStatsRepository ──

func (m *memStore) TopGivenNames(_ context.Context, treeID int64, sex models.Sex, threshold, limit int) ([]models.GivenNameCount, error) {
	if err := m.failure("TopGivenNames"); err != nil {
		return nil, err
	}
	var out []models.GivenNameCount
	for _, n := range m.names[treeID][sex] {
		if n.Count >= threshold && len(out) < limit {
			out = append(out, n)
		}
	}
	return out, nil
}

// ── AuditLogRepository ──

func (m *memStore) AddAuthenticationLog(_ context.Context, message string, userID int64) error {
	if err := m.failure("AddAuthenticationLog"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, "audit:"+message)
	return nil
}

// ─────────────────────────────────────────────
// Fake: crypto.PasswordHasher
// ─────────────────────────────────────────────

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(verifier, password string) (bool, error) {
	return verifier == "hashed:"+password, nil
}
