// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-tree-admin/models"
)

var userColumns = []string{"user_id", "user_name", "real_name", "email", "password_hash"}

func buildFindUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildFindUserByUserNameQuery(b sq.StatementBuilderType, userName string) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where("LOWER(user_name) = LOWER(?)", userName).
		ToSql()
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where("LOWER(email) = LOWER(?)", email).
		ToSql()
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("user_name", "real_name", "email", "password_hash").
		Values(user.UserName, user.RealName, user.Email, user.PasswordHash).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Update("users").
		Set("user_name", user.UserName).
		Set("real_name", user.RealName).
		Set("email", user.Email).
		Where(sq.Eq{"user_id": user.UserID}).
		ToSql()
}

func buildSetPasswordQuery(b sq.StatementBuilderType, userID int64, passwordHash string) (string, []any, error) {
	return b.Update("users").
		Set("password_hash", passwordHash).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildDeleteUserQueries returns the statements removing a user, dependants first.
func buildDeleteUserQueries(b sq.StatementBuilderType, userID int64) []sq.Sqlizer {
	return []sq.Sqlizer{
		b.Delete("user_tree_settings").Where(sq.Eq{"user_id": userID}),
		b.Delete("user_settings").Where(sq.Eq{"user_id": userID}),
		b.Delete("users").Where(sq.Eq{"user_id": userID}),
	}
}

func buildAllUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Gt{"user_id": 0}).
		OrderBy("user_name").
		ToSql()
}

func buildCountUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").
		From("users").
		Where(sq.Gt{"user_id": 0}).
		ToSql()
}

// Numeric views over the timestamp preferences. Missing or empty values sort as 0.
const (
	userListRegTimestamp = "CAST(COALESCE(NULLIF(us_reg.setting_value, ''), '0') AS BIGINT)"
	userListSessionTime  = "CAST(COALESCE(NULLIF(us_session.setting_value, ''), '0') AS BIGINT)"
)

// userListSortColumns maps a grid column index to its ORDER BY expression.
// Column 0 holds the row actions and cannot be sorted.
var userListSortColumns = map[int]string{
	1:  "u.user_id",
	2:  "u.user_name",
	3:  "u.real_name",
	4:  "u.email",
	5:  "us_language.setting_value",
	6:  userListRegTimestamp,
	7:  userListRegTimestamp,
	8:  userListSessionTime,
	9:  userListSessionTime,
	10: "us_verified.setting_value",
	11: "us_approved.setting_value",
}

var userListColumns = []string{
	"u.user_id",
	"u.user_name",
	"u.real_name",
	"u.email",
	"COALESCE(us_language.setting_value, '')",
	userListRegTimestamp,
	userListSessionTime,
	"COALESCE(us_verified.setting_value, '')",
	"COALESCE(us_approved.setting_value, '')",
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// userListFilter is the search predicate: a case-insensitive substring of
// the user name, the real name or the email.
func userListFilter(search string) sq.Sqlizer {
	if search == "" {
		return nil
	}

	pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
	return sq.Or{
		sq.Expr(`LOWER(u.user_name) LIKE ? ESCAPE '\'`, pattern),
		sq.Expr(`LOWER(u.real_name) LIKE ? ESCAPE '\'`, pattern),
		sq.Expr(`LOWER(u.email) LIKE ? ESCAPE '\'`, pattern),
	}
}

// userListOrder translates the grid ordering. Unknown columns are skipped,
// the user id is always appended so that pages are stable.
func userListOrder(order []models.SortSpec) []string {
	clauses := make([]string, 0, len(order)+1)
	for _, spec := range order {
		column, ok := userListSortColumns[spec.Column]
		if !ok {
			continue
		}

		dir := "ASC"
		if strings.EqualFold(spec.Dir, "desc") {
			dir = "DESC"
		}
		clauses = append(clauses, column+" "+dir)
	}

	if len(clauses) == 0 {
		clauses = append(clauses, "u.user_name ASC")
	}

	return append(clauses, "u.user_id ASC")
}

func buildListUsersQuery(b sq.StatementBuilderType, query models.UserListQuery) (string, []any, error) {
	join := func(alias string) string {
		return "user_settings " + alias + " ON " + alias + ".user_id = u.user_id AND " + alias + ".setting_name = ?"
	}

	builder := b.Select(userListColumns...).
		From("users u").
		LeftJoin(join("us_language"), models.PrefLanguage).
		LeftJoin(join("us_reg"), models.PrefRegTimestamp).
		LeftJoin(join("us_session"), models.PrefSessionTime).
		LeftJoin(join("us_verified"), models.PrefVerified).
		LeftJoin(join("us_approved"), models.PrefVerifiedByAdmin).
		Where(sq.Gt{"u.user_id": 0})

	if filter := userListFilter(query.Search); filter != nil {
		builder = builder.Where(filter)
	}

	builder = builder.OrderBy(userListOrder(query.Order)...)

	if query.Length > 0 {
		builder = builder.Limit(uint64(query.Length))
		if query.Start > 0 {
			builder = builder.Offset(uint64(query.Start))
		}
	}

	return builder.ToSql()
}

func buildCountFilteredUsersQuery(b sq.StatementBuilderType, search string) (string, []any, error) {
	builder := b.Select("COUNT(*)").
		From("users u").
		Where(sq.Gt{"u.user_id": 0})

	if filter := userListFilter(search); filter != nil {
		builder = builder.Where(filter)
	}

	return builder.ToSql()
}

func buildGetUserSettingsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("setting_name", "setting_value").
		From("user_settings").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpsertUserSettingQuery(b sq.StatementBuilderType, userID int64, name, value string) (string, []any, error) {
	return b.Insert("user_settings").
		Columns("user_id", "setting_name", "setting_value").
		Values(userID, name, value).
		Suffix("ON CONFLICT (user_id, setting_name) DO UPDATE SET setting_value = EXCLUDED.setting_value").
		ToSql()
}

var treeColumns = []string{"tree_id", "tree_name", "tree_title", "contact_email"}

func buildAllTreesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(treeColumns...).
		From("trees").
		OrderBy("tree_title", "tree_id").
		ToSql()
}

func buildFindTreeByIDQuery(b sq.StatementBuilderType, treeID int64) (string, []any, error) {
	return b.Select(treeColumns...).
		From("trees").
		Where(sq.Eq{"tree_id": treeID}).
		ToSql()
}

func buildFindTreeByNameQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select(treeColumns...).
		From("trees").
		Where(sq.Eq{"tree_name": name}).
		ToSql()
}

func buildTreeUserPreferencesQuery(b sq.StatementBuilderType, treeID, userID int64) (string, []any, error) {
	return b.Select("setting_name", "setting_value").
		From("user_tree_settings").
		Where(sq.Eq{"tree_id": treeID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpsertTreeUserPreferenceQuery(b sq.StatementBuilderType, treeID, userID int64, name, value string) (string, []any, error) {
	return b.Insert("user_tree_settings").
		Columns("tree_id", "user_id", "setting_name", "setting_value").
		Values(treeID, userID, name, value).
		Suffix("ON CONFLICT (tree_id, user_id, setting_name) DO UPDATE SET setting_value = EXCLUDED.setting_value").
		ToSql()
}

func buildDeleteTreeUserPreferenceQuery(b sq.StatementBuilderType, treeID, userID int64, name string) (string, []any, error) {
	return b.Delete("user_tree_settings").
		Where(sq.Eq{"tree_id": treeID}).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"setting_name": name}).
		ToSql()
}

func buildAccessLevelsQuery(b sq.StatementBuilderType, component string) (string, []any, error) {
	return b.Select("module_name", "tree_id", "access_level").
		From("module_privacy").
		Where(sq.Eq{"component": component}).
		ToSql()
}

func buildUpsertAccessLevelQuery(b sq.StatementBuilderType, component string, grant models.ModuleAccessGrant) (string, []any, error) {
	return b.Insert("module_privacy").
		Columns("module_name", "tree_id", "component", "access_level").
		Values(grant.ModuleName, grant.TreeID, component, int(grant.Level)).
		Suffix("ON CONFLICT (module_name, tree_id, component) DO UPDATE SET access_level = EXCLUDED.access_level").
		ToSql()
}

func buildFindBlockQuery(b sq.StatementBuilderType, blockID int64) (string, []any, error) {
	return b.Select("block_id", "tree_id", "user_id", "module_name").
		From("blocks").
		Where(sq.Eq{"block_id": blockID}).
		ToSql()
}

func buildBlockSettingsQuery(b sq.StatementBuilderType, blockID int64) (string, []any, error) {
	return b.Select("setting_name", "setting_value").
		From("block_settings").
		Where(sq.Eq{"block_id": blockID}).
		ToSql()
}

func buildUpsertBlockSettingQuery(b sq.StatementBuilderType, blockID int64, name, value string) (string, []any, error) {
	return b.Insert("block_settings").
		Columns("block_id", "setting_name", "setting_value").
		Values(blockID, name, value).
		Suffix("ON CONFLICT (block_id, setting_name) DO UPDATE SET setting_value = EXCLUDED.setting_value").
		ToSql()
}

func buildTopGivenNamesQuery(b sq.StatementBuilderType, treeID int64, sex models.Sex, threshold, limit int) (string, []any, error) {
	return b.Select("given_name", "name_count").
		From("given_name_stats").
		Where(sq.Eq{"tree_id": treeID}).
		Where(sq.Eq{"sex": string(sex)}).
		Where(sq.GtOrEq{"name_count": threshold}).
		OrderBy("name_count DESC", "given_name ASC").
		Limit(uint64(limit)).
		ToSql()
}

func buildAddAuditLogQuery(b sq.StatementBuilderType, logType, message string, userID int64) (string, []any, error) {
	var user any
	if userID > 0 {
		user = userID
	}

	return b.Insert("audit_log").
		Columns("log_type", "log_message", "user_id").
		Values(logType, message, user).
		ToSql()
}
