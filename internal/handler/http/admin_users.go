// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-tree-admin/internal/app"
	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/view"
	"github.com/MKhiriev/go-tree-admin/models"
)

const usersPage = "/admin/users"

// Per-tree fields of the user edit form carry the tree id as a suffix,
// e.g. "canedit3".
const (
	fieldIndividualXref         = "gedcomid"
	fieldRole                   = "canedit"
	fieldRelationshipPathLength = "RELATIONSHIP_PATH_LENGTH"
)

var contactMethods = []view.Option{
	{Value: "messaging", Label: "Internal messaging"},
	{Value: "messaging2", Label: "Internal messaging with emails"},
	{Value: "messaging3", Label: "Mailing list"},
	{Value: "mailto", Label: "Email"},
	{Value: "none", Label: "No contact"},
}

var relationshipPathLengths = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

var cleanupMonthChoices = func() []int {
	months := make([]int, 0, models.MaxCleanupMonths)
	for m := models.MinCleanupMonths; m <= models.MaxCleanupMonths; m++ {
		months = append(months, m)
	}
	return months
}()

// usersGet serves the user list and, selected by the "action" parameter,
// the edit form, the cleanup report and the list's JSON feed.
func (h *Handler) usersGet(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("action") {
	case "edit":
		h.userEditPage(w, r)
	case "cleanup":
		h.usersCleanupPage(w, r)
	case "load_json":
		h.usersJSON(w, r)
	default:
		h.usersListPage(w, r)
	}
}

// usersPost dispatches the user administration form posts. Every mutation
// ends with a redirect back to the user list.
func (h *Handler) usersPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, "*Handler.usersPost", "error parsing form", ErrUnknownAction)
		return
	}

	switch r.PostFormValue("action") {
	case "save":
		h.saveUser(w, r)
	case "delete":
		h.deleteUser(w, r)
	case "cleanup2":
		h.cleanupUsers(w, r)
	case "load_json":
		h.usersJSON(w, r)
	default:
		h.fail(w, r, "*Handler.usersPost", "unknown action", ErrUnknownAction)
	}
}

func (h *Handler) usersListPage(w http.ResponseWriter, r *http.Request) {
	pageSize, err := h.services.UserAdminService.PageSize(r.Context(), h.requestContext(r, nil, models.PageUser))
	if err != nil {
		h.fail(w, r, "*Handler.usersListPage", "error loading page size", err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageUsers, view.UsersPage{
		Page:     h.page(w, r, "User administration"),
		PageSize: pageSize,
		Filter:   r.URL.Query().Get("filter"),
	})
}

func (h *Handler) userEditPage(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(r.URL.Query().Get("user_id"), true)
	if err != nil {
		h.fail(w, r, "*Handler.userEditPage", "bad user id", err)
		return
	}

	form, err := h.services.UserAdminService.EditForm(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "*Handler.userEditPage", "error loading user", err)
		return
	}

	title := "Edit the user"
	if form.IsNew {
		title = "Add a user"
	}

	h.render(w, r, http.StatusOK, view.PageUserEdit, view.UserEditPage{
		Page:           h.page(w, r, title),
		UserEditView:   form,
		Themes:         h.themes,
		Languages:      h.languages,
		ContactMethods: contactMethods,
		Roles:          models.Roles,
		PathLengths:    relationshipPathLengths,
	})
}

func (h *Handler) usersCleanupPage(w http.ResponseWriter, r *http.Request) {
	months, _ := strconv.Atoi(r.URL.Query().Get("month"))

	report, err := h.services.UserAdminService.CleanupReport(r.Context(), h.requestContext(r, nil, models.PageUser), months, h.now())
	if err != nil {
		h.fail(w, r, "*Handler.usersCleanupPage", "error building cleanup report", err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageUsersCleanup, view.CleanupPage{
		Page:   h.page(w, r, "Delete inactive users"),
		Report: report,
		Months: cleanupMonthChoices,
	})
}

func (h *Handler) saveUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	tree, err := h.services.SessionService.ResolveTree(r.Context(), r.URL.Query().Get("ged"))
	if err != nil {
		h.fail(w, r, "*Handler.saveUser", "error resolving tree", err)
		return
	}

	form, err := parseUserForm(r)
	if err != nil {
		h.fail(w, r, "*Handler.saveUser", "bad user id", err)
		return
	}

	result, err := h.services.UserAdminService.SaveUser(r.Context(), h.requestContext(r, tree, models.PageUser), form)
	if err != nil {
		h.fail(w, r, "*Handler.saveUser", "error saving user", err)
		return
	}

	log.Info().Str("func", "*Handler.saveUser").Str("outcome", string(result.Outcome)).Int64("user_id", result.UserID).Msg("user form processed")

	target := usersPage
	switch result.Outcome {
	case models.OutcomeCreated:
		setFlashes(w, view.Flash{Status: flashSuccess, Message: result.Message})
		target = usersPage + "?filter=" + url.QueryEscape(form.UserName)
	case models.OutcomeUpdated:
		setFlashes(w, view.Flash{Status: flashSuccess, Message: result.Message})
	case models.OutcomeRejected:
		setFlashes(w, view.Flash{Status: flashDanger, Message: result.Message})
		if form.UserID != 0 {
			target = usersPage + "?action=edit&user_id=" + strconv.FormatInt(form.UserID, 10)
		} else {
			target = usersPage + "?action=edit"
		}
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(r.PostFormValue("user_id"), false)
	if err != nil {
		h.fail(w, r, "*Handler.deleteUser", "bad user id", err)
		return
	}

	result, err := h.services.UserAdminService.DeleteUser(r.Context(), h.requestContext(r, nil, models.PageUser), userID)
	if err != nil {
		h.fail(w, r, "*Handler.deleteUser", "error deleting user", err)
		return
	}

	switch result.Outcome {
	case models.OutcomeDeleted:
		setFlashes(w, view.Flash{Status: flashSuccess, Message: result.Message})
	case models.OutcomeRejected:
		setFlashes(w, view.Flash{Status: flashDanger, Message: result.Message})
	}

	http.Redirect(w, r, usersPage, http.StatusSeeOther)
}

// cleanupUsers deletes the accounts ticked on the cleanup report. Ticked
// boxes arrive as del_{user id}=1.
func (h *Handler) cleanupUsers(w http.ResponseWriter, r *http.Request) {
	selected := make(map[int64]bool)
	for field := range r.PostForm {
		id, ok := strings.CutPrefix(field, "del_")
		if !ok {
			continue
		}
		userID, err := parseID(id, false)
		if err != nil {
			continue
		}
		selected[userID] = r.PostFormValue(field) == "1"
	}

	deleted, err := h.services.UserAdminService.CleanupCommit(r.Context(), h.requestContext(r, nil, models.PageUser), selected)
	if err != nil {
		// some accounts may already be gone; report those before failing
		h.flashDeleted(w, deleted)
		h.fail(w, r, "*Handler.cleanupUsers", "cleanup stopped", err)
		return
	}

	h.flashDeleted(w, deleted)
	http.Redirect(w, r, usersPage, http.StatusSeeOther)
}

func (h *Handler) flashDeleted(w http.ResponseWriter, userNames []string) {
	flashes := make([]view.Flash, 0, len(userNames))
	for _, name := range userNames {
		flashes = append(flashes, view.Flash{Status: flashInfo, Message: deletedMessage(name)})
	}
	setFlashes(w, flashes...)
}

func deletedMessage(userName string) string {
	return fmt.Sprintf(app.MsgUserDeleted, userName)
}

// parseUserForm reads the user edit form. Only the user id can make it fail.
func parseUserForm(r *http.Request) (models.UserForm, error) {
	userID, err := parseID(r.PostFormValue("user_id"), true)
	if err != nil {
		return models.UserForm{}, err
	}

	form := models.UserForm{
		UserID:        userID,
		UserName:      strings.TrimSpace(r.PostFormValue("username")),
		RealName:      strings.TrimSpace(r.PostFormValue("real_name")),
		Email:         strings.TrimSpace(r.PostFormValue("email")),
		Pass1:         r.PostFormValue("pass1"),
		Pass2:         r.PostFormValue("pass2"),
		Theme:         r.PostFormValue("theme"),
		Language:      r.PostFormValue("language"),
		TimeZone:      r.PostFormValue("timezone"),
		ContactMethod: r.PostFormValue("contact_method"),
		Comment:       r.PostFormValue("comment"),
		AutoAccept:    checkbox(r, "auto_accept"),
		CanAdmin:      checkbox(r, "canadmin"),
		VisibleOnline: checkbox(r, "visible_online"),
		Verified:      checkbox(r, "verified"),
		Approved:      checkbox(r, "approved"),
		Trees:         make(map[int64]models.TreeUserForm),
	}

	for field := range r.PostForm {
		for _, prefix := range []string{fieldIndividualXref, fieldRole, fieldRelationshipPathLength} {
			suffix, ok := strings.CutPrefix(field, prefix)
			if !ok {
				continue
			}
			treeID, err := parseID(suffix, false)
			if err != nil {
				continue
			}

			value := r.PostFormValue(field)
			tree := form.Trees[treeID]
			switch prefix {
			case fieldIndividualXref:
				tree.IndividualXref = strings.TrimSpace(value)
			case fieldRole:
				tree.Role = value
			case fieldRelationshipPathLength:
				tree.RelationshipPathLength = value
			}
			form.Trees[treeID] = tree
		}
	}

	return form, nil
}

func checkbox(r *http.Request, name string) bool {
	return models.ParseFlag(r.PostFormValue(name))
}

// parseID parses a positive id. With allowZero, "" and "0" yield 0.
func parseID(s string, allowZero bool) (int64, error) {
	if allowZero && (s == "" || s == "0") {
		return 0, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
