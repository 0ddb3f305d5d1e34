// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"html"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/go-tree-admin/internal/utils"
	"github.com/MKhiriev/go-tree-admin/models"
)

const timestampLayout = "2 January 2006 15:04"

// usersJSON feeds the user list grid: a draw counter, paging and ordering
// come in as datatables parameters, twelve pre-rendered cells per row go
// out.
func (h *Handler) usersJSON(w http.ResponseWriter, r *http.Request) {
	rc := h.requestContext(r, nil, models.PageUser)

	result, err := h.services.UserAdminService.ListUsers(r.Context(), rc, parseUserListQuery(r))
	if err != nil {
		h.fail(w, r, "*Handler.usersJSON", "error listing users", err)
		return
	}

	csrf := h.services.SessionService.CSRFToken(rc.Actor)
	now := h.now()

	page := models.UserListPage{
		Draw:            result.Draw,
		RecordsTotal:    result.RecordsTotal,
		RecordsFiltered: result.RecordsFiltered,
		Data:            make([][]string, 0, len(result.Rows)),
	}
	for _, row := range result.Rows {
		page.Data = append(page.Data, h.userRow(row, rc.ActorID(), csrf, now))
	}

	utils.NoStore(w)
	if _, err = utils.WriteJSON(w, page, http.StatusOK); err != nil {
		h.fail(w, r, "*Handler.usersJSON", "error writing user list", err)
	}
}

// parseUserListQuery reads draw, start, length, search[value] and
// order[i][column]/order[i][dir] from the query or the form body.
func parseUserListQuery(r *http.Request) models.UserListQuery {
	query := models.UserListQuery{
		Draw:   atoi(r.FormValue("draw")),
		Search: r.FormValue("search[value]"),
		Start:  max(atoi(r.FormValue("start")), 0),
		Length: min(max(atoi(r.FormValue("length")), 0), models.MaxUserListLength),
	}

	for i := 0; ; i++ {
		column := r.FormValue(fmt.Sprintf("order[%d][column]", i))
		if column == "" {
			break
		}
		query.Order = append(query.Order, models.SortSpec{
			Column: atoi(column),
			Dir:    r.FormValue(fmt.Sprintf("order[%d][dir]", i)),
		})
	}

	return query
}

// userRow renders the twelve cells of one grid row. Cells 6 and 8 are the
// raw timestamps the grid sorts the date columns by.
func (h *Handler) userRow(row models.UserListRow, actorID int64, csrf string, now time.Time) []string {
	id := strconv.FormatInt(row.UserID, 10)
	userName := html.EscapeString(row.UserName)

	email := html.EscapeString(row.Email)
	if row.UserID != actorID {
		email = `<a href="mailto:` + html.EscapeString(row.Email) + `">` + email + `</a>`
	}

	language := row.Language
	if name, ok := h.endonyms[row.Language]; ok {
		language = name
	}

	registered := ""
	if row.RegTimestamp != 0 {
		registered = time.Unix(row.RegTimestamp, 0).UTC().Format(timestampLayout)
	}
	if row.RegistrationOverdue(now) {
		registered = `<span class="red">` + registered + `</span>`
	}

	lastSignIn := "Never"
	if row.SessionTime != 0 {
		t := time.Unix(row.SessionTime, 0)
		lastSignIn = t.UTC().Format(timestampLayout) + "<br>" + humanize.RelTime(t, now, "ago", "from now")
	}

	return []string{
		editMenu(id, userName, row.UserID != actorID, csrf),
		id,
		`<span dir="auto">` + userName + `</span>`,
		`<span dir="auto">` + html.EscapeString(row.RealName) + `</span>`,
		email,
		html.EscapeString(language),
		strconv.FormatInt(row.RegTimestamp, 10),
		registered,
		strconv.FormatInt(row.SessionTime, 10),
		lastSignIn,
		yesNo(row.Verified),
		yesNo(row.VerifiedByAdmin),
	}
}

// editMenu links to the edit form and, for anyone but the actor, offers a
// delete button.
func editMenu(id, userName string, deletable bool, csrf string) string {
	menu := `<a href="` + usersPage + `?action=edit&amp;user_id=` + id + `">Edit</a>`
	if !deletable {
		return menu
	}

	return menu +
		`<form method="post" action="` + usersPage + `">` +
		`<input type="hidden" name="action" value="delete">` +
		`<input type="hidden" name="user_id" value="` + id + `">` +
		`<input type="hidden" name="csrf" value="` + html.EscapeString(csrf) + `">` +
		`<button type="submit" data-confirm="Are you sure you want to delete “` + userName + `”?">Delete</button>` +
		`</form>`
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
