// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/MKhiriev/go-tree-admin/models"
)

const approvalSubject = "Approval of account at %s"

var approvalText = texttemplate.Must(texttemplate.New("approve-user-text").Parse(
	`Hello {{.RealName}},

The administrator at the website {{.BaseURL}} has approved your application for an account. You may now sign in by accessing the following link: {{.BaseURL}}
`))

var approvalHTML = htmltemplate.Must(htmltemplate.New("approve-user-html").Parse(
	`<p>Hello {{.RealName}},</p>
<p>The administrator at the website <a href="{{.BaseURL}}">{{.BaseURL}}</a> has approved your application for an account. You may now sign in by accessing the following link: <a href="{{.BaseURL}}">{{.BaseURL}}</a></p>
`))

// approvalNotification builds the mail telling user their account was
// approved. It is sent on behalf of tree when there is one.
func approvalNotification(user models.User, tree *models.Tree, mailFrom, baseURL string) models.Notification {
	n := models.Notification{
		FromEmail: mailFrom,
		ToName:    user.RealName,
		ToEmail:   user.Email,
		Subject:   fmt.Sprintf(approvalSubject, baseURL),
	}
	if tree != nil {
		n.FromName = tree.Title
		if tree.Email != "" {
			n.FromEmail = tree.Email
		}
	}

	data := struct {
		RealName string
		BaseURL  string
	}{user.RealName, baseURL}

	var text, html bytes.Buffer
	// both templates only reference fields of data
	_ = approvalText.Execute(&text, data)
	_ = approvalHTML.Execute(&html, data)
	n.TextBody = text.String()
	n.HTMLBody = html.String()

	return n
}
