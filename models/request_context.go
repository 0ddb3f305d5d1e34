// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PageType tells whether a page belongs to a tree or to a user's personal page.
type PageType string

const (
	PageTree PageType = "tree"
	PageUser PageType = "user"
)

// Actor is the signed-in user performing a request.
type Actor struct {
	UserID   int64
	UserName string
	IsAdmin  bool

	// Roles holds the actor's role per tree id.
	Roles map[int64]Role
}

// IsManager reports whether the actor may manage tree.
func (a *Actor) IsManager(tree *Tree) bool {
	if a == nil {
		return false
	}
	if a.IsAdmin {
		return true
	}
	if tree == nil {
		return false
	}
	return a.Roles[tree.TreeID].AtLeast(RoleAdmin)
}

// RequestContext carries the request-scoped state every operation needs:
// the current tree, the acting user and the page type.
type RequestContext struct {
	Tree     *Tree
	Actor    *Actor
	PageType PageType

	// Token is the anti-forgery token submitted with a mutating request.
	Token string
}

// Authenticated reports whether somebody is signed in.
func (rc RequestContext) Authenticated() bool {
	return rc.Actor != nil
}

// ActorID returns the acting user's id, or 0 for visitors.
func (rc RequestContext) ActorID() int64 {
	if rc.Actor == nil {
		return 0
	}
	return rc.Actor.UserID
}

// Outcome is the result kind of a form submission.
type Outcome string

const (
	OutcomeCreated  Outcome = "created"
	OutcomeUpdated  Outcome = "updated"
	OutcomeRejected Outcome = "rejected"
	OutcomeDeleted  Outcome = "deleted"

	// OutcomeIgnored means nothing was changed and nothing should be reported,
	// e.g. after an anti-forgery token mismatch.
	OutcomeIgnored Outcome = "ignored"
)
