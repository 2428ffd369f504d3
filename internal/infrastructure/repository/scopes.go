package repository

import (
	"net/url"
	"strings"

	"github.com/sangkips/kasir/pkg/apperror"
	"github.com/sangkips/kasir/pkg/pagination"
)

// BranchScope returns the query shared by every branch-scoped listing.
// A blank branch is rejected before anything is sent.
func BranchScope(branch string, page, limit int) (url.Values, error) {
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return nil, apperror.NewRequiredError("branch")
	}

	q := url.Values{}
	q.Set("branch", branch)
	PageScope(q, page, limit)
	return q, nil
}

// PageScope adds page and limit, defaulting to the first page of ten
func PageScope(q url.Values, page, limit int) {
	params := pagination.Params{Page: page, Limit: limit}
	params.Validate()
	params.Apply(q)
}

// setIfPresent adds an optional filter
func setIfPresent(q url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		q.Set(key, value)
	}
}

// requireID rejects a blank path id
func requireID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", apperror.NewRequiredError("id")
	}
	return url.PathEscape(id), nil
}
