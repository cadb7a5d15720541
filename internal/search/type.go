package search

import (
	"pharmaclear-api/internal/model"
	"pharmaclear-api/pkg/paginator"
)

type CreateInput struct {
	Query     string
	Source    string
	Severity  string
	DateRange string
}

type ListInput struct {
	PagQuery paginator.PaginateQuery
}

type ListOutput struct {
	Searches  []model.SavedSearch
	Paginator paginator.Paginator
}

type CreateOptions struct {
	ID        string
	UserID    string
	Query     string
	Source    string
	Severity  string
	DateRange string
}

type ListOptions struct {
	UserID string
	Limit  int64
	Offset int64
}
