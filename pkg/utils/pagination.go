package utils

import (
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultPageLimit applies when a listing request names no limit
	DefaultPageLimit = 20
	// MaxPageLimit bounds what a single ledger page may return
	MaxPageLimit = 100
)

// PaginationParams is a page request against a ledger listing.
// Limit 0 asks for every row.
type PaginationParams struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// PaginationMeta describes the page that was returned
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// GetPaginationParams normalises in-process page requests
func GetPaginationParams(page, limit int) PaginationParams {
	return PaginationParams{Page: max(page, 1), Limit: max(limit, 0)}
}

// ParsePagination reads page and limit from query strings.
// Unparseable or missing values fall back to page 1 and DefaultPageLimit,
// and limits above MaxPageLimit are clamped.
func ParsePagination(page, limit string) PaginationParams {
	p, err := strconv.Atoi(strings.TrimSpace(page))
	if err != nil || p < 1 {
		p = 1
	}
	l, err := strconv.Atoi(strings.TrimSpace(limit))
	if err != nil || l < 1 {
		l = DefaultPageLimit
	}
	return PaginationParams{Page: p, Limit: min(l, MaxPageLimit)}
}

// CalculateOffset returns the row offset of the requested page
func (p PaginationParams) CalculateOffset() int {
	if p.Page < 1 || p.Limit <= 0 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// CalculateMeta builds the page description for a listing of totalCount rows
func CalculateMeta(totalCount int64, page, limit int) PaginationMeta {
	if limit <= 0 {
		return PaginationMeta{Page: 1, Limit: int(totalCount), TotalCount: totalCount, TotalPages: 1}
	}
	pages := int(math.Ceil(float64(totalCount) / float64(limit)))
	return PaginationMeta{Page: page, Limit: limit, TotalCount: totalCount, TotalPages: max(pages, 0)}
}
