// internal/utils/pagination.go
package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	defaultSort     = "created_at"
)

type PaginationParams struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Sort   string `json:"sort"`
	Order  string `json:"order"`
	Search string `json:"search"`
}

type PaginationResult struct {
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"total_pages"`
	Data       interface{} `json:"data"`
}

// Offset is the number of rows before the requested page.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// GetPaginationParams reads page, limit, sort, order and q (or search) from the query string,
// clamping anything out of range to the defaults.
func GetPaginationParams(c *gin.Context) PaginationParams {
	params := PaginationParams{
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", DefaultPageSize),
		Sort:   c.DefaultQuery("sort", defaultSort),
		Order:  strings.ToLower(c.DefaultQuery("order", "desc")),
		Search: strings.TrimSpace(c.Query("q")),
	}
	if params.Search == "" {
		params.Search = strings.TrimSpace(c.Query("search"))
	}

	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > MaxPageSize {
		params.Limit = DefaultPageSize
	}
	if params.Order != "asc" {
		params.Order = "desc"
	}
	return params
}

func queryInt(c *gin.Context, key string, fallback int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return n
}

func ApplyPagination(db *gorm.DB, params PaginationParams) *gorm.DB {
	return db.Offset(params.Offset()).Limit(params.Limit)
}

// ApplySort orders by params.Sort when it is one of allowed, otherwise by created_at.
func ApplySort(db *gorm.DB, params PaginationParams, allowed []string) *gorm.DB {
	field := defaultSort
	for _, candidate := range allowed {
		if candidate == params.Sort {
			field = candidate
			break
		}
	}

	order := "desc"
	if params.Order == "asc" {
		order = "asc"
	}
	return db.Order(field + " " + order)
}

func CreatePaginationResult(data interface{}, total int64, params PaginationParams) PaginationResult {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = int((total + int64(params.Limit) - 1) / int64(params.Limit))
	}

	return PaginationResult{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
		Data:       data,
	}
}

func SetPaginationHeaders(c *gin.Context, result PaginationResult) {
	c.Header("X-Total-Count", strconv.FormatInt(result.Total, 10))
	c.Header("X-Page", strconv.Itoa(result.Page))
	c.Header("X-Per-Page", strconv.Itoa(result.Limit))
	c.Header("X-Total-Pages", strconv.Itoa(result.TotalPages))
}
