package db

import "gorm.io/gorm"

// Paginate applies LIMIT/OFFSET for 1-based page numbers. Non-positive values
// leave the query unbounded.
func Paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if page < 1 || pageSize < 1 {
			return q
		}
		return q.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// NewestFirst orders by creation time, breaking ties by id.
func NewestFirst() func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		return q.Order("created_at DESC").Order("id DESC")
	}
}
