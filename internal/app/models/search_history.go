package models

import "time"

// SearchHistory defines the append-only search audit model based on the
// 'search_history' table. Rows are never mutated or expired.
type SearchHistory struct {
	ID          int64      `json:"id" db:"id" example:"1"`                     // Unique identifier for the history row
	AccountID   int64      `json:"accountId" db:"account_id"`                  // Account that performed the search
	SearchQuery string     `json:"searchQuery" db:"search_query"`              // Raw query text as entered
	SearchType  SearchType `json:"searchType" db:"search_type"`                // Kind of search ("student", "all")
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`                  // Timestamp when the search was performed
}
