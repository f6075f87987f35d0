// Package counterrepo provides persistence for named monotonic counters,
// backing the order-number sequence. The increment runs as a single SQL
// statement so concurrent callers always observe distinct values.
package counterrepo

// CounterDTO represents the database structure of a named counter.
type CounterDTO struct {
	Key   string `gorm:"type:varchar(64);primaryKey"`
	Value int64  `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for counter entities.
// Overrides GORM's default naming convention to use "counters".
func (CounterDTO) TableName() string {
	return "counters"
}
