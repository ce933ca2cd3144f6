package domain

// Item is one row of item_info. Databases written by other tools may hold
// NULLs in any column and REAL values in the numeric ones, so every field is
// a pointer and absent values encode as JSON null.
type Item struct {
	UniqueID      *string  `db:"unique_id" json:"unique_id"`
	Item          *string  `db:"item" json:"item"`
	TotalWears    *float64 `db:"total_wears" json:"total_wears"`
	CostPerWear   *float64 `db:"cost_per_wear" json:"cost_per_wear"`
	WearsPerMonth *float64 `db:"wears_per_month" json:"wears_per_month"`
	DateAcquired  *string  `db:"date_acquired" json:"date_acquired"`
	Cost          *float64 `db:"cost" json:"cost"`
	Source        *string  `db:"source" json:"source"`
	Category      *string  `db:"category" json:"category"`
}
