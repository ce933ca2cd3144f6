package domain

// WearCount is one row of wear_count: how often an item was worn in a month.
type WearCount struct {
	UniqueID string `db:"unique_id" json:"unique_id"`
	Month    string `db:"month" json:"month"`
	Wears    int64  `db:"wears" json:"wears"`
}

// Wear is a WearCount enriched with the owning item's metadata. UniqueID is
// never NULL because the join matches on it.
type Wear struct {
	UniqueID string   `db:"unique_id" json:"unique_id"`
	Month    *string  `db:"month" json:"month"`
	Wears    *float64 `db:"wears" json:"wears"`
	Item     *string  `db:"item" json:"item"`
	Source   *string  `db:"source" json:"source"`
	Category *string  `db:"category" json:"category"`
}
