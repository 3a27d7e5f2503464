package entity

// ProductStats are the aggregate counts the record store computes over the
// product collection.
type ProductStats struct {
	Products   int64 `json:"products"`
	Categories int64 `json:"categories"`
	OutOfStock int64 `json:"outOfStock"`
	Active     int64 `json:"activeProducts"`
	Inactive   int64 `json:"inactiveProducts"`
}

// DashboardStats is the cached dashboard payload.
type DashboardStats struct {
	Products   int64 `json:"products"`
	Categories int64 `json:"categories"`
	Users      int64 `json:"users"`
	OutOfStock int64 `json:"outOfStock"`
	Active     int64 `json:"activeProducts"`
	Inactive   int64 `json:"inactiveProducts"`
}
