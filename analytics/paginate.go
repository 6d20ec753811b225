package analytics

// UserPageSize is the fixed page size for the per-customer analytics table.
const UserPageSize = 10

// PageUsers slices one 1-based page out of the per-customer analytics rows
// and returns it with the total page count (ceil of len/UserPageSize).
//
// Contract: the caller clamps page into [1, totalPages] before calling;
// the helper does not defend against out-of-range pages.
func PageUsers(rows []UserAnalytics, page int) ([]UserAnalytics, int) {
	totalPages := (len(rows) + UserPageSize - 1) / UserPageSize
	start := (page - 1) * UserPageSize
	end := start + UserPageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], totalPages
}
