package domain

// Interest is a read-only reference record fetched from the backend's
// interests table. The JSON shape mirrors the table columns; Name comes
// from the "interest" column. Ordering by OrderBy is a display contract
// owned by the client, not enforced here.
type Interest struct {
	ID             int64  `json:"id"`
	InterestTypeID *int64 `json:"interest_type_id"`
	Name           string `json:"interest"`
	OrderBy        *int64 `json:"order_by"`
}

// Interest category ids fixed by the backend's interest_type table.
const (
	CategoryGeneral           = 2
	CategoryOutreach          = 3
	CategoryStandingCommittee = 4
	CategoryLanguages         = 5
)

var interestGroups = map[string]int{
	"general":            CategoryGeneral,
	"outreach":           CategoryOutreach,
	"standing-committee": CategoryStandingCommittee,
	"languages":          CategoryLanguages,
}

// InterestCategory resolves a URL group slug to its backend category id.
func InterestCategory(group string) (int, bool) {
	id, ok := interestGroups[group]
	return id, ok
}
