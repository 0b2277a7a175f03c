package menu

type StallStatus string

const (
	StallActive   StallStatus = "active"
	StallInactive StallStatus = "inactive"
)

// Stall is a food stall operating inside the campus canteen.
type Stall struct {
	ID       string
	Name     string
	Owner    string
	Location string
	Status   StallStatus
}

// Item is a listed menu entry. The catalog copy may be edited through
// menu management; item snapshots taken at order time are never touched
// by later edits.
type Item struct {
	ID          string
	Name        string
	Category    string
	Description string
	Price       float64
	StallID     string
	Available   bool
}

type ListOptions struct {
	StallID       string
	Category      string
	OnlyAvailable bool
}

type NewItemInput struct {
	Name        string
	Category    string
	Description string
	Price       float64
	StallID     string
	Available   bool
}

type UpdateItemInput struct {
	ID          string
	Name        *string
	Category    *string
	Description *string
	Price       *float64
	Available   *bool
}
