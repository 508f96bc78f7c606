package web

// RoasterRow is one roaster as shown in lists and on its detail page.
type RoasterRow struct {
	ID       int64
	Name     string
	Country  string
	City     string
	Homepage string
	Notes    string
	Added    string
}

// RoasterList is the data of the "roasters/list" fragment.
type RoasterList struct {
	Rows  []RoasterRow
	Pager Pager
}

// RoasterPage is the data of the "roasters/page" document.
type RoasterPage struct {
	List           RoasterList
	ExtractEnabled bool
}

// RoasterDetail is the data of the "roasters/detail" document.
type RoasterDetail struct {
	Roaster    RoasterRow
	RoastCount int64
}

// RoastRow is one roast as shown in lists and on its detail page.
type RoastRow struct {
	ID           int64
	RoasterID    int64
	RoasterName  string
	Name         string
	Origin       string
	Process      string
	TastingNotes string
	Added        string
}

// RoastList is the data of the "roasts/list" fragment.
type RoastList struct {
	Rows  []RoastRow
	Pager Pager
}

// RoasterOption is one entry of the roaster <select> on the new roast form.
type RoasterOption struct {
	ID   int64
	Name string
}

// RoastPage is the data of the "roasts/page" document.
type RoastPage struct {
	List     RoastList
	Roasters []RoasterOption
}

// RoastDetail is the data of the "roasts/detail" document.
type RoastDetail struct {
	Roast RoastRow
}
