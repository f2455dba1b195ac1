package dto

type ResourceOutput struct {
	ID          int
	Title       string
	Description string
	URL         string
	Kind        string
}

type PageOutput struct {
	Number     int
	TotalPages int
	Text       string
}
