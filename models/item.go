package models

// Item is a to-do record. JSON keys match the browser client's wire format.
type Item struct {
	UUID string `json:"UUID"`
	Name string `json:"Name"`
	Done bool   `json:"Done"`
}
