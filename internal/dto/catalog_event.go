package dto

type CatalogEvent struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}
