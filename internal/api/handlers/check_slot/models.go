package check_slot

// SlotCheckResponse HTTP response model
type SlotCheckResponse struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes *int   `json:"durationMinutes,omitempty"`
	Available       bool   `json:"available"`
}
