package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCalendarEntry marks a calendar record that breaks the data contract.
var ErrInvalidCalendarEntry = errors.New("invalid calendar entry")

// CalendarEntry is one farming activity scheduled for a crop in a given month.
type CalendarEntry struct {
	ID          string `json:"id"`
	CropName    string `json:"crop_name"`
	Activity    string `json:"activity"`
	Month       int    `json:"month"`
	Season      string `json:"season"`
	Description string `json:"description"`
}

// Validate ensures the entry can be placed on the calendar.
func (e CalendarEntry) Validate() error {
	if !ValidMonth(e.Month) {
		return fmt.Errorf("%w: month %d out of range (id=%s)", ErrInvalidCalendarEntry, e.Month, e.ID)
	}
	if strings.TrimSpace(e.CropName) == "" {
		return fmt.Errorf("%w: crop name must not be empty (id=%s)", ErrInvalidCalendarEntry, e.ID)
	}
	return nil
}

// CropGroup gathers the activities of one crop for the selected month.
type CropGroup struct {
	Crop    string          `json:"crop"`
	Entries []CalendarEntry `json:"entries"`
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ValidMonth reports whether m is a calendar month number.
func ValidMonth(m int) bool {
	return m >= 1 && m <= 12
}

// MonthName returns the English name for a month number, or "" when out of range.
func MonthName(m int) string {
	if !ValidMonth(m) {
		return ""
	}
	return monthNames[m-1]
}
