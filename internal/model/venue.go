package model

import (
	"github.com/gerow/go-color"
)

type VenueCreate struct {
	Name        string
	Address     string
	City        string
	Website     string
	Description string
	Lat         float64
	Lng         float64
}

type Venue struct {
	ID int64
	VenueCreate
}

type VenueSettings struct {
	UserID  int64
	VenueID int64
	Color   color.RGB
	Notify  bool
}

type UserVenueSettingsFilter struct {
	UserIDs  []int64
	VenueIDs []int64
}
