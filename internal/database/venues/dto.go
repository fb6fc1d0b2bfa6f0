package venues

import (
	"fmt"

	"github.com/gerow/go-color"

	"github.com/localscene/events-backend/internal/model"
)

type venueDTO struct {
	ID          int64
	Name        string
	Address     string
	City        string
	Website     string
	Description string
	Lat         float64
	Lng         float64
}

func mapToVenue(d *venueDTO) *model.Venue {
	return &model.Venue{
		ID: d.ID,
		VenueCreate: model.VenueCreate{
			Name:        d.Name,
			Address:     d.Address,
			City:        d.City,
			Website:     d.Website,
			Description: d.Description,
			Lat:         d.Lat,
			Lng:         d.Lng,
		},
	}
}

type venueSettingsDTO struct {
	ID      int64
	UserID  int64
	VenueID int64
	Color   string
	Notify  bool
}

func mapToVenueSettings(d *venueSettingsDTO) (*model.VenueSettings, error) {
	colorRGB, err := color.HTMLToRGB(d.Color)
	if err != nil {
		return nil, fmt.Errorf("map color from %v", d.Color)
	}

	return &model.VenueSettings{
		UserID:  d.UserID,
		VenueID: d.VenueID,
		Color:   colorRGB,
		Notify:  d.Notify,
	}, nil
}
