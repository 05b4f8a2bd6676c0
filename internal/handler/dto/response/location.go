package response

import (
	"vehicle-rental/internal/usecase/queries"
)

type LocationResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func FromLocations(views []*queries.LocationView) ([]*LocationResponse, error) {
	res := make([]*LocationResponse, len(views))
	for i, v := range views {
		res[i] = &LocationResponse{}
		if err := copyInto(res[i], v); err != nil {
			return nil, err
		}
	}
	return res, nil
}
