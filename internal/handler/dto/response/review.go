package response

import (
	"time"

	"vehicle-rental/internal/usecase/queries"
)

type ReviewResponse struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Initial   string `json:"initial"`
	Text      string `json:"text"`
	Stars     int    `json:"stars"`
	Date      string `json:"date"`
	CreatedAt string `json:"created_at"`
}

type VehicleReviewsResponse struct {
	VehicleID     string            `json:"vehicle_id"`
	AverageRating float64           `json:"average_rating"`
	ReviewCount   int               `json:"review_count"`
	Reviews       []*ReviewResponse `json:"reviews"`
}

func FromVehicleReviews(v *queries.VehicleReviews) *VehicleReviewsResponse {
	res := &VehicleReviewsResponse{
		VehicleID:     v.VehicleID.String(),
		AverageRating: v.Summary.Average,
		ReviewCount:   v.Summary.Count,
		Reviews:       make([]*ReviewResponse, len(v.Reviews)),
	}
	for i, r := range v.Reviews {
		res.Reviews[i] = &ReviewResponse{
			ID:        r.ID().String(),
			Author:    r.Author(),
			Initial:   r.Initial(),
			Text:      r.Text(),
			Stars:     r.Stars().Value(),
			Date:      r.Date().Format(time.DateOnly),
			CreatedAt: r.CreatedAt().UTC().Format(time.RFC3339),
		}
	}
	return res
}
