package http

import (
	"time"

	"mrs-backend/internal/domain"
	"mrs-backend/internal/service"
)

const dateLayout = "2006-01-02"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in_minutes"`
}

type movieRequest struct {
	Title         string `json:"title"`
	ReleaseDate   string `json:"release_date"`
	PriceCategory string `json:"price_category"`
	AgeRating     int    `json:"age_rating"`
}

type movieResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	ReleaseDate   string `json:"release_date"`
	PriceCategory string `json:"price_category"`
	AgeRating     int    `json:"age_rating"`
	Rented        bool   `json:"rented"`
}

type userRequest struct {
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	Birthdate string `json:"birthdate"`
}

type userResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	Birthdate string `json:"birthdate"`
}

type statementResponse struct {
	UserID               string  `json:"user_id"`
	Rentals              int     `json:"rentals"`
	Charge               float64 `json:"charge"`
	FrequentRenterPoints int     `json:"frequent_renter_points"`
}

type rentalRequest struct {
	UserID     string `json:"user_id"`
	MovieID    string `json:"movie_id"`
	RentalDate string `json:"rental_date,omitempty"`
}

type rentalResponse struct {
	ID                   string  `json:"id"`
	UserID               string  `json:"user_id"`
	UserName             string  `json:"user_name"`
	MovieID              string  `json:"movie_id"`
	MovieTitle           string  `json:"movie_title"`
	RentalDate           string  `json:"rental_date"`
	Days                 int     `json:"days"`
	Charge               float64 `json:"charge"`
	FrequentRenterPoints int     `json:"frequent_renter_points"`
}

type stockResponse struct {
	MovieID string `json:"movie_id"`
	Title   string `json:"title"`
	Count   int    `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toMovieResponse(m *domain.Movie) movieResponse {
	return movieResponse{
		ID:            m.ID().String(),
		Title:         m.Title(),
		ReleaseDate:   m.ReleaseDate().Format(dateLayout),
		PriceCategory: m.Category().String(),
		AgeRating:     m.AgeRating(),
		Rented:        m.Rented(),
	}
}

func toMovieResponses(movies []*domain.Movie) []movieResponse {
	out := make([]movieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, toMovieResponse(m))
	}
	return out
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID().String(),
		Name:      u.Name(),
		FirstName: u.FirstName(),
		Birthdate: u.Birthdate().Format(dateLayout),
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toStatementResponse(userID string, s *service.Statement) statementResponse {
	return statementResponse{
		UserID:               userID,
		Rentals:              s.Rentals,
		Charge:               s.Charge,
		FrequentRenterPoints: s.FrequentRenterPoints,
	}
}

func toRentalResponse(r *domain.Rental) rentalResponse {
	return rentalResponse{
		ID:                   r.ID().String(),
		UserID:               r.User().ID().String(),
		UserName:             r.User().Name(),
		MovieID:              r.Movie().ID().String(),
		MovieTitle:           r.Movie().Title(),
		RentalDate:           r.RentalDate().Format(dateLayout),
		Days:                 r.Days(),
		Charge:               r.Charge(),
		FrequentRenterPoints: r.FrequentRenterPoints(),
	}
}

func toRentalResponses(rentals []*domain.Rental) []rentalResponse {
	out := make([]rentalResponse, 0, len(rentals))
	for _, r := range rentals {
		out = append(out, toRentalResponse(r))
	}
	return out
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
