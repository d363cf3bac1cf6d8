package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
)

func (s *Server) handleListRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := s.rentals.ListRentals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponses(rentals))
}

func (s *Server) handleGetRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid rental id")
		return
	}
	rental, err := s.rentals.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponse(rental))
}

func (s *Server) handleCreateRental(w http.ResponseWriter, r *http.Request) {
	var req rentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeBadRequest(w, "invalid user_id")
		return
	}
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		writeBadRequest(w, "invalid movie_id")
		return
	}

	// rental_date defaults to today.
	rentalDate := time.Now()
	if req.RentalDate != "" {
		rentalDate, err = parseDate(req.RentalDate)
		if err != nil {
			writeBadRequest(w, "invalid rental_date, expected YYYY-MM-DD")
			return
		}
	}

	rental, err := s.rentals.CreateRental(r.Context(), userID, movieID, rentalDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRentalResponse(rental))
}

func (s *Server) handleDeleteRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid rental id")
		return
	}
	if err := s.rentals.DeleteRental(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
