package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	if rented := r.URL.Query().Get("rented"); rented != "" {
		flag, err := strconv.ParseBool(rented)
		if err != nil {
			writeBadRequest(w, "invalid rented filter")
			return
		}
		movies, err := s.movies.ListMoviesByRented(r.Context(), flag)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toMovieResponses(movies))
		return
	}

	movies, err := s.movies.ListMovies(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMovieResponses(movies))
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid movie id")
		return
	}
	movie, err := s.movies.GetMovie(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMovieResponse(movie))
}

func (s *Server) handleCreateMovie(w http.ResponseWriter, r *http.Request) {
	var req movieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	releaseDate, err := parseDate(req.ReleaseDate)
	if err != nil {
		writeBadRequest(w, "invalid release_date, expected YYYY-MM-DD")
		return
	}

	movie, err := s.movies.CreateMovie(r.Context(), req.Title, releaseDate, req.PriceCategory, req.AgeRating)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMovieResponse(movie))
}

func (s *Server) handleUpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid movie id")
		return
	}
	var req movieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	releaseDate, err := parseDate(req.ReleaseDate)
	if err != nil {
		writeBadRequest(w, "invalid release_date, expected YYYY-MM-DD")
		return
	}

	movie, err := s.movies.UpdateMovie(r.Context(), id, req.Title, releaseDate, req.PriceCategory, req.AgeRating)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMovieResponse(movie))
}

func (s *Server) handleDeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid movie id")
		return
	}
	if err := s.movies.DeleteMovie(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
