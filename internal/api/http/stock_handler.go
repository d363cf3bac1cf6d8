package http

import (
	"net/http"
)

func (s *Server) handleGetStock(w http.ResponseWriter, r *http.Request) {
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
	count := s.stock.InStock(r.Context(), movie.Title())
	writeJSON(w, http.StatusOK, stockResponse{MovieID: id.String(), Title: movie.Title(), Count: count})
}

func (s *Server) handleAddCopy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid movie id")
		return
	}
	count, err := s.stock.AddCopy(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	movie, err := s.movies.GetMovie(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stockResponse{MovieID: id.String(), Title: movie.Title(), Count: count})
}

func (s *Server) handleRemoveCopy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, "invalid movie id")
		return
	}
	count, err := s.stock.RemoveCopy(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	movie, err := s.movies.GetMovie(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stockResponse{MovieID: id.String(), Title: movie.Title(), Count: count})
}
