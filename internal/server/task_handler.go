package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"taskboard/internal/model"
)

type taskRequest struct {
	CategoryID   *uint   `json:"category_id"`
	CategoryName string  `json:"category_name"`
	StatusID     int     `json:"status_id"`
	PriorityID   int     `json:"priority_id"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	DueDate      *string `json:"due_date"`
}

func (req taskRequest) toInput() (model.TaskInput, error) {
	input := model.TaskInput{
		CategoryID:   req.CategoryID,
		CategoryName: req.CategoryName,
		StatusID:     req.StatusID,
		PriorityID:   req.PriorityID,
		Title:        req.Title,
	}
	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return input, err
		}
		input.DueDate = &due
	}
	return input, nil
}

func idParam(r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	tasks, err := s.tasks.List(r.Context(), userID, model.TaskFilter{})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	task, err := s.tasks.Get(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "due_date must be YYYY-MM-DD")
		return
	}

	task, err := s.tasks.Create(r.Context(), userID, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "due_date must be YYYY-MM-DD")
		return
	}

	task, err := s.tasks.Update(r.Context(), userID, id, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := s.tasks.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
