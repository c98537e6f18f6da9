package client

import (
	"encoding/json"
	"fmt"

	"taskboard/internal/model"
)

// decodeTaskList accepts the shapes servers have been seen returning for a
// task listing: a bare array, {"data": [...]} or {"tasks": [...]}. Whatever
// arrives, callers get one canonical slice.
func decodeTaskList(raw []byte) ([]model.Task, error) {
	var tasks []model.Task
	if err := json.Unmarshal(raw, &tasks); err == nil {
		return tasks, nil
	}

	var envelope struct {
		Data  []model.Task `json:"data"`
		Tasks []model.Task `json:"tasks"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode task list: %w", err)
	}
	if envelope.Data != nil {
		return envelope.Data, nil
	}
	if envelope.Tasks != nil {
		return envelope.Tasks, nil
	}
	return nil, nil
}

// errorMessage extracts a human-readable message from an error body:
// body.error, else body.message, else the fallback.
func errorMessage(raw []byte, fallback string) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return fallback
}
