package services

import (
	"testing"
	"time"

	"tasktracker/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTaskLogToMissingTask(t *testing.T) {
	db := newTestDB(t)

	_, err := AddTaskLog(db, 42, "note", time.Time{})
	require.ErrorIs(t, err, ErrTaskNotFound)
	assert.Equal(t, int64(0), countRows(t, db, &model.TaskLog{}))
}

func TestAddTaskLogEmptyMessage(t *testing.T) {
	db := newTestDB(t)

	task := mustCreateTask(t, db, CreateTaskInput{Name: "Report"})

	_, err := AddTaskLog(db, task.TaskID, "   ", time.Time{})
	require.ErrorIs(t, err, ErrInvalidArgs)
	assert.Equal(t, int64(0), countRows(t, db, &model.TaskLog{}))
}

func TestAddTaskLogAssignsDate(t *testing.T) {
	db := newTestDB(t)

	task := mustCreateTask(t, db, CreateTaskInput{Name: "Report"})

	entry, err := AddTaskLog(db, task.TaskID, "kickoff meeting held", time.Time{})
	require.NoError(t, err)
	assert.NotZero(t, entry.LogID)
	assert.False(t, entry.Date.IsZero())
}

func TestAddTaskLogHonorsSuppliedDate(t *testing.T) {
	db := newTestDB(t)

	task := mustCreateTask(t, db, CreateTaskInput{Name: "Report"})

	supplied := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	entry, err := AddTaskLog(db, task.TaskID, "backdated note", supplied)
	require.NoError(t, err)
	assert.True(t, entry.Date.Equal(supplied))
}
