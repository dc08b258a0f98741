package controller

import (
	"ctchen222/taskboard/internal/api/middleware"
	"ctchen222/taskboard/internal/api/models"
	"ctchen222/taskboard/internal/api/response"
	"ctchen222/taskboard/internal/api/service"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// TaskController handles task CRUD requests. Every handler runs behind
// middleware.RequireSession and scopes its work to the resolved user id.
type TaskController struct {
	taskService service.TaskService
}

// NewTaskController creates a new TaskController.
func NewTaskController(taskService service.TaskService) *TaskController {
	return &TaskController{taskService: taskService}
}

// List returns the caller's tasks as a bare JSON array of {id, task, status}.
func (tc *TaskController) List(c *gin.Context) {
	tasks, err := tc.taskService.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		slog.Error("failed to list tasks", "error", err)
		response.Error(c, http.StatusInternalServerError, "failed to list tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Create adds a task for the caller and returns its new id.
func (tc *TaskController) Create(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Task required")
		return
	}

	id, err := tc.taskService.Create(c.Request.Context(), middleware.UserID(c), req.Task, req.Status)
	if err != nil {
		tc.writeError(c, err)
		return
	}

	response.SuccessExtras(c, gin.H{"id": id})
}

// Move changes the column of the task named by rawID.
func (tc *TaskController) Move(c *gin.Context, rawID string) {
	taskID, ok := parseTaskID(c, rawID)
	if !ok {
		return
	}

	var req models.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "unknown status")
		return
	}

	if err := tc.taskService.Move(c.Request.Context(), middleware.UserID(c), taskID, req.Status); err != nil {
		tc.writeError(c, err)
		return
	}

	response.Success(c)
}

// Delete removes the task named by rawID.
func (tc *TaskController) Delete(c *gin.Context, rawID string) {
	taskID, ok := parseTaskID(c, rawID)
	if !ok {
		return
	}

	if err := tc.taskService.Delete(c.Request.Context(), middleware.UserID(c), taskID); err != nil {
		tc.writeError(c, err)
		return
	}

	response.Success(c)
}

// ClearColumn deletes all of the caller's tasks in one column.
func (tc *TaskController) ClearColumn(c *gin.Context, status string) {
	if err := tc.taskService.ClearColumn(c.Request.Context(), middleware.UserID(c), status); err != nil {
		tc.writeError(c, err)
		return
	}

	response.Success(c)
}

// writeError maps service errors onto the wire envelope.
func (tc *TaskController) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyTask):
		response.Error(c, http.StatusBadRequest, "Task required")
	case errors.Is(err, service.ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "unknown status")
	case errors.Is(err, service.ErrTaskNotFound):
		response.Error(c, http.StatusNotFound, "task not found")
	default:
		slog.Error("task operation failed", "error", err)
		response.Error(c, http.StatusInternalServerError, "internal error")
	}
}

func parseTaskID(c *gin.Context, raw string) (int64, bool) {
	taskID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid task id")
		return 0, false
	}
	return taskID, true
}
