package handlers

import (
	"database/sql"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/biosecret/go-taskapi/middleware"
	"github.com/biosecret/go-taskapi/models"
	"github.com/biosecret/go-taskapi/utils"
	"github.com/biosecret/go-taskapi/validation"
)

// Ownership is folded into the WHERE clause of every mutation, so a missing
// task and someone else's task are indistinguishable to the caller.
const (
	createTaskQuery = `INSERT INTO tasks (title, user_id) VALUES ($1, $2) RETURNING id, title, completed, user_id`
	listTasksQuery  = `SELECT id, title, completed, user_id FROM tasks WHERE user_id = $1 ORDER BY id`
	deleteTaskQuery = `DELETE FROM tasks WHERE id = $1 AND user_id = $2 RETURNING id`

	updateTitleQuery     = `UPDATE tasks SET title = $1 WHERE id = $2 AND user_id = $3 RETURNING id, title, completed, user_id`
	updateCompletedQuery = `UPDATE tasks SET completed = $1 WHERE id = $2 AND user_id = $3 RETURNING id, title, completed, user_id`
	updateBothQuery      = `UPDATE tasks SET title = $1, completed = $2 WHERE id = $3 AND user_id = $4 RETURNING id, title, completed, user_id`
)

// HandleCreateTask creates a task owned by the authenticated user.
func (h *Handler) HandleCreateTask(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	req := new(models.CreateTaskRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.InvalidInput(c, "Title is required and must be a non-empty string")
	}
	if err := validation.Struct(req); err != nil {
		return utils.InvalidInput(c, "Title is required and must be a non-empty string")
	}

	var task models.Task
	err := h.db.GetContext(c.UserContext(), &task, createTaskQuery, strings.TrimSpace(req.Title), userID)
	if err != nil {
		log.Printf("Create task error: %v", err)
		return utils.InternalError(c, "Failed to create task")
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

// HandleAllTasks lists the authenticated user's tasks in ascending id order.
func (h *Handler) HandleAllTasks(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	tasks := []models.Task{}
	err := h.db.SelectContext(c.UserContext(), &tasks, listTasksQuery, userID)
	if err != nil {
		log.Printf("Fetch tasks error: %v", err)
		return utils.InternalError(c, "Failed to fetch tasks")
	}

	return c.JSON(tasks)
}

// HandleUpdateTask applies a partial update to one of the caller's tasks.
// Only the supplied fields are touched; each field combination has its own
// static statement, never an assembled one.
func (h *Handler) HandleUpdateTask(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	taskID, ok := parseTaskID(c)
	if !ok {
		return utils.InvalidInput(c, "Task ID must be a positive integer")
	}

	req := new(models.UpdateTaskRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.InvalidInput(c, "Invalid request body")
	}
	if req.Title == nil && req.Completed == nil {
		return utils.InvalidInput(c, `At least one of "title" or "completed" must be provided`)
	}
	if err := validation.Struct(req); err != nil {
		return utils.InvalidInput(c, "Title must be a non-empty string")
	}

	var (
		task models.Task
		err  error
	)
	switch {
	case req.Title != nil && req.Completed != nil:
		err = h.db.GetContext(c.UserContext(), &task, updateBothQuery,
			strings.TrimSpace(*req.Title), *req.Completed, taskID, userID)
	case req.Title != nil:
		err = h.db.GetContext(c.UserContext(), &task, updateTitleQuery,
			strings.TrimSpace(*req.Title), taskID, userID)
	default:
		err = h.db.GetContext(c.UserContext(), &task, updateCompletedQuery,
			*req.Completed, taskID, userID)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return utils.NotFound(c, "Task not found or access denied")
	}
	if err != nil {
		log.Printf("Update task error: %v", err)
		return utils.InternalError(c, "Failed to update task")
	}

	return c.JSON(task)
}

// HandleDeleteTask removes one of the caller's tasks.
func (h *Handler) HandleDeleteTask(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	taskID, ok := parseTaskID(c)
	if !ok {
		return utils.InvalidInput(c, "Task ID must be a positive integer")
	}

	var deletedID int64
	err := h.db.GetContext(c.UserContext(), &deletedID, deleteTaskQuery, taskID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return utils.NotFound(c, "Task not found or access denied")
	}
	if err != nil {
		log.Printf("Delete task error: %v", err)
		return utils.InternalError(c, "Failed to delete task")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseTaskID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
