package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"etats/internal/models"
	"etats/internal/services"
)

type TaskHandler struct {
	service services.TaskService
}

func NewTaskHandler(service services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// taskRequest accepts loosely typed JSON: numbers and null are allowed
// wherever a string is expected.
type taskRequest struct {
	Title       models.FlexString `json:"title" swaggertype:"string"`
	Description models.FlexString `json:"description" swaggertype:"string"`
	Priority    models.FlexString `json:"priority" swaggertype:"string"`
	DueDate     models.FlexString `json:"dueDate" swaggertype:"string"`
	Status      models.FlexString `json:"status" swaggertype:"string"`
	EmployeeIDs models.FlexList   `json:"employeeIds" swaggertype:"array,string"`
}

func (r taskRequest) input() services.TaskInput {
	return services.TaskInput{
		Title:       r.Title.String(),
		Description: r.Description.String(),
		Priority:    r.Priority.String(),
		DueDate:     r.DueDate.String(),
		Status:      r.Status.String(),
		EmployeeIDs: r.EmployeeIDs.Strings(),
	}
}

type statusRequest struct {
	Status models.FlexString `json:"status" swaggertype:"string"`
}

// @Summary      Create a task with its assignees
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        task  body      taskRequest  true  "Task"
// @Success      201   {object}  map[string]int64
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	id, err := h.service.Create(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, err, "Failed to create task")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"taskId": id})
}

// @Summary      Replace a task and its assignees
// @Description  Status is not changed here; use PUT /tasks/{id}/status.
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Task ID"
// @Param        task  body      taskRequest  true  "Task"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if err := h.service.Update(c.Request.Context(), paramID(c, "id"), req.input()); err != nil {
		respondError(c, err, "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task updated"})
}

// @Summary      Change task status
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        id      path      int            true  "Task ID"
// @Param        status  body      statusRequest  true  "Pending | In Progress | Done | Cancelled"
// @Success      200     {object}  map[string]string
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /tasks/{id}/status [put]
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid status")
		return
	}
	if err := h.service.UpdateStatus(c.Request.Context(), paramID(c, "id"), req.Status.String()); err != nil {
		respondError(c, err, "Failed to update status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// @Summary      Delete a task and its assignments
// @Tags         Tasks
// @Produce      json
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), paramID(c, "id")); err != nil {
		respondError(c, err, "Failed to delete task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// @Summary      List tasks with assignees
// @Description  One record per (task, assignee); unassigned tasks appear once.
// @Tags         Tasks
// @Produce      json
// @Success      200  {array}  models.TaskRecord
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	recs, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch tasks")
		return
	}
	c.JSON(http.StatusOK, recs)
}

// @Summary      Tasks assigned to an employee
// @Tags         Tasks
// @Produce      json
// @Param        employeeId  path     string  true  "Employee ID"
// @Success      200         {array}  models.TaskRecord
// @Router       /tasks/my/{employeeId} [get]
func (h *TaskHandler) ListByEmployee(c *gin.Context) {
	recs, err := h.service.ListByEmployee(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		respondError(c, err, "Failed to fetch tasks")
		return
	}
	c.JSON(http.StatusOK, recs)
}
