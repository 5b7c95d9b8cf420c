package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"etats/internal/middleware"
	"etats/internal/models"
	"etats/internal/services"
)

type EmployeeHandler struct {
	service services.EmployeeService
}

func NewEmployeeHandler(service services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// employeeRequest is shared by create and update. On update an absent or
// null field keeps its stored value.
type employeeRequest struct {
	EmployeeID     models.FlexString  `json:"employeeId" swaggertype:"string"`
	Name           *models.FlexString `json:"name" swaggertype:"string"`
	Email          *models.FlexString `json:"email" swaggertype:"string"`
	Phone          *models.FlexString `json:"phone" swaggertype:"string"`
	Department     *models.FlexString `json:"department" swaggertype:"string"`
	Designation    *models.FlexString `json:"designation" swaggertype:"string"`
	Role           *models.FlexString `json:"role" swaggertype:"string"`
	Status         *models.FlexString `json:"status" swaggertype:"string"`
	PhotoURL       *models.FlexString `json:"photoUrl" swaggertype:"string"`
	HireDate       *models.FlexString `json:"hireDate" swaggertype:"string"`
	Password       *models.FlexString `json:"password" swaggertype:"string"`
	TelegramChatID *int64             `json:"telegramChatId"`
}

func (r employeeRequest) input() services.EmployeeInput {
	return services.EmployeeInput{
		EmployeeID:     r.EmployeeID.String(),
		Name:           flexPtr(r.Name),
		Email:          flexPtr(r.Email),
		Phone:          flexPtr(r.Phone),
		Department:     flexPtr(r.Department),
		Designation:    flexPtr(r.Designation),
		Role:           flexPtr(r.Role),
		Status:         flexPtr(r.Status),
		PhotoURL:       flexPtr(r.PhotoURL),
		HireDate:       flexPtr(r.HireDate),
		Password:       flexPtr(r.Password),
		TelegramChatID: r.TelegramChatID,
	}
}

// @Summary      Own employee record
// @Tags         Employees
// @Produce      json
// @Success      200  {object}  models.Employee
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /employees/me [get]
func (h *EmployeeHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	e, err := h.service.Get(c.Request.Context(), u.EmployeeID)
	if err != nil {
		respondError(c, err, "Failed to fetch employee")
		return
	}
	c.JSON(http.StatusOK, e)
}

// @Summary      List employees
// @Tags         Employees
// @Produce      json
// @Success      200  {array}   models.Employee
// @Failure      403  {object}  map[string]string
// @Router       /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch employees")
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Create an employee
// @Tags         Employees
// @Accept       json
// @Produce      json
// @Param        employee  body      employeeRequest  true  "Employee"
// @Success      201       {object}  models.Employee
// @Failure      400       {object}  map[string]string
// @Failure      409       {object}  map[string]string
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	e, err := h.service.Create(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}
	c.JSON(http.StatusCreated, e)
}

// @Summary      Update an employee
// @Tags         Employees
// @Accept       json
// @Produce      json
// @Param        employeeId  path      string           true  "Employee ID"
// @Param        employee    body      employeeRequest  true  "Fields to change"
// @Success      200         {object}  models.Employee
// @Failure      404         {object}  map[string]string
// @Router       /employees/{employeeId} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	e, err := h.service.Update(c.Request.Context(), c.Param("employeeId"), req.input())
	if err != nil {
		respondError(c, err, "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, e)
}

// @Summary      Delete an employee
// @Description  Their task assignments are removed with them.
// @Tags         Employees
// @Produce      json
// @Param        employeeId  path      string  true  "Employee ID"
// @Success      200         {object}  map[string]bool
// @Failure      404         {object}  map[string]string
// @Router       /employees/{employeeId} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("employeeId")); err != nil {
		respondError(c, err, "Failed to delete employee")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
