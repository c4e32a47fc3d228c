package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scholaris/internal/application/transport/usecases"
	"scholaris/internal/domain/transport"
	"scholaris/internal/shared/logger"
	"scholaris/internal/shared/utils"
)

type RouteRequest struct {
	Name          string   `json:"name" binding:"required"`
	VehicleNumber string   `json:"vehicle_number" binding:"required"`
	DriverName    string   `json:"driver_name" binding:"required"`
	DriverPhone   string   `json:"driver_phone" binding:"omitempty,phone"`
	Capacity      int      `json:"capacity" binding:"required"`
	MonthlyFee    int64    `json:"monthly_fee"`
	Stops         []string `json:"stops" binding:"required"`
}

type AssignStudentRequest struct {
	StudentID  uint   `json:"student_id" binding:"required"`
	PickupStop string `json:"pickup_stop" binding:"required"`
}

type TransportHandler struct {
	createRouteUseCase   *usecases.CreateRouteUseCase
	updateRouteUseCase   *usecases.UpdateRouteUseCase
	deleteRouteUseCase   *usecases.DeleteRouteUseCase
	listRoutesUseCase    *usecases.ListRoutesUseCase
	assignUseCase        *usecases.AssignStudentUseCase
	endAssignmentUseCase *usecases.EndAssignmentUseCase
	rosterUseCase        *usecases.GetRouteRosterUseCase
	logger               logger.Interface
}

func NewTransportHandler(
	createRouteUseCase *usecases.CreateRouteUseCase,
	updateRouteUseCase *usecases.UpdateRouteUseCase,
	deleteRouteUseCase *usecases.DeleteRouteUseCase,
	listRoutesUseCase *usecases.ListRoutesUseCase,
	assignUseCase *usecases.AssignStudentUseCase,
	endAssignmentUseCase *usecases.EndAssignmentUseCase,
	rosterUseCase *usecases.GetRouteRosterUseCase,
	log logger.Interface,
) *TransportHandler {
	return &TransportHandler{
		createRouteUseCase:   createRouteUseCase,
		updateRouteUseCase:   updateRouteUseCase,
		deleteRouteUseCase:   deleteRouteUseCase,
		listRoutesUseCase:    listRoutesUseCase,
		assignUseCase:        assignUseCase,
		endAssignmentUseCase: endAssignmentUseCase,
		rosterUseCase:        rosterUseCase,
		logger:               log,
	}
}

func (h *TransportHandler) CreateRoute(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	route, err := h.createRouteUseCase.Execute(c.Request.Context(), routeCommand(0, req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, routeDTO(route))
}

func (h *TransportHandler) UpdateRoute(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid route id")
		return
	}

	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	route, err := h.updateRouteUseCase.Execute(c.Request.Context(), routeCommand(id, req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "route updated", routeDTO(route))
}

func (h *TransportHandler) DeleteRoute(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid route id")
		return
	}

	if err := h.deleteRouteUseCase.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "route deleted", nil)
}

func (h *TransportHandler) ListRoutes(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listRoutesUseCase.Execute(c.Request.Context(), p.Offset(), p.Limit())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(result.Routes))
	for _, r := range result.Routes {
		items = append(items, routeDTO(r))
	}
	utils.PaginatedResponse(c, items, result.Total, p.Page, p.PageSize)
}

func (h *TransportHandler) AssignStudent(c *gin.Context) {
	routeID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid route id")
		return
	}

	var req AssignStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	assignment, err := h.assignUseCase.Execute(c.Request.Context(), usecases.AssignStudentCommand{
		RouteID:    routeID,
		StudentID:  req.StudentID,
		PickupStop: req.PickupStop,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, assignmentDTO(assignment))
}

func (h *TransportHandler) EndAssignment(c *gin.Context) {
	id, err := parseIDParam(c, "assignment_id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid assignment id")
		return
	}

	if err := h.endAssignmentUseCase.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "assignment ended", nil)
}

func (h *TransportHandler) Roster(c *gin.Context) {
	routeID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid route id")
		return
	}

	assignments, err := h.rosterUseCase.Execute(c.Request.Context(), routeID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(assignments))
	for _, a := range assignments {
		items = append(items, assignmentDTO(a))
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func routeCommand(id uint, req RouteRequest) usecases.RouteCommand {
	return usecases.RouteCommand{
		RouteID:       id,
		Name:          req.Name,
		VehicleNumber: req.VehicleNumber,
		DriverName:    req.DriverName,
		DriverPhone:   req.DriverPhone,
		Capacity:      req.Capacity,
		MonthlyFee:    req.MonthlyFee,
		Stops:         req.Stops,
	}
}

func routeDTO(r *transport.Route) gin.H {
	return gin.H{
		"id":             r.ID(),
		"name":           r.Name(),
		"vehicle_number": r.VehicleNumber(),
		"driver_name":    r.DriverName(),
		"driver_phone":   r.DriverPhone(),
		"capacity":       r.Capacity(),
		"monthly_fee":    r.MonthlyFee(),
		"stops":          r.Stops(),
	}
}

func assignmentDTO(a *transport.Assignment) gin.H {
	return gin.H{
		"id":          a.ID,
		"route_id":    a.RouteID,
		"student_id":  a.StudentID,
		"pickup_stop": a.PickupStop,
		"started_at":  a.StartedAt,
		"ended_at":    a.EndedAt,
		"active":      a.IsActive(),
	}
}
