package controllers

import (
	"errors"
	"strconv"

	"github.com/lindltaylor7/monoessam/pkg/resp"
	"github.com/lindltaylor7/monoessam/services"

	"github.com/gin-gonic/gin"
)

type WeeklyProgramController struct {
	Service *services.ProgramService
}

func NewWeeklyProgramController(s *services.ProgramService) *WeeklyProgramController {
	return &WeeklyProgramController{Service: s}
}

// GET /cafes/:id/weekly-programs
func (ctl *WeeklyProgramController) ListByCafe(c *gin.Context) {
	cafeID, _ := strconv.Atoi(c.Param("id"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	programs, err := ctl.Service.Programs.ListProgramsForCafe(uint(cafeID), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, programs)
}

// POST /weekly-programs
func (ctl *WeeklyProgramController) Create(c *gin.Context) {
	var req services.CreateProgramReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	program, err := ctl.Service.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, program)
}

// GET /weekly-programs/:id
func (ctl *WeeklyProgramController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	detail, err := ctl.Service.Detail(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrProgramNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, detail)
}

// PUT /weekly-programs/:id/portions
func (ctl *WeeklyProgramController) SetPortion(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var in services.PortionIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.SetPortion(uint(id), &in); err != nil {
		if errors.Is(err, services.ErrProgramNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// PATCH /weekly-programs/:id/approve
func (ctl *WeeklyProgramController) Approve(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	approved, err := ctl.Service.Approve(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrProgramNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	// approved is false when the program was already aprobado
	resp.OK(c, gin.H{"approved": approved})
}
