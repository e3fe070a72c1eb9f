package handler

import (
	"net/http"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/response"
	"github.com/classhub/classhub-backend/internal/service"
	"github.com/classhub/classhub-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles admin roster management and oversight endpoints.
type AdminHandler struct {
	rosterService *service.RosterService
	examService   *service.ExamService
	authService   *service.AuthService
	mediaService  *service.MediaService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	rosterService *service.RosterService,
	examService *service.ExamService,
	authService *service.AuthService,
	mediaService *service.MediaService,
) *AdminHandler {
	return &AdminHandler{
		rosterService: rosterService,
		examService:   examService,
		authService:   authService,
		mediaService:  mediaService,
	}
}

// RegisterAdmin godoc
// POST /api/v1/admin/admins
func (h *AdminHandler) RegisterAdmin(c *gin.Context) {
	var req model.RegisterAdminRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, err := h.rosterService.CreateAdmin(c.Request.Context(), req)
	if err != nil {
		failRoster(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"admin": admin})
}

// ListTeachers godoc
// GET /api/v1/admin/teachers
func (h *AdminHandler) ListTeachers(c *gin.Context) {
	teachers, err := h.rosterService.ListTeachers(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"teachers": teachers})
}

// CreateTeacher godoc
// POST /api/v1/admin/teachers
func (h *AdminHandler) CreateTeacher(c *gin.Context) {
	var req model.CreateTeacherRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	teacher, err := h.rosterService.CreateTeacher(c.Request.Context(), req)
	if err != nil {
		failRoster(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"teacher": teacher})
}

// UpdateTeacher godoc
// PUT /api/v1/admin/teachers/:id
func (h *AdminHandler) UpdateTeacher(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdateTeacherRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	teacher, err := h.rosterService.UpdateTeacher(c.Request.Context(), id, req)
	if err != nil {
		failRoster(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"teacher": teacher})
}

// ListStudents godoc
// GET /api/v1/admin/students?suspended=true|false
func (h *AdminHandler) ListStudents(c *gin.Context) {
	var suspended *bool
	switch c.Query("suspended") {
	case "true":
		v := true
		suspended = &v
	case "false":
		v := false
		suspended = &v
	}

	students, err := h.rosterService.ListStudents(c.Request.Context(), suspended)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// CreateStudent godoc
// POST /api/v1/admin/students
func (h *AdminHandler) CreateStudent(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, err := h.rosterService.CreateStudent(c.Request.Context(), req)
	if err != nil {
		failRoster(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"student": student})
}

// UpdateStudent godoc
// PUT /api/v1/admin/students/:id
func (h *AdminHandler) UpdateStudent(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, err := h.rosterService.UpdateStudent(c.Request.Context(), id, req)
	if err != nil {
		failRoster(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// ToggleSuspend godoc
// PATCH /api/v1/admin/:kind/:id/suspend
// Flips the reversible suspension flag for a teacher or student.
func (h *AdminHandler) ToggleSuspend(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	suspended, err := h.rosterService.ToggleSuspend(c.Request.Context(), c.Param("kind"), id)
	if err != nil {
		failRoster(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"is_suspended": suspended})
}

// Terminate godoc
// DELETE /api/v1/admin/:kind/:id
// Permanently removes a teacher or student account.
func (h *AdminHandler) Terminate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.rosterService.Terminate(c.Request.Context(), c.Param("kind"), id); err != nil {
		failRoster(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

// ListAllExams godoc
// GET /api/v1/admin/exams
// Every exam in the system with creator names joined, for oversight.
func (h *AdminHandler) ListAllExams(c *gin.Context) {
	exams, err := h.examService.ListAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exams": exams})
}

// ResetStudentSession godoc
// DELETE /api/v1/admin/students/:id/session
// Clears a student's single-device session so they can log in again.
func (h *AdminHandler) ResetStudentSession(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.authService.ClearStudentSession(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

// UpdateProfile godoc
// PUT /api/v1/admin/profile
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}
	updateOwnProfile(c, h.rosterService, h.mediaService, model.RoleAdmin, account.ID)
}
