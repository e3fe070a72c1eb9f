package handler

import (
	"net/http"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/response"
	"github.com/classhub/classhub-backend/internal/service"
	"github.com/classhub/classhub-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// TeacherHandler handles the teacher-facing exam catalog, result views,
// and class roster endpoints.
type TeacherHandler struct {
	examService   *service.ExamService
	resultService *service.ResultService
	rosterService *service.RosterService
	mediaService  *service.MediaService
}

// NewTeacherHandler creates a new TeacherHandler.
func NewTeacherHandler(
	examService *service.ExamService,
	resultService *service.ResultService,
	rosterService *service.RosterService,
	mediaService *service.MediaService,
) *TeacherHandler {
	return &TeacherHandler{
		examService:   examService,
		resultService: resultService,
		rosterService: rosterService,
		mediaService:  mediaService,
	}
}

// ListExams godoc
// GET /api/v1/teacher/exams
// The calling teacher's own exams, answer keys included.
func (h *TeacherHandler) ListExams(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	exams, err := h.examService.ListByTeacher(c.Request.Context(), account.ID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exams": exams})
}

// CreateExam godoc
// POST /api/v1/teacher/exams
func (h *TeacherHandler) CreateExam(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	var req model.CreateExamRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	exam, err := h.examService.Create(c.Request.Context(), account.ID, req)
	if err != nil {
		failExam(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"exam": exam})
}

// UpdateExam godoc
// PATCH /api/v1/teacher/exams/:id
// Partial update: absent fields are left as stored.
func (h *TeacherHandler) UpdateExam(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}
	examID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdateExamRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	exam, err := h.examService.Update(c.Request.Context(), account.ID, examID, req)
	if err != nil {
		failExam(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exam": exam})
}

// DeleteExam godoc
// DELETE /api/v1/teacher/exams/:id
func (h *TeacherHandler) DeleteExam(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}
	examID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.examService.Delete(c.Request.Context(), account.ID, examID); err != nil {
		failExam(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

// ExamResults godoc
// GET /api/v1/teacher/exams/:id/results
// Leaderboard view of one exam, marks descending.
func (h *TeacherHandler) ExamResults(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}
	examID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	results, err := h.resultService.ForExam(c.Request.Context(), account.ID, examID)
	if err != nil {
		failExam(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// PublishResult godoc
// POST /api/v1/teacher/results
// Records or overrides a result with teacher-assigned marks.
func (h *TeacherHandler) PublishResult(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	var req model.PublishResultRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.resultService.Publish(c.Request.Context(), account.ID, req)
	if err != nil {
		failExam(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"result": result})
}

// ListStudents godoc
// GET /api/v1/teacher/students
func (h *TeacherHandler) ListStudents(c *gin.Context) {
	students, err := h.rosterService.ListStudents(c.Request.Context(), nil)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// CreateStudent godoc
// POST /api/v1/teacher/students
// Teachers may enroll students directly, same policy as the admin path.
func (h *TeacherHandler) CreateStudent(c *gin.Context) {
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

// ToggleStudentSuspend godoc
// PATCH /api/v1/teacher/students/:id/suspend
func (h *TeacherHandler) ToggleStudentSuspend(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	suspended, err := h.rosterService.ToggleSuspend(c.Request.Context(), "student", id)
	if err != nil {
		failRoster(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"is_suspended": suspended})
}

// UpdateProfile godoc
// PUT /api/v1/teacher/profile
func (h *TeacherHandler) UpdateProfile(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}
	updateOwnProfile(c, h.rosterService, h.mediaService, model.RoleTeacher, account.ID)
}
