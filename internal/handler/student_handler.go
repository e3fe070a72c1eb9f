package handler

import (
	"errors"
	"net/http"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/response"
	"github.com/classhub/classhub-backend/internal/service"
	"github.com/classhub/classhub-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// StudentHandler handles exam taking, result history, and study notes.
type StudentHandler struct {
	examService       *service.ExamService
	submissionService *service.SubmissionService
	resultService     *service.ResultService
	noteService       *service.NoteService
	rosterService     *service.RosterService
	mediaService      *service.MediaService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(
	examService *service.ExamService,
	submissionService *service.SubmissionService,
	resultService *service.ResultService,
	noteService *service.NoteService,
	rosterService *service.RosterService,
	mediaService *service.MediaService,
) *StudentHandler {
	return &StudentHandler{
		examService:       examService,
		submissionService: submissionService,
		resultService:     resultService,
		noteService:       noteService,
		rosterService:     rosterService,
		mediaService:      mediaService,
	}
}

// AvailableExams godoc
// GET /api/v1/student/exams
// Exams for the student's class not yet taken, answer keys stripped.
func (h *StudentHandler) AvailableExams(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	exams, err := h.examService.ListAvailable(c.Request.Context(), account.ID)
	if err != nil {
		failExam(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exams": exams})
}

// SubmitExam godoc
// POST /api/v1/student/exams/:id/submit
// Scores the answers and records the single permitted attempt.
func (h *StudentHandler) SubmitExam(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}
	examID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req model.SubmitExamRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	outcome, err := h.submissionService.Submit(c.Request.Context(), account.ID, examID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExamNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrExamAlreadyTaken):
			response.Fail(c, http.StatusConflict, response.ErrExamAlreadyTaken)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"result": outcome})
}

// MyResults godoc
// GET /api/v1/student/results
// The student's full result history, oldest first.
func (h *StudentHandler) MyResults(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	results, err := h.resultService.ForStudent(c.Request.Context(), account.ID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// GenerateNotes godoc
// POST /api/v1/student/notes/generate
func (h *StudentHandler) GenerateNotes(c *gin.Context) {
	var req model.GenerateNotesRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	text, err := h.noteService.Generate(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, http.StatusBadGateway, response.ErrGenAIUnavailable)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"content": text})
}

// AskQuestion godoc
// POST /api/v1/student/notes/ask
func (h *StudentHandler) AskQuestion(c *gin.Context) {
	var req model.AskQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	text, err := h.noteService.Ask(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, http.StatusBadGateway, response.ErrGenAIUnavailable)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"answer": text})
}

// SaveNote godoc
// POST /api/v1/student/notes
func (h *StudentHandler) SaveNote(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	var req model.SaveNoteRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	note, err := h.noteService.Save(c.Request.Context(), account.ID, req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"note": note})
}

// ListNotes godoc
// GET /api/v1/student/notes
func (h *StudentHandler) ListNotes(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	notes, err := h.noteService.List(c.Request.Context(), account.ID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notes": notes})
}

// UpdateProfile godoc
// PUT /api/v1/student/profile
func (h *StudentHandler) UpdateProfile(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}
	updateOwnProfile(c, h.rosterService, h.mediaService, model.RoleStudent, account.ID)
}
