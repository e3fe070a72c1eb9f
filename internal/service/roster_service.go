package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Roster errors.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrUnknownKind     = errors.New("unknown account kind")
)

// RosterService manages teacher and student records: creation with the
// default-credential policy, partial profile updates, the reversible
// suspend flag, and irreversible termination (hard delete).
type RosterService struct {
	teacherRepo *repository.TeacherRepository
	studentRepo *repository.StudentRepository
	adminRepo   *repository.AdminRepository
	auth        *AuthService
	log         zerolog.Logger
}

// NewRosterService creates a new RosterService.
func NewRosterService(
	teacherRepo *repository.TeacherRepository,
	studentRepo *repository.StudentRepository,
	adminRepo *repository.AdminRepository,
	auth *AuthService,
	log zerolog.Logger,
) *RosterService {
	return &RosterService{
		teacherRepo: teacherRepo,
		studentRepo: studentRepo,
		adminRepo:   adminRepo,
		auth:        auth,
		log:         log.With().Str("component", "roster_service").Logger(),
	}
}

// normalizeEmail lowercases and trims an email for case-insensitive
// uniqueness, matching how emails are stored.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateAdmin registers a new admin account.
func (s *RosterService) CreateAdmin(ctx context.Context, req model.RegisterAdminRequest) (*model.Admin, error) {
	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	admin := &model.Admin{
		Name:         req.Name,
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	s.log.Info().Int("admin_id", admin.ID).Msg("Admin created")
	return admin, nil
}

// CreateTeacher adds a teacher. The initial password is the external
// teacher ID (roster policy: externalId doubles as the default credential).
func (s *RosterService) CreateTeacher(ctx context.Context, req model.CreateTeacherRequest) (*model.Teacher, error) {
	teacherID := strings.TrimSpace(req.TeacherID)
	hash, err := s.auth.HashPassword(teacherID)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	teacher := &model.Teacher{
		TeacherID:    teacherID,
		Name:         req.Name,
		Email:        normalizeEmail(req.Email),
		Subject:      req.Subject,
		ClassLabel:   req.ClassLabel,
		PasswordHash: hash,
	}
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, err
	}
	s.log.Info().Int("teacher_id", teacher.ID).Str("ext_id", teacherID).Msg("Teacher created")
	return teacher, nil
}

// UpdateTeacher merges the supplied fields into a teacher record.
// Omitted (empty) fields are left unchanged.
func (s *RosterService) UpdateTeacher(ctx context.Context, id int, req model.UpdateTeacherRequest) (*model.Teacher, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if req.Name != "" {
		teacher.Name = req.Name
	}
	if req.Email != "" {
		teacher.Email = normalizeEmail(req.Email)
	}
	if req.Subject != "" {
		teacher.Subject = req.Subject
	}
	if req.ClassLabel != "" {
		teacher.ClassLabel = req.ClassLabel
	}

	if err := s.teacherRepo.Update(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

// ListTeachers retrieves all teachers.
func (s *RosterService) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	return s.teacherRepo.List(ctx)
}

// CreateStudent adds a student. If no password is supplied, the external
// student ID is used as the initial credential.
func (s *RosterService) CreateStudent(ctx context.Context, req model.CreateStudentRequest) (*model.Student, error) {
	studentID := strings.TrimSpace(req.StudentID)
	password := req.Password
	if password == "" {
		password = studentID
	}
	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	student := &model.Student{
		StudentID:    studentID,
		Name:         req.Name,
		Email:        normalizeEmail(req.Email),
		ClassLabel:   req.ClassLabel,
		Section:      req.Section,
		PasswordHash: hash,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	s.log.Info().Int("student_id", student.ID).Str("ext_id", studentID).Msg("Student created")
	return student, nil
}

// UpdateStudent merges the supplied fields into a student record.
// Omitted (empty) fields are left unchanged.
func (s *RosterService) UpdateStudent(ctx context.Context, id int, req model.UpdateStudentRequest) (*model.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if req.Name != "" {
		student.Name = req.Name
	}
	if req.Email != "" {
		student.Email = normalizeEmail(req.Email)
	}
	if req.ClassLabel != "" {
		student.ClassLabel = req.ClassLabel
	}
	if req.Section != "" {
		student.Section = req.Section
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// ListStudents retrieves students, optionally filtered by suspension flag.
func (s *RosterService) ListStudents(ctx context.Context, suspended *bool) ([]model.Student, error) {
	return s.studentRepo.List(ctx, suspended)
}

// ToggleSuspend flips an account's reversible suspension flag and returns
// the new state. Kind selects the roster ("teacher" or "student").
func (s *RosterService) ToggleSuspend(ctx context.Context, kind string, id int) (bool, error) {
	switch kind {
	case "teacher":
		t, err := s.teacherRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return false, ErrAccountNotFound
			}
			return false, err
		}
		if err := s.teacherRepo.SetSuspended(ctx, id, !t.IsSuspended); err != nil {
			return false, err
		}
		return !t.IsSuspended, nil
	case "student":
		st, err := s.studentRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return false, ErrAccountNotFound
			}
			return false, err
		}
		if err := s.studentRepo.SetSuspended(ctx, id, !st.IsSuspended); err != nil {
			return false, err
		}
		return !st.IsSuspended, nil
	}
	return false, ErrUnknownKind
}

// Terminate permanently deletes a teacher or student. Unlike suspension
// this cannot be undone; exams and results the account is referenced by
// are left in place and tolerated as orphans by the read paths.
func (s *RosterService) Terminate(ctx context.Context, kind string, id int) error {
	switch kind {
	case "teacher":
		if _, err := s.teacherRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrAccountNotFound
			}
			return err
		}
		if err := s.teacherRepo.Delete(ctx, id); err != nil {
			return err
		}
	case "student":
		if _, err := s.studentRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrAccountNotFound
			}
			return err
		}
		if err := s.studentRepo.Delete(ctx, id); err != nil {
			return err
		}
		// Drop any lingering login session for the deleted student.
		_ = s.auth.ClearStudentSession(ctx, id)
	default:
		return ErrUnknownKind
	}

	s.log.Warn().Str("kind", kind).Int("id", id).Msg("Account terminated")
	return nil
}

// UpdateProfile merges name/email changes and an optional new avatar path
// into the caller's own record, whatever their role.
func (s *RosterService) UpdateProfile(ctx context.Context, role model.Role, id int, req model.UpdateProfileRequest, imagePath *string) (*model.Account, error) {
	switch role {
	case model.RoleAdmin:
		a, err := s.adminRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrAccountNotFound
			}
			return nil, err
		}
		if req.Name != "" {
			a.Name = req.Name
		}
		if req.Email != "" {
			a.Email = normalizeEmail(req.Email)
		}
		if imagePath != nil {
			a.ProfileImage = imagePath
		}
		if err := s.adminRepo.UpdateProfile(ctx, a); err != nil {
			return nil, err
		}
		return &model.Account{ID: a.ID, Role: role, Name: a.Name, Email: a.Email, ProfileImage: a.ProfileImage, IsSuspended: a.IsSuspended}, nil

	case model.RoleTeacher:
		t, err := s.teacherRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrAccountNotFound
			}
			return nil, err
		}
		if req.Name != "" {
			t.Name = req.Name
		}
		if req.Email != "" {
			t.Email = normalizeEmail(req.Email)
		}
		if imagePath != nil {
			t.ProfileImage = imagePath
		}
		if err := s.teacherRepo.Update(ctx, t); err != nil {
			return nil, err
		}
		return &model.Account{ID: t.ID, Role: role, Name: t.Name, Email: t.Email, ProfileImage: t.ProfileImage, IsSuspended: t.IsSuspended}, nil

	case model.RoleStudent:
		st, err := s.studentRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrAccountNotFound
			}
			return nil, err
		}
		if req.Name != "" {
			st.Name = req.Name
		}
		if req.Email != "" {
			st.Email = normalizeEmail(req.Email)
		}
		if imagePath != nil {
			st.ProfileImage = imagePath
		}
		if err := s.studentRepo.Update(ctx, st); err != nil {
			return nil, err
		}
		return &model.Account{ID: st.ID, Role: role, Name: st.Name, Email: st.Email, ProfileImage: st.ProfileImage, IsSuspended: st.IsSuspended}, nil
	}
	return nil, ErrUnknownKind
}
