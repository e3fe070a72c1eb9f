package main

import (
	"context"
	"fmt"
	"time"

	"github.com/classhub/classhub-backend/internal/config"
	"github.com/classhub/classhub-backend/internal/database"
	"github.com/classhub/classhub-backend/internal/logger"
	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/repository"
	"github.com/classhub/classhub-backend/internal/service"
)

// Seeds a demo teacher, a handful of students, and one exam so a fresh
// install has something to click through. Idempotent only in the sense
// that duplicate runs fail on the unique constraints.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	adminRepo := repository.NewAdminRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	examRepo := repository.NewExamRepository(pool)

	authService := service.NewAuthService(cfg, rdb, adminRepo, teacherRepo, studentRepo)
	rosterService := service.NewRosterService(teacherRepo, studentRepo, adminRepo, authService, log)

	teacher, err := rosterService.CreateTeacher(ctx, model.CreateTeacherRequest{
		TeacherID:  "T-1001",
		Name:       "Demo Teacher",
		Email:      "teacher@classhub.local",
		Subject:    "Mathematics",
		ClassLabel: "10A",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed teacher")
	}

	students := []model.CreateStudentRequest{
		{StudentID: "S-2001", Name: "Asha Demo", Email: "asha@classhub.local", ClassLabel: "10A", Section: "A"},
		{StudentID: "S-2002", Name: "Bimo Demo", Email: "bimo@classhub.local", ClassLabel: "10A", Section: "A"},
		{StudentID: "S-2003", Name: "Citra Demo", Email: "citra@classhub.local", ClassLabel: "10B", Section: "B"},
	}
	for _, req := range students {
		if _, err := rosterService.CreateStudent(ctx, req); err != nil {
			log.Fatal().Err(err).Str("student_id", req.StudentID).Msg("Failed to seed student")
		}
	}

	exam := &model.Exam{
		Name:       "Algebra Basics",
		Subject:    "Mathematics",
		ClassLabel: "10A",
		Date:       time.Now().AddDate(0, 0, 7),
		FullMarks:  100,
		PassMarks:  40,
		Questions: []model.Question{
			{QuestionText: "2 + 2 = ?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: "4"},
			{QuestionText: "x + 3 = 7, x = ?", Options: []string{"2", "3", "4", "5"}, CorrectAnswer: "4"},
			{QuestionText: "5 * 6 = ?", Options: []string{"11", "25", "30", "35"}, CorrectAnswer: "30"},
			{QuestionText: "9 - 4 = ?", Options: []string{"5", "6", "4", "3"}, CorrectAnswer: "5"},
		},
		CreatedBy: teacher.ID,
	}
	if err := examRepo.Create(ctx, exam); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed exam")
	}

	fmt.Println("Demo data seeded:")
	fmt.Printf("  teacher: teacher@classhub.local (password T-1001)\n")
	fmt.Printf("  students: 3 (password = student ID)\n")
	fmt.Printf("  exam: %s (%s)\n", exam.Name, exam.ID)
}
