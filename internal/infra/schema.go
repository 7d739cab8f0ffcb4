package infra

import (
	"log"
	"os"

	"gorm.io/gorm"
)

// InitSchema drops and recreates the feedback and courses tables on every
// boot. Destructive on purpose: this deployment is a non-persistent demo and
// must come up with a clean, known schema.
func InitSchema(db *gorm.DB) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		statements := []string{
			`DROP TABLE IF EXISTS feedback CASCADE`,
			`DROP TABLE IF EXISTS courses CASCADE`,
			`CREATE TABLE feedback (
				feedback_id SERIAL PRIMARY KEY,
				student_name VARCHAR(100) NOT NULL,
				course_code VARCHAR(20) NOT NULL,
				comments TEXT NOT NULL,
				rating INTEGER NOT NULL CHECK (rating >= 1 AND rating <= 5),
				submission_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE courses (
				course_id SERIAL PRIMARY KEY,
				course_code VARCHAR(20) NOT NULL UNIQUE,
				course_name VARCHAR(150) NOT NULL,
				lecturer_name VARCHAR(100)
			)`,
			`CREATE INDEX idx_feedback_course_code ON feedback(course_code)`,
			`CREATE INDEX idx_feedback_rating ON feedback(rating)`,
			`CREATE INDEX idx_feedback_submission_date ON feedback(submission_date)`,
		}

		for _, stmt := range statements {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}

		if os.Getenv("APP_ENV") != "production" {
			return seedSampleData(tx)
		}
		return nil
	})
	if err != nil {
		log.Printf("Database initialization failed: %v", err)
		return err
	}

	log.Println("Database initialized successfully")
	return nil
}

// seedSampleData inserts a small fixed demo set so the dashboard has
// something to show on a fresh instance.
func seedSampleData(tx *gorm.DB) error {
	if err := tx.Exec(`
		INSERT INTO feedback (student_name, course_code, comments, rating) VALUES
		('Jonkomane Lesoetsa', 'BIWA2110', 'Excellent course with practical examples!', 5),
		('Kopano Lejone', 'BIWA2110', 'Very informative and well structured.', 4),
		('Boiketlo Alotsi', 'COMP101', 'Good introduction to programming.', 4),
		('Kaemane Makhetha', 'DBMS202', 'Database concepts were explained clearly.', 5)
	`).Error; err != nil {
		return err
	}

	return tx.Exec(`
		INSERT INTO courses (course_code, course_name, lecturer_name) VALUES
		('BIWA2110', 'Business Intelligence and Web Analytics', 'T. Mokhele'),
		('COMP101', 'Introduction to Programming', 'L. Ramaili'),
		('DBMS202', 'Database Management Systems', 'M. Khabo')
	`).Error
}
