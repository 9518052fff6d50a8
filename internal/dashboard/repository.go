package dashboard

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prasetya/siaklake/internal/pkg/logger"
)

// MetricsRepository reads aggregate measures off the star schema.
type MetricsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMetricsRepository creates a new MetricsRepository
func NewMetricsRepository(db *pgxpool.Pool) *MetricsRepository {
	return &MetricsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// BasicMetrics holds headline entity counts.
type BasicMetrics struct {
	TotalStudents  int64 `json:"total_students"`
	TotalCourses   int64 `json:"total_courses"`
	TotalLecturers int64 `json:"total_lecturers"`
	TotalFaculties int64 `json:"total_faculties"`
	TotalRooms     int64 `json:"total_rooms"`
}

// AcademicMetrics summarizes GPA and grading outcomes.
type AcademicMetrics struct {
	AvgCumulativeGPA   float64 `json:"avg_cumulative_gpa"`
	AvgSemesterGPA     float64 `json:"avg_semester_gpa"`
	AvgCreditsPassed   float64 `json:"avg_credits_passed"`
	AvgTotalCredits    float64 `json:"avg_total_credits"`
	GPA25thPercentile  float64 `json:"gpa_25th_percentile"`
	GPAMedian          float64 `json:"gpa_50th_percentile"`
	GPA75thPercentile  float64 `json:"gpa_75th_percentile"`
	AvgNumericGrade    float64 `json:"avg_numeric_grade"`
	PassRatePercentage float64 `json:"pass_rate"`
}

// FinancialMetrics summarizes fee billing and collection.
type FinancialMetrics struct {
	TotalFeeCollected     int64   `json:"total_fee_collected"`
	AvgFeePerStudent      float64 `json:"avg_fee_per_student"`
	MedianFee             float64 `json:"median_fee"`
	TotalFeeTransactions  int64   `json:"total_fee_transactions"`
	PaymentCompletionRate float64 `json:"payment_completion_rate"`
}

// EnrollmentMetrics summarizes registration volume and spread.
type EnrollmentMetrics struct {
	TotalRegistrations     int64   `json:"total_registrations"`
	UniqueStudents         int64   `json:"unique_students_registered"`
	UniqueCourses          int64   `json:"unique_courses_registered"`
	AvgCoursesPerStudent   float64 `json:"avg_courses_per_student"`
	AvgEnrollmentPerCourse float64 `json:"avg_enrollment_per_course"`
	MaxEnrollmentPerCourse int64   `json:"max_enrollment_per_course"`
	MinEnrollmentPerCourse int64   `json:"min_enrollment_per_course"`
}

// FacultyMetrics is one faculty's row in the per-faculty breakdown.
type FacultyMetrics struct {
	FacultyName   string  `json:"faculty_name"`
	StudentCount  int64   `json:"student_count"`
	LecturerCount int64   `json:"lecturer_count"`
	CourseCount   int64   `json:"course_count"`
	AvgGPA        float64 `json:"avg_gpa"`
	TotalFees     int64   `json:"total_fees"`
}

// SemesterMetrics is one semester's row in the cross-semester comparison.
type SemesterMetrics struct {
	SemesterCode       string  `json:"semester_code"`
	AcademicYear       string  `json:"academic_year"`
	StudentCount       int64   `json:"student_count"`
	AvgSemesterGPA     float64 `json:"avg_semester_gpa"`
	AvgCumulativeGPA   float64 `json:"avg_cumulative_gpa"`
	TotalCredits       int64   `json:"total_credits"`
	TotalRegistrations int64   `json:"total_registrations"`
	TotalFees          int64   `json:"total_fees"`
}

// GetBasicMetrics retrieves headline counts from the dimensions.
func (r *MetricsRepository) GetBasicMetrics(ctx context.Context) (*BasicMetrics, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM dim_student),
			(SELECT COUNT(*) FROM dim_course),
			(SELECT COUNT(*) FROM dim_lecturer),
			(SELECT COUNT(DISTINCT faculty_name) FROM dim_student),
			(SELECT COUNT(*) FROM dim_room)`

	metrics := &BasicMetrics{}
	err := r.db.QueryRow(ctx, query).Scan(
		&metrics.TotalStudents, &metrics.TotalCourses, &metrics.TotalLecturers,
		&metrics.TotalFaculties, &metrics.TotalRooms,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying basic metrics")
		return nil, fmt.Errorf("error getting basic metrics: %w", err)
	}
	return metrics, nil
}

// GetAcademicMetrics retrieves GPA aggregates and the pass rate.
// Grades of 55 and above count as passing.
func (r *MetricsRepository) GetAcademicMetrics(ctx context.Context) (*AcademicMetrics, error) {
	metrics := &AcademicMetrics{}

	academicQuery := `
		SELECT
			COALESCE(AVG(cumulative_gpa), 0),
			COALESCE(AVG(semester_gpa), 0),
			COALESCE(AVG(credits_passed), 0),
			COALESCE(AVG(total_credits), 0),
			COALESCE(PERCENTILE_CONT(0.25) WITHIN GROUP (ORDER BY cumulative_gpa), 0),
			COALESCE(PERCENTILE_CONT(0.50) WITHIN GROUP (ORDER BY cumulative_gpa), 0),
			COALESCE(PERCENTILE_CONT(0.75) WITHIN GROUP (ORDER BY cumulative_gpa), 0)
		FROM fact_academic`

	err := r.db.QueryRow(ctx, academicQuery).Scan(
		&metrics.AvgCumulativeGPA, &metrics.AvgSemesterGPA,
		&metrics.AvgCreditsPassed, &metrics.AvgTotalCredits,
		&metrics.GPA25thPercentile, &metrics.GPAMedian, &metrics.GPA75thPercentile,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying academic record metrics")
		return nil, fmt.Errorf("error getting academic metrics: %w", err)
	}

	gradeQuery := `
		SELECT
			COALESCE(AVG(numeric_grade), 0),
			COALESCE(100.0 * COUNT(*) FILTER (WHERE numeric_grade >= 55) / NULLIF(COUNT(*), 0), 0)
		FROM fact_grade`

	err = r.db.QueryRow(ctx, gradeQuery).Scan(&metrics.AvgNumericGrade, &metrics.PassRatePercentage)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying grade metrics")
		return nil, fmt.Errorf("error getting grade metrics: %w", err)
	}

	return metrics, nil
}

// GetFinancialMetrics retrieves fee aggregates and the share of
// students with at least one fee row.
func (r *MetricsRepository) GetFinancialMetrics(ctx context.Context) (*FinancialMetrics, error) {
	query := `
		SELECT
			COALESCE(SUM(fee_amount), 0),
			COALESCE(AVG(fee_amount), 0),
			COALESCE(PERCENTILE_CONT(0.50) WITHIN GROUP (ORDER BY fee_amount), 0),
			COUNT(*),
			COALESCE(100.0 * COUNT(DISTINCT student_id) / NULLIF((SELECT COUNT(*) FROM dim_student), 0), 0)
		FROM fact_fee`

	metrics := &FinancialMetrics{}
	err := r.db.QueryRow(ctx, query).Scan(
		&metrics.TotalFeeCollected, &metrics.AvgFeePerStudent, &metrics.MedianFee,
		&metrics.TotalFeeTransactions, &metrics.PaymentCompletionRate,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying financial metrics")
		return nil, fmt.Errorf("error getting financial metrics: %w", err)
	}
	return metrics, nil
}

// GetEnrollmentMetrics retrieves registration volume aggregates.
func (r *MetricsRepository) GetEnrollmentMetrics(ctx context.Context) (*EnrollmentMetrics, error) {
	query := `
		WITH per_course AS (
			SELECT course_id, COUNT(*) AS enrollments
			FROM fact_registration
			GROUP BY course_id
		)
		SELECT
			(SELECT COUNT(*) FROM fact_registration),
			(SELECT COUNT(DISTINCT student_id) FROM fact_registration),
			(SELECT COUNT(DISTINCT course_id) FROM fact_registration),
			COALESCE((SELECT COUNT(*) FROM fact_registration)::FLOAT /
				NULLIF((SELECT COUNT(DISTINCT student_id) FROM fact_registration), 0), 0),
			COALESCE((SELECT AVG(enrollments) FROM per_course), 0),
			COALESCE((SELECT MAX(enrollments) FROM per_course), 0),
			COALESCE((SELECT MIN(enrollments) FROM per_course), 0)`

	metrics := &EnrollmentMetrics{}
	err := r.db.QueryRow(ctx, query).Scan(
		&metrics.TotalRegistrations, &metrics.UniqueStudents, &metrics.UniqueCourses,
		&metrics.AvgCoursesPerStudent, &metrics.AvgEnrollmentPerCourse,
		&metrics.MaxEnrollmentPerCourse, &metrics.MinEnrollmentPerCourse,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying enrollment metrics")
		return nil, fmt.Errorf("error getting enrollment metrics: %w", err)
	}
	return metrics, nil
}

// GetFacultyMetrics retrieves the per-faculty breakdown.
func (r *MetricsRepository) GetFacultyMetrics(ctx context.Context) ([]FacultyMetrics, error) {
	// Academic and fee facts are aggregated separately; joining both on
	// student_id would cross-multiply rows per student.
	query := `
		SELECT
			ds.faculty_name,
			COUNT(*),
			(SELECT COUNT(*) FROM dim_lecturer dl WHERE dl.faculty_name = ds.faculty_name),
			(SELECT COUNT(*) FROM dim_course dc WHERE dc.faculty_name = ds.faculty_name),
			COALESCE((SELECT AVG(fa.cumulative_gpa) FROM fact_academic fa
				JOIN dim_student s2 ON s2.student_id = fa.student_id
				WHERE s2.faculty_name = ds.faculty_name), 0),
			COALESCE((SELECT SUM(ff.fee_amount) FROM fact_fee ff
				JOIN dim_student s2 ON s2.student_id = ff.student_id
				WHERE s2.faculty_name = ds.faculty_name), 0)
		FROM dim_student ds
		GROUP BY ds.faculty_name
		ORDER BY ds.faculty_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying faculty metrics")
		return nil, fmt.Errorf("error getting faculty metrics: %w", err)
	}
	defer rows.Close()

	metrics := []FacultyMetrics{}
	for rows.Next() {
		var m FacultyMetrics
		if err := rows.Scan(
			&m.FacultyName, &m.StudentCount, &m.LecturerCount,
			&m.CourseCount, &m.AvgGPA, &m.TotalFees,
		); err != nil {
			return nil, fmt.Errorf("error scanning faculty metrics row: %w", err)
		}
		metrics = append(metrics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty metrics: %w", err)
	}
	return metrics, nil
}

// GetSemesterMetrics retrieves the cross-semester comparison ordered
// chronologically.
func (r *MetricsRepository) GetSemesterMetrics(ctx context.Context) ([]SemesterMetrics, error) {
	query := `
		SELECT
			s.semester_code,
			s.academic_year,
			COALESCE((SELECT COUNT(*) FROM fact_academic fa WHERE fa.semester_id = s.semester_id), 0),
			COALESCE((SELECT AVG(fa.semester_gpa) FROM fact_academic fa WHERE fa.semester_id = s.semester_id), 0),
			COALESCE((SELECT AVG(fa.cumulative_gpa) FROM fact_academic fa WHERE fa.semester_id = s.semester_id), 0),
			COALESCE((SELECT SUM(fa.semester_credits) FROM fact_academic fa WHERE fa.semester_id = s.semester_id), 0),
			COALESCE((SELECT COUNT(*) FROM fact_registration fr WHERE fr.semester_id = s.semester_id), 0),
			COALESCE((SELECT SUM(ff.fee_amount) FROM fact_fee ff WHERE ff.semester_id = s.semester_id), 0)
		FROM dim_semester s
		ORDER BY s.start_date`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying semester metrics")
		return nil, fmt.Errorf("error getting semester metrics: %w", err)
	}
	defer rows.Close()

	metrics := []SemesterMetrics{}
	for rows.Next() {
		var m SemesterMetrics
		if err := rows.Scan(
			&m.SemesterCode, &m.AcademicYear, &m.StudentCount,
			&m.AvgSemesterGPA, &m.AvgCumulativeGPA, &m.TotalCredits,
			&m.TotalRegistrations, &m.TotalFees,
		); err != nil {
			return nil, fmt.Errorf("error scanning semester metrics row: %w", err)
		}
		metrics = append(metrics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating semester metrics: %w", err)
	}
	return metrics, nil
}

// ListTopCourses returns the most enrolled courses with their grades.
func (r *MetricsRepository) ListTopCourses(ctx context.Context, limit uint64) ([]CourseMetrics, error) {
	sql, args, err := r.sb.Select(
		"dc.course_code",
		"dc.course_name",
		"dc.faculty_name",
		"COUNT(fr.registration_id) AS enrollments",
		"COALESCE((SELECT AVG(fg.numeric_grade) FROM fact_grade fg WHERE fg.course_id = dc.course_id), 0) AS avg_grade",
	).
		From("dim_course dc").
		Join("fact_registration fr ON fr.course_id = dc.course_id").
		GroupBy("dc.course_id", "dc.course_code", "dc.course_name", "dc.faculty_name").
		OrderBy("enrollments DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building top courses SQL")
		return nil, fmt.Errorf("failed to build top courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying top courses")
		return nil, fmt.Errorf("error getting top courses: %w", err)
	}
	defer rows.Close()

	courses := []CourseMetrics{}
	for rows.Next() {
		var c CourseMetrics
		if err := rows.Scan(&c.CourseCode, &c.CourseName, &c.FacultyName, &c.Enrollments, &c.AvgGrade); err != nil {
			return nil, fmt.Errorf("error scanning top course row: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top courses: %w", err)
	}
	return courses, nil
}

// CourseMetrics is one course's row in the top-courses listing.
type CourseMetrics struct {
	CourseCode  string  `json:"course_code"`
	CourseName  string  `json:"course_name"`
	FacultyName string  `json:"faculty_name"`
	Enrollments int64   `json:"enrollments"`
	AvgGrade    float64 `json:"avg_grade"`
}
