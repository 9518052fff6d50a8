package generator

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"github.com/prasetya/siaklake/internal/model"
	"github.com/prasetya/siaklake/internal/pkg/logger"
)

// Counts holds target volumes for one generation run. Zero values are
// allowed; a generator handed a zero target returns an empty slice.
type Counts struct {
	Faculties      int
	Programs       int
	Lecturers      int
	Students       int
	Rooms          int
	Courses        int
	Semesters      int
	ClassSchedules int
	Registrations  int
	Attendance     int
	StartYear      int
	EndYear        int
}

// Dataset is one complete, mutually consistent synthetic dataset.
// Collections are ordered and immutable once generated; later
// generators only ever read earlier collections.
type Dataset struct {
	Faculties       []model.Faculty
	Programs        []model.Program
	Lecturers       []model.Lecturer
	Students        []model.Student
	Rooms           []model.Room
	Courses         []model.Course
	Semesters       []model.Semester
	ClassSchedules  []model.ClassSchedule
	Registrations   []model.Registration
	Grades          []model.Grade
	AcademicRecords []model.AcademicRecord
	SemesterFees    []model.SemesterFee
	Attendance      []model.Attendance
}

// Generate runs every generator in dependency order. Registration
// sampling and the per-student GPA walks are sharded across workers
// with forked randomness sources; the schedule allocator stays on a
// single goroutine because its conflict set is the non-overlap
// invariant.
func Generate(cfg Counts, rng *rand.Rand) (*Dataset, error) {
	ds := &Dataset{}
	var err error

	logger.Info().Int("count", cfg.Faculties).Msg("Generating faculties")
	if ds.Faculties, err = Faculties(rng, cfg.Faculties); err != nil {
		return nil, fmt.Errorf("faculties: %w", err)
	}

	logger.Info().Int("count", cfg.Programs).Msg("Generating programs")
	if ds.Programs, err = Programs(rng, ds.Faculties, cfg.Programs); err != nil {
		return nil, fmt.Errorf("programs: %w", err)
	}

	logger.Info().Int("count", cfg.Lecturers).Msg("Generating lecturers")
	if ds.Lecturers, err = Lecturers(rng, ds.Faculties, cfg.Lecturers); err != nil {
		return nil, fmt.Errorf("lecturers: %w", err)
	}

	logger.Info().Int("count", cfg.Students).Msg("Generating students")
	if ds.Students, err = Students(rng, ds.Programs, cfg.Students, cfg.StartYear, cfg.EndYear); err != nil {
		return nil, fmt.Errorf("students: %w", err)
	}

	logger.Info().Int("count", cfg.Rooms).Msg("Generating rooms")
	if ds.Rooms, err = Rooms(rng, cfg.Rooms); err != nil {
		return nil, fmt.Errorf("rooms: %w", err)
	}

	logger.Info().Int("count", cfg.Courses).Msg("Generating courses")
	if ds.Courses, err = Courses(rng, ds.Programs, cfg.Courses); err != nil {
		return nil, fmt.Errorf("courses: %w", err)
	}

	logger.Info().Int("count", cfg.Semesters).Msg("Generating semesters")
	ds.Semesters = Semesters(rng, cfg.Semesters, cfg.StartYear)

	logger.Info().Int("count", cfg.ClassSchedules).Msg("Generating class schedules")
	ds.ClassSchedules = ClassSchedules(rng, ds.Courses, ds.Lecturers, ds.Rooms, ds.Semesters, cfg.ClassSchedules)

	logger.Info().Int("count", cfg.Registrations).Msg("Generating registrations")
	ds.Registrations = shardedRegistrations(rng, ds, cfg.Registrations)

	logger.Info().Int("registrations", len(ds.Registrations)).Msg("Generating grades")
	ds.Grades = Grades(rng, ds.Registrations)

	logger.Info().Msg("Generating semester fees")
	if ds.SemesterFees, err = SemesterFees(rng, ds.Students, ds.Semesters, ds.Programs); err != nil {
		return nil, fmt.Errorf("semester fees: %w", err)
	}

	logger.Info().Msg("Generating academic records")
	if ds.AcademicRecords, err = shardedAcademicRecords(ds); err != nil {
		return nil, fmt.Errorf("academic records: %w", err)
	}

	logger.Info().Int("count", cfg.Attendance).Msg("Generating attendance records")
	ds.Attendance = AttendanceRecords(rng, ds.Students, ds.ClassSchedules, ds.Semesters, cfg.Attendance)

	return ds, nil
}

// shardedRegistrations splits the registration target across workers,
// each sampling with an independent forked source over the same
// read-only inputs, then merges shards dropping cross-shard duplicate
// tuples.
func shardedRegistrations(rng *rand.Rand, ds *Dataset, n int) []model.Registration {
	workers := runtime.NumCPU()
	if workers > n {
		workers = 1
	}

	shards := make([][]model.Registration, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		target := n / workers
		if w < n%workers {
			target++
		}
		workerRng := Fork(rng)

		wg.Add(1)
		go func(idx, target int, workerRng *rand.Rand) {
			defer wg.Done()
			shards[idx] = Registrations(workerRng, ds.Students, ds.Courses, ds.Semesters, target)
		}(w, target, workerRng)
	}
	wg.Wait()

	return dedupeRegistrations(shards)
}

// shardedAcademicRecords partitions students across workers. Each
// student's chronological walk is fully local, so partitioning by
// student is safe; record ids are reassigned after the merge to keep
// them dense and ordered.
func shardedAcademicRecords(ds *Dataset) ([]model.AcademicRecord, error) {
	workers := runtime.NumCPU()
	if workers > len(ds.Students) {
		workers = 1
	}
	if workers <= 1 {
		return AcademicRecords(ds.Students, ds.Semesters, ds.Registrations, ds.Grades, ds.Courses)
	}

	shards := make([][]model.AcademicRecord, workers)
	errs := make([]error, workers)
	chunk := (len(ds.Students) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(ds.Students) {
			hi = len(ds.Students)
		}
		if lo >= hi {
			continue
		}

		wg.Add(1)
		go func(idx int, students []model.Student) {
			defer wg.Done()
			shards[idx], errs[idx] = AcademicRecords(students, ds.Semesters, ds.Registrations, ds.Grades, ds.Courses)
		}(w, ds.Students[lo:hi])
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	merged := make([]model.AcademicRecord, 0, len(ds.Students))
	for _, shard := range shards {
		merged = append(merged, shard...)
	}
	// Shards are already student-ordered; a stable renumbering keeps
	// emission order intact.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].StudentID < merged[j].StudentID
	})
	for i := range merged {
		merged[i].ID = int64(i + 1)
	}
	return merged, nil
}
