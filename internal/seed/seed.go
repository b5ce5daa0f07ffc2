// Package seed loads the demo dataset through the board service. It is
// idempotent: when any job already exists the run is skipped, matching the
// original demo behavior.
package seed

import (
	"context"
	"time"

	"internboard/internal/board"
	"internboard/internal/common/logger"
	"internboard/internal/models"
)

type Seeder struct {
	svc    *board.Service
	logger logger.Logger
}

func New(svc *board.Service, log logger.Logger) *Seeder {
	return &Seeder{
		svc:    svc,
		logger: log.WithFields(map[string]interface{}{"component": "seed"}),
	}
}

// Run writes the sample jobs unless jobs already exist. The demo companyIds
// reference no registered identities; the core tolerates the dangling
// references.
func (s *Seeder) Run(ctx context.Context) error {
	existing, err := s.svc.ListJobs(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		s.logger.Info("jobs already present, skipping seed", map[string]interface{}{
			"count": len(existing),
		})
		return nil
	}

	for _, job := range SampleJobs(time.Now().UTC()) {
		if err := s.svc.SaveJob(ctx, job); err != nil {
			return err
		}
	}

	s.logger.Info("sample data generated", map[string]interface{}{
		"jobs": len(SampleJobs(time.Now().UTC())),
	})
	return nil
}

// SampleJobs returns the demo postings, with postedAt offsets relative to
// now.
func SampleJobs(now time.Time) []models.Job {
	day := 24 * time.Hour
	return []models.Job{
		{
			ID:           "job-1",
			CompanyID:    "company-demo",
			Title:        "Frontend Developer Intern",
			Description:  "Join our dynamic team to build modern web applications using React, TypeScript, and cutting-edge technologies. You'll work on real projects that impact thousands of users.",
			Requirements: []string{"React", "TypeScript", "JavaScript", "CSS", "Git"},
			Location:     "San Francisco, CA",
			Type:         "Full-time",
			Salary:       "$2000/month",
			PostedAt:     now.Add(-2 * day),
			Status:       models.JobStatusActive,
		},
		{
			ID:           "job-2",
			CompanyID:    "company-demo",
			Title:        "Data Science Intern",
			Description:  "Dive into the world of data science and machine learning. Work with large datasets, build predictive models, and create insights that drive business decisions.",
			Requirements: []string{"Python", "Machine Learning", "SQL", "Statistics", "Pandas"},
			Location:     "New York, NY",
			Type:         "Full-time",
			Salary:       "$2200/month",
			PostedAt:     now.Add(-3 * day),
			Status:       models.JobStatusActive,
		},
		{
			ID:           "job-3",
			CompanyID:    "company-demo-2",
			Title:        "UX/UI Design Intern",
			Description:  "Create beautiful and intuitive user experiences. Work alongside our design team to prototype, test, and implement user-centered design solutions.",
			Requirements: []string{"Figma", "Adobe Creative Suite", "Prototyping", "User Research", "Design Systems"},
			Location:     "Remote",
			Type:         "Part-time",
			Salary:       "$1500/month",
			PostedAt:     now.Add(-1 * day),
			Status:       models.JobStatusActive,
		},
		{
			ID:           "job-4",
			CompanyID:    "company-demo-2",
			Title:        "Backend Developer Intern",
			Description:  "Build scalable backend systems and APIs. Learn about microservices, databases, and cloud infrastructure while working on production systems.",
			Requirements: []string{"Node.js", "Express", "MongoDB", "AWS", "Docker"},
			Location:     "Austin, TX",
			Type:         "Full-time",
			Salary:       "$2100/month",
			PostedAt:     now.Add(-4 * day),
			Status:       models.JobStatusActive,
		},
		{
			ID:           "job-5",
			CompanyID:    "company-demo-3",
			Title:        "Marketing Analytics Intern",
			Description:  "Analyze marketing performance, create reports, and help optimize campaigns. Perfect for students interested in the intersection of marketing and data.",
			Requirements: []string{"Google Analytics", "Excel", "SQL", "Data Visualization", "Marketing"},
			Location:     "Los Angeles, CA",
			Type:         "Full-time",
			Salary:       "$1800/month",
			PostedAt:     now.Add(-5 * day),
			Status:       models.JobStatusActive,
		},
		{
			ID:           "job-6",
			CompanyID:    "company-demo-3",
			Title:        "Mobile App Developer Intern",
			Description:  "Develop native mobile applications for iOS and Android. Work with React Native and native SDKs to create engaging mobile experiences.",
			Requirements: []string{"React Native", "iOS", "Android", "JavaScript", "Mobile UI/UX"},
			Location:     "Seattle, WA",
			Type:         "Full-time",
			Salary:       "$2300/month",
			PostedAt:     now.Add(-6 * day),
			Status:       models.JobStatusActive,
		},
	}
}
