// Command seed wipes the database and loads a small set of sample employers,
// job seekers and postings for local development.
package main

import (
	"context"
	"time"

	"github.com/bangalorejobs/job-board/internal/core/domain"
	"github.com/bangalorejobs/job-board/internal/core/ports"
	"github.com/bangalorejobs/job-board/internal/core/service"
	"github.com/bangalorejobs/job-board/internal/infrastructure/config"
	mongodb "github.com/bangalorejobs/job-board/internal/infrastructure/db/mongo"
	"github.com/bangalorejobs/job-board/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer client.Disconnect(context.Background())

	for _, name := range []string{"users", "jobs", "applications"} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("failed to drop collection")
		}
	}
	log.Info().Msg("cleared existing data")

	userRepo := mongodb.NewUserRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := jobRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create job indexes")
	}
	if err := mongodb.NewApplicationRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create application indexes")
	}

	authSvc := service.NewAuthService(userRepo, nil, cfg.JWTSecret, cfg.TokenTTL, log)
	jobSvc := service.NewJobService(jobRepo, log)

	employers := []ports.RegisterInput{
		{
			Name: "Tech Solutions Bangalore", Email: "employer1@techsolutions.com",
			Password: "password123", Role: string(domain.RoleEmployer),
			Company: "Tech Solutions Pvt Ltd", Location: "Whitefield", Phone: "+91 9876543210",
		},
		{
			Name: "Innovate Labs", Email: "employer2@innovatelabs.com",
			Password: "password123", Role: string(domain.RoleEmployer),
			Company: "Innovate Labs India", Location: "Koramangala", Phone: "+91 9876543211",
		},
		{
			Name: "Digital Dynamics", Email: "employer3@digitaldynamics.com",
			Password: "password123", Role: string(domain.RoleEmployer),
			Company: "Digital Dynamics Corp", Location: "Indiranagar", Phone: "+91 9876543212",
		},
	}

	employerIDs := make([]string, 0, len(employers))
	for _, in := range employers {
		u, err := authSvc.Register(ctx, in)
		if err != nil {
			log.Fatal().Err(err).Str("email", in.Email).Msg("failed to seed employer")
		}
		employerIDs = append(employerIDs, u.ID)
	}
	log.Info().Int("count", len(employerIDs)).Msg("created sample employers")

	seekers := []ports.RegisterInput{
		{
			Name: "Rajesh Kumar", Email: "rajesh@example.com",
			Password: "password123", Role: string(domain.RoleJobSeeker),
			Location: "HSR Layout", Phone: "+91 9876543213",
			Skills: []string{"JavaScript", "React", "Node.js"}, ExperienceYears: 3,
		},
		{
			Name: "Priya Sharma", Email: "priya@example.com",
			Password: "password123", Role: string(domain.RoleJobSeeker),
			Location: "Koramangala", Phone: "+91 9876543214",
			Skills: []string{"Python", "Machine Learning", "Data Analysis"}, ExperienceYears: 2,
		},
	}

	for _, in := range seekers {
		if _, err := authSvc.Register(ctx, in); err != nil {
			log.Fatal().Err(err).Str("email", in.Email).Msg("failed to seed job seeker")
		}
	}
	log.Info().Int("count", len(seekers)).Msg("created sample job seekers")

	jobs := []struct {
		employer int
		in       ports.CreateJobInput
	}{
		{0, ports.CreateJobInput{
			Title:   "Senior React Developer",
			Company: "Tech Solutions Pvt Ltd",
			Description: "We are looking for an experienced React developer to join our team in Whitefield. " +
				"You will be working on cutting-edge web applications for clients across various industries.",
			Location: "Whitefield", Category: "Software Development", JobType: "Full-time",
			SalaryMin: 1200000, SalaryMax: 1800000, ExperienceRequired: 4,
			Skills: []string{"React", "JavaScript", "Redux", "TypeScript"},
		}},
		{0, ports.CreateJobInput{
			Title:       "Backend Engineer",
			Company:     "Tech Solutions Pvt Ltd",
			Description: "Design and build scalable APIs and services on a modern cloud stack.",
			Location:    "Whitefield", Category: "Software Development", JobType: "Full-time",
			SalaryMin: 1000000, SalaryMax: 1600000, ExperienceRequired: 3,
			Skills: []string{"Go", "MongoDB", "Docker"},
		}},
		{1, ports.CreateJobInput{
			Title:       "Data Scientist",
			Company:     "Innovate Labs India",
			Description: "Build machine learning models and analytics pipelines for product teams.",
			Location:    "Koramangala", Category: "Data Science", JobType: "Full-time",
			SalaryMin: 1400000, SalaryMax: 2200000, ExperienceRequired: 2,
			Skills: []string{"Python", "TensorFlow", "SQL"},
		}},
		{1, ports.CreateJobInput{
			Title:       "Product Designer",
			Company:     "Innovate Labs India",
			Description: "Own the end-to-end design of our consumer products, from research to final UI.",
			Location:    "Koramangala", Category: "Design", JobType: "Contract",
			SalaryMin: 800000, SalaryMax: 1200000, ExperienceRequired: 2,
			Skills: []string{"Figma", "Prototyping"},
		}},
		{2, ports.CreateJobInput{
			Title:       "Marketing Intern",
			Company:     "Digital Dynamics Corp",
			Description: "Support the growth team with campaign execution and content creation.",
			Location:    "Indiranagar", Category: "Marketing", JobType: "Internship",
			SalaryMin: 180000, SalaryMax: 240000, ExperienceRequired: 0,
			Skills: []string{"Content Writing", "SEO"},
		}},
	}

	for _, j := range jobs {
		if _, err := jobSvc.Create(ctx, employerIDs[j.employer], j.in); err != nil {
			log.Fatal().Err(err).Str("title", j.in.Title).Msg("failed to seed job")
		}
	}
	log.Info().Int("count", len(jobs)).Msg("created sample jobs")
}
