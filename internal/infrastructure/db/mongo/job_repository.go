package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bangalorejobs/job-board/internal/core/domain"
	"github.com/bangalorejobs/job-board/internal/core/ports"
)

const collectionJobs = "jobs"

// JobRepository implements ports.JobRepository on MongoDB.
type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(collectionJobs)}
}

type mongoJob struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Title              string             `bson:"title"`
	Company            string             `bson:"company"`
	Description        string             `bson:"description"`
	Location           string             `bson:"location"`
	Category           string             `bson:"category"`
	JobType            string             `bson:"job_type"`
	SalaryMin          int                `bson:"salary_min"`
	SalaryMax          int                `bson:"salary_max"`
	ExperienceRequired int                `bson:"experience_required"`
	Skills             []string           `bson:"skills,omitempty"`
	EmployerID         primitive.ObjectID `bson:"employer_id"`
	Status             string             `bson:"status"`
	PostedDate         time.Time          `bson:"posted_date"`
}

func (mj *mongoJob) toDomain() *domain.Job {
	return &domain.Job{
		ID:                 mj.ID.Hex(),
		Title:              mj.Title,
		Company:            mj.Company,
		Description:        mj.Description,
		Location:           mj.Location,
		Category:           mj.Category,
		JobType:            domain.JobType(mj.JobType),
		SalaryMin:          mj.SalaryMin,
		SalaryMax:          mj.SalaryMax,
		ExperienceRequired: mj.ExperienceRequired,
		Skills:             mj.Skills,
		EmployerID:         mj.EmployerID.Hex(),
		Status:             domain.JobStatus(mj.Status),
		PostedDate:         mj.PostedDate,
	}
}

func toMongoJob(job *domain.Job) (*mongoJob, error) {
	employerID, err := primitive.ObjectIDFromHex(job.EmployerID)
	if err != nil {
		return nil, fmt.Errorf("invalid employer id: %w", err)
	}
	return &mongoJob{
		Title:              job.Title,
		Company:            job.Company,
		Description:        job.Description,
		Location:           job.Location,
		Category:           job.Category,
		JobType:            string(job.JobType),
		SalaryMin:          job.SalaryMin,
		SalaryMax:          job.SalaryMax,
		ExperienceRequired: job.ExperienceRequired,
		Skills:             job.Skills,
		EmployerID:         employerID,
		Status:             string(job.Status),
		PostedDate:         job.PostedDate,
	}, nil
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toMongoJob(job)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := *job
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	var mj mongoJob
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mj); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return mj.toDomain(), nil
}

func (r *JobRepository) Update(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(job.ID)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":               job.Title,
		"company":             job.Company,
		"description":         job.Description,
		"location":            job.Location,
		"category":            job.Category,
		"job_type":            string(job.JobType),
		"salary_min":          job.SalaryMin,
		"salary_max":          job.SalaryMax,
		"experience_required": job.ExperienceRequired,
		"skills":              job.Skills,
		"status":              string(job.Status),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrJobNotFound
	}
	return job, nil
}

// buildFilter translates the listing filter into a Mongo query document.
func buildFilter(f ports.ListJobsFilter) bson.M {
	query := bson.M{}
	if f.Status != "" {
		query["status"] = string(f.Status)
	}
	if f.Location != "" {
		query["location"] = f.Location
	}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.MinSalary > 0 {
		query["salary_max"] = bson.M{"$gte": f.MinSalary}
	}
	if f.MaxSalary > 0 {
		query["salary_min"] = bson.M{"$lte": f.MaxSalary}
	}
	if f.HasExperience {
		query["experience_required"] = bson.M{"$lte": f.Experience}
	}
	if f.Search != "" {
		query["$text"] = bson.M{"$search": f.Search}
	}
	return query
}

// List returns one page of jobs matching filter, newest first, plus the total count.
func (r *JobRepository) List(ctx context.Context, filter ports.ListJobsFilter) ([]*domain.Job, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := buildFilter(filter)

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "posted_date", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	var jobs []*domain.Job
	for cur.Next(ctx) {
		var mj mongoJob
		if err := cur.Decode(&mj); err != nil {
			return nil, 0, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, mj.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list jobs cursor: %w", err)
	}

	return jobs, total, nil
}

// ListByEmployer returns all of an employer's jobs, any status, newest first.
func (r *JobRepository) ListByEmployer(ctx context.Context, employerID string) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(employerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "posted_date", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"employer_id": oid}, opts)
	if err != nil {
		return nil, fmt.Errorf("list employer jobs: %w", err)
	}
	defer cur.Close(ctx)

	var jobs []*domain.Job
	for cur.Next(ctx) {
		var mj mongoJob
		if err := cur.Decode(&mj); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, mj.toDomain())
	}
	return jobs, cur.Err()
}

// EnsureIndexes creates the text-search and filter indexes on the jobs collection.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "company", Value: "text"},
		}},
		{Keys: bson.D{
			{Key: "location", Value: 1},
			{Key: "category", Value: 1},
			{Key: "status", Value: 1},
		}},
		{Keys: bson.D{{Key: "employer_id", Value: 1}}},
		{Keys: bson.D{{Key: "posted_date", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
