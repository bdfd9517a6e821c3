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
)

const collectionApplications = "applications"

// ApplicationRepository implements ports.ApplicationRepository on MongoDB.
// The compound unique index on (job_id, applicant_id) is the atomic guard
// against duplicate applications, including under concurrent submission.
type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(collectionApplications)}
}

type mongoApplication struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	JobID       primitive.ObjectID `bson:"job_id"`
	ApplicantID primitive.ObjectID `bson:"applicant_id"`
	Status      string             `bson:"status"`
	CoverLetter string             `bson:"cover_letter,omitempty"`
	Resume      string             `bson:"resume,omitempty"`
	AppliedDate time.Time          `bson:"applied_date"`
	UpdatedDate time.Time          `bson:"updated_date"`
}

func (ma *mongoApplication) toDomain() *domain.Application {
	return &domain.Application{
		ID:          ma.ID.Hex(),
		JobID:       ma.JobID.Hex(),
		ApplicantID: ma.ApplicantID.Hex(),
		Status:      domain.ApplicationStatus(ma.Status),
		CoverLetter: ma.CoverLetter,
		Resume:      ma.Resume,
		AppliedDate: ma.AppliedDate,
		UpdatedDate: ma.UpdatedDate,
	}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	jobID, err := primitive.ObjectIDFromHex(app.JobID)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}
	applicantID, err := primitive.ObjectIDFromHex(app.ApplicantID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	doc := mongoApplication{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      string(app.Status),
		CoverLetter: app.CoverLetter,
		Resume:      app.Resume,
		AppliedDate: app.AppliedDate,
		UpdatedDate: app.UpdatedDate,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateApplication
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}

	created := *app
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	var ma mongoApplication
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *ApplicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	jid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}
	aid, err := primitive.ObjectIDFromHex(applicantID)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	var ma mongoApplication
	err = r.coll.FindOne(ctx, bson.M{"job_id": jid, "applicant_id": aid}).Decode(&ma)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return ma.toDomain(), nil
}

// ListByApplicant returns the applicant's applications newest first, each with
// the referenced job summary joined via $lookup.
func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	aid, err := primitive.ObjectIDFromHex(applicantID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"applicant_id": aid}}},
		{{Key: "$sort", Value: bson.M{"applied_date": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionJobs,
			"localField":   "job_id",
			"foreignField": "_id",
			"as":           "job",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$job", "preserveNullAndEmptyArrays": true}}},
	}

	return r.aggregate(ctx, pipeline)
}

// ListByJob returns a job's applications newest first, each with the applicant
// summary joined via $lookup.
func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	jid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"job_id": jid}}},
		{{Key: "$sort", Value: bson.M{"applied_date": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionUsers,
			"localField":   "applicant_id",
			"foreignField": "_id",
			"as":           "applicant",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$applicant", "preserveNullAndEmptyArrays": true}}},
	}

	return r.aggregate(ctx, pipeline)
}

// joinedApplication is the aggregation row shape with either side joined.
type joinedApplication struct {
	mongoApplication `bson:",inline"`
	Job              *joinedJob       `bson:"job,omitempty"`
	Applicant        *joinedApplicant `bson:"applicant,omitempty"`
}

type joinedJob struct {
	ID         primitive.ObjectID `bson:"_id"`
	Title      string             `bson:"title"`
	Company    string             `bson:"company"`
	Location   string             `bson:"location"`
	SalaryMin  int                `bson:"salary_min"`
	SalaryMax  int                `bson:"salary_max"`
	EmployerID primitive.ObjectID `bson:"employer_id"`
	Status     string             `bson:"status"`
}

type joinedApplicant struct {
	ID     primitive.ObjectID    `bson:"_id"`
	Name   string                `bson:"name"`
	Email  string                `bson:"email"`
	Seeker *domain.SeekerProfile `bson:"seeker,omitempty"`
}

func (r *ApplicationRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*domain.Application, error) {
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate applications: %w", err)
	}
	defer cur.Close(ctx)

	var apps []*domain.Application
	for cur.Next(ctx) {
		var row joinedApplication
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}

		app := row.mongoApplication.toDomain()
		if row.Job != nil {
			app.Job = &domain.JobSummary{
				ID:         row.Job.ID.Hex(),
				Title:      row.Job.Title,
				Company:    row.Job.Company,
				Location:   row.Job.Location,
				SalaryMin:  row.Job.SalaryMin,
				SalaryMax:  row.Job.SalaryMax,
				EmployerID: row.Job.EmployerID.Hex(),
				Status:     domain.JobStatus(row.Job.Status),
			}
		}
		if row.Applicant != nil {
			summary := &domain.ApplicantSummary{
				ID:    row.Applicant.ID.Hex(),
				Name:  row.Applicant.Name,
				Email: row.Applicant.Email,
			}
			if row.Applicant.Seeker != nil {
				summary.Phone = row.Applicant.Seeker.Phone
				summary.Skills = row.Applicant.Seeker.Skills
				summary.ExperienceYears = row.Applicant.Seeker.ExperienceYears
			}
			app.Applicant = summary
		}
		apps = append(apps, app)
	}
	return apps, cur.Err()
}

// UpdateStatus atomically sets the status and refreshes updated_date.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":       string(status),
		"updated_date": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var ma mongoApplication
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&ma)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("update application status: %w", err)
	}
	return ma.toDomain(), nil
}

// EnsureIndexes creates the unique (job, applicant) compound index.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "job_id", Value: 1},
				{Key: "applicant_id", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "applicant_id", Value: 1}, {Key: "applied_date", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
