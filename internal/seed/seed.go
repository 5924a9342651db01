// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"quorum/internal/models"
	"quorum/internal/validation"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers     int
	NumQuestions int
	ShouldClean  bool
}

var tagNames = []string{
	"go", "python", "javascript", "databases", "networking", "linux",
	"docker", "kubernetes", "testing", "security", "frontend", "backend",
	"devops", "cloud", "algorithms", "performance",
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d questions...",
		opts.NumUsers, opts.NumQuestions)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db)

	profiles, err := f.CreateUsersWithProfiles(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d users with profiles created", len(profiles))

	tags, err := f.CreateTags()
	if err != nil {
		return fmt.Errorf("failed to create tags: %w", err)
	}
	log.Printf("%d tags available", len(tags))

	questions, err := f.CreateQuestions(profiles, tags, opts.NumQuestions)
	if err != nil {
		return fmt.Errorf("failed to create questions: %w", err)
	}
	log.Printf("%d questions created", len(questions))

	answers, err := f.CreateAnswers(profiles, questions)
	if err != nil {
		return fmt.Errorf("failed to create answers: %w", err)
	}
	log.Printf("%d answers created", len(answers))

	log.Println("Seeding complete")
	return nil
}

func clearData(db *gorm.DB) error {
	tables := []string{"question_tags", "answers", "questions", "tags", "profiles", "users"}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUsersWithProfiles creates n users, each with a profile whose
// reputation starts at zero.
func (f *Factory) CreateUsersWithProfiles(n int) ([]*models.Profile, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	profiles := make([]*models.Profile, 0, n)
	for i := 0; i < n; i++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		user := &models.User{
			Username:  strings.ToLower(fmt.Sprintf("%s_%s_%d", first, last, i)),
			Email:     strings.ToLower(fmt.Sprintf("%s.%s.%d@%s", first, last, i, gofakeit.DomainName())),
			FirstName: first,
			LastName:  last,
			Password:  string(hashed),
		}
		if err := f.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}

		profile := &models.Profile{
			UserID:      user.ID,
			Title:       gofakeit.JobTitle(),
			Description: gofakeit.Paragraph(1, 2, 8, " "),
			Location:    gofakeit.City(),
		}
		if f.rng.Intn(2) == 0 {
			profile.GithubUsername = user.Username
		}
		if err := f.db.Create(profile).Error; err != nil {
			return nil, fmt.Errorf("create profile: %w", err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// CreateTags ensures the built-in tag set exists.
func (f *Factory) CreateTags() ([]*models.Tag, error) {
	tags := make([]*models.Tag, 0, len(tagNames))
	for _, name := range tagNames {
		tag := &models.Tag{Name: name, Slug: validation.Slugify(name)}
		if err := f.db.Where("slug = ?", tag.Slug).
			FirstOrCreate(tag).Error; err != nil {
			return nil, fmt.Errorf("create tag %q: %w", name, err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// CreateQuestions creates n questions spread across the given profiles,
// each tagged with one to three random tags.
func (f *Factory) CreateQuestions(profiles []*models.Profile, tags []*models.Tag, n int) ([]*models.Question, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("no profiles to assign questions to")
	}

	questions := make([]*models.Question, 0, n)
	for i := 0; i < n; i++ {
		asker := profiles[f.rng.Intn(len(profiles))]
		question := &models.Question{
			Title:     strings.TrimSuffix(gofakeit.Question(), "?") + "?",
			Body:      gofakeit.Paragraph(2, 3, 10, "\n"),
			AskedByID: &asker.ID,
			UpVote:    f.rng.Intn(20),
			DownVote:  f.rng.Intn(5),
			CreatedAt: f.pastTime(),
		}

		picked := f.rng.Perm(len(tags))[:1+f.rng.Intn(3)]
		for _, idx := range picked {
			question.Tags = append(question.Tags, *tags[idx])
		}

		if err := f.db.Create(question).Error; err != nil {
			return nil, fmt.Errorf("create question: %w", err)
		}
		questions = append(questions, question)
	}
	return questions, nil
}

// CreateAnswers creates zero to four answers per question, occasionally
// nesting a reply and accepting one answer per question at most.
func (f *Factory) CreateAnswers(profiles []*models.Profile, questions []*models.Question) ([]*models.Answer, error) {
	answers := make([]*models.Answer, 0)
	for _, question := range questions {
		count := f.rng.Intn(5)
		var accepted bool
		var last *models.Answer
		for i := 0; i < count; i++ {
			by := profiles[f.rng.Intn(len(profiles))]
			answer := &models.Answer{
				Body:       gofakeit.Paragraph(1, 3, 10, "\n"),
				QuestionID: question.ID,
				AnswerByID: &by.ID,
				UpVote:     f.rng.Intn(10),
				Favourite:  f.rng.Intn(3),
				CreatedAt:  f.pastTime(),
			}
			if !accepted && f.rng.Intn(4) == 0 {
				answer.Accepted = true
				accepted = true
			}
			if last != nil && f.rng.Intn(3) == 0 {
				answer.ParentID = &last.ID
			}
			if err := f.db.Create(answer).Error; err != nil {
				return nil, fmt.Errorf("create answer: %w", err)
			}
			answers = append(answers, answer)
			last = answer
		}
	}
	return answers, nil
}

func (f *Factory) pastTime() time.Time {
	daysBack := f.rng.Intn(90)
	hoursBack := f.rng.Intn(24)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)
}
