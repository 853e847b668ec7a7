package endpoints

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"

	"github.com/annie-elequin/pawgress/pkg/apierr"
	"github.com/annie-elequin/pawgress/pkg/authenticator/password"
	"github.com/annie-elequin/pawgress/pkg/model"
)

const maxNameLength = 100

// normalizeEmail is applied at signup and login so addresses match
// regardless of case or surrounding whitespace.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (req *signupRequest) Validate() error {
	req.Email = normalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)

	if !govalidator.IsEmail(req.Email) {
		return apierr.Validation("A valid email is required")
	}
	if utf8.RuneCountInString(req.Password) < password.MinLength {
		return apierr.Validationf("Password must be at least %d characters", password.MinLength)
	}
	if len(req.Password) > password.MaxLength {
		return apierr.Validationf("Password must be at most %d bytes", password.MaxLength)
	}
	if len(req.Name) > maxNameLength {
		return apierr.Validationf("Name must be at most %d characters", maxNameLength)
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *loginRequest) Validate() error {
	req.Email = normalizeEmail(req.Email)
	if req.Email == "" || req.Password == "" {
		return apierr.Validation("Email and password are required")
	}
	return nil
}

// petFields are shared by the pets and dogs APIs.
type petFields struct {
	Name      string  `json:"name"`
	Breed     string  `json:"breed"`
	Birthdate *string `json:"birthdate"`
	Age       *int    `json:"age"`
	Photo     string  `json:"photo"`
	Notes     string  `json:"notes"`

	birthdate *time.Time
}

func (f *petFields) validate() error {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return apierr.Validation("Name is required")
	}
	if f.Age != nil && *f.Age < 0 {
		return apierr.Validation("Age must not be negative")
	}

	f.birthdate = nil
	if f.Birthdate != nil && strings.TrimSpace(*f.Birthdate) != "" {
		t, err := parseDate(*f.Birthdate)
		if err != nil {
			return apierr.Validation("Birthdate must be an RFC 3339 timestamp or YYYY-MM-DD")
		}
		f.birthdate = &t
	}
	return nil
}

// apply copies the validated fields onto pet.
func (f *petFields) apply(pet *model.Pet) {
	pet.Name = f.Name
	pet.Breed = f.Breed
	pet.Birthdate = f.birthdate
	pet.Age = f.Age
	pet.Photo = f.Photo
	pet.Notes = f.Notes
}

type petRequest struct {
	petFields
	Type string `json:"type"`

	petType model.PetType
}

func (req *petRequest) Validate() error {
	if err := req.petFields.validate(); err != nil {
		return err
	}
	t, err := model.PetTypeString(strings.TrimSpace(req.Type))
	if err != nil {
		return apierr.Validationf("Type must be one of %s", strings.Join(model.PetTypeStrings(), ", "))
	}
	req.petType = t
	return nil
}

type dogRequest struct {
	petFields
}

func (req *dogRequest) Validate() error {
	return req.petFields.validate()
}

type activityRequest struct {
	Type         string `json:"type"`
	Notes        string `json:"notes"`
	PetID        string `json:"petId"`
	ScheduledFor string `json:"scheduledFor"`

	scheduledFor time.Time
}

func (req *activityRequest) Validate() error {
	req.Type = strings.TrimSpace(req.Type)
	req.PetID = strings.TrimSpace(req.PetID)
	switch {
	case req.Type == "":
		return apierr.Validation("Type is required")
	case req.PetID == "":
		return apierr.Validation("petId is required")
	case strings.TrimSpace(req.ScheduledFor) == "":
		return apierr.Validation("scheduledFor is required")
	}

	t, err := time.Parse(time.RFC3339, strings.TrimSpace(req.ScheduledFor))
	if err != nil {
		return apierr.Validation("scheduledFor must be an RFC 3339 timestamp")
	}
	req.scheduledFor = t
	return nil
}

type behaviorRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (req *behaviorRequest) Validate() error {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return apierr.Validation("Title is required")
	}
	return nil
}

func (req *behaviorRequest) apply(b *model.Behavior) {
	b.Title = req.Title
	b.Description = req.Description
	b.Category = req.Category
}

// criterionRequest accepts the difficulty as difficultyLevel, the name the
// web client uses.
type criterionRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	DifficultyLevel string `json:"difficultyLevel"`
	Notes           string `json:"notes"`

	difficulty *model.Difficulty
}

func (req *criterionRequest) Validate() error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return apierr.Validation("Name is required")
	}

	req.difficulty = nil
	if level := strings.TrimSpace(req.DifficultyLevel); level != "" {
		d, err := model.DifficultyString(level)
		if err != nil {
			return apierr.Validationf("difficultyLevel must be one of %s", strings.Join(model.DifficultyStrings(), ", "))
		}
		req.difficulty = &d
	}
	return nil
}

func (req *criterionRequest) apply(c *model.Criterion) {
	c.Name = req.Name
	c.Description = req.Description
	c.Difficulty = req.difficulty
	c.Notes = req.Notes
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
