package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/stardental/clinic-backend/internal/domain/entities"
	"github.com/stardental/clinic-backend/internal/domain/repositories"
)

// fallbackTestimonials is served on the public page when the store read
// fails or returns no rows, so the testimonials section never renders empty.
var fallbackTestimonials = []*entities.Testimonial{
	{
		ID:        "sample-1",
		Name:      "Sarah Mukasa",
		Location:  "Mbale",
		Rating:    5,
		Treatment: "Dental Implants",
		Text:      "The team at Star Dental Clinic is absolutely amazing! I was nervous about getting dental implants, but the team made me feel so comfortable. The procedure was painless, and my new teeth look and feel completely natural.",
		CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:        "sample-2",
		Name:      "John Wanyama",
		Location:  "Tororo",
		Rating:    5,
		Treatment: "Teeth Whitening",
		Text:      "I've been self-conscious about my teeth for years due to staining from coffee. The professional whitening treatment here exceeded my expectations. My teeth are now several shades whiter, and the results look completely natural.",
		CreatedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:        "sample-3",
		Name:      "Grace Namukose",
		Location:  "Mbale",
		Rating:    5,
		Treatment: "Orthodontics",
		Text:      "My teenage daughter needed braces, and we couldn't be happier with the results. The orthodontist explained everything clearly, and my daughter actually looked forward to her appointments.",
		CreatedAt: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:        "sample-4",
		Name:      "Peter Mukhwana",
		Location:  "Budaka",
		Rating:    5,
		Treatment: "Root Canal Treatment",
		Text:      "I was in severe pain and needed an emergency root canal. The staff accommodated me immediately, and the procedure was much more comfortable than I expected. They saved my tooth.",
		CreatedAt: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:        "sample-5",
		Name:      "Mary Atuhaire",
		Location:  "Mbale",
		Rating:    5,
		Treatment: "Pediatric Dentistry",
		Text:      "Taking my 6-year-old to the dentist used to be a struggle, but Star Dental Clinic has completely changed that. The pediatric team is so gentle and patient, and my son actually asks when his next appointment is!",
		CreatedAt: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:        "sample-6",
		Name:      "David Chelangat",
		Location:  "Kapchorwa",
		Rating:    5,
		Treatment: "Cosmetic Dentistry",
		Text:      "I had several cosmetic dental issues that affected my confidence. The team created a comprehensive treatment plan that addressed all my concerns. The porcelain veneers have given me the smile I've always wanted.",
		CreatedAt: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
	},
}

// TestimonialService handles testimonial reads and admin management
type TestimonialService struct {
	repo repositories.TestimonialRepository
}

// NewTestimonialService creates a new testimonial service
func NewTestimonialService(repo repositories.TestimonialRepository) *TestimonialService {
	return &TestimonialService{repo: repo}
}

// ListWithFallback returns stored testimonials, or the built-in samples
// when the read fails or the collection is empty.
func (s *TestimonialService) ListWithFallback(ctx context.Context) []*entities.Testimonial {
	testimonials, err := s.repo.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("testimonial read failed, serving fallback samples")
		return fallbackTestimonials
	}
	if len(testimonials) == 0 {
		return fallbackTestimonials
	}
	return testimonials
}

// List returns stored testimonials without the fallback
func (s *TestimonialService) List(ctx context.Context) ([]*entities.Testimonial, error) {
	return s.repo.List(ctx)
}

// Create creates a testimonial
func (s *TestimonialService) Create(ctx context.Context, testimonial *entities.Testimonial) error {
	if err := validateTestimonial(testimonial); err != nil {
		return err
	}

	testimonial.ID = uuid.New().String()
	testimonial.CreatedAt = time.Now().UTC()

	return s.repo.Create(ctx, testimonial)
}

// Update replaces a testimonial's fields
func (s *TestimonialService) Update(ctx context.Context, testimonial *entities.Testimonial) error {
	if err := validateTestimonial(testimonial); err != nil {
		return err
	}
	return s.repo.Update(ctx, testimonial)
}

// Delete removes a testimonial permanently
func (s *TestimonialService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateTestimonial(testimonial *entities.Testimonial) error {
	testimonial.Name = strings.TrimSpace(testimonial.Name)
	testimonial.Text = strings.TrimSpace(testimonial.Text)

	fields := FieldErrors{}
	if testimonial.Name == "" {
		fields["name"] = "Name is required"
	}
	if testimonial.Text == "" {
		fields["text"] = "Review text is required"
	}
	if testimonial.Rating < 1 || testimonial.Rating > 5 {
		fields["rating"] = "Rating must be between 1 and 5"
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}
