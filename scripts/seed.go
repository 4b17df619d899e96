package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/stardental/clinic-backend/internal/adapters/database"
	"github.com/stardental/clinic-backend/internal/domain/entities"
	"github.com/stardental/clinic-backend/internal/infrastructure/clients/postgres"
	"github.com/stardental/clinic-backend/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

const schema = `
CREATE TABLE IF NOT EXISTS appointments (
	id TEXT PRIMARY KEY,
	full_name TEXT NOT NULL,
	phone TEXT NOT NULL,
	email TEXT,
	age TEXT,
	service TEXT NOT NULL,
	service_name TEXT NOT NULL,
	date TEXT NOT NULL,
	time TEXT NOT NULL,
	notes TEXT,
	emergency_contact_name TEXT,
	emergency_contact_phone TEXT,
	status TEXT NOT NULL DEFAULT 'pending',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_appointments_status ON appointments (status);
CREATE INDEX IF NOT EXISTS idx_appointments_created_at ON appointments (created_at DESC);

CREATE TABLE IF NOT EXISTS blog_posts (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	excerpt TEXT NOT NULL,
	content TEXT NOT NULL,
	category TEXT NOT NULL,
	author TEXT NOT NULL,
	read_time TEXT NOT NULL,
	image_url TEXT,
	published BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_blog_posts_created_at ON blog_posts (created_at DESC);

CREATE TABLE IF NOT EXISTS testimonials (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	location TEXT NOT NULL,
	rating INTEGER NOT NULL,
	treatment TEXT NOT NULL,
	text TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS admin_users (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	if _, err := pgClient.DB().ExecContext(ctx, schema); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				appointments,
				blog_posts,
				testimonials,
				admin_users
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	userRepo := database.NewUserAdapter(pgClient)
	blogRepo := database.NewBlogPostAdapter(pgClient)
	testimonialRepo := database.NewTestimonialAdapter(pgClient)

	// 1. Seed the admin account
	adminEmail := getenvDefault("ADMIN_EMAIL", "admin@stardental.co.ug")
	adminPassword := getenvDefault("ADMIN_PASSWORD", "changeme")

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := &entities.AdminUser{
		ID:           uuid.New().String(),
		Email:        adminEmail,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Printf("Failed to create admin user %s: %v", admin.Email, err)
	} else {
		log.Printf("Created admin user %s", admin.Email)
	}

	// 2. Seed blog posts
	posts := []entities.BlogPost{
		{
			ID:       uuid.New().String(),
			Title:    "Five Daily Habits for Healthier Teeth",
			Excerpt:  "Small routines that keep cavities away between checkups.",
			Content:  "Brushing twice a day is only the start. Flossing before bed, rinsing after sugary drinks, and replacing your brush every three months all add up to stronger enamel and healthier gums.",
			Category: "Oral Hygiene",
			Author:   "Dr. Sarah Nambi",
			ReadTime: "4 min read",
		},
		{
			ID:       uuid.New().String(),
			Title:    "What to Expect During a Root Canal",
			Excerpt:  "The procedure is far gentler than its reputation suggests.",
			Content:  "Modern anaesthesia and rotary instruments mean most root canals are finished in a single visit with little more discomfort than a filling. Here is how we walk you through each step.",
			Category: "Treatments",
			Author:   "Dr. James Okello",
			ReadTime: "6 min read",
		},
		{
			ID:       uuid.New().String(),
			Title:    "Getting Your Child Comfortable at the Dentist",
			Excerpt:  "Turning the first visit into something to look forward to.",
			Content:  "Children who visit the dentist before age three are far less likely to develop dental anxiety. Bring a favourite toy, keep the language positive, and let our team do the rest.",
			Category: "Kids Tips",
			Author:   "Dr. Sarah Nambi",
			ReadTime: "3 min read",
		},
	}

	now := time.Now().UTC()
	for _, p := range posts {
		p.Published = true
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := blogRepo.Create(ctx, &p); err != nil {
			log.Printf("Failed to create blog post %q: %v", p.Title, err)
		}
	}

	// 3. Seed testimonials
	testimonials := []entities.Testimonial{
		{ID: uuid.New().String(), Name: "Sarah Mukasa", Location: "Mbale", Rating: 5, Treatment: "Dental Implants", Text: "The implant procedure was painless and the team explained everything. My smile looks completely natural again.", CreatedAt: now},
		{ID: uuid.New().String(), Name: "John Wanyama", Location: "Tororo", Rating: 5, Treatment: "Teeth Whitening", Text: "Professional service from start to finish. The whitening results exceeded my expectations.", CreatedAt: now},
		{ID: uuid.New().String(), Name: "Grace Namukose", Location: "Mbale", Rating: 5, Treatment: "Braces", Text: "After two years of treatment my teeth are perfectly aligned. Worth every visit.", CreatedAt: now},
	}

	for _, t := range testimonials {
		if err := testimonialRepo.Create(ctx, &t); err != nil {
			log.Printf("Failed to create testimonial from %s: %v", t.Name, err)
		}
	}

	log.Println("Seeding complete")
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
