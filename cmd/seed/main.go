package main

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/nikhilkumar-05/MediCare/internal/config"
	"github.com/nikhilkumar-05/MediCare/internal/model"
	"github.com/nikhilkumar-05/MediCare/internal/repository"
	"github.com/nikhilkumar-05/MediCare/internal/repository/postgres"
)

const (
	adminEmail     = "admin@medicare.com"
	adminPassword  = "admin123"
	doctorPassword = "pass123"
)

type specialist struct {
	name     string
	email    string
	spec     string
	exp      int
	fee      float64
	hospital string
}

var specialists = []specialist{
	{"Dr. Rajesh Sharma", "rajesh.sharma@medicare.com", "Cardiologist", 18, 1200, "City Heart Center"},
	{"Dr. Priya Gupta", "priya.gupta@medicare.com", "Cardiologist", 12, 1000, "City Heart Center"},
	{"Dr. Amit Verma", "amit.verma@medicare.com", "Cardiologist", 15, 1100, "City Heart Center"},
	{"Dr. Suresh Patel", "suresh.patel@medicare.com", "Orthopedic", 20, 900, "Ortho Care Clinic"},
	{"Dr. Manoj Singh", "manoj.singh@medicare.com", "Orthopedic", 10, 700, "Ortho Care Clinic"},
	{"Dr. Vikram Rao", "vikram.rao@medicare.com", "Orthopedic", 14, 850, "Ortho Care Clinic"},
	{"Dr. Anjali Mehta", "anjali.mehta@medicare.com", "Dermatologist", 9, 800, "Medicare Skin Clinic"},
	{"Dr. Sneha Reddy", "sneha.reddy@medicare.com", "Dermatologist", 11, 900, "Medicare Skin Clinic"},
	{"Dr. Kavita Iyer", "kavita.iyer@medicare.com", "Dermatologist", 8, 750, "Medicare Skin Clinic"},
	{"Dr. Sanjay Kumar", "sanjay.kumar@medicare.com", "Neurologist", 25, 2000, "Brain & Spine Institute"},
	{"Dr. Rakesh Menon", "rakesh.menon@medicare.com", "Neurologist", 20, 1800, "Brain & Spine Institute"},
	{"Dr. Deepa Nair", "deepa.nair@medicare.com", "Neurologist", 16, 1500, "Brain & Spine Institute"},
	{"Dr. Aditi Joshi", "aditi.joshi@medicare.com", "Pediatrician", 10, 600, "Happy Kids Hospital"},
	{"Dr. Rahul Khanna", "rahul.khanna@medicare.com", "Pediatrician", 13, 700, "Happy Kids Hospital"},
	{"Dr. Neha Agarwal", "neha.agarwal@medicare.com", "Pediatrician", 7, 500, "Happy Kids Hospital"},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx := context.Background()
	accountRepo := postgres.NewAccountRepository(db)

	seedAdmin(ctx, accountRepo)
	for _, doc := range specialists {
		seedSpecialist(ctx, accountRepo, doc)
	}

	log.Info().Msg("seeding complete")
}

func seedAdmin(ctx context.Context, repo repository.AccountRepository) {
	if _, err := repo.GetByEmail(ctx, adminEmail); err == nil {
		log.Info().Msg("admin already exists")
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		log.Fatal().Err(err).Msg("failed to look up admin account")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash admin password")
	}

	admin := &model.Account{
		Name:         "Super Admin",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := repo.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("failed to create admin account")
	}
	log.Info().Msg("admin created")
}

func seedSpecialist(ctx context.Context, repo repository.AccountRepository, doc specialist) {
	if _, err := repo.GetByEmail(ctx, doc.email); err == nil {
		log.Info().Str("name", doc.name).Msg("doctor already exists")
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		log.Fatal().Err(err).Str("name", doc.name).Msg("failed to look up doctor account")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(doctorPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Str("name", doc.name).Msg("failed to hash doctor password")
	}

	account := &model.Account{
		Name:         doc.name,
		Email:        doc.email,
		PasswordHash: string(hash),
		Role:         model.RoleDoctor,
	}
	profile := &model.DoctorProfile{
		Specialization:  doc.spec,
		ExperienceYears: doc.exp,
		FeeAmount:       doc.fee,
		HospitalName:    doc.hospital,
	}
	if err := repo.CreateWithProfile(ctx, account, profile); err != nil {
		log.Fatal().Err(err).Str("name", doc.name).Msg("failed to create doctor")
	}
	log.Info().Str("name", doc.name).Msg("doctor created")
}
