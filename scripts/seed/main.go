// Seed loader: provisions demo tenants and users. Tenant and user rows are
// created out of band (there is no signup endpoint), so this is the local
// stand-in for that provisioning.
//
// Usage: go run ./scripts/seed
package main

import (
	"log"

	"github.com/Niraj123466/saas-notes-backend/internal/auth"
	"github.com/Niraj123466/saas-notes-backend/internal/config"
	"github.com/Niraj123466/saas-notes-backend/internal/database"
	"github.com/Niraj123466/saas-notes-backend/internal/database/models"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

type tenantData struct {
	Name  string
	Slug  string
	Plan  models.TenantPlan
	Users []userData
}

type userData struct {
	Email    string
	Password string
	Role     models.UserRole
}

var seedTenants = []tenantData{
	{
		Name: "Acme Inc", Slug: "acme", Plan: models.TenantPlanFree,
		Users: []userData{
			{Email: "admin@acme.test", Password: "password", Role: models.UserRoleAdmin},
			{Email: "user@acme.test", Password: "password", Role: models.UserRoleMember},
		},
	},
	{
		Name: "Globex Corporation", Slug: "globex", Plan: models.TenantPlanFree,
		Users: []userData{
			{Email: "admin@globex.test", Password: "password", Role: models.UserRoleAdmin},
			{Email: "user@globex.test", Password: "password", Role: models.UserRoleMember},
		},
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	for _, td := range seedTenants {
		if err := seedTenant(db, td); err != nil {
			log.Fatalf("Failed to seed tenant %q: %v", td.Slug, err)
		}
	}

	log.Println("Seed data loaded")
}

func seedTenant(db *gorm.DB, td tenantData) error {
	var tenant models.Tenant
	err := db.Where("slug = ?", td.Slug).First(&tenant).Error
	if err == gorm.ErrRecordNotFound {
		tenant = models.Tenant{Name: td.Name, Slug: td.Slug, Plan: td.Plan}
		if err := db.Create(&tenant).Error; err != nil {
			return err
		}
		log.Printf("Created tenant %s (%s)", tenant.Name, tenant.Slug)
	} else if err != nil {
		return err
	}

	for _, ud := range td.Users {
		var existing models.User
		err := db.Where("email = ?", ud.Email).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		hash, err := auth.HashPassword(ud.Password)
		if err != nil {
			return err
		}
		user := models.User{
			Email:    ud.Email,
			Password: hash,
			Role:     ud.Role,
			TenantID: tenant.ID,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("Created user %s (%s)", user.Email, user.Role)
	}

	return nil
}
