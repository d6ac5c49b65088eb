package configs

import (
	"log"

	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		Role:      entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedLookups fills the discovery filter tables.
func SeedLookups() error {
	db := DB()

	for _, name := range []string{"Istanbul", "Ankara", "Izmir", "Antalya", "Bursa"} {
		db.FirstOrCreate(&entity.City{}, entity.City{Name: name})
	}
	for _, name := range []string{"Turkish", "Pizza", "Burger", "Kebab", "Seafood", "Dessert", "Cafe"} {
		db.FirstOrCreate(&entity.Cuisine{}, entity.Cuisine{Name: name})
	}
	return nil
}
