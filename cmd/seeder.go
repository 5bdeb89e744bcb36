package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the superadmin and catalog data",
	Long:  `Seed the database with the superadmin account, a starter licensing-item catalog and the inspection defect catalog.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gormDB, err := initGorm(db)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"reports", "businesses", "inspection_defects", "licensing_items"} {
				if err := gormDB.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing catalog and registry data")
		}

		seedSuperAdmin(gormDB, cfg.Security.BCryptCost)
		seedLicensingItems(gormDB)
		seedDefects(gormDB)
	},
}

func seedSuperAdmin(db *gorm.DB, bcryptCost int) {
	adminEmail := "xeno@admin.com"

	var exists int
	row := db.Raw("SELECT 1 FROM users WHERE email = ?", adminEmail).Row()
	if err := row.Scan(&exists); err == nil {
		fmt.Println(`Superadmin "Xeno" already exists.`)
		return
	}

	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("4355"), bcryptCost)
	if err != nil {
		log.Fatalf("failed to hash superadmin password: %v", err)
	}

	err = db.Exec(`INSERT INTO users
		(full_name, email, password_hash, role, phone_number, is_active, is_approved, created_at, updated_at)
		VALUES (?, ?, ?, 'admin', '000-0000000', true, true, now(), now())`,
		"Xeno", adminEmail, string(hash)).Error
	if err != nil {
		log.Fatalf("failed to insert superadmin: %v", err)
	}

	fmt.Println(`Superadmin "Xeno" created successfully.`)
	fmt.Println("Login with Email: xeno@admin.com | Password: 4355")
}

func seedLicensingItems(db *gorm.DB) {
	items := []struct {
		Number string
		Name   string
		Track  string
		Police bool
		Health bool
		Years  int
	}{
		{"3.1", "Food shop or kiosk", "expedited_a", false, true, 5},
		{"4.2a", "Restaurant or coffee shop", "regular", false, true, 3},
		{"4.8", "Alcohol sales for on-site consumption", "regular", true, true, 1},
		{"7.7a", "Event hall or venue", "regular", true, true, 1},
		{"8.9a", "Auto repair garage", "expedited_b", false, false, 5},
	}

	for _, it := range items {
		var exists int
		if err := db.Raw("SELECT 1 FROM licensing_items WHERE item_number = ?", it.Number).Row().Scan(&exists); err == nil {
			continue
		}
		err := db.Exec(`INSERT INTO licensing_items
			(item_number, name, licensing_track, needs_police_approval, needs_fire_dept_approval,
			 needs_health_ministry_approval, needs_environmental_protection_approval,
			 needs_agriculture_ministry_approval, validity_years)
			VALUES (?, ?, ?, ?, true, ?, false, false, ?)`,
			it.Number, it.Name, it.Track, it.Police, it.Health, it.Years).Error
		if err != nil {
			log.Fatalf("failed to insert licensing item %s: %v", it.Number, err)
		}
	}
	fmt.Println("Seeded licensing-item catalog")
}

func seedDefects(db *gorm.DB) {
	defects := []struct {
		Category string
		Subject  string
		Desc     string
	}{
		{"Fire safety", "Blocked emergency exit", "An emergency exit is blocked or locked during operating hours."},
		{"Fire safety", "Missing fire extinguisher", "No serviceable fire extinguisher at the required station."},
		{"Sanitation", "Improper food storage temperature", "Refrigerated goods stored above the allowed temperature."},
		{"Sanitation", "Pest evidence", "Evidence of rodents or insects in food preparation areas."},
		{"Structural", "Unauthorized construction", "Structural additions without a permit affecting the licensed area."},
		{"Accessibility", "Missing accessible entrance", "No wheelchair-accessible entrance to the premises."},
	}

	for _, d := range defects {
		var exists int
		if err := db.Raw("SELECT 1 FROM inspection_defects WHERE category = ? AND subject = ?", d.Category, d.Subject).Row().Scan(&exists); err == nil {
			continue
		}
		if err := db.Exec("INSERT INTO inspection_defects (category, subject, description) VALUES (?, ?, ?)", d.Category, d.Subject, d.Desc).Error; err != nil {
			log.Fatalf("failed to insert defect %q: %v", d.Subject, err)
		}
	}
	fmt.Println("Seeded inspection defect catalog")
}
