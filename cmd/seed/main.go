package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"cafeyak/internal/config"
	"cafeyak/internal/db"
	"cafeyak/internal/model"
	"cafeyak/internal/repository"
)

// SeedData is the shape of the seed file.
type SeedData struct {
	MenuItems     []SeedMenuItem     `json:"menu_items"`
	Specials      []SeedSpecial      `json:"specials"`
	Announcements []SeedAnnouncement `json:"announcements"`
}

// SeedMenuItem represents one menu item in the seed file.
type SeedMenuItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url"`
	Spicy       string   `json:"spicy"`
	AddOns      []string `json:"add_ons"`
	Toppings    []string `json:"toppings"`
}

// SeedSpecial represents one special in the seed file.
type SeedSpecial struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
}

// SeedAnnouncement represents one announcement in the seed file.
type SeedAnnouncement struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	ImageURL string `json:"image_url"`
	Tag      string `json:"tag"`
}

func main() {
	dataPath := flag.String("data", "seed/data.json", "path to the seed data file")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.MenuItem{}, &model.Special{}, &model.Announcement{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	data, err := loadSeedData(*dataPath)
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}
	log.Printf("Loaded %d menu items, %d specials, %d announcements from %s",
		len(data.MenuItems), len(data.Specials), len(data.Announcements), *dataPath)

	ctx := context.Background()
	menuRepo := repository.NewMenuItemRepository(gormDB)
	specialRepo := repository.NewSpecialRepository(gormDB)
	announcementRepo := repository.NewAnnouncementRepository(gormDB)

	created, skipped, err := seedMenu(ctx, menuRepo, data.MenuItems)
	if err != nil {
		log.Fatalf("Failed to seed menu: %v", err)
	}
	log.Printf("Menu: %d created, %d already present", created, skipped)

	created, skipped, err = seedSpecials(ctx, specialRepo, data.Specials)
	if err != nil {
		log.Fatalf("Failed to seed specials: %v", err)
	}
	log.Printf("Specials: %d created, %d already present", created, skipped)

	created, skipped, err = seedAnnouncements(ctx, announcementRepo, data.Announcements)
	if err != nil {
		log.Fatalf("Failed to seed announcements: %v", err)
	}
	log.Printf("Announcements: %d created, %d already present", created, skipped)

	log.Println("Seed completed successfully!")
}

// loadSeedData reads and parses the seed file.
func loadSeedData(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var data SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	return &data, nil
}

// seedMenu inserts menu items that are not yet present, matched by name.
func seedMenu(ctx context.Context, repo repository.MenuItemRepository, items []SeedMenuItem) (created int, skipped int, err error) {
	for _, item := range items {
		existing, err := repo.FindByName(ctx, item.Name)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, skipped, fmt.Errorf("check menu item %q: %w", item.Name, err)
		}
		if existing != nil {
			skipped++
			continue
		}

		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return created, skipped, fmt.Errorf("menu item %q has invalid price %q: %w", item.Name, item.Price, err)
		}

		menuItem := &model.MenuItem{
			Name:        item.Name,
			Description: item.Description,
			Price:       price,
			Category:    model.Category(item.Category),
			ImageURL:    item.ImageURL,
			Spicy:       model.SpiceLevel(item.Spicy),
			AddOns:      item.AddOns,
			Toppings:    item.Toppings,
		}
		if err := repo.Create(ctx, menuItem); err != nil {
			return created, skipped, fmt.Errorf("create menu item %q: %w", item.Name, err)
		}
		created++
	}
	return created, skipped, nil
}

// seedSpecials inserts specials that are not yet present, matched by title.
func seedSpecials(ctx context.Context, repo repository.SpecialRepository, specials []SeedSpecial) (created int, skipped int, err error) {
	for _, s := range specials {
		existing, err := repo.FindByTitle(ctx, s.Title)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, skipped, fmt.Errorf("check special %q: %w", s.Title, err)
		}
		if existing != nil {
			skipped++
			continue
		}

		price, err := decimal.NewFromString(s.Price)
		if err != nil {
			return created, skipped, fmt.Errorf("special %q has invalid price %q: %w", s.Title, s.Price, err)
		}

		special := &model.Special{
			Title:       s.Title,
			Description: s.Description,
			Price:       price,
			ImageURL:    s.ImageURL,
		}
		if err := repo.Create(ctx, special); err != nil {
			return created, skipped, fmt.Errorf("create special %q: %w", s.Title, err)
		}
		created++
	}
	return created, skipped, nil
}

// seedAnnouncements inserts announcements that are not yet present, matched by title.
func seedAnnouncements(ctx context.Context, repo repository.AnnouncementRepository, announcements []SeedAnnouncement) (created int, skipped int, err error) {
	for _, a := range announcements {
		existing, err := repo.FindByTitle(ctx, a.Title)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, skipped, fmt.Errorf("check announcement %q: %w", a.Title, err)
		}
		if existing != nil {
			skipped++
			continue
		}

		announcement := &model.Announcement{
			Title:    a.Title,
			Message:  a.Message,
			ImageURL: a.ImageURL,
			Tag:      a.Tag,
		}
		if err := repo.Create(ctx, announcement); err != nil {
			return created, skipped, fmt.Errorf("create announcement %q: %w", a.Title, err)
		}
		created++
	}
	return created, skipped, nil
}
