// Demo data seeder. Fills an empty database with representative content so
// the public site and admin panel have something to show during development.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/config"
	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("failed to init database:", err)
	}

	fmt.Println("seeding demo data...")

	if err := db.EnsureUser(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal("failed to ensure admin user:", err)
	}

	seedHeroSlides()
	seedDignitaries()
	seedTribes()
	seedStaff()
	seedGallery()
	seedUpdates()
	seedPages()
	seedSettings()

	fmt.Println("done")
}

// Each seeder skips its table when rows already exist, so rerunning the
// script never duplicates content.
func tableEmpty(model any) bool {
	var count int64
	db.DB.Model(model).Count(&count)
	return count == 0
}

func seedHeroSlides() {
	if !tableEmpty(&db.HeroSlide{}) {
		fmt.Println("hero slides exist, skipping")
		return
	}
	slides := []db.HeroSlide{
		{Title: "Preserving Heritage", Subtitle: "Research and documentation of tribal culture", ImageURL: "/static/uploads/demo-hero-1.jpg", SortOrder: 1},
		{Title: "Pang Lhabsol", Subtitle: "Guardian deity festival of the hills", ImageURL: "/static/uploads/demo-hero-2.jpg", SortOrder: 2},
		{Title: "The Institute Library", Subtitle: "Manuscripts, journals and field recordings", ImageURL: "/static/uploads/demo-hero-3.jpg", LinkURL: "/pages/library", SortOrder: 3},
	}
	for i := range slides {
		slides[i].Active = true
	}
	db.DB.Create(&slides)
	fmt.Printf("hero slides: %d\n", len(slides))
}

func seedDignitaries() {
	if !tableEmpty(&db.Dignitary{}) {
		fmt.Println("dignitaries exist, skipping")
		return
	}
	items := []db.Dignitary{
		{Name: "Shri T. Lepcha", Designation: "Hon'ble Minister", PhotoURL: "/static/uploads/demo-minister.jpg", Message: "The institute carries our collective memory forward.", SortOrder: 1, Active: true},
		{Name: "Smt. D. Bhutia", Designation: "Secretary", PhotoURL: "/static/uploads/demo-secretary.jpg", Message: "Documentation today is identity tomorrow.", SortOrder: 2, Active: true},
	}
	db.DB.Create(&items)
	fmt.Printf("dignitaries: %d\n", len(items))
}

func seedTribes() {
	if !tableEmpty(&db.Tribe{}) {
		fmt.Println("tribes exist, skipping")
		return
	}
	items := []db.Tribe{
		{Name: "Lepcha", Slug: "lepcha", Summary: "Among the earliest communities of the region, known as the Rongkup.", BannerURL: "/static/uploads/demo-lepcha.jpg", Content: `[{"type":"text","heading":"Origins","body":"<p>The Lepcha trace their origin to the slopes of Khangchendzonga.</p>"}]`, SortOrder: 1, Active: true},
		{Name: "Bhutia", Slug: "bhutia", Summary: "Community of Tibetan origin that settled in the region from the 15th century.", BannerURL: "/static/uploads/demo-bhutia.jpg", Content: `[{"type":"text","heading":"Culture","body":"<p>Monastic festivals anchor the Bhutia calendar.</p>"}]`, SortOrder: 2, Active: true},
		{Name: "Limboo", Slug: "limboo", Summary: "Community with a rich oral tradition recorded in the Mundhum.", BannerURL: "/static/uploads/demo-limboo.jpg", Content: `[{"type":"text","heading":"Mundhum","body":"<p>The Mundhum is recited by the Phedangma at rites of passage.</p>"}]`, SortOrder: 3, Active: true},
	}
	db.DB.Create(&items)
	fmt.Printf("tribes: %d\n", len(items))
}

func seedStaff() {
	if !tableEmpty(&db.StaffMember{}) {
		fmt.Println("staff exist, skipping")
		return
	}
	items := []db.StaffMember{
		{Name: "Dr. K. Subba", Designation: "Director", Department: "Administration", Email: "director@example.gov.in", Phone: "03592-200000", SortOrder: 1, Active: true},
		{Name: "P. Tamang", Designation: "Research Officer", Department: "Research", Email: "research@example.gov.in", SortOrder: 2, Active: true},
		{Name: "S. Rai", Designation: "Librarian", Department: "Library", SortOrder: 3, Active: true},
	}
	db.DB.Create(&items)
	fmt.Printf("staff: %d\n", len(items))
}

func seedGallery() {
	if !tableEmpty(&db.GalleryCategory{}) {
		fmt.Println("gallery exists, skipping")
		return
	}
	categories := []db.GalleryCategory{
		{Name: "Festivals", Slug: "festivals", SortOrder: 1, Active: true},
		{Name: "Archives", Slug: "archives", SortOrder: 2, Active: true},
	}
	db.DB.Create(&categories)

	images := []db.GalleryImage{
		{CategoryID: categories[0].ID, Title: "Pang Lhabsol", Caption: "Mask dance at the monastery courtyard", ImageURL: "/static/uploads/demo-gallery-1.jpg", Width: 1600, Height: 1067, SortOrder: 1, Active: true},
		{CategoryID: categories[0].ID, Title: "Losar", Caption: "New year offerings", ImageURL: "/static/uploads/demo-gallery-2.jpg", Width: 1200, Height: 1600, SortOrder: 2, Active: true},
		{CategoryID: categories[1].ID, Title: "Manuscript", Caption: "Palm leaf manuscript from the institute archive", ImageURL: "/static/uploads/demo-gallery-3.jpg", Width: 1400, Height: 1400, SortOrder: 1, Active: true},
	}
	db.DB.Create(&images)
	fmt.Printf("gallery: %d categories, %d images\n", len(categories), len(images))
}

func seedUpdates() {
	if !tableEmpty(&db.Update{}) {
		fmt.Println("updates exist, skipping")
		return
	}
	now := time.Now()
	items := []db.Update{
		{Title: "Annual seminar announced", Slug: "annual-seminar-announced", Excerpt: "The annual research seminar will be held in November.", Content: "<p>The annual research seminar will be held in November. Paper submissions open next month.</p>", PublishedAt: now.Add(-48 * time.Hour), Active: true},
		{Title: "Library reopens", Slug: "library-reopens", Excerpt: "The research library reopens after renovation.", Content: "<p>The research library reopens after renovation. Reading room hours are 10am to 4pm.</p>", PublishedAt: now, Active: true},
	}
	db.DB.Create(&items)
	fmt.Printf("updates: %d\n", len(items))
}

func seedPages() {
	if !tableEmpty(&db.Page{}) {
		fmt.Println("pages exist, skipping")
		return
	}
	items := []db.Page{
		{Slug: "about", Title: "About the Institute", Content: "<p>The institute documents and promotes the culture, language and history of the tribal communities of the state.</p>"},
		{Slug: "library", Title: "Library", Content: "<p>The library holds manuscripts, journals and field recordings collected since the institute was founded.</p>"},
	}
	db.DB.Create(&items)
	fmt.Printf("pages: %d\n", len(items))
}

func seedSettings() {
	if !tableEmpty(&db.Setting{}) {
		fmt.Println("settings exist, skipping")
		return
	}
	items := []db.Setting{
		{Key: db.SettingKeySiteName, Value: "Tribal Research Institute"},
		{Key: db.SettingKeySiteTagline, Value: "Documenting heritage, language and tradition"},
		{Key: db.SettingKeyContactEmail, Value: "info@example.gov.in"},
		{Key: db.SettingKeyContactPhone, Value: "03592-200000"},
		{Key: db.SettingKeyContactAddress, Value: "Development Area, Gangtok"},
		{Key: db.SettingKeyFooterText, Value: "© Tribal Research Institute"},
		{Key: db.SettingKeyMarqueeItems, Value: `["Seminar registrations open","Library reading room reopened"]`},
		{Key: db.SettingKeyVisitorCount, Value: "0"},
	}
	db.DB.Create(&items)
	fmt.Printf("settings: %d\n", len(items))
}
