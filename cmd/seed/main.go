package main

import (
	"context"
	"log"
	"os"
	"time"

	"properly-backend/internal/auth"
	"properly-backend/internal/config"
	"properly-backend/internal/db"
	"properly-backend/internal/handlers"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedService struct {
	Name             string
	Slug             string
	ShortDescription string
	Icon             string
	Pricing          string
	Duration         string
	Featured         bool
	SortOrder        int
}

type seedLocation struct {
	City          string
	State         string
	Slug          string
	County        string
	Description   string
	Neighborhoods []string
	CommonIssues  []string
	SortOrder     int
}

type seedFAQ struct {
	Question  string
	Answer    string
	Category  string
	SortOrder int
}

type seedTestimonial struct {
	ReviewerName string
	Rating       int
	ReviewText   string
	Service      string
	Location     string
	Date         string
	Source       string
	Badge        string
	Featured     bool
	Verified     bool
	SortOrder    int
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	now := time.Now().In(cfg.Timezone)

	services := []seedService{
		{Name: "Buyer's Home Inspection", Slug: "buyers-home-inspection", ShortDescription: "Comprehensive inspection for homebuyers to identify issues before purchase.", Icon: "Home", Pricing: "Starting at $350", Duration: "2-4 hours", Featured: true, SortOrder: 1},
		{Name: "4-Point Inspection", Slug: "4-point-inspection", ShortDescription: "Required by Florida insurance companies for homes over 25 years old.", Icon: "ClipboardCheck", Pricing: "Starting at $150", Duration: "1-2 hours", Featured: true, SortOrder: 2},
		{Name: "Wind Mitigation Inspection", Slug: "wind-mitigation-inspection", ShortDescription: "Save 10-45% on Florida home insurance with wind mitigation credits.", Icon: "Wind", Pricing: "Starting at $100", Duration: "1 hour", Featured: true, SortOrder: 3},
		{Name: "New Construction Inspection", Slug: "new-construction-inspection", ShortDescription: "Even brand new homes need inspections to catch builder oversights.", Icon: "HardHat", Pricing: "Starting at $350", Duration: "2-3 hours", Featured: true, SortOrder: 4},
		{Name: "Pre-Listing Inspection", Slug: "pre-listing-inspection", ShortDescription: "Sell your home faster by addressing issues before listing.", Icon: "FileText", Pricing: "Starting at $350", Duration: "2-4 hours", SortOrder: 5},
		{Name: "Pool & Spa Inspection", Slug: "pool-spa-inspection", ShortDescription: "Specialized inspection for in-ground pools and spa systems.", Icon: "Waves", Pricing: "Starting at $200", Duration: "1-2 hours", SortOrder: 6},
		{Name: "11th Month Warranty Inspection", Slug: "11th-month-warranty-inspection", ShortDescription: "Catch builder defects before your warranty expires.", Icon: "Shield", Pricing: "Starting at $350", Duration: "2-3 hours", SortOrder: 7},
		{Name: "Thermal Imaging Inspection", Slug: "thermal-imaging-inspection", ShortDescription: "See hidden issues with advanced infrared technology.", Icon: "Thermometer", Pricing: "Add-on service $100", Duration: "Add 30 minutes", SortOrder: 8},
	}

	for _, svc := range services {
		filter := bson.M{"slug": svc.Slug}
		update := bson.M{
			"$setOnInsert": bson.M{
				"_id":               primitive.NewObjectID().Hex(),
				"name":              svc.Name,
				"slug":              svc.Slug,
				"short_description": svc.ShortDescription,
				"icon":              svc.Icon,
				"pricing":           svc.Pricing,
				"duration":          svc.Duration,
				"featured":          svc.Featured,
				"published":         true,
				"sort_order":        svc.SortOrder,
				"created_at":        now,
				"updated_at":        now,
			},
		}
		if _, err := cols.Services.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			log.Fatalf("seed error for service %s: %v", svc.Name, err)
		}
	}

	seedLocations := []seedLocation{
		{City: "Odessa", State: "FL", Slug: "odessa-fl", County: "Pasco", Description: "Professional home inspection services in Odessa, Florida with 360 photos, same-day reports, and warranty protection.", Neighborhoods: []string{"Keystone", "Starkey Ranch", "Seven Oaks"}, CommonIssues: []string{"New construction settling", "HVAC efficiency in Florida heat", "Moisture intrusion"}, SortOrder: 1},
		{City: "Westchase", State: "FL", Slug: "westchase-tampa", County: "Hillsborough", Description: "Trusted home inspection services in Westchase, Tampa. Comprehensive inspections for this master-planned community.", Neighborhoods: []string{"Westchase proper", "Countryway", "Legends"}, CommonIssues: []string{"Aging HVAC systems", "Roof wear from Florida sun", "Pool equipment maintenance"}, SortOrder: 2},
		{City: "Palm Harbor", State: "FL", Slug: "palm-harbor", County: "Pinellas", Description: "Experienced home inspector serving Palm Harbor, specializing in older and newer construction with attention to coastal concerns.", Neighborhoods: []string{"Lansbrook Village", "Sutherland", "Innisbrook"}, CommonIssues: []string{"Older electrical systems", "Foundation concerns", "Coastal humidity impacts"}, SortOrder: 3},
		{City: "Clearwater", State: "FL", Slug: "clearwater", County: "Pinellas", Description: "Clearwater home inspection services with expertise in coastal properties. 4-point and wind mitigation inspections available.", Neighborhoods: []string{"Clearwater Beach", "Safety Harbor", "Countryside"}, CommonIssues: []string{"Salt air corrosion", "Wind damage potential", "Insurance requirements"}, SortOrder: 4},
		{City: "St. Petersburg", State: "FL", Slug: "st-petersburg", County: "Pinellas", Description: "St. Petersburg home inspection services for urban properties, historic homes, and downtown condos.", Neighborhoods: []string{"Downtown St. Pete", "Historic Kenwood", "Old Northeast"}, CommonIssues: []string{"Historic home renovations", "Condo inspections", "Coastal impacts"}, SortOrder: 5},
	}

	for _, loc := range seedLocations {
		filter := bson.M{"slug": loc.Slug}
		update := bson.M{
			"$setOnInsert": bson.M{
				"_id":           primitive.NewObjectID().Hex(),
				"city":          loc.City,
				"state":         loc.State,
				"slug":          loc.Slug,
				"county":        loc.County,
				"description":   loc.Description,
				"neighborhoods": loc.Neighborhoods,
				"common_issues": loc.CommonIssues,
				"published":     true,
				"sort_order":    loc.SortOrder,
				"created_at":    now,
				"updated_at":    now,
			},
		}
		if _, err := cols.Locations.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			log.Fatalf("seed error for location %s: %v", loc.City, err)
		}
	}

	faqList := []seedFAQ{
		{Question: "What is a home inspection?", Answer: "A home inspection is a comprehensive evaluation of a property's condition, examining major systems and components including the roof, foundation, electrical, plumbing, HVAC, and more.", Category: "general", SortOrder: 1},
		{Question: "How much does a home inspection cost in Tampa Bay?", Answer: "Home inspection costs in Tampa Bay typically range from $300-$500 for a standard single-family home, depending on size, age, and additional services.", Category: "general", SortOrder: 2},
		{Question: "How long does a home inspection take?", Answer: "A typical home inspection takes 2-4 hours depending on the property size, age, and condition. Larger homes or properties with complex systems may require additional time.", Category: "general", SortOrder: 3},
		{Question: "When will I receive my inspection report?", Answer: "We deliver reports within 24 hours, often the same day. Reports are mobile-friendly, include photos, and feature 360 virtual photos.", Category: "general", SortOrder: 4},
		{Question: "What is a 4-point inspection?", Answer: "A 4-point inspection evaluates four major systems: roof, electrical, plumbing, and HVAC. Required by most Florida insurance companies for homes over 25 years old.", Category: "specialized", SortOrder: 1},
		{Question: "What is a wind mitigation inspection?", Answer: "A wind mitigation inspection documents your home's wind-resistant features to potentially reduce insurance premiums by 10-45%.", Category: "specialized", SortOrder: 2},
		{Question: "Do you offer weekend inspections?", Answer: "Yes, we offer flexible scheduling including weekends and evenings to accommodate your schedule.", Category: "scheduling", SortOrder: 1},
	}

	for _, f := range faqList {
		filter := bson.M{"question": f.Question}
		update := bson.M{
			"$setOnInsert": bson.M{
				"_id":        primitive.NewObjectID().Hex(),
				"question":   f.Question,
				"answer":     f.Answer,
				"category":   f.Category,
				"published":  true,
				"sort_order": f.SortOrder,
				"created_at": now,
				"updated_at": now,
			},
		}
		if _, err := cols.FAQs.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			log.Fatalf("seed error for faq %q: %v", f.Question, err)
		}
	}

	reviews := []seedTestimonial{
		{ReviewerName: "Joe Gallucci", Rating: 5, ReviewText: "Great experience! On time and very knowledgeable and professional. I would highly recommend to everyone.", Service: "Home Inspection", Location: "Tampa Bay", Date: "2024-11-14", Source: "google", Featured: true, Verified: true, SortOrder: 1},
		{ReviewerName: "Alex Caballero", Rating: 5, ReviewText: "I always know my clients are in good hands. High quality experts that always give such good advice and direction about the condition of the home.", Service: "Buyer's Inspection", Location: "Tampa Bay", Date: "2024-10-14", Source: "google", Badge: "Real Estate Professional", Featured: true, Verified: true, SortOrder: 2},
		{ReviewerName: "Aldo Servello", Rating: 5, ReviewText: "Very responsive and worked around the builder's completion schedule to perform a thorough job. Excellent service throughout the process.", Service: "New Construction Inspection", Location: "Tampa Bay", Date: "2024-09-14", Source: "google", Featured: true, Verified: true, SortOrder: 3},
		{ReviewerName: "Marsha Polin", Rating: 5, ReviewText: "A job well done! Results were gotten within a few hours. Prompt service.", Service: "Home Inspection", Location: "Tampa Bay", Date: "2024-09-14", Source: "google", Verified: true, SortOrder: 4},
	}

	for _, rv := range reviews {
		filter := bson.M{"reviewer_name": rv.ReviewerName, "review_text": rv.ReviewText}
		update := bson.M{
			"$setOnInsert": bson.M{
				"_id":           primitive.NewObjectID().Hex(),
				"reviewer_name": rv.ReviewerName,
				"rating":        rv.Rating,
				"review_text":   rv.ReviewText,
				"service":       rv.Service,
				"location":      rv.Location,
				"date":          rv.Date,
				"source":        rv.Source,
				"badge":         rv.Badge,
				"featured":      rv.Featured,
				"verified":      rv.Verified,
				"published":     true,
				"sort_order":    rv.SortOrder,
				"created_at":    now,
				"updated_at":    now,
			},
		}
		if _, err := cols.Testimonials.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			log.Fatalf("seed error for testimonial %s: %v", rv.ReviewerName, err)
		}
	}

	if err := seedAdminUser(ctx, cols, cfg.Timezone); err != nil {
		log.Fatalf("seed admin error: %v", err)
	}

	log.Println("seed completed")
}

func seedAdminUser(ctx context.Context, cols *db.Collections, loc *time.Location) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("seed admin: ADMIN_EMAIL or ADMIN_PASSWORD missing, skipping")
		return nil
	}
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Admin User"
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now().In(loc)
	filter := bson.M{"email": email}
	update := bson.M{
		"$set": bson.M{
			"name":          name,
			"password_hash": hash,
			"role":          handlers.UserRoleAdmin,
			"updated_at":    now,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID().Hex(),
			"email":      email,
			"created_at": now,
		},
	}

	_, err = cols.Users.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
