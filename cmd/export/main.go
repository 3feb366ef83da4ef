package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/borourke9/leadscraper/internal/clients"
	"github.com/borourke9/leadscraper/internal/config"
	"github.com/borourke9/leadscraper/internal/geo"
	"github.com/borourke9/leadscraper/internal/models"
	"github.com/borourke9/leadscraper/internal/search"
)

func main() {
	city := flag.String("city", "Detroit", "City to search around")
	state := flag.String("state", "MI", "Two-letter state code")
	radius := flag.Float64("radius", 10, "Search radius in miles")
	categories := flag.String("categories", "electrician", "Comma-separated service categories")
	out := flag.String("out", "leads.csv", "Path of the CSV file to write")
	flag.Parse()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.GoogleMapsAPIKey == "" {
		fmt.Println("Error: GOOGLE_MAPS_API_KEY is not set")
		os.Exit(1)
	}

	geocodingClient := clients.NewGeocodingClient(cfg.GoogleMapsAPIKey, cfg.GeocodingBaseURL)
	placesClient := clients.NewPlacesClient(cfg.GoogleMapsAPIKey, cfg.PlacesBaseURL)
	svc := search.NewService(geo.NewResolver(geocodingClient), placesClient)

	req := models.SearchRequest{
		City:        *city,
		State:       *state,
		RadiusMiles: *radius,
		Categories:  splitCategories(*categories),
	}

	fmt.Printf("Searching %s, %s (%.1f mi) for: %s\n", req.City, req.State, req.RadiusMiles, *categories)

	result, err := svc.Search(context.Background(), req)
	if err != nil {
		fmt.Printf("Error running search: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Examined %d places, found %d without websites\n",
		result.Summary.TotalSearched, result.Summary.WithoutWebsites)

	if err := writeCSV(*out, result.Businesses); err != nil {
		fmt.Printf("Error writing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d leads to %s\n", len(result.Businesses), *out)
}

func splitCategories(s string) []string {
	var categories []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}
	return categories
}

func writeCSV(path string, businesses []models.Business) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Name", "Phone", "Address", "Rating", "Category", "Latitude", "Longitude"}); err != nil {
		return err
	}
	for _, b := range businesses {
		rating := ""
		if b.Rating != nil {
			rating = strconv.FormatFloat(*b.Rating, 'f', 1, 64)
		}
		row := []string{
			b.Name,
			b.Phone,
			b.Address,
			rating,
			b.Category,
			strconv.FormatFloat(b.Latitude, 'f', 6, 64),
			strconv.FormatFloat(b.Longitude, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
