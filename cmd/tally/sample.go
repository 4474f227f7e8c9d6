package main

import (
	"github.com/on-the-ground/tally/forecast"
	"github.com/on-the-ground/tally/record"
)

func sampleCatalog() []record.Record {
	return []record.Record{
		record.New(1001, "Laptop", "Electronics", record.MustAmount("999.99"), "High-performance laptop"),
		record.New(1002, "Smartphone", "Electronics", record.MustAmount("699.99"), "Latest smartphone model"),
		record.New(1003, "Headphones", "Electronics", record.MustAmount("199.99"), "Wireless noise-canceling headphones"),
		record.New(2001, "T-Shirt", "Clothing", record.MustAmount("29.99"), "Cotton t-shirt"),
		record.New(2002, "Jeans", "Clothing", record.MustAmount("79.99"), "Blue denim jeans"),
		record.New(2003, "Sneakers", "Clothing", record.MustAmount("89.99"), "Comfortable running shoes"),
		record.New(3001, "Coffee Maker", "Home", record.MustAmount("149.99"), "Automatic coffee machine"),
		record.New(3002, "Blender", "Home", record.MustAmount("79.99"), "High-speed blender"),
		record.New(3003, "Microwave", "Home", record.MustAmount("199.99"), "Countertop microwave oven"),
		record.New(4001, "Novel", "Books", record.MustAmount("19.99"), "Bestselling fiction novel"),
		record.New(4002, "Cookbook", "Books", record.MustAmount("24.99"), "Collection of recipes"),
		record.New(4003, "Magazine", "Books", record.MustAmount("9.99"), "Monthly lifestyle magazine"),
	}
}

func sampleHistory() ([]forecast.Observation, error) {
	raw := []struct {
		date  string
		value float64
		rate  float64
	}{
		{"2023-01-01", 10000.0, 5.0},
		{"2023-02-01", 10500.0, 4.5},
		{"2023-03-01", 10972.5, 6.2},
		{"2023-04-01", 11652.8, 3.8},
		{"2023-05-01", 12095.6, 5.5},
		{"2023-06-01", 12760.9, 4.2},
	}
	history := make([]forecast.Observation, len(raw))
	for i, r := range raw {
		o, err := forecast.ParseObservation(r.date, r.value)
		if err != nil {
			return nil, err
		}
		o.Rate = r.rate
		history[i] = o
	}
	return history, nil
}
