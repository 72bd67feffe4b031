package content

import (
	"strings"
	"unicode/utf8"
)

// Lookup resolves keys of a single language. i18n.Table implements it.
type Lookup interface {
	Lookup(key string) (string, error)
}

// Complexity marks services with a long description.
type Complexity string

const (
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Category groups services for the call to action.
type Category string

const (
	CategoryCulinary Category = "culinary"
	CategoryService  Category = "service"
)

const (
	// complexityThreshold is measured in characters of the rendered description.
	complexityThreshold = 100
	// categoryToken is searched in the source key, never in the localized title.
	categoryToken = "Service"
)

// Key suffixes of the service fields.
const (
	shortSuffix = "Short"
	descSuffix  = "Desc"
)

// serviceKeys are the source keys in display order. The index is the record ID.
var serviceKeys = [...]string{
	"restaurantService",
	"barService",
	"eventService",
	"cateringService",
}

// ServiceRecord is one entry of the services accordion.
type ServiceRecord struct {
	ID               int
	Key              string
	Title            string
	ShortDescription string
	LongDescription  string
	Complexity       Complexity
	Category         Category
}

// ServiceKeys returns the source keys of the services in display order.
func ServiceKeys() []string {
	return append([]string(nil), serviceKeys[:]...)
}

// ProjectServices builds the four service records from src. Any missing key
// aborts the projection.
func ProjectServices(src Lookup) ([]ServiceRecord, error) {
	records := make([]ServiceRecord, 0, len(serviceKeys))
	for id, key := range serviceKeys {
		title, err := src.Lookup(key)
		if err != nil {
			return nil, err
		}
		short, err := src.Lookup(key + shortSuffix)
		if err != nil {
			return nil, err
		}
		long, err := src.Lookup(key + descSuffix)
		if err != nil {
			return nil, err
		}

		records = append(records, ServiceRecord{
			ID:               id,
			Key:              key,
			Title:            title,
			ShortDescription: short,
			LongDescription:  long,
			Complexity:       ClassifyComplexity(long),
			Category:         ClassifyCategory(key),
		})
	}
	return records, nil
}

// ClassifyComplexity returns ComplexityHigh for descriptions longer than
// 100 characters.
func ClassifyComplexity(description string) Complexity {
	if utf8.RuneCountInString(description) > complexityThreshold {
		return ComplexityHigh
	}
	return ComplexityMedium
}

// ClassifyCategory classifies a service by its source key.
func ClassifyCategory(key string) Category {
	if strings.Contains(key, categoryToken) {
		return CategoryCulinary
	}
	return CategoryService
}

// Summary counts services per category and complexity.
type Summary struct {
	Total    int
	Culinary int
	Service  int
	High     int
}

// Summarize counts records.
func Summarize(records []ServiceRecord) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		switch r.Category {
		case CategoryCulinary:
			s.Culinary++
		case CategoryService:
			s.Service++
		}
		if r.Complexity == ComplexityHigh {
			s.High++
		}
	}
	return s
}
