package content

import (
	"encoding/json"
	"os"
)

// Catalog fixes the canonical presentation order of modules and of the
// lessons inside each known module, plus the display titles used by the
// navigation. Modules or lessons absent from the catalog keep their
// filesystem discovery order and are shown under their raw names.
type Catalog struct {
	Modules      []string            `json:"modules"`
	Lessons      map[string][]string `json:"lessons"`
	ModuleTitles map[string]string   `json:"moduleTitles"`
	LessonTitles map[string]string   `json:"lessonTitles"`
}

// DefaultCatalog returns the built-in course ordering.
func DefaultCatalog() Catalog {
	return Catalog{
		Modules: []string{
			"fundamentals",
			"building-blocks",
			"advanced-features",
			"deployment",
		},
		Lessons: map[string][]string{
			"fundamentals": {
				"introduction",
				"sockets",
				"http-basics",
				"threading",
			},
			"building-blocks": {
				"server-class",
				"route-handling",
				"request-parsing",
				"response-generation",
			},
			"advanced-features": {
				"database-integration",
				"authentication",
				"error-handling",
				"performance",
			},
			"deployment": {
				"production-setup",
				"monitoring",
				"scaling",
				"security",
			},
		},
		ModuleTitles: map[string]string{
			"fundamentals":      "Fundamentals",
			"building-blocks":   "Building Blocks",
			"advanced-features": "Advanced Features",
			"deployment":        "Deployment & Production",
		},
		LessonTitles: map[string]string{
			"introduction":         "Introduction",
			"sockets":              "Socket Programming",
			"http-basics":          "HTTP Protocol Basics",
			"threading":            "Multi-threading & Concurrency",
			"server-class":         "Server Class Architecture",
			"route-handling":       "Route Handling & Middleware",
			"request-parsing":      "Request Parsing & Validation",
			"response-generation":  "Response Generation & Headers",
			"database-integration": "Database Integration",
			"authentication":       "Authentication & Security",
			"error-handling":       "Error Handling & Logging",
			"performance":          "Performance Optimization",
			"production-setup":     "Production Setup",
			"monitoring":           "Monitoring & Observability",
			"scaling":              "Scaling & Load Balancing",
			"security":             "Security Best Practices",
		},
	}
}

// LoadCatalog reads a catalog from a JSON file. The file replaces the
// built-in ordering wholesale; it is read once at startup.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, err
	}
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

// ModuleTitle returns the display title for a module, falling back to the
// raw name.
func (c Catalog) ModuleTitle(name string) string {
	if t, ok := c.ModuleTitles[name]; ok {
		return t
	}
	return name
}

// LessonTitle returns the display title for a lesson, falling back to the
// raw name.
func (c Catalog) LessonTitle(name string) string {
	if t, ok := c.LessonTitles[name]; ok {
		return t
	}
	return name
}
