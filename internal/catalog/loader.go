package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/pageza/pantry-match/backend/internal/model"
)

// Source selects where the catalog is read from at startup
type Source string

const (
	SourceEmbedded Source = "embedded"
	SourceFile     Source = "file"
	SourceDatabase Source = "database"
)

//go:embed data/recipes.json
var embeddedRecipes []byte

// Embedded returns the catalog bundled with the binary
func Embedded() (*Catalog, error) {
	recipes, err := DecodeJSON(embeddedRecipes)
	if err != nil {
		return nil, fmt.Errorf("failed to decode embedded catalog: %w", err)
	}
	return New(recipes)
}

// LoadFile reads a catalog from a .json, .yaml or .yml file
func LoadFile(path string) (*Catalog, error) {
	recipes, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(recipes)
}

// ReadFile decodes the recipes in a catalog file without validating them
func ReadFile(path string) ([]model.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return DecodeJSON(data)
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("unsupported catalog file extension %q", ext)
	}
}

// DecodeJSON parses a JSON array of recipes, rejecting unknown fields
func DecodeJSON(data []byte) ([]model.Recipe, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var recipes []model.Recipe
	if err := dec.Decode(&recipes); err != nil {
		return nil, fmt.Errorf("failed to decode recipes: %w", err)
	}
	return recipes, nil
}

// DecodeYAML parses a YAML sequence of recipes
func DecodeYAML(data []byte) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := yaml.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("failed to decode recipes: %w", err)
	}
	return recipes, nil
}

// LoadDatabase reads every recipe from the recipes table, ordered by id
func LoadDatabase(db *gorm.DB) (*Catalog, error) {
	var recipes []model.Recipe
	if err := db.Order("id ASC").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}
	return New(recipes)
}

// Load builds the catalog from the configured source. path is used by the
// file source and db by the database source.
func Load(source Source, path string, db *gorm.DB) (*Catalog, error) {
	switch source {
	case SourceEmbedded, "":
		return Embedded()
	case SourceFile:
		if path == "" {
			return nil, fmt.Errorf("catalog source %q requires a path", source)
		}
		return LoadFile(path)
	case SourceDatabase:
		if db == nil {
			return nil, fmt.Errorf("catalog source %q requires a database connection", source)
		}
		return LoadDatabase(db)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", source)
	}
}
