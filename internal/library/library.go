// Package library loads an optional YAML seed file of collections and
// prompts applied to an empty store at startup.
package library

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/thebtf/promptlab/internal/store"
	"github.com/thebtf/promptlab/pkg/models"
)

// File is the top-level YAML structure.
type File struct {
	Collections []CollectionSeed `yaml:"collections"`
	Prompts     []PromptSeed     `yaml:"prompts"`
}

// CollectionSeed describes one collection to create.
type CollectionSeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// PromptSeed describes one prompt to create. Collection refers to a seeded
// collection by name, not id.
type PromptSeed struct {
	Title       string   `yaml:"title"`
	Content     string   `yaml:"content"`
	Description string   `yaml:"description"`
	Collection  string   `yaml:"collection"`
	Tags        []string `yaml:"tags"`
}

// Load reads the YAML file at path. A missing file is not an error; it
// returns an empty File.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("read library file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse library file: %w", err)
	}
	return &f, nil
}

// Seed creates the file's collections and prompts in st. Prompt collection
// names must resolve to a seeded collection; a dangling name is an error and
// seeding stops there.
func Seed(st *store.Store, f *File) error {
	byName := make(map[string]string, len(f.Collections))
	for _, cs := range f.Collections {
		c, err := st.CreateCollection(models.CollectionDraft{
			Name:        cs.Name,
			Description: cs.Description,
		})
		if err != nil {
			return fmt.Errorf("seed collection %q: %w", cs.Name, err)
		}
		byName[cs.Name] = c.ID
	}

	for _, ps := range f.Prompts {
		var collectionID *string
		if ps.Collection != "" {
			id, ok := byName[ps.Collection]
			if !ok {
				return fmt.Errorf("seed prompt %q: unknown collection %q", ps.Title, ps.Collection)
			}
			collectionID = &id
		}
		if _, err := st.CreatePrompt(models.PromptDraft{
			Title:        ps.Title,
			Content:      ps.Content,
			Description:  ps.Description,
			CollectionID: collectionID,
			Tags:         ps.Tags,
		}); err != nil {
			return fmt.Errorf("seed prompt %q: %w", ps.Title, err)
		}
	}
	return nil
}
