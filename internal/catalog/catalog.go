package catalog

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/2beens/gymsession/internal/workout"
	"github.com/2beens/gymsession/internal/workout/stats"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var ErrExerciseNotFound = errors.New("exercise not in catalog")

type Entry struct {
	Name        string                 `yaml:"name" json:"name"`
	Type        workout.DifficultyType `yaml:"type" json:"type"`
	MuscleGroup string                 `yaml:"muscle_group,omitempty" json:"muscleGroup,omitempty"`
}

type catalogFile struct {
	Exercises []Entry `yaml:"exercises"`
}

// Catalog maps exercise names to their difficulty type. Lookups are case-insensitive.
type Catalog struct {
	entries map[string]Entry
}

func Default() *Catalog {
	c := &Catalog{entries: make(map[string]Entry, len(defaultEntries))}
	for _, e := range defaultEntries {
		c.entries[key(e.Name)] = e
	}
	return c
}

// Load reads the YAML file at path on top of the default entries.
// An empty path yields the defaults only.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog file [%s]: %w", path, err)
	}

	log.Debugf("catalog loaded from [%s]: %d exercises", path, len(c.entries))
	return c, nil
}

func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	c := Default()
	for i, e := range f.Exercises {
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			return nil, fmt.Errorf("exercise #%d: missing name", i)
		}
		if !e.Type.IsValid() {
			return nil, fmt.Errorf("exercise [%s]: invalid type [%s]", e.Name, e.Type)
		}
		c.entries[key(e.Name)] = e
	}
	return c, nil
}

func (c *Catalog) ResolveDifficultyType(name string) (workout.DifficultyType, error) {
	e, ok := c.entries[key(name)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrExerciseNotFound, name)
	}
	return e.Type, nil
}

func (c *Catalog) ResolveMetricOptions(dt workout.DifficultyType, bodyweight float64) []stats.Metric {
	return stats.MetricOptions(dt, bodyweight)
}

// Entries returns all exercises sorted by name.
func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

var defaultEntries = []Entry{
	{Name: "Bench Press", Type: workout.DifficultyTypeWeight, MuscleGroup: "chest"},
	{Name: "Incline Bench Press", Type: workout.DifficultyTypeWeight, MuscleGroup: "chest"},
	{Name: "Squat", Type: workout.DifficultyTypeWeight, MuscleGroup: "legs"},
	{Name: "Front Squat", Type: workout.DifficultyTypeWeight, MuscleGroup: "legs"},
	{Name: "Deadlift", Type: workout.DifficultyTypeWeight, MuscleGroup: "back"},
	{Name: "Romanian Deadlift", Type: workout.DifficultyTypeWeight, MuscleGroup: "legs"},
	{Name: "Overhead Press", Type: workout.DifficultyTypeWeight, MuscleGroup: "shoulders"},
	{Name: "Barbell Row", Type: workout.DifficultyTypeWeight, MuscleGroup: "back"},
	{Name: "Bicep Curl", Type: workout.DifficultyTypeWeight, MuscleGroup: "biceps"},
	{Name: "Weighted Pull Up", Type: workout.DifficultyTypeWeightedBodyweight, MuscleGroup: "back"},
	{Name: "Weighted Dip", Type: workout.DifficultyTypeWeightedBodyweight, MuscleGroup: "triceps"},
	{Name: "Pull Up", Type: workout.DifficultyTypeBodyweight, MuscleGroup: "back"},
	{Name: "Chin Up", Type: workout.DifficultyTypeBodyweight, MuscleGroup: "back"},
	{Name: "Push Up", Type: workout.DifficultyTypeBodyweight, MuscleGroup: "chest"},
	{Name: "Dip", Type: workout.DifficultyTypeBodyweight, MuscleGroup: "triceps"},
	{Name: "Assisted Pull Up", Type: workout.DifficultyTypeAssistedBodyweight, MuscleGroup: "back"},
	{Name: "Assisted Dip", Type: workout.DifficultyTypeAssistedBodyweight, MuscleGroup: "triceps"},
	{Name: "Plank", Type: workout.DifficultyTypeTime, MuscleGroup: "core"},
	{Name: "Dead Hang", Type: workout.DifficultyTypeTime, MuscleGroup: "forearms"},
	{Name: "Wall Sit", Type: workout.DifficultyTypeTime, MuscleGroup: "legs"},
}
