package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Difficulty grades a lesson for learners.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

var validDifficulties = map[Difficulty]struct{}{
	DifficultyBeginner:     {},
	DifficultyIntermediate: {},
	DifficultyAdvanced:     {},
}

var titleCaser = cases.Title(language.English)

// Label returns the difficulty as a human-readable label.
func (d Difficulty) Label() string {
	return titleCaser.String(string(d))
}

// Lesson is one video lesson in the course. Lessons are immutable once the
// catalog is built.
type Lesson struct {
	ID            string     `toml:"id"`
	Title         string     `toml:"title"`
	Description   string     `toml:"description"`
	Duration      int        `toml:"duration"`
	Difficulty    Difficulty `toml:"difficulty"`
	Prerequisites []string   `toml:"prerequisites"`

	// Chapter is the owning chapter id, filled in while building the catalog.
	Chapter int `toml:"-"`
}

// Chapter groups an ordered run of lessons.
type Chapter struct {
	ID           int      `toml:"id"`
	Title        string   `toml:"title"`
	Description  string   `toml:"description"`
	TotalLessons int      `toml:"total_lessons"`
	Lessons      []Lesson `toml:"lessons"`
}

// Summary is the chapter overview used by progress breakdowns.
type Summary struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	TotalLessons int    `json:"totalLessons"`
}

// Catalog is the static, ordered definition of all chapters and lessons.
// Flattening chapters in declared order yields the canonical course sequence
// used for next/previous navigation.
type Catalog struct {
	chapters []Chapter
	flat     []Lesson
	index    map[string]int
}

// New builds a catalog from chapter definitions, validating the data contract.
func New(chapters []Chapter) (*Catalog, error) {
	if err := validate(chapters); err != nil {
		return nil, err
	}

	c := &Catalog{
		chapters: chapters,
		index:    make(map[string]int),
	}
	for _, chapter := range chapters {
		for _, lesson := range chapter.Lessons {
			lesson.Chapter = chapter.ID
			c.index[lesson.ID] = len(c.flat)
			c.flat = append(c.flat, lesson)
		}
	}
	return c, nil
}

// TotalLessons returns the number of lessons across all chapters.
func (c *Catalog) TotalLessons() int {
	return len(c.flat)
}

// Chapters returns chapter definitions in declared order.
func (c *Catalog) Chapters() []Chapter {
	return c.chapters
}

// Chapter returns the chapter with the given id.
func (c *Catalog) Chapter(id int) (Chapter, bool) {
	for _, chapter := range c.chapters {
		if chapter.ID == id {
			return chapter, true
		}
	}
	return Chapter{}, false
}

// LessonByID resolves a lesson id against the catalog.
func (c *Catalog) LessonByID(id string) (Lesson, bool) {
	pos, ok := c.index[strings.TrimSpace(id)]
	if !ok {
		return Lesson{}, false
	}
	return c.flat[pos], true
}

// Lessons returns every lesson in canonical course order.
func (c *Catalog) Lessons() []Lesson {
	out := make([]Lesson, len(c.flat))
	copy(out, c.flat)
	return out
}

// PreviousOf returns the lesson preceding id in course order. The second
// result is false at the start of the course or for unknown ids.
func (c *Catalog) PreviousOf(id string) (Lesson, bool) {
	pos, ok := c.index[id]
	if !ok || pos == 0 {
		return Lesson{}, false
	}
	return c.flat[pos-1], true
}

// NextOf returns the lesson following id in course order. The second result
// is false at the end of the course or for unknown ids.
func (c *Catalog) NextOf(id string) (Lesson, bool) {
	pos, ok := c.index[id]
	if !ok || pos == len(c.flat)-1 {
		return Lesson{}, false
	}
	return c.flat[pos+1], true
}

// First returns the first lesson of the course.
func (c *Catalog) First() Lesson {
	return c.flat[0]
}

// Summaries returns chapter overviews in declared order.
func (c *Catalog) Summaries() []Summary {
	out := make([]Summary, 0, len(c.chapters))
	for _, chapter := range c.chapters {
		out = append(out, Summary{
			ID:           chapter.ID,
			Title:        chapter.Title,
			Description:  chapter.Description,
			TotalLessons: chapter.TotalLessons,
		})
	}
	return out
}

// ParseID splits a lesson id of the form "<chapter>-<ordinal>" into its parts.
func ParseID(id string) (chapter, ordinal int, err error) {
	parts := strings.SplitN(strings.TrimSpace(id), "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("lesson id %q: want <chapter>-<ordinal>", id)
	}
	chapter, err = strconv.Atoi(parts[0])
	if err != nil || chapter < 1 {
		return 0, 0, fmt.Errorf("lesson id %q: bad chapter number", id)
	}
	ordinal, err = strconv.Atoi(parts[1])
	if err != nil || ordinal < 1 {
		return 0, 0, fmt.Errorf("lesson id %q: bad lesson ordinal", id)
	}
	return chapter, ordinal, nil
}
