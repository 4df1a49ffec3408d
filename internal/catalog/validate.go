package catalog

import (
	"errors"
	"fmt"
)

func validate(chapters []Chapter) error {
	if len(chapters) == 0 {
		return errors.New("catalog has no chapters")
	}

	seen := make(map[string]struct{})
	lastChapterID := 0

	for _, chapter := range chapters {
		if chapter.ID < 1 {
			return fmt.Errorf("chapter %d: id must be >= 1", chapter.ID)
		}
		if chapter.ID <= lastChapterID {
			return fmt.Errorf("chapter %d: ids must be strictly increasing", chapter.ID)
		}
		lastChapterID = chapter.ID

		if chapter.Title == "" {
			return fmt.Errorf("chapter %d: title is required", chapter.ID)
		}
		if chapter.TotalLessons != len(chapter.Lessons) {
			return fmt.Errorf("chapter %d: total_lessons is %d but %d lessons are defined",
				chapter.ID, chapter.TotalLessons, len(chapter.Lessons))
		}
		if len(chapter.Lessons) == 0 {
			return fmt.Errorf("chapter %d: has no lessons", chapter.ID)
		}

		for ordinal, lesson := range chapter.Lessons {
			if err := validateLesson(chapter.ID, ordinal+1, lesson, seen); err != nil {
				return err
			}
			seen[lesson.ID] = struct{}{}
		}
	}
	return nil
}

func validateLesson(chapterID, wantOrdinal int, lesson Lesson, earlier map[string]struct{}) error {
	gotChapter, gotOrdinal, err := ParseID(lesson.ID)
	if err != nil {
		return err
	}
	if gotChapter != chapterID || gotOrdinal != wantOrdinal {
		return fmt.Errorf("lesson %q: id does not match position %d-%d", lesson.ID, chapterID, wantOrdinal)
	}
	if _, dup := earlier[lesson.ID]; dup {
		return fmt.Errorf("lesson %q: duplicate id", lesson.ID)
	}
	if lesson.Title == "" {
		return fmt.Errorf("lesson %q: title is required", lesson.ID)
	}
	if lesson.Duration <= 0 {
		return fmt.Errorf("lesson %q: duration must be positive, got %d", lesson.ID, lesson.Duration)
	}
	if _, ok := validDifficulties[lesson.Difficulty]; !ok {
		return fmt.Errorf("lesson %q: difficulty must be beginner, intermediate, or advanced, got %q",
			lesson.ID, lesson.Difficulty)
	}
	// Prerequisites may only reference lessons that appear earlier in the
	// course sequence, which rules out forward and cyclic references.
	for _, prereq := range lesson.Prerequisites {
		if _, ok := earlier[prereq]; !ok {
			return fmt.Errorf("lesson %q: prerequisite %q does not appear earlier in the course", lesson.ID, prereq)
		}
	}
	return nil
}
