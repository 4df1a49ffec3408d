package main

import (
	"fmt"
	"strings"
	"time"

	"studytrack/internal/catalog"
)

// formatLessonDuration renders a lesson's length in whole minutes.
func formatLessonDuration(seconds int) string {
	minutes := (seconds + 59) / 60
	return fmt.Sprintf("%dm", minutes)
}

// formatStudyTime renders accumulated study seconds as "1h 05m" or "12m 30s"
// for short spans.
func formatStudyTime(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second)).Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm %02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh %02dm", int(d.Hours()), int(d.Minutes())%60)
}

// lessonLabel renders a lesson as "1-3 Core Ideas" for status lines.
func lessonLabel(lesson catalog.Lesson) string {
	return fmt.Sprintf("%s %s", lesson.ID, lesson.Title)
}

// lessonStatus joins the state markers shown in listing tables.
func lessonStatus(completed, current, bookmarked, hasNote bool) string {
	var parts []string
	if completed {
		parts = append(parts, "completed")
	}
	if current {
		parts = append(parts, "current")
	}
	if bookmarked {
		parts = append(parts, "bookmarked")
	}
	if hasNote {
		parts = append(parts, "note")
	}
	return strings.Join(parts, ", ")
}

// excerpt truncates text to max runes for table cells.
func excerpt(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
