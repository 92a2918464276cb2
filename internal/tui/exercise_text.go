// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-fit-keeper/models"
)

var (
	errNoExercises    = errors.New("нужно хотя бы одно упражнение")
	errExerciseFormat = errors.New("ожидается формат «Название: 8x60, 8x60»")
	errSetFormat      = errors.New("подход записывается как повторы x вес")
)

var setSeparators = strings.NewReplacer("х", "x", "Х", "x", "×", "x", "X", "x", "*", "x")

// parseExercises reads one exercise per line:
//
//	Приседания: 5x100, 5x105
//	Подтягивания: 10, 8
//
// A set is "reps x weight_kg"; a bare number is a bodyweight set.
func parseExercises(text string) ([]models.Exercise, error) {
	var exercises []models.Exercise

	for lineNo, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		name, setsText, ok := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("строка %d: %w", lineNo+1, errExerciseFormat)
		}

		sets, err := parseSets(setsText)
		if err != nil {
			return nil, fmt.Errorf("строка %d: %w", lineNo+1, err)
		}

		exercises = append(exercises, models.Exercise{
			Position: len(exercises),
			Name:     name,
			Sets:     sets,
		})
	}

	if len(exercises) == 0 {
		return nil, errNoExercises
	}
	return exercises, nil
}

func parseSets(text string) ([]models.ExerciseSet, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == ';' })

	sets := make([]models.ExerciseSet, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(setSeparators.Replace(field))
		if field == "" {
			continue
		}

		repsText, weightText, hasWeight := strings.Cut(field, "x")
		reps, err := strconv.Atoi(strings.TrimSpace(repsText))
		if err != nil || reps < 0 {
			return nil, fmt.Errorf("%q: %w", field, errSetFormat)
		}

		var weight float64
		if hasWeight {
			weight, err = strconv.ParseFloat(strings.TrimSpace(weightText), 64)
			if err != nil || weight < 0 {
				return nil, fmt.Errorf("%q: %w", field, errSetFormat)
			}
		}

		sets = append(sets, models.ExerciseSet{Position: len(sets), Reps: reps, WeightKg: weight})
	}

	return sets, nil
}

// formatSets renders sets the way parseExercises reads them.
func formatSets(sets []models.ExerciseSet) string {
	parts := make([]string, 0, len(sets))
	for _, s := range sets {
		if s.WeightKg == 0 {
			parts = append(parts, strconv.Itoa(s.Reps))
			continue
		}
		parts = append(parts, strconv.Itoa(s.Reps)+"x"+strconv.FormatFloat(s.WeightKg, 'f', -1, 64))
	}
	return strings.Join(parts, ", ")
}
