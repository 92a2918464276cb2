// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-fit-keeper/models"
)

const (
	prefFieldGoal = iota
	prefFieldEquipment
	prefFieldExperience
	prefFieldDays
)

var errDaysPerWeek = errors.New("тренировок в неделю: число от 1 до 7")

var preferenceHints = []string{
	"Цель: " + strings.Join([]string{models.GoalGeneralFitness, models.GoalStrength, models.GoalHypertrophy, models.GoalEndurance}, ", "),
	"Инвентарь: " + strings.Join([]string{models.EquipmentFullGym, models.EquipmentDumbbells, models.EquipmentBodyweight}, ", "),
	"Опыт: " + strings.Join([]string{models.ExperienceBeginner, models.ExperienceIntermediate, models.ExperienceAdvanced}, ", "),
}

type preferencesForm struct {
	inputForm
}

func newPreferencesForm(prefs models.FitnessPreferences) preferencesForm {
	return preferencesForm{inputForm: newInputForm(
		formField{label: "Цель", placeholder: models.GoalGeneralFitness, value: prefs.Goal, limit: 32},
		formField{label: "Инвентарь", placeholder: models.EquipmentFullGym, value: prefs.Equipment, limit: 32},
		formField{label: "Опыт", placeholder: models.ExperienceBeginner, value: prefs.ExperienceLevel, limit: 32},
		formField{label: "Тренировок в неделю", placeholder: "3", value: strconv.Itoa(prefs.TrainingDaysPerWeek), limit: 1},
	)}
}

// preferences reads the form. Saving marks the questionnaire as completed.
func (f preferencesForm) preferences() (models.FitnessPreferences, error) {
	days, err := strconv.Atoi(f.value(prefFieldDays))
	if err != nil || days < 1 || days > 7 {
		return models.FitnessPreferences{}, errDaysPerWeek
	}

	return models.FitnessPreferences{
		Goal:                f.value(prefFieldGoal),
		Equipment:           f.value(prefFieldEquipment),
		ExperienceLevel:     f.value(prefFieldExperience),
		TrainingDaysPerWeek: days,
		Completed:           true,
	}, nil
}

func (f preferencesForm) view() string {
	return f.inputForm.view("Сохранить") + "\n\n" + helpStyle.Render(strings.Join(preferenceHints, "\n"))
}
