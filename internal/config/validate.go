package config

import (
	"fmt"

	"github.com/vindursweden/kalender/internal/contract"
	"github.com/vindursweden/kalender/internal/domain"
)

// Validate checks a compiled household for configuration errors that
// would otherwise surface mid-expansion. Errors here are fatal: malformed
// configuration is caught at startup, never as a runtime exception path.
func Validate(h *Household) error {
	known := make(map[string]bool, len(h.People))
	for _, p := range h.People {
		if p.ID == "" {
			return &contract.ConfigError{
				Code:    contract.ConfigErrUnknownPerson,
				Message: "person with empty id",
			}
		}
		if known[p.ID] {
			return &contract.ConfigError{
				Code:    contract.ConfigErrUnknownPerson,
				Message: fmt.Sprintf("duplicate person id %q", p.ID),
			}
		}
		known[p.ID] = true
	}

	for dayType, profile := range h.Profiles {
		if err := validateProfile(dayType, profile, known); err != nil {
			return err
		}
	}
	return nil
}

func validateProfile(dayType domain.DayType, profile domain.DayProfile, people map[string]bool) error {
	seen := make(map[string]bool, len(profile.Steps))
	hasEarlierStep := make(map[string]bool)

	for _, step := range profile.Steps {
		if !people[step.PersonID] {
			return &contract.ConfigError{
				Code:    contract.ConfigErrUnknownPerson,
				Message: fmt.Sprintf("%s/%s: unknown person %q", dayType, step.Key, step.PersonID),
			}
		}

		id := step.PersonID + ":" + step.Key
		if seen[id] {
			return &contract.ConfigError{
				Code:    contract.ConfigErrDuplicateStep,
				Message: fmt.Sprintf("%s: duplicate step key %q for person %q", dayType, step.Key, step.PersonID),
			}
		}
		seen[id] = true

		if step.At == "" && len(step.EveningAt) == 0 {
			if step.OffsetMin == nil {
				return &contract.ConfigError{
					Code:    contract.ConfigErrUnresolvedTime,
					Message: fmt.Sprintf("%s/%s: neither clock time nor offset", dayType, step.Key),
				}
			}
			if !hasEarlierStep[step.PersonID] {
				return &contract.ConfigError{
					Code:    contract.ConfigErrUnresolvedTime,
					Message: fmt.Sprintf("%s/%s: first step of %q cannot be offset-based", dayType, step.Key, step.PersonID),
				}
			}
		}
		hasEarlierStep[step.PersonID] = true

		if err := validateClocks(dayType, step); err != nil {
			return err
		}

		if step.MinDurationMin != nil && step.BestDurationMin != nil &&
			*step.MinDurationMin > *step.BestDurationMin {
			return &contract.ConfigError{
				Code:    contract.ConfigErrBadRule,
				Message: fmt.Sprintf("%s/%s: min duration exceeds best duration", dayType, step.Key),
			}
		}

		for _, part := range step.Involved {
			if !people[part.PersonID] {
				return &contract.ConfigError{
					Code:    contract.ConfigErrUnknownPerson,
					Message: fmt.Sprintf("%s/%s: unknown participant %q", dayType, step.Key, part.PersonID),
				}
			}
		}
	}
	return nil
}

func validateClocks(dayType domain.DayType, step domain.TemplateStep) error {
	if step.At != "" {
		if _, err := domain.ParseClock(step.At); err != nil {
			return badClock(dayType, step.Key, err)
		}
	}
	for _, clock := range step.EveningAt {
		if _, err := domain.ParseClock(clock); err != nil {
			return badClock(dayType, step.Key, err)
		}
	}
	return nil
}

func badClock(dayType domain.DayType, key string, err error) error {
	return &contract.ConfigError{
		Code:    contract.ConfigErrBadClock,
		Message: fmt.Sprintf("%s/%s: %v", dayType, key, err),
	}
}
