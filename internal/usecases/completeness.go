package usecases

import (
	"math"

	"finuel.backend/internal/domain/entities"
)

// basicProfileFieldCount is the number of fields that drive the profile
// completion percentage: username, first name, last name, email, phone,
// gender, dob, state, lga.
const basicProfileFieldCount = 9

// profileCompleteness re-derives the completion percentage and flag from the
// post-update user record. Never incremental.
func profileCompleteness(user *entities.User) (percentage int, complete bool) {
	missing := 0
	if !user.Username.Valid || user.Username.String == "" {
		missing++
	}
	if user.FirstName == "" {
		missing++
	}
	if user.LastName == "" {
		missing++
	}
	if user.Email == "" {
		missing++
	}
	if !user.Phone.Valid || user.Phone.String == "" {
		missing++
	}
	if !user.Gender.Valid || user.Gender.String == "" {
		missing++
	}
	if !user.DOB.Valid || user.DOB.String == "" {
		missing++
	}
	if !user.State.Valid || user.State.String == "" {
		missing++
	}
	if !user.LGA.Valid || user.LGA.String == "" {
		missing++
	}

	percentage = int(math.Round(float64(basicProfileFieldCount-missing) / basicProfileFieldCount * 100))
	return percentage, missing == 0
}

// employmentComplete evaluates the occupation-specific required-field rules.
// Unrecognized occupations are incomplete.
func employmentComplete(input *entities.EmploymentInput) bool {
	switch input.Occupation {
	case entities.OccupationEmployed:
		return input.Name != "" && input.Address != "" && input.MonthlyIncome > 0 &&
			input.StartDate != "" && input.Sector != "" && input.Role != ""
	case entities.OccupationSelfEmployed:
		return input.Name != "" && input.Address != "" && input.MonthlyIncome > 0 &&
			input.Sector != "" && input.Role != ""
	case entities.OccupationStudent:
		return input.Name != "" && input.Address != "" && input.StartDate != "" && input.Role != ""
	case entities.OccupationUnemployed:
		return input.Name != "" && input.Address != "" && input.StartDate != "" &&
			input.Role != "" && input.Sector != "" && input.EndDate != ""
	}
	return false
}
