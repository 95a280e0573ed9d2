package services

import (
	"errors"
	"testing"

	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/models"
)

func validProfile() models.Profile {
	return models.Profile{
		HeightCM: 170,
		WeightKG: 70,
		AgeYears: 30,
		Sex:      models.SexFemale,
		Activity: models.ActivityModerate,
	}
}

func TestValidateProfile(t *testing.T) {
	if err := ValidateProfile(validProfile()); err != nil {
		t.Fatalf("expected valid profile to pass, got %v", err)
	}
}

func TestValidateProfileCollectsAllFields(t *testing.T) {
	err := ValidateProfile(models.Profile{Sex: "unknown", Activity: "couch"})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validationErr.Fields) != 5 {
		t.Fatalf("expected all five fields reported, got %v", validationErr.Fields)
	}
}

func TestValidateProfileSingleField(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Profile)
		field  string
	}{
		{"age over bound", func(p *models.Profile) { p.AgeYears = 121 }, "age_years"},
		{"unknown sex", func(p *models.Profile) { p.Sex = "robot" }, "sex"},
		{"unknown activity", func(p *models.Profile) { p.Activity = "hyper" }, "activity_level"},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			profile := validProfile()
			testCase.mutate(&profile)
			err := ValidateProfile(profile)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(validationErr.Fields) != 1 || validationErr.Fields[0] != testCase.field {
				t.Fatalf("expected only %s reported, got %v", testCase.field, validationErr.Fields)
			}
		})
	}
}
