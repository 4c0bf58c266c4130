package dto

import (
	"encoding/json"
	"testing"

	"vahub_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSalaryRange(t *testing.T) {
	cases := []struct {
		name string
		min  float64
		max  float64
		want string
	}{
		{"equal bounds collapse", 500, 500, "$500"},
		{"distinct bounds render a range", 500, 1500, "$500 - $1500"},
		{"zero max collapses to min", 800, 0, "$800"},
		{"both zero", 0, 0, "$0"},
		{"fractional amounts keep cents", 12.5, 15.75, "$12.50 - $15.75"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatSalaryRange(tc.min, tc.max))
		})
	}
}

func TestToJobResponseEmptySkills(t *testing.T) {
	job := &models.Job{Title: "VA", SalaryMin: 500, SalaryMax: 500}

	resp := ToJobResponse(job)

	require.NotNil(t, resp.Skills)
	assert.Empty(t, resp.Skills)

	// Empty skill lists must serialize as [], never null.
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"skills":[]`)
	assert.Contains(t, string(raw), `"salary_range":"$500"`)
}

func TestToJobResponseCarriesSkillNames(t *testing.T) {
	job := &models.Job{
		Title:     "VA",
		SalaryMin: 500,
		SalaryMax: 1500,
		Skills: []models.JobSkill{
			{SkillName: "Calendar Management"},
			{SkillName: "Data Entry"},
		},
	}

	resp := ToJobResponse(job)

	assert.Equal(t, []string{"Calendar Management", "Data Entry"}, resp.Skills)
	assert.Equal(t, "$500 - $1500", resp.SalaryRange)
}
