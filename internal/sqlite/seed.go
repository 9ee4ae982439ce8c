package sqlite

import (
	"errors"

	"github.com/onegoal/tracker/pkg/types"
)

// seedSites are the boards registered by SeedJobSearchSites.
var seedSites = []types.JobSearchSiteCreate{
	{Name: "LinkedIn", URL: ptr("https://www.linkedin.com/jobs")},
	{Name: "Indeed", URL: ptr("https://www.indeed.com")},
	{Name: "Glassdoor", URL: ptr("https://www.glassdoor.com")},
	{Name: "ZipRecruiter", URL: ptr("https://www.ziprecruiter.com")},
	{Name: "Monster", URL: ptr("https://www.monster.com")},
	{Name: "Dice", URL: ptr("https://www.dice.com")},
	{Name: "CareerBuilder", URL: ptr("https://www.careerbuilder.com")},
}

func ptr(s string) *string { return &s }

// SeedJobSearchSites inserts the standard job boards, skipping any that
// already exist. Returns the number of sites inserted, so reruns are safe.
func (s *Store) SeedJobSearchSites(actor string) (int, error) {
	inserted := 0
	for _, site := range seedSites {
		site.CreatedBy = actor
		site.ModifiedBy = actor
		_, err := s.CreateJobSearchSite(site)
		if err != nil {
			var conflict *types.ConflictError
			if errors.As(err, &conflict) {
				continue
			}
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
