// Package catalog loads the job profile question banks and resolves which
// question set a candidate is scored against.
package catalog

import (
	"sort"

	"github.com/SAP-F-2025/workdna-service/internal/models"
	"github.com/SAP-F-2025/workdna-service/internal/scoring"
)

// Catalog is the immutable set of job profiles loaded at startup
type Catalog struct {
	PassThreshold int                          `json:"PASS_THRESHOLD" yaml:"PASS_THRESHOLD" validate:"min=0,max=100"`
	JobProfiles   map[string]models.JobProfile `json:"JOB_PROFILES" yaml:"JOB_PROFILES" validate:"dive,keys,job_key,endkeys"`
}

// Empty returns a catalog with no profiles and the default pass threshold
func Empty() *Catalog {
	return &Catalog{
		PassThreshold: scoring.DefaultPassThreshold,
		JobProfiles:   map[string]models.JobProfile{},
	}
}

// Profile returns the job profile registered under key
func (c *Catalog) Profile(key string) (models.JobProfile, bool) {
	profile, ok := c.JobProfiles[key]
	return profile, ok
}

// JobKeys lists the profile keys in lexical order
func (c *Catalog) JobKeys() []string {
	keys := make([]string, 0, len(c.JobProfiles))
	for key := range c.JobProfiles {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (c *Catalog) Len() int {
	return len(c.JobProfiles)
}
