package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := validateBaseURL(c.Supabase.URL); err != nil {
		return fmt.Errorf("supabase.url: %w", err)
	}
	c.Supabase.URL = strings.TrimRight(c.Supabase.URL, "/")

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.Tasks.Timeout <= 0 {
		return fmt.Errorf("tasks.timeout must be > 0 (got %v)", c.Tasks.Timeout)
	}

	if err := c.Views.validate(); err != nil {
		return fmt.Errorf("views: %w", err)
	}

	if c.Pages.IdleTTL <= 0 || c.Pages.CleanupInterval <= 0 {
		return fmt.Errorf("pages: idle_ttl and cleanup_interval must be > 0")
	}

	if c.RateLimit.Enabled && (c.RateLimit.Actions <= 0 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("rate_limit: actions and window must be > 0 when enabled")
	}

	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}

func (s *StorageConfig) validate() error {
	if s.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}
	if s.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", s.MaxUploadBytes)
	}
	if s.ContentType == "" {
		return fmt.Errorf("content_type is required")
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", s.Timeout)
	}
	return nil
}

func (v *ViewsConfig) validate() error {
	if v.DashboardJobLimit <= 0 {
		return fmt.Errorf("dashboard_job_limit must be > 0 (got %d)", v.DashboardJobLimit)
	}
	if v.DashboardInterviewLimit <= 0 {
		return fmt.Errorf("dashboard_interview_limit must be > 0 (got %d)", v.DashboardInterviewLimit)
	}
	if v.InterviewHistoryLimit <= 0 {
		return fmt.Errorf("interview_history_limit must be > 0 (got %d)", v.InterviewHistoryLimit)
	}
	if v.SkillCount <= 0 {
		return fmt.Errorf("skill_count must be > 0 (got %d)", v.SkillCount)
	}
	if v.SkillWeightStep < 0 {
		return fmt.Errorf("skill_weight_step must be >= 0 (got %d)", v.SkillWeightStep)
	}
	if v.SkillWeightFloor < 0 || v.SkillWeightFloor > 100 {
		return fmt.Errorf("skill_weight_floor must be within [0,100] (got %d)", v.SkillWeightFloor)
	}
	if v.ActivityCap <= 0 {
		return fmt.Errorf("activity_cap must be > 0 (got %d)", v.ActivityCap)
	}
	return nil
}
