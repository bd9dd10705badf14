package config

import (
	"fmt"

	supa "github.com/supabase-community/supabase-go"
)

// NewSupabase builds the Supabase client used for both table access and
// object storage. The service key is required: the gateway performs admin
// writes that RLS would block under the anonymous role.
func NewSupabase(cfg *Config) (*supa.Client, error) {
	client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing supabase client: %w", err)
	}
	return client, nil
}
