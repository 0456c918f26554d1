package webhook

import "time"

// DedupConfig controls redelivery detection on X-GitHub-Delivery.
type DedupConfig struct {
	Enabled bool
	Size    int           // Max remembered delivery ids
	TTL     time.Duration // How long an id is remembered
}
