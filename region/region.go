// Package region carries service region metadata and endpoint construction.
package region

import (
	"fmt"
	"os"
	"strings"
)

// Region identifies a service region, or a custom endpoint.
type Region struct {
	// Name is the region name, e.g. "us-east-1".
	Name string
	// Endpoint overrides the constructed endpoint when set (local stacks,
	// private deployments).
	Endpoint string
}

// Default is used when nothing else is configured.
var Default = Region{Name: "us-east-1"}

var knownRegions = map[string]bool{
	"af-south-1":     true,
	"ap-east-1":      true,
	"ap-northeast-1": true,
	"ap-northeast-2": true,
	"ap-northeast-3": true,
	"ap-south-1":     true,
	"ap-southeast-1": true,
	"ap-southeast-2": true,
	"ca-central-1":   true,
	"eu-central-1":   true,
	"eu-north-1":     true,
	"eu-south-1":     true,
	"eu-west-1":      true,
	"eu-west-2":      true,
	"eu-west-3":      true,
	"me-south-1":     true,
	"sa-east-1":      true,
	"us-east-1":      true,
	"us-east-2":      true,
	"us-west-1":      true,
	"us-west-2":      true,
	"us-gov-east-1":  true,
	"us-gov-west-1":  true,
	"cn-north-1":     true,
	"cn-northwest-1": true,
}

// Parse converts a region name into a Region.
func Parse(name string) (Region, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !knownRegions[name] {
		return Region{}, fmt.Errorf("region: unknown region %q", name)
	}
	return Region{Name: name}, nil
}

// Custom creates a region pointing at an explicit endpoint.
func Custom(name, endpoint string) Region {
	return Region{Name: name, Endpoint: endpoint}
}

// FromEnv resolves the region from AWS_REGION, then AWS_DEFAULT_REGION,
// falling back to Default.
func FromEnv() Region {
	for _, key := range []string{"AWS_REGION", "AWS_DEFAULT_REGION"} {
		if name := os.Getenv(key); name != "" {
			if r, err := Parse(name); err == nil {
				return r
			}
		}
	}
	return Default
}

// EndpointFor constructs the endpoint URL for a service in this region.
// A custom Endpoint wins over construction.
func (r Region) EndpointFor(service string) string {
	if r.Endpoint != "" {
		return r.Endpoint
	}
	switch {
	case strings.HasPrefix(r.Name, "cn-"):
		return fmt.Sprintf("https://%s.%s.amazonaws.com.cn", service, r.Name)
	default:
		return fmt.Sprintf("https://%s.%s.amazonaws.com", service, r.Name)
	}
}

// String returns the region name.
func (r Region) String() string {
	return r.Name
}
