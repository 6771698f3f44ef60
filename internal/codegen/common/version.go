package common

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is set at build time:
// go build -ldflags "-X github.com/Alia5/keynames/internal/codegen/common.Version=x.y.z"
var Version = ""

// GetVersion returns the build version, or "0.0.1-dev" for development builds.
func GetVersion() (string, error) {
	if Version == "" {
		return "0.0.1-dev", nil
	}
	version := strings.TrimPrefix(Version, "v")
	base := strings.SplitN(version, "-", 2)[0]
	if !strings.Contains(base, ".") {
		return "", fmt.Errorf("invalid version format: %s (expected x.y.z)", Version)
	}
	return version, nil
}

// ParseVersion splits "1.2.3" or "1.2.3-dirty" into its numeric parts.
// Missing or malformed parts read as zero.
func ParseVersion(version string) (major, minor, patch int) {
	nums := strings.Split(strings.SplitN(version, "-", 2)[0], ".")
	parts := []*int{&major, &minor, &patch}
	for i := 0; i < len(nums) && i < len(parts); i++ {
		*parts[i], _ = strconv.Atoi(nums[i])
	}
	return
}
