package version

// BuildVersion is set at build time through -ldflags "-X github.com/clambin/vetinari/internal/version.BuildVersion=..."
var BuildVersion = "change-me"
