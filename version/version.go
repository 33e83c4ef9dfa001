package version

// Version is overwritten at build time with -ldflags "-X ...version.Version=v1.2.3".
var Version = "v0.1.0"
