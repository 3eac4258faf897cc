package handler

import (
	"net/http"
	"runtime"
)

// Build-time variables, injected via -ldflags -X
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// VersionInfo describes the running build
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
	BuildTime string `json:"buildTime,omitempty"`
	GitCommit string `json:"gitCommit,omitempty"`
}

// HandleVersion reports the deployed build so a client or operator can check
// what is running.
func HandleVersion(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, VersionInfo{
		Version:   Version,
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	})
}
