package service

import (
	"math"
	"runtime"
	"time"

	"github.com/simpletest/user-api/internal/core/ports"
)

// AppInfo is the static part of the system report, taken from configuration.
type AppInfo struct {
	Name        string
	Version     string
	Environment string
}

type SystemService struct {
	app       AppInfo
	startedAt time.Time
	now       func() time.Time
}

func NewSystemService(app AppInfo, startedAt time.Time) *SystemService {
	return &SystemService{app: app, startedAt: startedAt.UTC(), now: time.Now}
}

// Info reports the app identity, process start time, uptime and heap usage in MB.
func (s *SystemService) Info() ports.SystemInfo {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return ports.SystemInfo{
		AppName:     s.app.Name,
		Version:     s.app.Version,
		Environment: s.app.Environment,
		StartedAt:   s.startedAt,
		Uptime:      s.now().Sub(s.startedAt),
		HeapMB:      bytesToMB(ms.HeapAlloc),
	}
}

// bytesToMB converts to megabytes rounded to two decimals.
func bytesToMB(b uint64) float64 {
	return math.Round(float64(b)/1024/1024*100) / 100
}
