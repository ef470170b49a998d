package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemService_Info(t *testing.T) {
	started := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := NewSystemService(AppInfo{Name: "Simple Test API", Version: "1.0.0", Environment: "test"}, started)
	svc.now = func() time.Time { return started.Add(90 * time.Second) }

	info := svc.Info()

	assert.Equal(t, "Simple Test API", info.AppName)
	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "test", info.Environment)
	assert.Equal(t, started, info.StartedAt)
	assert.Equal(t, 90*time.Second, info.Uptime)
	assert.Greater(t, info.HeapMB, 0.0)
}

func TestBytesToMB(t *testing.T) {
	assert.Equal(t, 1.0, bytesToMB(1024*1024))
	assert.Equal(t, 1.5, bytesToMB(1024*1024*3/2))
	assert.Equal(t, 0.0, bytesToMB(0))
}
