package system_healthcheck

import (
	"context"
	"math"

	"github.com/tom-mcmillan/nwsl-api/internal/storage"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

type HealthcheckService struct{}

// CheckStore runs the cheapest possible round trip through the pool.
func (s *HealthcheckService) CheckStore(ctx context.Context) error {
	return storage.GetDb().WithContext(ctx).Exec("SELECT 1").Error
}

// BuildHealthReport never fails: a broken store or an unreadable
// system snapshot degrades the report instead of erroring the probe.
func (s *HealthcheckService) BuildHealthReport(ctx context.Context) *HealthResponseDTO {
	report := &HealthResponseDTO{
		Status:   "healthy",
		Database: "up",
	}

	if err := s.CheckStore(ctx); err != nil {
		report.Status = "degraded"
		report.Database = "down"
	}

	if virtualMemory, err := mem.VirtualMemory(); err == nil {
		report.Memory = &MemorySnapshotDTO{
			TotalMB:     virtualMemory.Total / 1024 / 1024,
			AvailableMB: virtualMemory.Available / 1024 / 1024,
			UsedPercent: math.Round(virtualMemory.UsedPercent*10) / 10,
		}
	}

	if hostInfo, err := host.Info(); err == nil {
		report.Hostname = hostInfo.Hostname
		report.UptimeSec = hostInfo.Uptime
	}

	return report
}
