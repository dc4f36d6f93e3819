package utils

import (
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// GetSystemMetrics는 CPU와 메모리 사용률을 측정합니다 (0~1 범위)
func GetSystemMetrics() (float64, float64) {
	cpuUsage := 0.0
	memoryUsage := 0.0

	// CPU 사용률 (100ms 샘플링)
	percentages, err := cpu.Percent(100*time.Millisecond, false)
	if err == nil && len(percentages) > 0 {
		cpuUsage = percentages[0] / 100.0
	}

	// 메모리 사용률
	vm, err := mem.VirtualMemory()
	if err == nil {
		memoryUsage = vm.UsedPercent / 100.0
	}

	return cpuUsage, memoryUsage
}
