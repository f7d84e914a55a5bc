//go:build arm64

package bench

import "golang.org/x/sys/cpu"

func detectFeatures() []cpuFeature {
	// ASIMD (NEON) is part of the ARMv8-A base architecture, so it is
	// expected to be present everywhere.
	return []cpuFeature{
		{"asimd", cpu.ARM64.HasASIMD},
		{"atomics", cpu.ARM64.HasATOMICS},
		{"crc32", cpu.ARM64.HasCRC32},
		{"sve", cpu.ARM64.HasSVE},
		{"sve2", cpu.ARM64.HasSVE2},
	}
}
