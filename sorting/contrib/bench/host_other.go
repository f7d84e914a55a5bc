//go:build !amd64 && !arm64

package bench

// Other architectures report no extensions for now.
func detectFeatures() []cpuFeature {
	return nil
}
