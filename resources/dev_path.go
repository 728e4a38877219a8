//go:build !release
// +build !release

package resources

const configDir = ".crankpad"

func resourcePath() (string, error) {
	return configDir, nil
}
