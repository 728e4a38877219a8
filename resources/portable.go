package resources

import (
	"os"
	"path/filepath"
)

const portablePath = "crankpad_UserData"

// checkPortable returns true if a file named portable.txt is in the same
// directory as the program binary.
func checkPortable() bool {
	ex, err := os.Executable()
	if err != nil {
		return false
	}
	_, err = os.Stat(filepath.Join(filepath.Dir(ex), "portable.txt"))
	return err == nil
}
