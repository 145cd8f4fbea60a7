package testutils

import (
	"os"
	"path/filepath"
	"strconv"
)

// InitGPIO creates a fake sysfs gpio directory for the provided pins under path
func InitGPIO(path string, pins ...int) error {
	for _, pin := range pins {
		pinDir := filepath.Join(path, "gpio"+strconv.Itoa(pin))
		if err := os.MkdirAll(pinDir, 0755); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(pinDir, "direction"), []byte("in"), 0644); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(pinDir, "value"), []byte("0"), 0644); err != nil {
			return err
		}
	}
	return nil
}
