package gpioberry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Pin controls a GPIO line through the Linux sysfs interface
type Pin struct {
	number        int
	exportPath    string
	unexportPath  string
	valuePath     string
	directionPath string
}

// New returns a Pin for GPIO line number. root is the sysfs gpio directory, usually /sys/class/gpio.
func New(root string, number int) Pin {
	pinDir := filepath.Join(root, "gpio"+strconv.Itoa(number))
	return Pin{
		number:        number,
		exportPath:    filepath.Join(root, "export"),
		unexportPath:  filepath.Join(root, "unexport"),
		valuePath:     filepath.Join(pinDir, "value"),
		directionPath: filepath.Join(pinDir, "direction"),
	}
}

// Number returns the GPIO line number
func (p Pin) Number() int {
	return p.number
}

// Export makes the pin available in sysfs. If the pin is already exported, Export does nothing.
func (p Pin) Export() error {
	if _, err := os.Stat(p.directionPath); err == nil {
		return nil
	}
	return os.WriteFile(p.exportPath, []byte(strconv.Itoa(p.number)), 0644)
}

// Unexport removes the pin from sysfs
func (p Pin) Unexport() error {
	return os.WriteFile(p.unexportPath, []byte(strconv.Itoa(p.number)), 0644)
}

// GetDirection returns the direction of the pin ("in" or "out")
func (p Pin) GetDirection() (string, error) {
	content, err := os.ReadFile(p.directionPath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(content)), nil
}

// SetDirection sets the direction of the pin
func (p Pin) SetDirection(direction string) error {
	if direction != "in" && direction != "out" {
		return errors.New("invalid direction")
	}
	return os.WriteFile(p.directionPath, []byte(direction), 0644)
}

// Get returns the current level of the pin
func (p Pin) Get() (bool, error) {
	content, err := os.ReadFile(p.valuePath)
	if err != nil {
		return false, err
	}
	value, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		return false, fmt.Errorf("gpio%d: %w", p.number, err)
	}
	return value != 0, nil
}

// Set drives the pin high (true) or low (false)
func (p Pin) Set(high bool) error {
	value := "0"
	if high {
		value = "1"
	}
	return os.WriteFile(p.valuePath, []byte(value), 0644)
}
