package form

import (
	"strconv"
	"strings"

	"github.com/performai/pcfg/internal/pcfg/errors"
	"github.com/performai/pcfg/internal/pcfg/ini"
)

const (
	DefaultSerialPort = "COM5"
	DefaultSerialBaud = "921600"
)

// SDDT holds the LED board and Unity loader settings
type SDDT struct {
	LEDEnable bool
	// LEDSerial selects serial output; false means named-pipe output.
	LEDSerial  bool
	SerialPort string
	SerialBaud string

	UnityEnable    bool
	TargetAssembly string
}

// LoadSDDT reads the SDDT settings from doc
func LoadSDDT(doc *ini.Document) SDDT {
	return SDDT{
		LEDEnable:      doc.GetBool("led15093", "enable", true),
		LEDSerial:      doc.GetBool("led", "cabLedOutputSerial", false),
		SerialPort:     doc.GetString("led", "serialPort", DefaultSerialPort),
		SerialBaud:     doc.GetString("led", "serialBaud", DefaultSerialBaud),
		UnityEnable:    doc.GetBool("unity", "enable", true),
		TargetAssembly: doc.GetString("unity", "targetAssembly", ""),
	}
}

// Validate checks the serial settings when serial output is selected
func (s SDDT) Validate() error {
	if !s.LEDSerial {
		return nil
	}
	if strings.TrimSpace(s.SerialPort) == "" {
		return errors.Wrap(errors.ErrInvalidValue, "serial port is empty")
	}
	if baud, err := strconv.Atoi(s.SerialBaud); err != nil || baud <= 0 {
		return errors.Wrapf(errors.ErrInvalidValue, "serial baud %q is not a positive number", s.SerialBaud)
	}
	return nil
}

// Apply replaces led15093, led and unity
func (s SDDT) Apply(doc *ini.Document) error {
	if err := doc.SetSection("led15093", []ini.Entry{{Key: "enable", Value: flag(s.LEDEnable)}}); err != nil {
		return err
	}

	led := []ini.Entry{
		{Key: "cabLedOutputPipe", Value: flag(!s.LEDSerial)},
		{Key: "controllerLedOutputPipe", Value: flag(!s.LEDSerial)},
		{Key: "cabLedOutputSerial", Value: flag(s.LEDSerial)},
		{Key: "controllerLedOutputSerial", Value: flag(s.LEDSerial)},
	}
	if s.LEDSerial {
		led = append(led,
			ini.Entry{Key: "serialPort", Value: s.SerialPort},
			ini.Entry{Key: "serialBaud", Value: s.SerialBaud},
		)
	}
	if err := doc.SetSection("led", led); err != nil {
		return err
	}

	unity := []ini.Entry{{Key: "enable", Value: flag(s.UnityEnable)}}
	if strings.TrimSpace(s.TargetAssembly) != "" {
		unity = append(unity, ini.Entry{Key: "targetAssembly", Value: s.TargetAssembly})
	}
	return doc.SetSection("unity", unity)
}
