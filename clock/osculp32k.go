package clock

import "omibyte.io/samclk/chip"

// OscUlp32kFreq is the nominal output of the ultra low power oscillator.
const OscUlp32kFreq Hertz = 32_768

// OscUlp32k1kFreq is its divided 1.024 kHz tap.
const OscUlp32k1kFreq Hertz = 1_024

// OscUlp32k is the ultra low power 32 kHz oscillator. It runs in every sleep
// mode, cannot be turned off and needs no enable step, so there is no token
// or disabled form; Reset hands out the one instance directly.
type OscUlp32k struct {
	sysctrl *chip.PeripheralSYSCTRL
	users
}

func (o *OscUlp32k) Freq() Hertz { return OscUlp32kFreq }

// SetCalibration writes the 5-bit calibration field.
func (o *OscUlp32k) SetCalibration(calib uint8) error {
	if calib > 0x1F {
		return ErrBadConfig
	}
	o.sysctrl.OSCULP32K.SetCALIB(calib)
	return nil
}

// WriteLock freezes the calibration until the next reset.
func (o *OscUlp32k) WriteLock() {
	o.sysctrl.OSCULP32K.SetWRTLOCK(true)
}

func (o *OscUlp32k) gclkSrc() chip.GCLK_GENCTRL_REG_SRC {
	return chip.GCLK_GENCTRL_REG_SRC_OSCULP32K
}

func (o *OscUlp32k) counter() *users { return &o.users }
