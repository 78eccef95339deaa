package chip

import "omibyte.io/samclk/volatile"

// Register layouts below follow the SAM D21 datasheet register maps for
// SYSCTRL, GCLK, PM and WDT. Field offsets and widths are bit exact; reserved
// space is padded so the structs can be mapped directly onto the peripheral
// address space.

//==============================================================================
// SYSCTRL
//==============================================================================

type PeripheralSYSCTRL struct {
	INTENCLR   SYSCTRL_INTENCLR_REG   // 0x00
	INTENSET   SYSCTRL_INTENSET_REG   // 0x04
	INTFLAG    SYSCTRL_INTFLAG_REG    // 0x08
	PCLKSR     SYSCTRL_PCLKSR_REG     // 0x0C
	XOSC       SYSCTRL_XOSC_REG       // 0x10
	_          [2]byte
	XOSC32K    SYSCTRL_XOSC32K_REG    // 0x14
	_          [2]byte
	OSC32K     SYSCTRL_OSC32K_REG     // 0x18
	OSCULP32K  SYSCTRL_OSCULP32K_REG  // 0x1C
	_          [3]byte
	OSC8M      SYSCTRL_OSC8M_REG      // 0x20
	DFLLCTRL   SYSCTRL_DFLLCTRL_REG   // 0x24
	_          [2]byte
	DFLLVAL    SYSCTRL_DFLLVAL_REG    // 0x28
	DFLLMUL    SYSCTRL_DFLLMUL_REG    // 0x2C
	DFLLSYNC   SYSCTRL_DFLLSYNC_REG   // 0x30
	_          [3]byte
	_          [16]byte               // BOD33, VREG, VREF
	DPLLCTRLA  SYSCTRL_DPLLCTRLA_REG  // 0x44
	_          [3]byte
	DPLLRATIO  SYSCTRL_DPLLRATIO_REG  // 0x48
	DPLLCTRLB  SYSCTRL_DPLLCTRLB_REG  // 0x4C
	DPLLSTATUS SYSCTRL_DPLLSTATUS_REG // 0x50
}

type SYSCTRL_INTENCLR_REG uint32

type SYSCTRL_INTENSET_REG uint32

type SYSCTRL_INTFLAG_REG uint32

type SYSCTRL_PCLKSR_REG uint32

func (s *SYSCTRL_PCLKSR_REG) GetXOSCRDY() bool {
	return volatile.LoadUint32((*uint32)(s))&(1<<0) != 0
}

func (s *SYSCTRL_PCLKSR_REG) GetXOSC32KRDY() bool {
	return volatile.LoadUint32((*uint32)(s))&(1<<1) != 0
}

func (s *SYSCTRL_PCLKSR_REG) GetOSC32KRDY() bool {
	return volatile.LoadUint32((*uint32)(s))&(1<<2) != 0
}

func (s *SYSCTRL_PCLKSR_REG) GetOSC8MRDY() bool {
	return volatile.LoadUint32((*uint32)(s))&(1<<3) != 0
}

func (s *SYSCTRL_PCLKSR_REG) GetDFLLRDY() bool {
	return volatile.LoadUint32((*uint32)(s))&(1<<4) != 0
}

func (s *SYSCTRL_PCLKSR_REG) GetDFLLLCKF() bool {
	return volatile.LoadUint32((*uint32)(s))&(1<<6) != 0
}

func (s *SYSCTRL_PCLKSR_REG) GetDFLLLCKC() bool {
	return volatile.LoadUint32((*uint32)(s))&(1<<7) != 0
}

func (s *SYSCTRL_PCLKSR_REG) GetDPLLLCKR() bool {
	return volatile.LoadUint32((*uint32)(s))&(1<<15) != 0
}

type SYSCTRL_XOSC_REG uint16

type SYSCTRL_XOSC_REG_GAIN uint16

const (
	SYSCTRL_XOSC_REG_GAIN_2MHZ  SYSCTRL_XOSC_REG_GAIN = 0x0
	SYSCTRL_XOSC_REG_GAIN_4MHZ  SYSCTRL_XOSC_REG_GAIN = 0x1
	SYSCTRL_XOSC_REG_GAIN_8MHZ  SYSCTRL_XOSC_REG_GAIN = 0x2
	SYSCTRL_XOSC_REG_GAIN_16MHZ SYSCTRL_XOSC_REG_GAIN = 0x3
	SYSCTRL_XOSC_REG_GAIN_30MHZ SYSCTRL_XOSC_REG_GAIN = 0x4
)

func (s *SYSCTRL_XOSC_REG) GetENABLE() bool {
	return volatile.LoadUint16((*uint16)(s))&(1<<1) != 0
}

func (s *SYSCTRL_XOSC_REG) SetENABLE(value bool) {
	v := volatile.LoadUint16((*uint16)(s))
	if value {
		volatile.StoreUint16((*uint16)(s), v|(1<<1))
	} else {
		volatile.StoreUint16((*uint16)(s), v&^(1<<1))
	}
}

func (s *SYSCTRL_XOSC_REG) GetXTALEN() bool {
	return volatile.LoadUint16((*uint16)(s))&(1<<2) != 0
}

func (s *SYSCTRL_XOSC_REG) SetXTALEN(value bool) {
	v := volatile.LoadUint16((*uint16)(s))
	if value {
		volatile.StoreUint16((*uint16)(s), v|(1<<2))
	} else {
		volatile.StoreUint16((*uint16)(s), v&^(1<<2))
	}
}

func (s *SYSCTRL_XOSC_REG) SetRUNSTDBY(value bool) {
	v := volatile.LoadUint16((*uint16)(s))
	if value {
		volatile.StoreUint16((*uint16)(s), v|(1<<6))
	} else {
		volatile.StoreUint16((*uint16)(s), v&^(1<<6))
	}
}

func (s *SYSCTRL_XOSC_REG) SetONDEMAND(value bool) {
	v := volatile.LoadUint16((*uint16)(s))
	if value {
		volatile.StoreUint16((*uint16)(s), v|(1<<7))
	} else {
		volatile.StoreUint16((*uint16)(s), v&^(1<<7))
	}
}

func (s *SYSCTRL_XOSC_REG) GetGAIN() SYSCTRL_XOSC_REG_GAIN {
	return SYSCTRL_XOSC_REG_GAIN((volatile.LoadUint16((*uint16)(s)) >> 8) & 0x7)
}

func (s *SYSCTRL_XOSC_REG) SetGAIN(value SYSCTRL_XOSC_REG_GAIN) {
	v := volatile.LoadUint16((*uint16)(s))
	volatile.StoreUint16((*uint16)(s), (v&^(0x7<<8))|(uint16(value&0x7)<<8))
}

func (s *SYSCTRL_XOSC_REG) SetAMPGC(value bool) {
	v := volatile.LoadUint16((*uint16)(s))
	if value {
		volatile.StoreUint16((*uint16)(s), v|(1<<11))
	} else {
		volatile.StoreUint16((*uint16)(s), v&^(1<<11))
	}
}

func (s *SYSCTRL_XOSC_REG) GetSTARTUP() uint8 {
	return uint8(volatile.LoadUint16((*uint16)(s)) >> 12)
}

func (s *SYSCTRL_XOSC_REG) SetSTARTUP(value uint8) {
	v := volatile.LoadUint16((*uint16)(s))
	volatile.StoreUint16((*uint16)(s), (v&^uint16(0xF<<12))|(uint16(value&0xF)<<12))
}

type SYSCTRL_XOSC32K_REG uint16

func (s *SYSCTRL_XOSC32K_REG) GetENABLE() bool {
	return volatile.LoadUint16((*uint16)(s))&(1<<1) != 0
}

func (s *SYSCTRL_XOSC32K_REG) SetENABLE(value bool) {
	v := volatile.LoadUint16((*uint16)(s))
	if value {
		volatile.StoreUint16((*uint16)(s), v|(1<<1))
	} else {
		volatile.StoreUint16((*uint16)(s), v&^(1<<1))
	}
}

func (s *SYSCTRL_XOSC32K_REG) SetXTALEN(value bool) {
	v := volatile.LoadUint16((*uint16)(s))
	if value {
		volatile.StoreUint16((*uint16)(s), v|(1<<2))
	} else {
		volatile.StoreUint16((*uint16)(s), v&^(1<<2))
	}
}

func (s *SYSCTRL_XOSC32K_REG) SetEN32K(value bool) {
	v := volatile.LoadUint16((*uint16)(s))
	if value {
		volatile.StoreUint16((*uint16)(s), v|(1<<3))
	} else {
		volatile.StoreUint16((*uint16)(s), v&^(1<<3))
	}
}

func (s *SYSCTRL_XOSC32K_REG) SetEN1K(value bool) {
	v := volatile.LoadUint16((*uint16)(s))
	if value {
		volatile.StoreUint16((*uint16)(s), v|(1<<4))
	} else {
		volatile.StoreUint16((*uint16)(s), v&^(1<<4))
	}
}

func (s *SYSCTRL_XOSC32K_REG) SetRUNSTDBY(value bool) {
	v := volatile.LoadUint16((*uint16)(s))
	if value {
		volatile.StoreUint16((*uint16)(s), v|(1<<6))
	} else {
		volatile.StoreUint16((*uint16)(s), v&^(1<<6))
	}
}

func (s *SYSCTRL_XOSC32K_REG) SetONDEMAND(value bool) {
	v := volatile.LoadUint16((*uint16)(s))
	if value {
		volatile.StoreUint16((*uint16)(s), v|(1<<7))
	} else {
		volatile.StoreUint16((*uint16)(s), v&^(1<<7))
	}
}

func (s *SYSCTRL_XOSC32K_REG) SetSTARTUP(value uint8) {
	v := volatile.LoadUint16((*uint16)(s))
	volatile.StoreUint16((*uint16)(s), (v&^uint16(0x7<<8))|(uint16(value&0x7)<<8))
}

func (s *SYSCTRL_XOSC32K_REG) SetWRTLOCK(value bool) {
	v := volatile.LoadUint16((*uint16)(s))
	if value {
		volatile.StoreUint16((*uint16)(s), v|(1<<12))
	} else {
		volatile.StoreUint16((*uint16)(s), v&^uint16(1<<12))
	}
}

type SYSCTRL_OSC32K_REG uint32

func (s *SYSCTRL_OSC32K_REG) GetENABLE() bool {
	return volatile.LoadUint32((*uint32)(s))&(1<<1) != 0
}

func (s *SYSCTRL_OSC32K_REG) SetENABLE(value bool) {
	v := volatile.LoadUint32((*uint32)(s))
	if value {
		volatile.StoreUint32((*uint32)(s), v|(1<<1))
	} else {
		volatile.StoreUint32((*uint32)(s), v&^uint32(1<<1))
	}
}

func (s *SYSCTRL_OSC32K_REG) GetEN32K() bool {
	return volatile.LoadUint32((*uint32)(s))&(1<<2) != 0
}

func (s *SYSCTRL_OSC32K_REG) SetEN32K(value bool) {
	v := volatile.LoadUint32((*uint32)(s))
	if value {
		volatile.StoreUint32((*uint32)(s), v|(1<<2))
	} else {
		volatile.StoreUint32((*uint32)(s), v&^uint32(1<<2))
	}
}

func (s *SYSCTRL_OSC32K_REG) SetEN1K(value bool) {
	v := volatile.LoadUint32((*uint32)(s))
	if value {
		volatile.StoreUint32((*uint32)(s), v|(1<<3))
	} else {
		volatile.StoreUint32((*uint32)(s), v&^uint32(1<<3))
	}
}

func (s *SYSCTRL_OSC32K_REG) SetRUNSTDBY(value bool) {
	v := volatile.LoadUint32((*uint32)(s))
	if value {
		volatile.StoreUint32((*uint32)(s), v|(1<<6))
	} else {
		volatile.StoreUint32((*uint32)(s), v&^uint32(1<<6))
	}
}

func (s *SYSCTRL_OSC32K_REG) SetONDEMAND(value bool) {
	v := volatile.LoadUint32((*uint32)(s))
	if value {
		volatile.StoreUint32((*uint32)(s), v|(1<<7))
	} else {
		volatile.StoreUint32((*uint32)(s), v&^uint32(1<<7))
	}
}

func (s *SYSCTRL_OSC32K_REG) GetSTARTUP() uint8 {
	return uint8((volatile.LoadUint32((*uint32)(s)) >> 8) & 0x7)
}

func (s *SYSCTRL_OSC32K_REG) SetSTARTUP(value uint8) {
	v := volatile.LoadUint32((*uint32)(s))
	volatile.StoreUint32((*uint32)(s), (v&^uint32(0x7<<8))|(uint32(value&0x7)<<8))
}

func (s *SYSCTRL_OSC32K_REG) SetWRTLOCK(value bool) {
	v := volatile.LoadUint32((*uint32)(s))
	if value {
		volatile.StoreUint32((*uint32)(s), v|(1<<12))
	} else {
		volatile.StoreUint32((*uint32)(s), v&^uint32(1<<12))
	}
}

func (s *SYSCTRL_OSC32K_REG) SetCALIB(value uint8) {
	v := volatile.LoadUint32((*uint32)(s))
	volatile.StoreUint32((*uint32)(s), (v&^uint32(0x7F<<16))|(uint32(value&0x7F)<<16))
}

type SYSCTRL_OSCULP32K_REG uint8

func (s *SYSCTRL_OSCULP32K_REG) GetCALIB() uint8 {
	return volatile.LoadUint8((*uint8)(s)) & 0x1F
}

func (s *SYSCTRL_OSCULP32K_REG) SetCALIB(value uint8) {
	v := volatile.LoadUint8((*uint8)(s))
	volatile.StoreUint8((*uint8)(s), (v&^uint8(0x1F))|(value&0x1F))
}

func (s *SYSCTRL_OSCULP32K_REG) SetWRTLOCK(value bool) {
	v := volatile.LoadUint8((*uint8)(s))
	if value {
		volatile.StoreUint8((*uint8)(s), v|(1<<7))
	} else {
		volatile.StoreUint8((*uint8)(s), v&^uint8(1<<7))
	}
}

type SYSCTRL_OSC8M_REG uint32

type SYSCTRL_OSC8M_REG_PRESC uint32

const (
	SYSCTRL_OSC8M_REG_PRESC_DIV1 SYSCTRL_OSC8M_REG_PRESC = 0x0
	SYSCTRL_OSC8M_REG_PRESC_DIV2 SYSCTRL_OSC8M_REG_PRESC = 0x1
	SYSCTRL_OSC8M_REG_PRESC_DIV4 SYSCTRL_OSC8M_REG_PRESC = 0x2
	SYSCTRL_OSC8M_REG_PRESC_DIV8 SYSCTRL_OSC8M_REG_PRESC = 0x3
)

type SYSCTRL_OSC8M_REG_FRANGE uint32

const (
	SYSCTRL_OSC8M_REG_FRANGE_4TO6MHZ   SYSCTRL_OSC8M_REG_FRANGE = 0x0
	SYSCTRL_OSC8M_REG_FRANGE_6TO8MHZ   SYSCTRL_OSC8M_REG_FRANGE = 0x1
	SYSCTRL_OSC8M_REG_FRANGE_8TO11MHZ  SYSCTRL_OSC8M_REG_FRANGE = 0x2
	SYSCTRL_OSC8M_REG_FRANGE_11TO15MHZ SYSCTRL_OSC8M_REG_FRANGE = 0x3
)

func (s *SYSCTRL_OSC8M_REG) GetENABLE() bool {
	return volatile.LoadUint32((*uint32)(s))&(1<<1) != 0
}

func (s *SYSCTRL_OSC8M_REG) SetENABLE(value bool) {
	v := volatile.LoadUint32((*uint32)(s))
	if value {
		volatile.StoreUint32((*uint32)(s), v|(1<<1))
	} else {
		volatile.StoreUint32((*uint32)(s), v&^uint32(1<<1))
	}
}

func (s *SYSCTRL_OSC8M_REG) SetRUNSTDBY(value bool) {
	v := volatile.LoadUint32((*uint32)(s))
	if value {
		volatile.StoreUint32((*uint32)(s), v|(1<<6))
	} else {
		volatile.StoreUint32((*uint32)(s), v&^uint32(1<<6))
	}
}

func (s *SYSCTRL_OSC8M_REG) SetONDEMAND(value bool) {
	v := volatile.LoadUint32((*uint32)(s))
	if value {
		volatile.StoreUint32((*uint32)(s), v|(1<<7))
	} else {
		volatile.StoreUint32((*uint32)(s), v&^uint32(1<<7))
	}
}

func (s *SYSCTRL_OSC8M_REG) GetPRESC() SYSCTRL_OSC8M_REG_PRESC {
	return SYSCTRL_OSC8M_REG_PRESC((volatile.LoadUint32((*uint32)(s)) >> 8) & 0x3)
}

func (s *SYSCTRL_OSC8M_REG) SetPRESC(value SYSCTRL_OSC8M_REG_PRESC) {
	v := volatile.LoadUint32((*uint32)(s))
	volatile.StoreUint32((*uint32)(s), (v&^uint32(0x3<<8))|(uint32(value&0x3)<<8))
}

func (s *SYSCTRL_OSC8M_REG) SetCALIB(value uint16) {
	v := volatile.LoadUint32((*uint32)(s))
	volatile.StoreUint32((*uint32)(s), (v&^uint32(0xFFF<<16))|(uint32(value&0xFFF)<<16))
}

func (s *SYSCTRL_OSC8M_REG) SetFRANGE(value SYSCTRL_OSC8M_REG_FRANGE) {
	v := volatile.LoadUint32((*uint32)(s))
	volatile.StoreUint32((*uint32)(s), (v&^uint32(0x3<<30))|(uint32(value&0x3)<<30))
}

type SYSCTRL_DFLLCTRL_REG uint16

func (s *SYSCTRL_DFLLCTRL_REG) GetENABLE() bool {
	return volatile.LoadUint16((*uint16)(s))&(1<<1) != 0
}

func (s *SYSCTRL_DFLLCTRL_REG) SetENABLE(value bool) {
	v := volatile.LoadUint16((*uint16)(s))
	if value {
		volatile.StoreUint16((*uint16)(s), v|(1<<1))
	} else {
		volatile.StoreUint16((*uint16)(s), v&^uint16(1<<1))
	}
}

func (s *SYSCTRL_DFLLCTRL_REG) GetMODE() bool {
	return volatile.LoadUint16((*uint16)(s))&(1<<2) != 0
}

func (s *SYSCTRL_DFLLCTRL_REG) SetMODE(value bool) {
	v := volatile.LoadUint16((*uint16)(s))
	if value {
		volatile.StoreUint16((*uint16)(s), v|(1<<2))
	} else {
		volatile.StoreUint16((*uint16)(s), v&^uint16(1<<2))
	}
}

func (s *SYSCTRL_DFLLCTRL_REG) SetSTABLE(value bool) {
	v := volatile.LoadUint16((*uint16)(s))
	if value {
		volatile.StoreUint16((*uint16)(s), v|(1<<3))
	} else {
		volatile.StoreUint16((*uint16)(s), v&^uint16(1<<3))
	}
}

func (s *SYSCTRL_DFLLCTRL_REG) SetRUNSTDBY(value bool) {
	v := volatile.LoadUint16((*uint16)(s))
	if value {
		volatile.StoreUint16((*uint16)(s), v|(1<<6))
	} else {
		volatile.StoreUint16((*uint16)(s), v&^uint16(1<<6))
	}
}

func (s *SYSCTRL_DFLLCTRL_REG) SetONDEMAND(value bool) {
	v := volatile.LoadUint16((*uint16)(s))
	if value {
		volatile.StoreUint16((*uint16)(s), v|(1<<7))
	} else {
		volatile.StoreUint16((*uint16)(s), v&^uint16(1<<7))
	}
}

func (s *SYSCTRL_DFLLCTRL_REG) SetWAITLOCK(value bool) {
	v := volatile.LoadUint16((*uint16)(s))
	if value {
		volatile.StoreUint16((*uint16)(s), v|(1<<11))
	} else {
		volatile.StoreUint16((*uint16)(s), v&^uint16(1<<11))
	}
}

type SYSCTRL_DFLLVAL_REG uint32

func (s *SYSCTRL_DFLLVAL_REG) SetFINE(value uint16) {
	v := volatile.LoadUint32((*uint32)(s))
	volatile.StoreUint32((*uint32)(s), (v&^uint32(0x3FF))|uint32(value&0x3FF))
}

func (s *SYSCTRL_DFLLVAL_REG) SetCOARSE(value uint8) {
	v := volatile.LoadUint32((*uint32)(s))
	volatile.StoreUint32((*uint32)(s), (v&^uint32(0x3F<<10))|(uint32(value&0x3F)<<10))
}

type SYSCTRL_DFLLMUL_REG uint32

func (s *SYSCTRL_DFLLMUL_REG) GetMUL() uint16 {
	return uint16(volatile.LoadUint32((*uint32)(s)))
}

func (s *SYSCTRL_DFLLMUL_REG) SetMUL(value uint16) {
	v := volatile.LoadUint32((*uint32)(s))
	volatile.StoreUint32((*uint32)(s), (v&^uint32(0xFFFF))|uint32(value))
}

func (s *SYSCTRL_DFLLMUL_REG) SetFSTEP(value uint16) {
	v := volatile.LoadUint32((*uint32)(s))
	volatile.StoreUint32((*uint32)(s), (v&^uint32(0x3FF<<16))|(uint32(value&0x3FF)<<16))
}

func (s *SYSCTRL_DFLLMUL_REG) SetCSTEP(value uint8) {
	v := volatile.LoadUint32((*uint32)(s))
	volatile.StoreUint32((*uint32)(s), (v&^uint32(0x3F<<26))|(uint32(value&0x3F)<<26))
}

type SYSCTRL_DFLLSYNC_REG uint8

func (s *SYSCTRL_DFLLSYNC_REG) SetREADREQ(value bool) {
	v := volatile.LoadUint8((*uint8)(s))
	if value {
		volatile.StoreUint8((*uint8)(s), v|(1<<7))
	} else {
		volatile.StoreUint8((*uint8)(s), v&^uint8(1<<7))
	}
}

type SYSCTRL_DPLLCTRLA_REG uint8

func (s *SYSCTRL_DPLLCTRLA_REG) GetENABLE() bool {
	return volatile.LoadUint8((*uint8)(s))&(1<<1) != 0
}

func (s *SYSCTRL_DPLLCTRLA_REG) SetENABLE(value bool) {
	v := volatile.LoadUint8((*uint8)(s))
	if value {
		volatile.StoreUint8((*uint8)(s), v|(1<<1))
	} else {
		volatile.StoreUint8((*uint8)(s), v&^uint8(1<<1))
	}
}

func (s *SYSCTRL_DPLLCTRLA_REG) SetRUNSTDBY(value bool) {
	v := volatile.LoadUint8((*uint8)(s))
	if value {
		volatile.StoreUint8((*uint8)(s), v|(1<<6))
	} else {
		volatile.StoreUint8((*uint8)(s), v&^uint8(1<<6))
	}
}

func (s *SYSCTRL_DPLLCTRLA_REG) SetONDEMAND(value bool) {
	v := volatile.LoadUint8((*uint8)(s))
	if value {
		volatile.StoreUint8((*uint8)(s), v|(1<<7))
	} else {
		volatile.StoreUint8((*uint8)(s), v&^uint8(1<<7))
	}
}

type SYSCTRL_DPLLRATIO_REG uint32

func (s *SYSCTRL_DPLLRATIO_REG) GetLDR() uint16 {
	return uint16(volatile.LoadUint32((*uint32)(s)) & 0xFFF)
}

func (s *SYSCTRL_DPLLRATIO_REG) SetLDR(value uint16) {
	v := volatile.LoadUint32((*uint32)(s))
	volatile.StoreUint32((*uint32)(s), (v&^uint32(0xFFF))|uint32(value&0xFFF))
}

func (s *SYSCTRL_DPLLRATIO_REG) GetLDRFRAC() uint8 {
	return uint8((volatile.LoadUint32((*uint32)(s)) >> 16) & 0xF)
}

func (s *SYSCTRL_DPLLRATIO_REG) SetLDRFRAC(value uint8) {
	v := volatile.LoadUint32((*uint32)(s))
	volatile.StoreUint32((*uint32)(s), (v&^uint32(0xF<<16))|(uint32(value&0xF)<<16))
}

type SYSCTRL_DPLLCTRLB_REG uint32

type SYSCTRL_DPLLCTRLB_REG_FILTER uint32

const (
	SYSCTRL_DPLLCTRLB_REG_FILTER_DEFAULT SYSCTRL_DPLLCTRLB_REG_FILTER = 0x0
	SYSCTRL_DPLLCTRLB_REG_FILTER_LBFILT  SYSCTRL_DPLLCTRLB_REG_FILTER = 0x1
	SYSCTRL_DPLLCTRLB_REG_FILTER_HBFILT  SYSCTRL_DPLLCTRLB_REG_FILTER = 0x2
	SYSCTRL_DPLLCTRLB_REG_FILTER_HDFILT  SYSCTRL_DPLLCTRLB_REG_FILTER = 0x3
)

type SYSCTRL_DPLLCTRLB_REG_REFCLK uint32

const (
	SYSCTRL_DPLLCTRLB_REG_REFCLK_REF0 SYSCTRL_DPLLCTRLB_REG_REFCLK = 0x0
	SYSCTRL_DPLLCTRLB_REG_REFCLK_REF1 SYSCTRL_DPLLCTRLB_REG_REFCLK = 0x1
	SYSCTRL_DPLLCTRLB_REG_REFCLK_GCLK SYSCTRL_DPLLCTRLB_REG_REFCLK = 0x2
)

type SYSCTRL_DPLLCTRLB_REG_LTIME uint32

const (
	SYSCTRL_DPLLCTRLB_REG_LTIME_DEFAULT SYSCTRL_DPLLCTRLB_REG_LTIME = 0x0
	SYSCTRL_DPLLCTRLB_REG_LTIME_8MS     SYSCTRL_DPLLCTRLB_REG_LTIME = 0x4
	SYSCTRL_DPLLCTRLB_REG_LTIME_9MS     SYSCTRL_DPLLCTRLB_REG_LTIME = 0x5
	SYSCTRL_DPLLCTRLB_REG_LTIME_10MS    SYSCTRL_DPLLCTRLB_REG_LTIME = 0x6
	SYSCTRL_DPLLCTRLB_REG_LTIME_11MS    SYSCTRL_DPLLCTRLB_REG_LTIME = 0x7
)

func (s *SYSCTRL_DPLLCTRLB_REG) SetFILTER(value SYSCTRL_DPLLCTRLB_REG_FILTER) {
	v := volatile.LoadUint32((*uint32)(s))
	volatile.StoreUint32((*uint32)(s), (v&^uint32(0x3))|uint32(value&0x3))
}

func (s *SYSCTRL_DPLLCTRLB_REG) SetLPEN(value bool) {
	v := volatile.LoadUint32((*uint32)(s))
	if value {
		volatile.StoreUint32((*uint32)(s), v|(1<<2))
	} else {
		volatile.StoreUint32((*uint32)(s), v&^uint32(1<<2))
	}
}

func (s *SYSCTRL_DPLLCTRLB_REG) SetWUF(value bool) {
	v := volatile.LoadUint32((*uint32)(s))
	if value {
		volatile.StoreUint32((*uint32)(s), v|(1<<3))
	} else {
		volatile.StoreUint32((*uint32)(s), v&^uint32(1<<3))
	}
}

func (s *SYSCTRL_DPLLCTRLB_REG) GetREFCLK() SYSCTRL_DPLLCTRLB_REG_REFCLK {
	return SYSCTRL_DPLLCTRLB_REG_REFCLK((volatile.LoadUint32((*uint32)(s)) >> 4) & 0x3)
}

func (s *SYSCTRL_DPLLCTRLB_REG) SetREFCLK(value SYSCTRL_DPLLCTRLB_REG_REFCLK) {
	v := volatile.LoadUint32((*uint32)(s))
	volatile.StoreUint32((*uint32)(s), (v&^uint32(0x3<<4))|(uint32(value&0x3)<<4))
}

func (s *SYSCTRL_DPLLCTRLB_REG) SetLTIME(value SYSCTRL_DPLLCTRLB_REG_LTIME) {
	v := volatile.LoadUint32((*uint32)(s))
	volatile.StoreUint32((*uint32)(s), (v&^uint32(0x7<<8))|(uint32(value&0x7)<<8))
}

func (s *SYSCTRL_DPLLCTRLB_REG) SetLBYPASS(value bool) {
	v := volatile.LoadUint32((*uint32)(s))
	if value {
		volatile.StoreUint32((*uint32)(s), v|(1<<12))
	} else {
		volatile.StoreUint32((*uint32)(s), v&^uint32(1<<12))
	}
}

func (s *SYSCTRL_DPLLCTRLB_REG) GetDIV() uint16 {
	return uint16((volatile.LoadUint32((*uint32)(s)) >> 16) & 0x3FF)
}

func (s *SYSCTRL_DPLLCTRLB_REG) SetDIV(value uint16) {
	v := volatile.LoadUint32((*uint32)(s))
	volatile.StoreUint32((*uint32)(s), (v&^uint32(0x3FF<<16))|(uint32(value&0x3FF)<<16))
}

type SYSCTRL_DPLLSTATUS_REG uint8

func (s *SYSCTRL_DPLLSTATUS_REG) GetLOCK() bool {
	return volatile.LoadUint8((*uint8)(s))&(1<<0) != 0
}

func (s *SYSCTRL_DPLLSTATUS_REG) GetCLKRDY() bool {
	return volatile.LoadUint8((*uint8)(s))&(1<<1) != 0
}

func (s *SYSCTRL_DPLLSTATUS_REG) GetENABLE() bool {
	return volatile.LoadUint8((*uint8)(s))&(1<<2) != 0
}

//==============================================================================
// GCLK
//==============================================================================

// GENCTRL and GENDIV are single registers multiplexed over all generators by
// their ID field, and CLKCTRL over all peripheral channels. Writes must place
// the ID and the payload fields in one store, so these registers also expose
// whole-word Load/Store along with the field position constants.

type PeripheralGCLK struct {
	CTRL    GCLK_CTRL_REG    // 0x0
	STATUS  GCLK_STATUS_REG  // 0x1
	CLKCTRL GCLK_CLKCTRL_REG // 0x2
	GENCTRL GCLK_GENCTRL_REG // 0x4
	GENDIV  GCLK_GENDIV_REG  // 0x8
}

type GCLK_CTRL_REG uint8

func (g *GCLK_CTRL_REG) SetSWRST(value bool) {
	v := volatile.LoadUint8((*uint8)(g))
	if value {
		volatile.StoreUint8((*uint8)(g), v|(1<<0))
	} else {
		volatile.StoreUint8((*uint8)(g), v&^uint8(1<<0))
	}
}

type GCLK_STATUS_REG uint8

func (g *GCLK_STATUS_REG) GetSYNCBUSY() bool {
	return volatile.LoadUint8((*uint8)(g))&(1<<7) != 0
}

type GCLK_CLKCTRL_REG uint16

type GCLK_CLKCTRL_REG_GEN uint16

const (
	GCLK_CLKCTRL_REG_GEN_GCLK0 GCLK_CLKCTRL_REG_GEN = 0x0
	GCLK_CLKCTRL_REG_GEN_GCLK1 GCLK_CLKCTRL_REG_GEN = 0x1
	GCLK_CLKCTRL_REG_GEN_GCLK2 GCLK_CLKCTRL_REG_GEN = 0x2
	GCLK_CLKCTRL_REG_GEN_GCLK3 GCLK_CLKCTRL_REG_GEN = 0x3
	GCLK_CLKCTRL_REG_GEN_GCLK4 GCLK_CLKCTRL_REG_GEN = 0x4
	GCLK_CLKCTRL_REG_GEN_GCLK5 GCLK_CLKCTRL_REG_GEN = 0x5
	GCLK_CLKCTRL_REG_GEN_GCLK6 GCLK_CLKCTRL_REG_GEN = 0x6
	GCLK_CLKCTRL_REG_GEN_GCLK7 GCLK_CLKCTRL_REG_GEN = 0x7
	GCLK_CLKCTRL_REG_GEN_GCLK8 GCLK_CLKCTRL_REG_GEN = 0x8
)

const (
	GCLK_CLKCTRL_REG_IDPos      = 0
	GCLK_CLKCTRL_REG_GENPos     = 8
	GCLK_CLKCTRL_REG_CLKENPos   = 14
	GCLK_CLKCTRL_REG_WRTLOCKPos = 15
)

func (g *GCLK_CLKCTRL_REG) Load() GCLK_CLKCTRL_REG {
	return GCLK_CLKCTRL_REG(volatile.LoadUint16((*uint16)(g)))
}

func (g *GCLK_CLKCTRL_REG) Store(value GCLK_CLKCTRL_REG) {
	volatile.StoreUint16((*uint16)(g), uint16(value))
}

func (g *GCLK_CLKCTRL_REG) GetID() uint8 {
	return uint8(volatile.LoadUint16((*uint16)(g)) & 0x3F)
}

func (g *GCLK_CLKCTRL_REG) SetID(value uint8) {
	v := volatile.LoadUint16((*uint16)(g))
	volatile.StoreUint16((*uint16)(g), (v&^uint16(0x3F))|uint16(value&0x3F))
}

func (g *GCLK_CLKCTRL_REG) GetGEN() GCLK_CLKCTRL_REG_GEN {
	return GCLK_CLKCTRL_REG_GEN((volatile.LoadUint16((*uint16)(g)) >> 8) & 0xF)
}

func (g *GCLK_CLKCTRL_REG) GetCLKEN() bool {
	return volatile.LoadUint16((*uint16)(g))&(1<<14) != 0
}

type GCLK_GENCTRL_REG uint32

type GCLK_GENCTRL_REG_SRC uint32

const (
	GCLK_GENCTRL_REG_SRC_XOSC      GCLK_GENCTRL_REG_SRC = 0x0
	GCLK_GENCTRL_REG_SRC_GCLKIN    GCLK_GENCTRL_REG_SRC = 0x1
	GCLK_GENCTRL_REG_SRC_GCLKGEN1  GCLK_GENCTRL_REG_SRC = 0x2
	GCLK_GENCTRL_REG_SRC_OSCULP32K GCLK_GENCTRL_REG_SRC = 0x3
	GCLK_GENCTRL_REG_SRC_OSC32K    GCLK_GENCTRL_REG_SRC = 0x4
	GCLK_GENCTRL_REG_SRC_XOSC32K   GCLK_GENCTRL_REG_SRC = 0x5
	GCLK_GENCTRL_REG_SRC_OSC8M     GCLK_GENCTRL_REG_SRC = 0x6
	GCLK_GENCTRL_REG_SRC_DFLL48M   GCLK_GENCTRL_REG_SRC = 0x7
	GCLK_GENCTRL_REG_SRC_DPLL96M   GCLK_GENCTRL_REG_SRC = 0x8
)

const (
	GCLK_GENCTRL_REG_IDPos       = 0
	GCLK_GENCTRL_REG_SRCPos      = 8
	GCLK_GENCTRL_REG_GENENPos    = 16
	GCLK_GENCTRL_REG_IDCPos      = 17
	GCLK_GENCTRL_REG_OOVPos      = 18
	GCLK_GENCTRL_REG_OEPos       = 19
	GCLK_GENCTRL_REG_DIVSELPos   = 20
	GCLK_GENCTRL_REG_RUNSTDBYPos = 21
)

func (g *GCLK_GENCTRL_REG) Load() GCLK_GENCTRL_REG {
	return GCLK_GENCTRL_REG(volatile.LoadUint32((*uint32)(g)))
}

func (g *GCLK_GENCTRL_REG) Store(value GCLK_GENCTRL_REG) {
	volatile.StoreUint32((*uint32)(g), uint32(value))
}

type GCLK_GENDIV_REG uint32

const (
	GCLK_GENDIV_REG_IDPos  = 0
	GCLK_GENDIV_REG_DIVPos = 8
)

func (g *GCLK_GENDIV_REG) Load() GCLK_GENDIV_REG {
	return GCLK_GENDIV_REG(volatile.LoadUint32((*uint32)(g)))
}

func (g *GCLK_GENDIV_REG) Store(value GCLK_GENDIV_REG) {
	volatile.StoreUint32((*uint32)(g), uint32(value))
}

//==============================================================================
// PM
//==============================================================================

type PeripheralPM struct {
	CTRL     PM_CTRL_REG  // 0x00
	SLEEP    PM_SLEEP_REG // 0x01
	_        [6]byte
	CPUSEL   PM_CPUSEL_REG  // 0x08
	APBASEL  PM_APBASEL_REG // 0x09
	APBBSEL  PM_APBBSEL_REG // 0x0A
	APBCSEL  PM_APBCSEL_REG // 0x0B
	_        [8]byte
	AHBMASK  PM_AHBMASK_REG  // 0x14
	APBAMASK PM_APBAMASK_REG // 0x18
	APBBMASK PM_APBBMASK_REG // 0x1C
	APBCMASK PM_APBCMASK_REG // 0x20
}

type PM_CTRL_REG uint8

type PM_SLEEP_REG uint8

type PM_CPUSEL_REG uint8

type PM_CPUSEL_REG_CPUDIV uint8

const (
	PM_CPUSEL_REG_CPUDIV_DIV1   PM_CPUSEL_REG_CPUDIV = 0x0
	PM_CPUSEL_REG_CPUDIV_DIV2   PM_CPUSEL_REG_CPUDIV = 0x1
	PM_CPUSEL_REG_CPUDIV_DIV4   PM_CPUSEL_REG_CPUDIV = 0x2
	PM_CPUSEL_REG_CPUDIV_DIV8   PM_CPUSEL_REG_CPUDIV = 0x3
	PM_CPUSEL_REG_CPUDIV_DIV16  PM_CPUSEL_REG_CPUDIV = 0x4
	PM_CPUSEL_REG_CPUDIV_DIV32  PM_CPUSEL_REG_CPUDIV = 0x5
	PM_CPUSEL_REG_CPUDIV_DIV64  PM_CPUSEL_REG_CPUDIV = 0x6
	PM_CPUSEL_REG_CPUDIV_DIV128 PM_CPUSEL_REG_CPUDIV = 0x7
)

func (p *PM_CPUSEL_REG) SetCPUDIV(value PM_CPUSEL_REG_CPUDIV) {
	v := volatile.LoadUint8((*uint8)(p))
	volatile.StoreUint8((*uint8)(p), (v&^uint8(0x7))|uint8(value&0x7))
}

type PM_APBASEL_REG uint8

type PM_APBBSEL_REG uint8

type PM_APBCSEL_REG uint8

// Each bus mask register gates one bit per peripheral. EnableMask and
// DisableMask perform a single read-modify-write so no intermediate state is
// observable on the bus.

type PM_AHBMASK_REG uint32

func (p *PM_AHBMASK_REG) Get() uint32 { return volatile.LoadUint32((*uint32)(p)) }

func (p *PM_AHBMASK_REG) EnableMask(mask uint32) {
	v := volatile.LoadUint32((*uint32)(p))
	volatile.StoreUint32((*uint32)(p), v|mask)
}

func (p *PM_AHBMASK_REG) DisableMask(mask uint32) {
	v := volatile.LoadUint32((*uint32)(p))
	volatile.StoreUint32((*uint32)(p), v&^mask)
}

type PM_APBAMASK_REG uint32

func (p *PM_APBAMASK_REG) Get() uint32 { return volatile.LoadUint32((*uint32)(p)) }

func (p *PM_APBAMASK_REG) EnableMask(mask uint32) {
	v := volatile.LoadUint32((*uint32)(p))
	volatile.StoreUint32((*uint32)(p), v|mask)
}

func (p *PM_APBAMASK_REG) DisableMask(mask uint32) {
	v := volatile.LoadUint32((*uint32)(p))
	volatile.StoreUint32((*uint32)(p), v&^mask)
}

type PM_APBBMASK_REG uint32

func (p *PM_APBBMASK_REG) Get() uint32 { return volatile.LoadUint32((*uint32)(p)) }

func (p *PM_APBBMASK_REG) EnableMask(mask uint32) {
	v := volatile.LoadUint32((*uint32)(p))
	volatile.StoreUint32((*uint32)(p), v|mask)
}

func (p *PM_APBBMASK_REG) DisableMask(mask uint32) {
	v := volatile.LoadUint32((*uint32)(p))
	volatile.StoreUint32((*uint32)(p), v&^mask)
}

type PM_APBCMASK_REG uint32

func (p *PM_APBCMASK_REG) Get() uint32 { return volatile.LoadUint32((*uint32)(p)) }

func (p *PM_APBCMASK_REG) EnableMask(mask uint32) {
	v := volatile.LoadUint32((*uint32)(p))
	volatile.StoreUint32((*uint32)(p), v|mask)
}

func (p *PM_APBCMASK_REG) DisableMask(mask uint32) {
	v := volatile.LoadUint32((*uint32)(p))
	volatile.StoreUint32((*uint32)(p), v&^mask)
}

//==============================================================================
// WDT
//==============================================================================

type PeripheralWDT struct {
	CTRL     WDT_CTRL_REG     // 0x0
	CONFIG   WDT_CONFIG_REG   // 0x1
	EWCTRL   WDT_EWCTRL_REG   // 0x2
	_        [1]byte
	INTENCLR WDT_INTENCLR_REG // 0x4
	INTENSET WDT_INTENSET_REG // 0x5
	INTFLAG  WDT_INTFLAG_REG  // 0x6
	STATUS   WDT_STATUS_REG   // 0x7
	CLEAR    WDT_CLEAR_REG    // 0x8
}

type WDT_CTRL_REG uint8

func (w *WDT_CTRL_REG) GetENABLE() bool {
	return volatile.LoadUint8((*uint8)(w))&(1<<1) != 0
}

func (w *WDT_CTRL_REG) SetENABLE(value bool) {
	v := volatile.LoadUint8((*uint8)(w))
	if value {
		volatile.StoreUint8((*uint8)(w), v|(1<<1))
	} else {
		volatile.StoreUint8((*uint8)(w), v&^uint8(1<<1))
	}
}

func (w *WDT_CTRL_REG) SetWEN(value bool) {
	v := volatile.LoadUint8((*uint8)(w))
	if value {
		volatile.StoreUint8((*uint8)(w), v|(1<<2))
	} else {
		volatile.StoreUint8((*uint8)(w), v&^uint8(1<<2))
	}
}

func (w *WDT_CTRL_REG) GetALWAYSON() bool {
	return volatile.LoadUint8((*uint8)(w))&(1<<7) != 0
}

func (w *WDT_CTRL_REG) SetALWAYSON(value bool) {
	v := volatile.LoadUint8((*uint8)(w))
	if value {
		volatile.StoreUint8((*uint8)(w), v|(1<<7))
	} else {
		volatile.StoreUint8((*uint8)(w), v&^uint8(1<<7))
	}
}

type WDT_CONFIG_REG uint8

func (w *WDT_CONFIG_REG) GetPER() uint8 {
	return volatile.LoadUint8((*uint8)(w)) & 0xF
}

func (w *WDT_CONFIG_REG) SetPER(value uint8) {
	v := volatile.LoadUint8((*uint8)(w))
	volatile.StoreUint8((*uint8)(w), (v&^uint8(0xF))|(value&0xF))
}

func (w *WDT_CONFIG_REG) SetWINDOW(value uint8) {
	v := volatile.LoadUint8((*uint8)(w))
	volatile.StoreUint8((*uint8)(w), (v&^uint8(0xF<<4))|((value&0xF)<<4))
}

type WDT_EWCTRL_REG uint8

type WDT_INTENCLR_REG uint8

type WDT_INTENSET_REG uint8

type WDT_INTFLAG_REG uint8

type WDT_STATUS_REG uint8

func (w *WDT_STATUS_REG) GetSYNCBUSY() bool {
	return volatile.LoadUint8((*uint8)(w))&(1<<7) != 0
}

type WDT_CLEAR_REG uint8

// WDT_CLEAR_REG_CLEAR_KEY is the magic value restarting the watchdog period.
const WDT_CLEAR_REG_CLEAR_KEY uint8 = 0xA5

func (w *WDT_CLEAR_REG) SetCLEAR(value uint8) {
	volatile.StoreUint8((*uint8)(w), value)
}
