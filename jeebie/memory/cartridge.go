package memory

import "fmt"

const titleLength = 11

const (
	titleAddress         = 0x134
	cartridgeTypeAddress = 0x147
	romSizeAddress       = 0x148
	ramSizeAddress       = 0x149
)

// MBCType identifies which mapper family a cartridge's header selects.
type MBCType uint8

const (
	NoMBCType MBCType = iota
	MBC1Type
	MBC1MultiType
	MBC2Type
	MBC3Type
	MBC5Type
	MBCUnknownType
)

// Cartridge holds the raw image and the header-derived facts the mapper
// factory and MMU need: which MBC family to instantiate, how many ROM/RAM
// banks exist, and whether battery-backed RAM, RTC or rumble are present.
type Cartridge struct {
	data  []byte
	title string

	mbcType      MBCType
	hasBattery   bool
	hasRTC       bool
	hasRumble    bool
	romBankCount uint16
	ramBankCount uint8
}

// NewCartridge creates an empty, headerless cartridge — useful only for
// booting the emulator with no ROM loaded, e.g. to inspect post-bootrom
// state in isolation.
func NewCartridge() *Cartridge {
	return &Cartridge{
		data:    make([]byte, 0x8000),
		mbcType: NoMBCType,
	}
}

// NewCartridgeWithData parses a raw cartridge image's header and returns the
// Cartridge describing it. An error is returned if the image is too small to
// contain a header, if the header names an unsupported mapper, or if the
// declared ROM size doesn't match the image length — all fatal
// configuration errors the caller is expected to abort on.
func NewCartridgeWithData(data []byte) (*Cartridge, error) {
	if len(data) < 0x150 {
		return nil, fmt.Errorf("cartridge image too small to contain a header: %d bytes", len(data))
	}

	romBankCount, err := decodeROMBankCount(data[romSizeAddress])
	if err != nil {
		return nil, err
	}
	if expected := int(romBankCount) * 0x4000; expected != len(data) {
		return nil, fmt.Errorf("cartridge image size %d does not match header-declared ROM size %d", len(data), expected)
	}

	ramBankCount, err := decodeRAMBankCount(data[ramSizeAddress])
	if err != nil {
		return nil, err
	}

	mbcType, hasBattery, hasRTC, hasRumble, err := decodeCartridgeType(data[cartridgeTypeAddress])
	if err != nil {
		return nil, err
	}

	return &Cartridge{
		data:         append([]byte(nil), data...),
		title:        cleanGameboyTitle(data[titleAddress : titleAddress+titleLength]),
		mbcType:      mbcType,
		hasBattery:   hasBattery,
		hasRTC:       hasRTC,
		hasRumble:    hasRumble,
		romBankCount: romBankCount,
		ramBankCount: ramBankCount,
	}, nil
}

// decodeCartridgeType maps the byte at 0x147 to a mapper family plus the
// auxiliary capability flags (battery/RTC/rumble) that affect construction.
func decodeCartridgeType(code byte) (mbc MBCType, battery, rtc, rumble bool, err error) {
	switch code {
	case 0x00:
		return NoMBCType, false, false, false, nil
	case 0x01, 0x02:
		return MBC1Type, false, false, false, nil
	case 0x03:
		return MBC1Type, true, false, false, nil
	case 0x05:
		return MBC2Type, false, false, false, nil
	case 0x06:
		return MBC2Type, true, false, false, nil
	case 0x0F, 0x10:
		return MBC3Type, true, true, false, nil
	case 0x11, 0x12:
		return MBC3Type, false, false, false, nil
	case 0x13:
		return MBC3Type, true, false, false, nil
	case 0x19, 0x1A:
		return MBC5Type, false, false, false, nil
	case 0x1B:
		return MBC5Type, true, false, false, nil
	case 0x1C, 0x1D:
		return MBC5Type, false, false, true, nil
	case 0x1E:
		return MBC5Type, true, false, true, nil
	default:
		return MBCUnknownType, false, false, false, fmt.Errorf("unsupported cartridge type byte: 0x%02X", code)
	}
}

func decodeROMBankCount(code byte) (uint16, error) {
	if code > 0x08 {
		return 0, fmt.Errorf("invalid ROM size code: 0x%02X", code)
	}
	// 32 KiB * 2^code, expressed in 16 KiB banks.
	return 2 << code, nil
}

func decodeRAMBankCount(code byte) (uint8, error) {
	switch code {
	case 0x00:
		return 0, nil
	case 0x01:
		return 1, nil // 2 KiB, rounded up to one 8 KiB bank slot
	case 0x02:
		return 1, nil // 8 KiB
	case 0x03:
		return 4, nil // 32 KiB
	case 0x04:
		return 16, nil // 128 KiB
	case 0x05:
		return 8, nil // 64 KiB
	default:
		return 0, fmt.Errorf("invalid RAM size code: 0x%02X", code)
	}
}

// Title returns the cleaned ASCII title from the header.
func (c *Cartridge) Title() string { return c.title }
