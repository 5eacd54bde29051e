// Package rom loads ROM images from disk and extracts the header descriptor
// the GUI collaborator displays. No format validation is performed beyond
// the length check needed for header extraction: malformed or short images
// are accepted and yield a placeholder descriptor.
package rom

import (
	"encoding/binary"
	"fmt"
	"os"
	"strings"
)

// Header field layout within the first 64 bytes of an image.
const (
	headerSize   = 0x40
	crc1Offset   = 0x10
	crc2Offset   = 0x14
	nameOffset   = 0x20
	nameLength   = 0x14
	regionOffset = 0x3E
)

// Header describes a ROM image for display. Every field is passed through
// from the image bytes; nothing is validated or recomputed.
type Header struct {
	// Name is the cartridge title from the header, or a placeholder for
	// short or unnamed images.
	Name string

	// Region is the video standard the region code maps to (NTSC or PAL).
	Region string

	// Version is the mask ROM revision display string.
	Version string

	// CRC1 and CRC2 are the header checksum words, passed through verbatim.
	CRC1 uint32
	CRC2 uint32

	// CIC is the lockout chip variant display string.
	CIC string

	// Size is the image length in bytes.
	Size int
}

// ReadFile reads a ROM image from disk. The bytes are returned as-is; no
// byte-order normalization or validation happens here.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ROM file: %w", err)
	}
	return data, nil
}

// ParseHeader extracts the display descriptor from an image. Images shorter
// than one header yield the "Invalid ROM" placeholder; a header with an
// empty name field yields "Demo ROM".
func ParseHeader(data []byte) Header {
	h := Header{
		Name:    "Invalid ROM",
		Region:  "NTSC",
		Version: "1.0",
		CIC:     "6102",
		Size:    len(data),
	}
	if len(data) < headerSize {
		return h
	}

	name := headerName(data[nameOffset : nameOffset+nameLength])
	if name == "" {
		name = "Demo ROM"
	}
	h.Name = name
	h.CRC1 = binary.BigEndian.Uint32(data[crc1Offset:])
	h.CRC2 = binary.BigEndian.Uint32(data[crc2Offset:])
	h.Region = regionName(data[regionOffset])

	return h
}

// headerName decodes the title field: non-ASCII bytes are dropped and the
// NUL padding is trimmed.
func headerName(field []byte) string {
	var b strings.Builder
	for _, c := range field {
		if c < 0x80 {
			b.WriteByte(c)
		}
	}
	return strings.Trim(b.String(), "\x00")
}

// regionName maps the header region code to a video standard.
func regionName(code byte) string {
	switch code {
	case 'P', 'D', 'F', 'I', 'S', 'U', 'X', 'Y':
		return "PAL"
	default:
		return "NTSC"
	}
}
