/*------------------------------------------------------------------------------
* bits_test.go : bit operations and crc unit test
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitUnsignedRoundTrip(t *testing.T) {
	assert := assert.New(t)
	var buff [16]uint8

	/* fields crossing byte boundaries */
	SetBitU(buff[:], 5, 11, 0x5A5)
	assert.Equal(uint32(0x5A5), GetBitU(buff[:], 5, 11))

	SetBitU(buff[:], 30, 10, 1005)
	assert.Equal(uint32(1005), GetBitU(buff[:], 30, 10))

	/* neighbours untouched */
	assert.Equal(uint32(0x5A5), GetBitU(buff[:], 5, 11))

	SetBitU(buff[:], 64, 32, 0xDEADBEEF)
	assert.Equal(uint32(0xDEADBEEF), GetBitU(buff[:], 64, 32))
}

func TestBitSignedRoundTrip(t *testing.T) {
	assert := assert.New(t)
	var buff [16]uint8

	SetBits(buff[:], 3, 7, -5)
	assert.Equal(int32(-5), GetBits(buff[:], 3, 7))

	SetBits(buff[:], 17, 14, -8192)
	assert.Equal(int32(-8192), GetBits(buff[:], 17, 14))

	SetBits(buff[:], 40, 22, 2097151)
	assert.Equal(int32(2097151), GetBits(buff[:], 40, 22))

	/* sign extension of a raw pattern */
	var b2 [2]uint8
	SetBitU(b2[:], 0, 8, 0xFF)
	assert.Equal(int32(-1), GetBits(b2[:], 0, 8))
}

/* crc-24q has init 0 and no final xor: the crc of message plus appended crc
 * is zero */
func TestCRC24q(t *testing.T) {
	assert := assert.New(t)

	data := []uint8{0xD3, 0x00, 0x13, 0x3E, 0xD7, 0xD3, 0x02, 0x02, 0x98,
		0x0E, 0xDE, 0xEF, 0x34, 0xB4, 0xBD, 0x62, 0xAC, 0x09, 0x77}
	crc := CRC24q(data, len(data))
	assert.True(crc != 0)

	full := make([]uint8, len(data)+3)
	copy(full, data)
	full[len(data)] = uint8(crc >> 16)
	full[len(data)+1] = uint8(crc >> 8)
	full[len(data)+2] = uint8(crc)
	assert.Equal(uint32(0), CRC24q(full, len(full)))

	/* single bit flip detected */
	full[4] ^= 0x01
	assert.True(CRC24q(full, len(full)) != 0)
}

func TestCRC16(t *testing.T) {
	assert := assert.New(t)

	data := []uint8{0x01, 0x02, 0x03, 0x04, 0x55, 0xAA}
	crc := CRC16(data, len(data))

	full := make([]uint8, len(data)+2)
	copy(full, data)
	full[len(data)] = uint8(crc >> 8)
	full[len(data)+1] = uint8(crc)
	assert.Equal(uint16(0), CRC16(full, len(full)))
}

func TestCRC32Deterministic(t *testing.T) {
	assert := assert.New(t)

	data := []uint8{0x10, 0x20, 0x30, 0x40}
	crc1 := CRC32(data, len(data))
	crc2 := CRC32(data, len(data))
	assert.Equal(crc1, crc2)

	data[0] ^= 0x80
	assert.True(CRC32(data, len(data)) != crc1)
}
