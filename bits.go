/*------------------------------------------------------------------------------
* bits.go : bit-packed field access, checksums and parity
*
* notes  :
*     all bit positions are MSB first within bytes. crc tables are generated
*     at init from the generator polynomials:
*         crc-24q  0x1864CFB (RTCM 10403.3 / SBAS)
*         crc-16   0x1021    (CCITT)
*         crc-32   0xEDB88320 (reflected IEEE 802.3)
*-----------------------------------------------------------------------------*/
package gnssrt

import "math/bits"

/* extract unsigned bits from byte data (len<=32) */
func GetBitU(buff []uint8, pos, nbit int) uint32 {
	var v uint32
	for i := pos; i < pos+nbit; i++ {
		v = v<<1 + uint32(buff[i/8]>>(7-i%8)&1)
	}
	return v
}

/* extract signed (two's complement) bits from byte data */
func GetBits(buff []uint8, pos, nbit int) int32 {
	v := GetBitU(buff, pos, nbit)
	if nbit <= 0 || 32 <= nbit || v&(1<<(nbit-1)) == 0 {
		return int32(v)
	}
	return int32(v | 0xFFFFFFFF<<nbit) /* extend sign */
}

/* set unsigned bits to byte data */
func SetBitU(buff []uint8, pos, nbit int, data uint32) {
	if nbit <= 0 || 32 < nbit {
		return
	}
	mask := uint32(1) << (nbit - 1)
	for i := pos; i < pos+nbit; i, mask = i+1, mask>>1 {
		if data&mask != 0 {
			buff[i/8] |= 1 << (7 - i%8)
		} else {
			buff[i/8] &^= 1 << (7 - i%8)
		}
	}
}

/* set signed bits to byte data */
func SetBits(buff []uint8, pos, nbit int, data int32) {
	if data < 0 {
		data |= 1 << (nbit - 1)
	} else {
		data &^= 1 << (nbit - 1)
	}
	SetBitU(buff, pos, nbit, uint32(data))
}

/* extract sign-magnitude bits for glonass ephemeris fields */
func GetBitG(buff []uint8, pos, nbit int) float64 {
	v := float64(GetBitU(buff, pos+1, nbit-1))
	if GetBitU(buff, pos, 1) != 0 {
		return -v
	}
	return v
}

/* set sign-magnitude bits */
func SetBitG(buff []uint8, pos, nbit int, value int32) {
	if value < 0 {
		SetBitU(buff, pos, 1, 1)
		value = -value
	} else {
		SetBitU(buff, pos, 1, 0)
	}
	SetBitU(buff, pos+1, nbit-1, uint32(value))
}

/* extract 38-bit signed field (rtcm 3 station coordinates) */
func GetBits38(buff []uint8, pos int) float64 {
	return float64(GetBits(buff, pos, 32))*64.0 + float64(GetBitU(buff, pos+32, 6))
}

/* set 38-bit signed field */
func SetBits38(buff []uint8, pos int, value float64) {
	word := int64(value)
	SetBits(buff, pos, 32, int32(word/64))
	SetBitU(buff, pos+32, 6, uint32(word&0x3F))
}

/* merge two bit fields split in a frame */
func MergeBitsU(a, b uint32, n int) uint32 {
	return a<<n | b
}

func MergeBitsS(a int32, b uint32, n int) int32 {
	return a<<n | int32(b)
}

/* extract split unsigned/signed fields */
func GetBitU2(buff []uint8, p1, l1, p2, l2 int) uint32 {
	return MergeBitsU(GetBitU(buff, p1, l1), GetBitU(buff, p2, l2), l2)
}

func GetBits2(buff []uint8, p1, l1, p2, l2 int) int32 {
	return MergeBitsS(GetBits(buff, p1, l1), GetBitU(buff, p2, l2), l2)
}

func GetBitU3(buff []uint8, p1, l1, p2, l2, p3, l3 int) uint32 {
	return MergeBitsU(MergeBitsU(GetBitU(buff, p1, l1), GetBitU(buff, p2, l2), l2),
		GetBitU(buff, p3, l3), l3)
}

func GetBits3(buff []uint8, p1, l1, p2, l2, p3, l3 int) int32 {
	return MergeBitsS(MergeBitsS(GetBits(buff, p1, l1), GetBitU(buff, p2, l2), l2),
		GetBitU(buff, p3, l3), l3)
}

var (
	tblCRC24Q [256]uint32
	tblCRC16  [256]uint16
	tblCRC32  [256]uint32
)

func init() {
	for i := 0; i < 256; i++ {
		crc24 := uint32(i) << 16
		crc16 := uint16(i) << 8
		for j := 0; j < 8; j++ {
			crc24 <<= 1
			if crc24&0x1000000 != 0 {
				crc24 ^= 0x1864CFB
			}
			if crc16&0x8000 != 0 {
				crc16 = crc16<<1 ^ 0x1021
			} else {
				crc16 <<= 1
			}
		}
		tblCRC24Q[i] = crc24 & 0xFFFFFF
		tblCRC16[i] = crc16

		crc32 := uint32(i)
		for j := 0; j < 8; j++ {
			if crc32&1 != 0 {
				crc32 = crc32>>1 ^ 0xEDB88320
			} else {
				crc32 >>= 1
			}
		}
		tblCRC32[i] = crc32
	}
}

/* crc-24q parity for rtcm 3 and sbas frames */
func CRC24q(buff []uint8, length int) uint32 {
	var crc uint32
	for i := 0; i < length; i++ {
		crc = crc<<8&0xFFFFFF ^ tblCRC24Q[crc>>16^uint32(buff[i])]
	}
	return crc
}

/* crc-16 ccitt parity */
func CRC16(buff []uint8, length int) uint16 {
	var crc uint16
	for i := 0; i < length; i++ {
		crc = crc<<8 ^ tblCRC16[(crc>>8^uint16(buff[i]))&0xFF]
	}
	return crc
}

/* crc-32 parity */
func CRC32(buff []uint8, length int) uint32 {
	var crc uint32
	for i := 0; i < length; i++ {
		crc = crc>>8 ^ tblCRC32[(crc^uint32(buff[i]))&0xFF]
	}
	return crc
}

/* check parity and decode GPS L-NAV word (2+30 bit, previous D29*-30* +
 * current D1-30) to 3 bytes without parity (IS-GPS-200 20.3.5.2) */
func DecodeWord(word uint32, data []uint8) int {
	hamming := []uint32{
		0xBB1F3480, 0x5D8F9A40, 0xAEC7CD00, 0x5763E680, 0x6BB1F340, 0x8B7A89C0}

	if word&0x40000000 != 0 {
		word ^= 0x3FFFFFC0
	}
	var parity uint32
	for i := 0; i < 6; i++ {
		parity = parity<<1 | uint32(bits.OnesCount32(word&hamming[i]&0xFFFFFFC0))&1
	}
	if parity != word&0x3F {
		return 0
	}
	for i := 0; i < 3; i++ {
		data[i] = uint8(word >> (22 - i*8))
	}
	return 1
}

/* mask of the eight hamming checks over a GLONASS navigation string
 * (GLONASS ICD 4.7), string packed msb first: buff[0] bits 85-78, ...,
 * buff[10] bits 5-1 zero padded */
var gloHamming = [8][11]uint8{
	{0x55, 0x55, 0x5A, 0xAA, 0xAA, 0xAA, 0xB5, 0x55, 0x6A, 0xD8, 0x08},
	{0x66, 0x66, 0x6C, 0xCC, 0xCC, 0xCC, 0xD9, 0x99, 0xB3, 0x68, 0x10},
	{0x87, 0x87, 0x8F, 0x0F, 0x0F, 0x0F, 0x1E, 0x1E, 0x3C, 0x70, 0x20},
	{0x07, 0xF8, 0x0F, 0xF0, 0x0F, 0xF0, 0x1F, 0xE0, 0x3F, 0x80, 0x40},
	{0xF8, 0x00, 0x0F, 0xFF, 0xF0, 0x00, 0x1F, 0xFF, 0xC0, 0x00, 0x80},
	{0x00, 0x00, 0x0F, 0xFF, 0xFF, 0xFF, 0xE0, 0x00, 0x00, 0x01, 0x00},
	{0xFF, 0xFF, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x00},
	{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xF8},
}

/* test hamming code of GLONASS navigation string (1:ok,0:error) */
func TestGloStr(buff []uint8) int {
	var cs uint8
	n := 0
	for i := 0; i < 8; i++ {
		cs = 0
		for j := 0; j < 11; j++ {
			cs ^= uint8(bits.OnesCount8(buff[j]&gloHamming[i][j])) & 1
		}
		if cs != 0 {
			n++
		}
	}
	if n == 0 || (n == 2 && cs != 0) {
		return 1
	}
	return 0
}
