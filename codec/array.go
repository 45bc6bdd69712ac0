package codec

import "unsafe"

// ByteArray is the set of fixed-size byte arrays accepted by EncodeArray and
// DecodeArray. It covers every size up to 128 bytes and the common block sizes
// above that. Use DecodeN for other sizes.
type ByteArray interface {
	~[1]byte | ~[2]byte | ~[3]byte | ~[4]byte | ~[5]byte | ~[6]byte | ~[7]byte | ~[8]byte |
		~[9]byte | ~[10]byte | ~[11]byte | ~[12]byte | ~[13]byte | ~[14]byte | ~[15]byte | ~[16]byte |
		~[17]byte | ~[18]byte | ~[19]byte | ~[20]byte | ~[21]byte | ~[22]byte | ~[23]byte | ~[24]byte |
		~[25]byte | ~[26]byte | ~[27]byte | ~[28]byte | ~[29]byte | ~[30]byte | ~[31]byte | ~[32]byte |
		~[33]byte | ~[34]byte | ~[35]byte | ~[36]byte | ~[37]byte | ~[38]byte | ~[39]byte | ~[40]byte |
		~[41]byte | ~[42]byte | ~[43]byte | ~[44]byte | ~[45]byte | ~[46]byte | ~[47]byte | ~[48]byte |
		~[49]byte | ~[50]byte | ~[51]byte | ~[52]byte | ~[53]byte | ~[54]byte | ~[55]byte | ~[56]byte |
		~[57]byte | ~[58]byte | ~[59]byte | ~[60]byte | ~[61]byte | ~[62]byte | ~[63]byte | ~[64]byte |
		~[65]byte | ~[66]byte | ~[67]byte | ~[68]byte | ~[69]byte | ~[70]byte | ~[71]byte | ~[72]byte |
		~[73]byte | ~[74]byte | ~[75]byte | ~[76]byte | ~[77]byte | ~[78]byte | ~[79]byte | ~[80]byte |
		~[81]byte | ~[82]byte | ~[83]byte | ~[84]byte | ~[85]byte | ~[86]byte | ~[87]byte | ~[88]byte |
		~[89]byte | ~[90]byte | ~[91]byte | ~[92]byte | ~[93]byte | ~[94]byte | ~[95]byte | ~[96]byte |
		~[97]byte | ~[98]byte | ~[99]byte | ~[100]byte | ~[101]byte | ~[102]byte | ~[103]byte | ~[104]byte |
		~[105]byte | ~[106]byte | ~[107]byte | ~[108]byte | ~[109]byte | ~[110]byte | ~[111]byte | ~[112]byte |
		~[113]byte | ~[114]byte | ~[115]byte | ~[116]byte | ~[117]byte | ~[118]byte | ~[119]byte | ~[120]byte |
		~[121]byte | ~[122]byte | ~[123]byte | ~[124]byte | ~[125]byte | ~[126]byte | ~[127]byte | ~[128]byte |
		~[160]byte | ~[192]byte | ~[200]byte | ~[224]byte | ~[256]byte | ~[384]byte | ~[512]byte | ~[768]byte |
		~[1024]byte | ~[2048]byte | ~[4096]byte
}

// EncodeArray returns the emoji256 encoding of the fixed-size array a.
func EncodeArray[A ByteArray](c *Codec, a A) string {
	return c.EncodeToString(arrayBytes(&a))
}

// DecodeArray decodes src into a fixed-size array.
//
// The encoded text must hold exactly len(A) symbols, otherwise
// errs.ErrInvalidDestLength is returned. The other validation rules are the
// same as for DecodeToSlice.
//
// Example:
//
//	id, err := codec.DecodeArray[[16]byte](codec.Default(), encoded)
func DecodeArray[A ByteArray](c *Codec, src []byte) (A, error) {
	var out A
	if err := c.DecodeToSlice(arrayBytes(&out), src); err != nil {
		var zero A
		return zero, err
	}

	return out, nil
}

// arrayBytes returns a slice aliasing the array pointed to by a.
func arrayBytes[A ByteArray](a *A) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(a)), len(*a))
}
