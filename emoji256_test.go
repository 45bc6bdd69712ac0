package emoji256

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type rawID []byte

type label string

func TestEncode_Inputs(t *testing.T) {
	require.Equal(t, "👊💛💣💣💦🍻💸💦💩💣💚🍼", Encode("Hello world!"))
	require.Equal(t, "🌈🌊🌙🌼🌿", Encode([]byte{1, 2, 3, 15, 16}))
	require.Equal(t, "💢💟💸💟", Encode(rawID("kiwi")))
	require.Equal(t, "💢💟💸💟", Encode(label("kiwi")))
	require.Equal(t, "", Encode(""))
	require.Equal(t, "", Encode([]byte(nil)))
}

func TestDecode_Inputs(t *testing.T) {
	got, err := Decode("👊💛💣💣💦🍻💸💦💩💣💚🍼")
	require.NoError(t, err)
	require.Equal(t, []byte("Hello world!"), got)

	got, err = Decode([]byte("💜💦💦💘💗💩"))
	require.NoError(t, err)
	require.Equal(t, []byte("foobar"), got)

	got, err = Decode(label("💢💟💸💟"))
	require.NoError(t, err)
	require.Equal(t, []byte("kiwi"), got)

	got, err = Decode("")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode("123")
	require.ErrorIs(t, err, ErrInvalidSrcLength)

	_, err = Decode("foo")
	require.Error(t, err)

	_, err = Decode("💜💦66ag")
	require.ErrorIs(t, err, ErrInvalidSymbol)

	var se InvalidSymbolError
	require.True(t, errors.As(err, &se))
	require.Equal(t, 2, se.Index)
	require.Equal(t, '6', se.Char)

	_, err = Decode("\xff\xff\xff\xff")
	require.ErrorIs(t, err, ErrInvalidUTF8)

	var ue InvalidUTF8Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, 0, ue.Index)
}

func TestEncodeToSlice(t *testing.T) {
	buf := make([]byte, EncodedLen(4))
	require.NoError(t, EncodeToSlice(buf, "kiwi"))
	require.Equal(t, "💢💟💸💟", string(buf))

	require.ErrorIs(t, EncodeToSlice(make([]byte, 100), "kiwis"), ErrInvalidDestLength)
	require.ErrorIs(t, EncodeToSlice(make([]byte, 19), "kiwis"), ErrInvalidDestLength)
}

func TestDecodeToSlice(t *testing.T) {
	out := make([]byte, 4)
	require.NoError(t, DecodeToSlice(out, "💢💟💸💟"))
	require.Equal(t, []byte("kiwi"), out)

	require.ErrorIs(t, DecodeToSlice(out, "6"), ErrInvalidSrcLength)
	require.ErrorIs(t, DecodeToSlice(make([]byte, 5), "💢💟💸💟"), ErrInvalidDestLength)
}

func TestDecodeArray(t *testing.T) {
	got, err := DecodeArray[[6]byte]("💜💦💦💘💗💩")
	require.NoError(t, err)
	require.Equal(t, [6]byte{0x66, 0x6f, 0x6f, 0x62, 0x61, 0x72}, got)

	_, err = DecodeArray[[5]byte]("💜💦💦💘💗💩")
	require.ErrorIs(t, err, ErrInvalidDestLength)

	buf, err := DecodeArray[[12]byte]([]byte(Encode("Hello world!")))
	require.NoError(t, err)
	require.Equal(t, "Hello world!", string(buf[:]))
}

func TestLengths(t *testing.T) {
	for _, n := range []int{0, 1, 4, 255, 1 << 20} {
		require.Equal(t, 4*n, EncodedLen(n))
		require.Equal(t, n, DecodedLen(EncodedLen(n)))
	}
}

func TestView_NoCopy(t *testing.T) {
	b := []byte("kiwi")
	v := view(b)
	require.Same(t, &b[0], &v[0])

	require.Equal(t, []byte("kiwi"), view(label("kiwi")))
	require.Equal(t, []byte("kiwi"), view(rawID("kiwi")))
}
