package emoji256_test

import (
	"errors"
	"fmt"

	"github.com/arloliu/emoji256"
)

func ExampleEncode() {
	fmt.Println(emoji256.Encode("Hello world!"))
	fmt.Println(emoji256.Encode([]byte{1, 2, 3, 15, 16}))
	// Output:
	// 👊💛💣💣💦🍻💸💦💩💣💚🍼
	// 🌈🌊🌙🌼🌿
}

func ExampleDecode() {
	b, err := emoji256.Decode("👊💛💣💣💦🍻💸💦💩💣💚🍼")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output: Hello world!
}

func ExampleDecode_invalidSymbol() {
	_, err := emoji256.Decode("💜💦66ag")
	fmt.Println(err)
	fmt.Println(errors.Is(err, emoji256.ErrInvalidSymbol))
	// Output:
	// invalid character '6' at position 2
	// true
}

func ExampleEncodeToSlice() {
	buf := make([]byte, emoji256.EncodedLen(4))
	if err := emoji256.EncodeToSlice(buf, []byte("kiwi")); err != nil {
		panic(err)
	}
	fmt.Println(string(buf))
	// Output: 💢💟💸💟
}

func ExampleDecodeToSlice() {
	out := make([]byte, 4)
	if err := emoji256.DecodeToSlice(out, "💢💟💸💟"); err != nil {
		panic(err)
	}
	fmt.Println(string(out))
	// Output: kiwi
}

func ExampleDecodeArray() {
	arr, err := emoji256.DecodeArray[[6]byte]("💜💦💦💘💗💩")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", arr[:])
	// Output: "foobar"
}
